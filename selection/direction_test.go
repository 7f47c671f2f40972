package selection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDirectionBetter(t *testing.T) {
	tests := []struct {
		name      string
		dir       Direction
		candidate float64
		incumbent float64
		want      bool
	}{
		{"minimize lower", Minimize, 0.4, 0.5, true},
		{"minimize higher", Minimize, 0.6, 0.5, false},
		{"minimize equal", Minimize, 0.5, 0.5, false},
		{"maximize higher", Maximize, 0.6, 0.5, true},
		{"maximize lower", Maximize, 0.4, 0.5, false},
		{"maximize equal", Maximize, 0.5, 0.5, false},
		{"nan candidate", Minimize, math.NaN(), 0.5, false},
		{"nan incumbent", Maximize, 0.5, math.NaN(), false},
		{"minimize negative infinity", Minimize, math.Inf(-1), -1e300, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dir.Better(tt.candidate, tt.incumbent))
		})
	}
}

func TestDirectionImprovement(t *testing.T) {
	assert.Equal(t, 0.25, Minimize.Improvement(1.0, 0.75))
	assert.Equal(t, -0.25, Minimize.Improvement(0.75, 1.0))
	assert.Equal(t, 0.25, Maximize.Improvement(0.5, 0.75))
	assert.Equal(t, -0.25, Maximize.Improvement(0.75, 0.5))
}

func TestParseDirection(t *testing.T) {
	for _, s := range []string{"minimize", "MIN", " loss "} {
		d, err := ParseDirection(s)
		require.NoError(t, err)
		assert.Equal(t, Minimize, d)
	}
	for _, s := range []string{"maximize", "Max", "score"} {
		d, err := ParseDirection(s)
		require.NoError(t, err)
		assert.Equal(t, Maximize, d)
	}
	_, err := ParseDirection("sideways")
	assert.Error(t, err)
}

func TestDirectionStringsAndLabels(t *testing.T) {
	assert.Equal(t, "minimize", Minimize.String())
	assert.Equal(t, "maximize", Maximize.String())
	assert.Equal(t, "unknown", Direction(9).String())
	assert.Equal(t, "loss", Minimize.Label())
	assert.Equal(t, "score", Maximize.Label())
}

func TestDirectionTextAndYAML(t *testing.T) {
	text, err := Maximize.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "maximize", string(text))

	_, err = Direction(9).MarshalText()
	assert.Error(t, err)

	var d Direction
	require.NoError(t, d.UnmarshalText([]byte("max")))
	assert.Equal(t, Maximize, d)

	var doc struct {
		Direction Direction `yaml:"direction"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("direction: maximize\n"), &doc))
	assert.Equal(t, Maximize, doc.Direction)

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, "direction: maximize\n", string(out))

	assert.Error(t, yaml.Unmarshal([]byte("direction: upward\n"), &doc))
}
