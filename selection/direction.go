package selection

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/YuminosukeSato/ffselect/pkg/errors"
)

// Direction tells the selector whether lower or higher fitness is better.
// It is fixed for a whole run.
type Direction int

const (
	// Minimize treats fitness as a loss: lower is better.
	Minimize Direction = iota
	// Maximize treats fitness as a score (e.g. R²): higher is better.
	Maximize
)

// ParseDirection accepts "minimize"/"min"/"loss" and "maximize"/"max"/"score",
// case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minimize", "min", "loss":
		return Minimize, nil
	case "maximize", "max", "score":
		return Maximize, nil
	default:
		return Minimize, errors.NewValidationError("direction", "expected minimize or maximize", s)
	}
}

func (d Direction) valid() bool {
	return d == Minimize || d == Maximize
}

// sign maps fitness into a space where lower is always better.
func (d Direction) sign() float64 {
	if d == Maximize {
		return -1
	}
	return 1
}

// Better reports whether candidate is strictly better than incumbent.
// Equal values are never better, so earlier candidates keep ties; NaN on
// either side is never better.
func (d Direction) Better(candidate, incumbent float64) bool {
	return d.sign()*candidate < d.sign()*incumbent
}

// Improvement returns how much current improves on previous, positive when
// current is better regardless of direction.
func (d Direction) Improvement(previous, current float64) float64 {
	return d.sign() * (previous - current)
}

// Label is the word used for fitness in progress output.
func (d Direction) Label() string {
	if d == Maximize {
		return "score"
	}
	return "loss"
}

func (d Direction) String() string {
	switch d {
	case Minimize:
		return "minimize"
	case Maximize:
		return "maximize"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.valid() {
		return nil, errors.NewValidationError("direction", "unknown direction", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Direction) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// MarshalYAML implements yaml.Marshaler.
func (d Direction) MarshalYAML() (interface{}, error) {
	text, err := d.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}
