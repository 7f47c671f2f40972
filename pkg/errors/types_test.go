package errors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not fitted", NewNotFittedError("LinearRegression", "Predict"), "ffselect: LinearRegression.Predict: model is not fitted, call Fit first"},
		{"dimension rows", NewDimensionError("Fit", 10, 8, 0), "ffselect: Fit: expected 10 rows, got 8"},
		{"dimension columns", NewDimensionError("Predict", 3, 2, 1), "ffselect: Predict: expected 3 columns, got 2"},
		{"validation", NewValidationError("folds", "must not be negative", -2), "ffselect: invalid folds: must not be negative (got -2)"},
		{"value", NewValueError("Frame.Column", `unknown feature "x9"`), `ffselect: Frame.Column: unknown feature "x9"`},
		{"model with cause", NewModelError("Fit", "singular matrix", ErrSingularMatrix), "ffselect: Fit: singular matrix: singular matrix"},
		{"model without cause", NewModelError("Predict", "not fitted", nil), "ffselect: Predict: not fitted"},
		{"numerical", NewNumericalInstabilityError("evaluate", []float64{1, 2, 3, 4, 5, 6}, 3), "ffselect: evaluate: non-finite values at iteration 3: [1, 2, 3, 4, 5, ...]"},
		{"convergence", NewConvergenceWarning("PassiveAggressiveRegressor", 50), "ffselect: PassiveAggressiveRegressor did not converge within 50 iterations"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestTypedErrorsCarryStack(t *testing.T) {
	for _, err := range []error{
		NewNotFittedError("m", "Predict"),
		NewDimensionError("op", 1, 2, 0),
		NewValidationError("p", "r", 1),
		NewValueError("op", "msg"),
		NewModelError("op", "kind", nil),
		NewNumericalInstabilityError("op", nil, 0),
	} {
		assert.Contains(t, fmt.Sprintf("%+v", err), "types_test.go", "%T", err)
	}
}

func TestTypedErrorsAs(t *testing.T) {
	var dim *DimensionError
	require.True(t, As(Wrap(NewDimensionError("Predict", 3, 2, 1), "evaluate"), &dim))
	assert.Equal(t, 3, dim.Expected)

	var val *ValidationError
	require.True(t, As(NewValidationError("folds", "r", 0), &val))
	assert.Equal(t, "folds", val.ParamName)

	var model *ModelError
	err := NewModelError("Fit", "singular matrix", ErrSingularMatrix)
	require.True(t, As(err, &model))
	assert.True(t, Is(err, ErrSingularMatrix))
}

func TestTypedErrorsMarshalZerolog(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	var dim *DimensionError
	require.True(t, As(NewDimensionError("Predict", 3, 2, 1), &dim))
	logger.Error().Object("detail", dim).Msg("failed")

	var entry struct {
		Detail map[string]interface{} `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "dimension", entry.Detail["kind"])
	assert.Equal(t, "columns", entry.Detail["axis"])
	assert.Equal(t, float64(2), entry.Detail["got"])
}
