package errors

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapKeepsSentinel(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		msg      string
	}{
		{"wrap", Wrap(ErrNotImplemented, "selection.FastSubset"), ErrNotImplemented, "selection.FastSubset: not implemented"},
		{"wrapf", Wrapf(ErrEmptyData, "fold %d/%d", 2, 5), ErrEmptyData, "fold 2/5: empty data"},
		{"with stack", WithStack(ErrSingularMatrix), ErrSingularMatrix, "singular matrix"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, Is(tt.err, tt.sentinel))
			assert.Equal(t, tt.msg, tt.err.Error())
		})
	}

	assert.Nil(t, Wrap(nil, "nothing"))
}

func TestErrorChaining(t *testing.T) {
	base := fmt.Errorf("base error")
	err := NewModelError("Fit", "failed", Wrap(base, "wrapped once"))

	assert.True(t, Is(err, base))
	assert.Contains(t, err.Error(), "wrapped once: base error")
	assert.Contains(t, fmt.Sprintf("%+v", err), "errors_test.go")
}

func TestCheckScalar(t *testing.T) {
	assert.NoError(t, CheckScalar("evaluate", 0.5, 1))

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := CheckScalar("evaluate", v, 2)
		require.Error(t, err)

		var numErr *NumericalInstabilityError
		require.True(t, As(err, &numErr))
		assert.Equal(t, 2, numErr.Iteration)
		assert.Equal(t, "evaluate", numErr.Operation)
	}
}

func TestCheckNumericalStability(t *testing.T) {
	assert.NoError(t, CheckNumericalStability("fit", []float64{1, 2, 3}, 0))

	err := CheckNumericalStability("fit", []float64{1, math.NaN(), 3, math.Inf(1)}, 0)
	require.Error(t, err)

	var numErr *NumericalInstabilityError
	require.True(t, As(err, &numErr))
	assert.Len(t, numErr.Values, 2)
}
