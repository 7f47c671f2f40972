package evaluate

import (
	"strings"

	"github.com/YuminosukeSato/ffselect/core/model"
	"github.com/YuminosukeSato/ffselect/linear"
	"github.com/YuminosukeSato/ffselect/pkg/errors"
)

// Regressor names a built-in model the evaluator can fit per subset.
type Regressor string

const (
	// OLS is linear.LinearRegression (normal equation).
	OLS Regressor = "ols"
	// PassiveAggressive is linear.PassiveAggressiveRegressor with a fixed
	// shuffle seed, so repeated evaluations of a subset agree.
	PassiveAggressive Regressor = "passive_aggressive"
)

// ParseRegressor resolves a model name case-insensitively. An empty name is OLS.
func ParseRegressor(name string) (Regressor, error) {
	switch r := Regressor(strings.ToLower(strings.TrimSpace(name))); r {
	case "", "linear":
		return OLS, nil
	case OLS, PassiveAggressive:
		return r, nil
	case "pa":
		return PassiveAggressive, nil
	default:
		return "", errors.NewValidationError("model", "expected ols or passive_aggressive", name)
	}
}

// Factory returns a constructor for unfitted instances of the model.
func (r Regressor) Factory() func() model.Regressor {
	if r == PassiveAggressive {
		return func() model.Regressor {
			return linear.NewPassiveAggressiveRegressor(linear.WithPAShuffle(true, 42))
		}
	}
	return func() model.Regressor { return linear.NewLinearRegression() }
}

func (r Regressor) modelName() string {
	if r == PassiveAggressive {
		return "PassiveAggressiveRegressor"
	}
	return "LinearRegression"
}

// WithModel fits the named built-in model per subset.
func WithModel(r Regressor) Option {
	return func(e *LinearEvaluator) {
		e.newModel = r.Factory()
		e.modelName = r.modelName()
	}
}
