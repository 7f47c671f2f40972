package evaluate

import (
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/ffselect/metrics"
	"github.com/YuminosukeSato/ffselect/pkg/errors"
	"github.com/YuminosukeSato/ffselect/selection"
)

// Metric names a regression metric used as fitness.
type Metric string

const (
	MSE  Metric = "mse"
	RMSE Metric = "rmse"
	MAE  Metric = "mae"
	R2   Metric = "r2"
)

// ParseMetric resolves a metric name case-insensitively. An empty name is MSE.
func ParseMetric(name string) (Metric, error) {
	switch m := Metric(strings.ToLower(strings.TrimSpace(name))); m {
	case "":
		return MSE, nil
	case MSE, RMSE, MAE, R2:
		return m, nil
	default:
		return "", errors.NewValidationError("metric", "expected mse, rmse, mae or r2", name)
	}
}

// Direction is the selection direction matching the metric: errors are
// minimized, R² is maximized.
func (m Metric) Direction() selection.Direction {
	if m == R2 {
		return selection.Maximize
	}
	return selection.Minimize
}

func (m Metric) score(yTrue, yPred *mat.VecDense) (float64, error) {
	switch m {
	case MSE:
		return metrics.MSE(yTrue, yPred)
	case RMSE:
		return metrics.RMSE(yTrue, yPred)
	case MAE:
		return metrics.MAE(yTrue, yPred)
	case R2:
		return metrics.R2Score(yTrue, yPred)
	default:
		return 0, errors.NewValidationError("metric", "unknown metric", string(m))
	}
}
