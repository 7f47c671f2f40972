// Package evaluate provides a reference selection.Evaluator that scores a
// feature subset by fitting a linear model on a dataset.Frame.
package evaluate

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/ffselect/core/model"
	"github.com/YuminosukeSato/ffselect/dataset"
	"github.com/YuminosukeSato/ffselect/metrics"
	"github.com/YuminosukeSato/ffselect/pkg/errors"
	"github.com/YuminosukeSato/ffselect/pkg/log"
	"github.com/YuminosukeSato/ffselect/preprocessing"
	"github.com/YuminosukeSato/ffselect/selection"
)

// LinearEvaluator fits linear.LinearRegression (or the model chosen with
// WithModel or WithRegressor) on the requested features and scores its predictions with a
// Metric. With folds > 1 each contiguous fold is predicted by a model fitted
// on the remaining folds and the pooled out-of-fold predictions are scored
// once; otherwise the model is scored in-sample.
//
// The empty subset is scored as an intercept-only model predicting the
// training mean of the target.
type LinearEvaluator struct {
	newModel    func() model.Regressor
	modelName   string
	metric      Metric
	folds       int
	standardize bool
	logger      log.Logger
}

var _ selection.Evaluator[*dataset.Frame] = (*LinearEvaluator)(nil)

// Option configures a LinearEvaluator.
type Option func(*LinearEvaluator)

// WithMetric sets the scoring metric. The default is MSE.
func WithMetric(m Metric) Option {
	return func(e *LinearEvaluator) {
		e.metric = m
	}
}

// WithRegressor replaces the model fitted per subset. newModel is called once
// per fit and must return an unfitted regressor.
func WithRegressor(newModel func() model.Regressor) Option {
	return func(e *LinearEvaluator) {
		e.newModel = newModel
		e.modelName = "custom"
	}
}

// WithFolds sets the number of cross-validation folds. k <= 1 scores in-sample.
func WithFolds(k int) Option {
	return func(e *LinearEvaluator) {
		e.folds = k
	}
}

// WithStandardize standardizes features on the training rows before fitting.
func WithStandardize(on bool) Option {
	return func(e *LinearEvaluator) {
		e.standardize = on
	}
}

// WithLogger sets the logger used for per-evaluation debug records.
func WithLogger(l log.Logger) Option {
	return func(e *LinearEvaluator) {
		e.logger = l
	}
}

// NewLinearEvaluator creates an evaluator with the given options.
func NewLinearEvaluator(opts ...Option) *LinearEvaluator {
	e := &LinearEvaluator{
		newModel:  OLS.Factory(),
		modelName: OLS.modelName(),
		metric:    MSE,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = log.GetLogger()
	}
	e.logger = e.logger.With(log.ComponentKey, "evaluate", log.ModelNameKey, e.modelName)
	return e
}

// Metric returns the scoring metric.
func (e *LinearEvaluator) Metric() Metric {
	return e.metric
}

// Direction returns the selection direction that fits the metric.
func (e *LinearEvaluator) Direction() selection.Direction {
	return e.metric.Direction()
}

// Evaluate implements selection.Evaluator. Panics raised by gonum are
// returned as *errors.PanicError.
func (e *LinearEvaluator) Evaluate(frame *dataset.Frame, features []string, target string) (_ float64, err error) {
	defer errors.Recover(&err, "LinearEvaluator.Evaluate")

	if frame == nil {
		return 0, errors.NewModelError("LinearEvaluator.Evaluate", "empty data", errors.ErrEmptyData)
	}

	y, err := frame.Column(target)
	if err != nil {
		return 0, err
	}
	var X *mat.Dense
	if len(features) > 0 {
		if X, err = frame.Matrix(features); err != nil {
			return 0, err
		}
	}

	var pred *mat.VecDense
	if e.folds <= 1 {
		pred, err = e.fitPredict(X, y, X, y.Len())
	} else {
		pred, err = e.outOfFold(X, y)
	}
	if err != nil {
		return 0, errors.Wrapf(err, "evaluate %d features %v", len(features), features)
	}
	score, err := e.metric.score(y, pred)
	if err != nil {
		return 0, errors.Wrapf(err, "evaluate %d features %v", len(features), features)
	}

	e.logger.Debug("Subset scored",
		log.OperationKey, log.OperationEvaluate,
		log.FeaturesKey, len(features),
		log.SamplesKey, y.Len(),
		log.MetricKey, string(e.metric),
		log.FoldsKey, e.folds,
		log.FitnessKey, score,
	)
	return score, nil
}

// outOfFold predicts every row from a model fitted on the other folds. The
// predictions are scored together, so a fold of one row or with a constant
// target is fine for R².
func (e *LinearEvaluator) outOfFold(X *mat.Dense, y *mat.VecDense) (*mat.VecDense, error) {
	rows := y.Len()
	if e.folds > rows {
		return nil, errors.NewValidationError("folds", "must not exceed the number of samples", e.folds)
	}

	pred := mat.NewVecDense(rows, nil)
	for k := 0; k < e.folds; k++ {
		start, end := k*rows/e.folds, (k+1)*rows/e.folds

		train := make([]int, 0, rows-(end-start))
		test := make([]int, 0, end-start)
		for i := 0; i < rows; i++ {
			if i >= start && i < end {
				test = append(test, i)
			} else {
				train = append(train, i)
			}
		}

		p, err := e.fitPredict(takeRows(X, train), takeVec(y, train), takeRows(X, test), len(test))
		if err != nil {
			return nil, errors.Wrapf(err, "fold %d/%d", k+1, e.folds)
		}
		for i := range test {
			pred.SetVec(start+i, p.AtVec(i))
		}
	}
	return pred, nil
}

// fitPredict fits on the training rows and predicts n test rows. A nil XTrain
// means no features: the prediction is the training mean.
func (e *LinearEvaluator) fitPredict(XTrain *mat.Dense, yTrain *mat.VecDense, XTest *mat.Dense, n int) (*mat.VecDense, error) {
	if XTrain == nil {
		mean := stat.Mean(yTrain.RawVector().Data, nil)
		pred := mat.NewVecDense(n, nil)
		for i := 0; i < n; i++ {
			pred.SetVec(i, mean)
		}
		return pred, nil
	}

	var trainX, testX mat.Matrix = XTrain, XTest
	if e.standardize {
		scaler := preprocessing.NewStandardScaler()
		var err error
		if trainX, err = scaler.FitTransform(XTrain); err != nil {
			return nil, err
		}
		if testX, err = scaler.Transform(XTest); err != nil {
			return nil, err
		}
	}

	m := e.newModel()
	if err := m.Fit(trainX, yTrain); err != nil {
		return nil, err
	}
	p, err := m.Predict(testX)
	if err != nil {
		return nil, err
	}
	return metrics.ColumnVector(p)
}

func takeRows(m *mat.Dense, idx []int) *mat.Dense {
	if m == nil {
		return nil
	}
	_, c := m.Dims()
	out := mat.NewDense(len(idx), c, nil)
	for i, r := range idx {
		out.SetRow(i, m.RawRowView(r))
	}
	return out
}

func takeVec(v *mat.VecDense, idx []int) *mat.VecDense {
	out := mat.NewVecDense(len(idx), nil)
	for i, r := range idx {
		out.SetVec(i, v.AtVec(r))
	}
	return out
}
