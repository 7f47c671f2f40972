package evaluate

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/YuminosukeSato/ffselect/core/model"
	"github.com/YuminosukeSato/ffselect/dataset"
	"github.com/YuminosukeSato/ffselect/pkg/errors"
	"github.com/YuminosukeSato/ffselect/pkg/log"
	"github.com/YuminosukeSato/ffselect/selection"
)

// exactFrame は y = 2a - b + 1 を満たすノイズなしのデータ
func exactFrame(t *testing.T) *dataset.Frame {
	t.Helper()
	a := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	b := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	y := make([]float64, len(a))
	for i := range a {
		y[i] = 2*a[i] - b[i] + 1
	}
	f, err := dataset.FromColumns([]string{"a", "b", "y"}, [][]float64{a, b, y})
	require.NoError(t, err)
	return f
}

// noisyFrame は y = 2x + ε に無関係な列 n1..n4 を加えたデータ
func noisyFrame(t *testing.T, rows int) *dataset.Frame {
	t.Helper()
	signal := distuv.Normal{Mu: 0, Sigma: 3, Src: rand.NewPCG(7, 11)}
	noise := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewPCG(13, 17)}

	names := []string{"n1", "x", "n2", "n3", "n4", "y"}
	cols := make([][]float64, len(names))
	for j := range cols {
		cols[j] = make([]float64, rows)
	}
	for i := 0; i < rows; i++ {
		for _, j := range []int{0, 2, 3, 4} {
			cols[j][i] = noise.Rand()
		}
		cols[1][i] = signal.Rand()
		cols[5][i] = 2*cols[1][i] + noise.Rand()
	}
	f, err := dataset.FromColumns(names, cols)
	require.NoError(t, err)
	return f
}

func TestLinearEvaluatorInSample(t *testing.T) {
	f := exactFrame(t)

	mse, err := NewLinearEvaluator().Evaluate(f, []string{"a", "b"}, "y")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, mse, 1e-10)

	r2, err := NewLinearEvaluator(WithMetric(R2)).Evaluate(f, []string{"a", "b"}, "y")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r2, 1e-10)

	std, err := NewLinearEvaluator(WithStandardize(true)).Evaluate(f, []string{"b", "a"}, "y")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, std, 1e-10)

	partial, err := NewLinearEvaluator().Evaluate(f, []string{"b"}, "y")
	require.NoError(t, err)
	assert.Greater(t, partial, 0.1)
}

func TestLinearEvaluatorEmptySubset(t *testing.T) {
	f, err := dataset.FromColumns([]string{"y"}, [][]float64{{1, 2, 3, 4}})
	require.NoError(t, err)

	// 平均 2.5 を予測: ((1.5)² + (0.5)² + (0.5)² + (1.5)²) / 4
	mse, err := NewLinearEvaluator().Evaluate(f, nil, "y")
	require.NoError(t, err)
	assert.InDelta(t, 1.25, mse, 1e-12)

	// 2 分割: 各 fold は反対側の平均 (3.5, 1.5) を予測する
	cv, err := NewLinearEvaluator(WithFolds(2)).Evaluate(f, []string{}, "y")
	require.NoError(t, err)
	assert.InDelta(t, 4.25, cv, 1e-12)
}

func TestLinearEvaluatorCrossValidation(t *testing.T) {
	f := exactFrame(t)

	mse, err := NewLinearEvaluator(WithFolds(2)).Evaluate(f, []string{"a", "b"}, "y")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, mse, 1e-8)

	_, err = NewLinearEvaluator(WithFolds(9)).Evaluate(f, []string{"a"}, "y")
	var verr *errors.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestLinearEvaluatorLeaveOneOutR2(t *testing.T) {
	f := exactFrame(t)

	// 1 行の fold は単独では R² が定義できないが、全予測をまとめて採点する
	r2, err := NewLinearEvaluator(WithMetric(R2), WithFolds(8)).Evaluate(f, []string{"a", "b"}, "y")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r2, 1e-8)

	partial, err := NewLinearEvaluator(WithMetric(R2), WithFolds(8)).Evaluate(f, []string{"a"}, "y")
	require.NoError(t, err)
	assert.Less(t, partial, r2)
}

func TestLinearEvaluatorConstantTargetFold(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6}
	y := []float64{5, 5, 1, 3, 2, 8}
	f, err := dataset.FromColumns([]string{"a", "y"}, [][]float64{a, y})
	require.NoError(t, err)

	// 先頭の fold は目的変数が定数
	_, err = NewLinearEvaluator(WithMetric(R2), WithFolds(3)).Evaluate(f, []string{"a"}, "y")
	assert.NoError(t, err)
}

func TestSelectorR2LeaveOneOut(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6}
	b := []float64{3, 1, 4, 1, 5, 9}
	y := make([]float64, len(a))
	for i := range a {
		y[i] = 2*a[i] - b[i] + 1
	}
	f, err := dataset.FromColumns([]string{"a", "b", "y"}, [][]float64{a, b, y})
	require.NoError(t, err)

	cfg, err := selection.ParseConfigYAML([]byte("target: y\nmetric: r2\nfolds: 6\n"))
	require.NoError(t, err)
	metric, err := ParseMetric(cfg.Metric)
	require.NoError(t, err)

	ev := NewLinearEvaluator(WithMetric(metric), WithFolds(cfg.Folds), WithLogger(log.Nop()))
	res, err := selection.NewSelector[*dataset.Frame](ev,
		append(cfg.Options(metric.Direction(), nil), selection.WithLogger(log.Nop()))...,
	).Select(f, cfg.Target, f.Names())
	require.NoError(t, err)

	assert.Equal(t, selection.Maximize, res.Direction)
	assert.Equal(t, []string{"a", "b"}, res.Features)
	assert.InDelta(t, 1.0, res.Fitness, 1e-8)
}

func TestLinearEvaluatorErrors(t *testing.T) {
	f := exactFrame(t)
	ev := NewLinearEvaluator()

	t.Run("nil frame", func(t *testing.T) {
		_, err := ev.Evaluate(nil, []string{"a"}, "y")
		assert.True(t, errors.Is(err, errors.ErrEmptyData))
	})

	t.Run("unknown target", func(t *testing.T) {
		_, err := ev.Evaluate(f, []string{"a"}, "missing")
		var verr *errors.ValueError
		assert.True(t, errors.As(err, &verr))
	})

	t.Run("unknown feature", func(t *testing.T) {
		_, err := ev.Evaluate(f, []string{"a", "missing"}, "y")
		var verr *errors.ValueError
		assert.True(t, errors.As(err, &verr))
	})

	t.Run("collinear features", func(t *testing.T) {
		_, err := ev.Evaluate(f, []string{"a", "a"}, "y")
		assert.True(t, errors.Is(err, errors.ErrSingularMatrix))
	})
}

func TestLinearEvaluatorLogsEvaluations(t *testing.T) {
	logger, _ := log.NewTestLogger(log.LevelDebug)
	ev := NewLinearEvaluator(WithMetric(MAE), WithLogger(logger))

	_, err := ev.Evaluate(exactFrame(t), []string{"a"}, "y")
	require.NoError(t, err)

	entries := logger.EntriesWithMessage("Subset scored")
	require.Len(t, entries, 1)
	assert.Equal(t, "mae", entries[0][log.MetricKey])
	assert.Equal(t, float64(1), entries[0][log.FeaturesKey])
	assert.Equal(t, "evaluate", entries[0][log.ComponentKey])
}

func TestSelectorWithLinearEvaluator(t *testing.T) {
	f := noisyFrame(t, 60)
	ev := NewLinearEvaluator(WithFolds(5))

	sel := selection.NewSelector[*dataset.Frame](ev,
		selection.WithDirection(ev.Direction()),
		selection.WithLogger(log.Nop()),
	)
	res, err := sel.Select(f, "y", f.Names())
	require.NoError(t, err)

	assert.Equal(t, []string{"n1", "x", "n2", "n3", "n4"}, res.Initial)
	assert.Contains(t, res.Features, "x")
	assert.Less(t, res.Fitness, 3.0)
	for _, s := range res.Steps {
		assert.NotEqual(t, "x", s.Dropped)
		assert.Greater(t, s.Delta, 0.0)
	}
}

func TestSelectorPropagatesEvaluatorFailure(t *testing.T) {
	f := exactFrame(t)

	_, _, err := selection.MinimalSubset[*dataset.Frame](f, "y", NewLinearEvaluator(), []string{"a", "ghost"},
		selection.WithLogger(log.Nop()),
	)
	var verr *errors.ValueError
	assert.True(t, errors.As(err, &verr))
}

// shapeBug は gonum のパニックを模した回帰モデル
type shapeBug struct{}

func (shapeBug) Fit(_, _ mat.Matrix) error { return nil }

func (shapeBug) Predict(_ mat.Matrix) (mat.Matrix, error) {
	panic(mat.ErrShape)
}

func TestLinearEvaluatorRecoversModelPanic(t *testing.T) {
	ev := NewLinearEvaluator(WithRegressor(func() model.Regressor { return shapeBug{} }))

	_, err := ev.Evaluate(exactFrame(t), []string{"a"}, "y")
	require.Error(t, err)

	var panicErr *errors.PanicError
	require.True(t, errors.As(err, &panicErr))
	assert.Equal(t, "LinearEvaluator.Evaluate", panicErr.Operation)
	assert.True(t, errors.Is(err, mat.ErrShape))
}
