package linear

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/ffselect/core/model"
	"github.com/YuminosukeSato/ffselect/pkg/errors"
)

// PALoss は Passive-Aggressive 回帰の損失関数
type PALoss int

const (
	// EpsilonInsensitive は PA-I 更新（ステップ幅を C で打ち切る）
	EpsilonInsensitive PALoss = iota
	// SquaredEpsilonInsensitive は PA-II 更新（ステップ幅を 1/(2C) で緩める）
	SquaredEpsilonInsensitive
)

// PassiveAggressiveRegressor はオンライン学習の線形回帰モデル。
// ε 以内の誤差は無視し、それを超えたサンプルでだけ重みを更新する。
// 外れ値に強く、正規方程式が特異になる部分集合でも学習できる。
type PassiveAggressiveRegressor struct {
	model.BaseEstimator

	C             float64
	Epsilon       float64
	MaxIter       int
	Tol           float64 // エポック平均損失の改善がこれ未満なら停止（0 以下で無効）
	NIterNoChange int
	Loss          PALoss
	FitIntercept  bool
	Shuffle       bool
	Seed          uint64

	Weights   *mat.VecDense
	Intercept float64
	NFeatures int
	NIter     int // 実行したエポック数
}

var _ model.Regressor = (*PassiveAggressiveRegressor)(nil)

// PAOption は PassiveAggressiveRegressor の設定
type PAOption func(*PassiveAggressiveRegressor)

// WithPAC は積極性パラメータ C を設定する
func WithPAC(c float64) PAOption {
	return func(pa *PassiveAggressiveRegressor) { pa.C = c }
}

// WithPAEpsilon は不感帯の幅を設定する
func WithPAEpsilon(eps float64) PAOption {
	return func(pa *PassiveAggressiveRegressor) { pa.Epsilon = eps }
}

// WithPAMaxIter は最大エポック数を設定する
func WithPAMaxIter(n int) PAOption {
	return func(pa *PassiveAggressiveRegressor) { pa.MaxIter = n }
}

// WithPATol は収束判定の許容誤差を設定する
func WithPATol(tol float64) PAOption {
	return func(pa *PassiveAggressiveRegressor) { pa.Tol = tol }
}

// WithPALoss は損失関数を設定する
func WithPALoss(loss PALoss) PAOption {
	return func(pa *PassiveAggressiveRegressor) { pa.Loss = loss }
}

// WithPAFitIntercept は切片を学習するかを設定する
func WithPAFitIntercept(fit bool) PAOption {
	return func(pa *PassiveAggressiveRegressor) { pa.FitIntercept = fit }
}

// WithPAShuffle はエポックごとにサンプル順をシャッフルするかと乱数シードを設定する
func WithPAShuffle(shuffle bool, seed uint64) PAOption {
	return func(pa *PassiveAggressiveRegressor) {
		pa.Shuffle = shuffle
		pa.Seed = seed
	}
}

// NewPassiveAggressiveRegressor は scikit-learn と同じ既定値でモデルを作成する
func NewPassiveAggressiveRegressor(opts ...PAOption) *PassiveAggressiveRegressor {
	pa := &PassiveAggressiveRegressor{
		C:             1.0,
		Epsilon:       0.1,
		MaxIter:       1000,
		Tol:           1e-3,
		NIterNoChange: 5,
		Loss:          EpsilonInsensitive,
		FitIntercept:  true,
		Shuffle:       true,
	}
	for _, opt := range opts {
		opt(pa)
	}
	return pa
}

// Fit はデータを最大 MaxIter エポック走査して重みを学習する。
// 収束しなかった場合は ConvergenceWarning を警告として出す。
func (pa *PassiveAggressiveRegressor) Fit(X, y mat.Matrix) error {
	r, c := X.Dims()
	ry, cy := y.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("PassiveAggressiveRegressor.Fit", "empty data", errors.ErrEmptyData)
	}
	if ry != r {
		return errors.NewDimensionError("PassiveAggressiveRegressor.Fit", r, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("PassiveAggressiveRegressor.Fit", "y must be a column vector")
	}
	if pa.C <= 0 {
		return errors.NewValidationError("C", "must be positive", pa.C)
	}
	if pa.Epsilon < 0 {
		return errors.NewValidationError("epsilon", "must not be negative", pa.Epsilon)
	}
	if pa.MaxIter < 1 {
		return errors.NewValidationError("max_iter", "must be at least 1", pa.MaxIter)
	}

	pa.Reset()
	pa.NFeatures = c
	pa.Intercept = 0
	pa.NIter = 0
	w := make([]float64, c)

	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = mat.Row(nil, i, X)
	}
	order := make([]int, r)
	for i := range order {
		order[i] = i
	}
	rng := rand.New(rand.NewPCG(pa.Seed, pa.Seed^0x9e3779b97f4a7c15))

	best := math.Inf(1)
	noChange := 0
	converged := false
	for epoch := 0; epoch < pa.MaxIter; epoch++ {
		if pa.Shuffle {
			rng.Shuffle(r, func(i, j int) { order[i], order[j] = order[j], order[i] })
		}

		var total float64
		for _, i := range order {
			total += pa.step(w, rows[i], y.At(i, 0))
		}
		pa.NIter++

		if pa.Tol <= 0 {
			continue
		}
		mean := total / float64(r)
		if mean > best-pa.Tol {
			noChange++
		} else {
			noChange = 0
		}
		best = math.Min(best, mean)
		if noChange >= pa.NIterNoChange {
			converged = true
			break
		}
	}

	if err := errors.CheckNumericalStability("PassiveAggressiveRegressor.Fit", append(w, pa.Intercept), pa.NIter); err != nil {
		return err
	}
	if !converged && pa.Tol > 0 {
		errors.Warn(errors.NewConvergenceWarning("PassiveAggressiveRegressor", pa.NIter))
	}

	pa.Weights = mat.NewVecDense(c, w)
	pa.SetFitted()
	return nil
}

// step は 1 サンプルで重みを更新し、更新前の損失を返す
func (pa *PassiveAggressiveRegressor) step(w, x []float64, y float64) float64 {
	pred := pa.Intercept
	norm := 0.0
	for j, v := range x {
		pred += w[j] * v
		norm += v * v
	}
	if pa.FitIntercept {
		norm++
	}

	residual := y - pred
	loss := math.Abs(residual) - pa.Epsilon
	if loss <= 0 {
		return 0
	}

	var tau float64
	switch pa.Loss {
	case SquaredEpsilonInsensitive:
		tau = loss / (norm + 1/(2*pa.C))
	default:
		if norm == 0 {
			return loss
		}
		tau = math.Min(pa.C, loss/norm)
	}
	if residual < 0 {
		tau = -tau
	}

	for j, v := range x {
		w[j] += tau * v
	}
	if pa.FitIntercept {
		pa.Intercept += tau
	}

	if pa.Loss == SquaredEpsilonInsensitive {
		return loss * loss
	}
	return loss
}

// Predict は X * weights + intercept を返す
func (pa *PassiveAggressiveRegressor) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !pa.IsFitted() {
		return nil, errors.NewNotFittedError("PassiveAggressiveRegressor", "Predict")
	}
	r, c := X.Dims()
	if c != pa.NFeatures {
		return nil, errors.NewDimensionError("PassiveAggressiveRegressor.Predict", pa.NFeatures, c, 1)
	}

	pred := mat.NewVecDense(r, nil)
	pred.MulVec(X, pa.Weights)
	for i := 0; i < r; i++ {
		pred.SetVec(i, pred.AtVec(i)+pa.Intercept)
	}
	return pred, nil
}
