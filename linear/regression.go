// Package linear は特徴量部分集合の評価に使う線形回帰モデル（最小二乗法と
// Passive-Aggressive 回帰）を提供する
package linear

import (
	"github.com/YuminosukeSato/ffselect/core/model"
	"github.com/YuminosukeSato/ffselect/core/parallel"
	"github.com/YuminosukeSato/ffselect/metrics"
	"github.com/YuminosukeSato/ffselect/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// 並列処理の閾値（この値以下の行数では逐次処理を使用）
const parallelThreshold = 1000

// LinearRegression は線形回帰モデル
type LinearRegression struct {
	model.BaseEstimator
	Weights   *mat.VecDense // 重み（係数）
	Intercept float64       // 切片
	NFeatures int           // 特徴量の数
}

var _ model.Regressor = (*LinearRegression)(nil)

// NewLinearRegression は新しい線形回帰モデルを作成する
func NewLinearRegression() *LinearRegression {
	return &LinearRegression{}
}

// Fit はモデルを訓練データで学習させる
// 正規方程式 w = (X^T * X)^(-1) * X^T * y を使用
func (lr *LinearRegression) Fit(X, y mat.Matrix) error {
	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 || c == 0 {
		return errors.NewModelError("LinearRegression.Fit", "empty data", errors.ErrEmptyData)
	}
	if ry != r {
		return errors.NewDimensionError("LinearRegression.Fit", r, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("LinearRegression.Fit", "y must be a column vector")
	}

	lr.Reset()
	lr.NFeatures = c

	// 切片項のために X に 1 の列を追加: [1, X]
	XWithIntercept := mat.NewDense(r, c+1, nil)
	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			XWithIntercept.Set(i, 0, 1.0)
			for j := 0; j < c; j++ {
				XWithIntercept.Set(i, j+1, X.At(i, j))
			}
		}
	})

	var XTX mat.Dense
	XTX.Mul(XWithIntercept.T(), XWithIntercept)

	var XTXInv mat.Dense
	if err := XTXInv.Inverse(&XTX); err != nil {
		return errors.NewModelError("LinearRegression.Fit", "singular matrix", errors.ErrSingularMatrix)
	}

	yVec := mat.NewVecDense(r, mat.Col(nil, 0, y))

	var XTy mat.VecDense
	XTy.MulVec(XWithIntercept.T(), yVec)

	weights := mat.NewVecDense(c+1, nil)
	weights.MulVec(&XTXInv, &XTy)

	if err := errors.CheckNumericalStability("LinearRegression.Fit", weights.RawVector().Data, 0); err != nil {
		return err
	}

	// 切片と重みを分離
	lr.Intercept = weights.AtVec(0)
	lr.Weights = mat.NewVecDense(c, nil)
	for i := 0; i < c; i++ {
		lr.Weights.SetVec(i, weights.AtVec(i+1))
	}

	lr.SetFitted()
	return nil
}

// Predict は入力データに対する予測を行う
func (lr *LinearRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !lr.IsFitted() {
		return nil, errors.NewNotFittedError("LinearRegression", "Predict")
	}

	r, c := X.Dims()
	if c != lr.NFeatures {
		return nil, errors.NewDimensionError("LinearRegression.Predict", lr.NFeatures, c, 1)
	}

	// 予測: y = X * weights + intercept
	predictions := mat.NewVecDense(r, nil)
	predictions.MulVec(X, lr.Weights)
	for i := 0; i < r; i++ {
		predictions.SetVec(i, predictions.AtVec(i)+lr.Intercept)
	}

	return predictions, nil
}

// GetWeights は学習された重み（係数）を返す
func (lr *LinearRegression) GetWeights() []float64 {
	if lr.Weights == nil {
		return nil
	}
	weights := make([]float64, lr.Weights.Len())
	copy(weights, lr.Weights.RawVector().Data)
	return weights
}

// GetIntercept は学習された切片を返す
func (lr *LinearRegression) GetIntercept() float64 {
	if !lr.IsFitted() {
		return 0
	}
	return lr.Intercept
}

// Score はモデルの決定係数（R²）を計算する
func (lr *LinearRegression) Score(X, y mat.Matrix) (float64, error) {
	if !lr.IsFitted() {
		return 0, errors.NewNotFittedError("LinearRegression", "Score")
	}

	yPred, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}

	yTrue, err := metrics.ColumnVector(y)
	if err != nil {
		return 0, err
	}
	yPredVec, err := metrics.ColumnVector(yPred)
	if err != nil {
		return 0, err
	}
	return metrics.R2Score(yTrue, yPredVec)
}
