package errors

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// 型付きエラーはすべて "ffselect: <op>: <説明>" の形でメッセージを作り、
// zerolog へは kind フィールド付きのオブジェクトとして書き出される。

// NotFittedError は学習前のモデルに Predict/Transform を呼んだときのエラー。
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("ffselect: %s.%s: model is not fitted, call Fit first", e.ModelName, e.Method)
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (e *NotFittedError) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("kind", "not_fitted").Str("model", e.ModelName).Str("method", e.Method)
}

// NewNotFittedError はスタック付きの NotFittedError を返す。
func NewNotFittedError(modelName, method string) error {
	return errors.WithStack(&NotFittedError{ModelName: modelName, Method: method})
}

// DimensionError は行数・列数の不一致。Axis は 0 が行、1 が列。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int
}

func (e *DimensionError) axisName() string {
	if e.Axis == 0 {
		return "rows"
	}
	return "columns"
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("ffselect: %s: expected %d %s, got %d", e.Op, e.Expected, e.axisName(), e.Got)
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (e *DimensionError) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("kind", "dimension").
		Str("op", e.Op).
		Str("axis", e.axisName()).
		Int("expected", e.Expected).
		Int("got", e.Got)
}

// NewDimensionError はスタック付きの DimensionError を返す。
func NewDimensionError(op string, expected, got, axis int) error {
	return errors.WithStack(&DimensionError{Op: op, Expected: expected, Got: got, Axis: axis})
}

// ValidationError はオプションや設定値が受け付けられないときのエラー。
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("ffselect: invalid %s: %s (got %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (e *ValidationError) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("kind", "validation").
		Str("param", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value)
}

// NewValidationError はスタック付きの ValidationError を返す。
func NewValidationError(param, reason string, value interface{}) error {
	return errors.WithStack(&ValidationError{ParamName: param, Reason: reason, Value: value})
}

// ValueError は入力データそのものの問題（未知の列名、分散ゼロの目的変数など）。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("ffselect: %s: %s", e.Op, e.Message)
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (e *ValueError) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("kind", "value").Str("op", e.Op).Str("message", e.Message)
}

// NewValueError はスタック付きの ValueError を返す。
func NewValueError(op, message string) error {
	return errors.WithStack(&ValueError{Op: op, Message: message})
}

// ModelError は学習・予測の失敗に文脈を付けて原因をくるむ。
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("ffselect: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("ffselect: %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *ModelError) Unwrap() error { return e.Err }

// NewModelError はスタック付きの ModelError を返す。
func NewModelError(op, kind string, err error) error {
	return errors.WithStack(&ModelError{Op: op, Kind: kind, Err: err})
}

// NumericalInstabilityError は NaN/Inf を検出したときのエラー。
// 選択ループでは評価値が有限でない場合の警告として使う。Iteration はラウンド番号。
type NumericalInstabilityError struct {
	Operation string
	Values    []float64
	Iteration int
}

// 表示する値の上限
const maxShownValues = 5

func (e *NumericalInstabilityError) Error() string {
	shown := e.Values
	more := ""
	if len(shown) > maxShownValues {
		shown, more = shown[:maxShownValues], ", ..."
	}
	parts := make([]string, len(shown))
	for i, v := range shown {
		parts[i] = fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("ffselect: %s: non-finite values at iteration %d: [%s%s]",
		e.Operation, e.Iteration, strings.Join(parts, ", "), more)
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (e *NumericalInstabilityError) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("kind", "numerical_instability").
		Str("op", e.Operation).
		Int("iteration", e.Iteration).
		Int("count", len(e.Values))
}

// NewNumericalInstabilityError はスタック付きの NumericalInstabilityError を返す。
func NewNumericalInstabilityError(operation string, values []float64, iteration int) error {
	return errors.WithStack(&NumericalInstabilityError{Operation: operation, Values: values, Iteration: iteration})
}

// ConvergenceWarning は反復解法が上限までに収束しなかったことを表す警告。
type ConvergenceWarning struct {
	Algorithm  string
	Iterations int
}

func (w *ConvergenceWarning) Error() string {
	return fmt.Sprintf("ffselect: %s did not converge within %d iterations", w.Algorithm, w.Iterations)
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (w *ConvergenceWarning) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("kind", "convergence").Str("algorithm", w.Algorithm).Int("iterations", w.Iterations)
}

// NewConvergenceWarning は ConvergenceWarning を返す。警告なのでスタックは付けない。
func NewConvergenceWarning(algorithm string, iterations int) error {
	return &ConvergenceWarning{Algorithm: algorithm, Iterations: iterations}
}
