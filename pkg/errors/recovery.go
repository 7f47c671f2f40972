package errors

import (
	"fmt"
	"runtime/debug"
)

// PanicError は回復されたパニックを表すエラーです。
// gonum の mat パッケージは形状不一致などでパニックするため、評価器の境界で
// エラーに変換して呼び出し元へ返します。
type PanicError struct {
	PanicValue interface{} // panic() に渡された値
	StackTrace string      // パニック発生時のスタック
	Operation  string      // 回復した操作名
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("ffselect: panic in %s: %v", e.Operation, e.PanicValue)
}

// Unwrap はパニック値が error の場合にそれを返します。
func (e *PanicError) Unwrap() error {
	if err, ok := e.PanicValue.(error); ok {
		return err
	}
	return nil
}

// String はスタックトレースを含む詳細を返します。
func (e *PanicError) String() string {
	return fmt.Sprintf("%s\nStack trace:\n%s", e.Error(), e.StackTrace)
}

// NewPanicError は現在のスタックを記録した PanicError を作成します。
func NewPanicError(operation string, panicValue interface{}) *PanicError {
	return &PanicError{
		PanicValue: panicValue,
		StackTrace: string(debug.Stack()),
		Operation:  operation,
	}
}

// Recover は defer で使い、パニックを *err に変換します。
// *err が既に設定されている場合はパニック情報でラップします。
//
//	func (e *LinearEvaluator) Evaluate(...) (score float64, err error) {
//	    defer errors.Recover(&err, "LinearEvaluator.Evaluate")
//	    ...
//	}
func Recover(err *error, operation string) {
	r := recover()
	if r == nil {
		return
	}
	panicErr := NewPanicError(operation, r)
	if *err != nil {
		*err = Wrapf(*err, "%v", panicErr)
		return
	}
	*err = WithStack(panicErr)
}

// SafeExecute は fn を実行し、パニックをエラーに変換します。
func SafeExecute(operation string, fn func() error) (err error) {
	defer Recover(&err, operation)
	return fn()
}
