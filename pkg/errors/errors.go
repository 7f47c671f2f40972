// Package errors は ffselect 全体で使う型付きエラー・警告・パニック回復を提供します。
//
// 実体は cockroachdb/errors で、New/Wrap/WithStack で作ったエラーは
// スタックトレースを保持し、pkg/log がそれを構造化ログへ書き出します。
// 評価器から返ったエラーはこのパッケージを通さずにそのまま呼び出し元へ返るため、
// errors.Is による同一性は常に保たれます。
package errors

import (
	"github.com/cockroachdb/errors"
)

// センチネルエラー。errors.Is で判定する。
var (
	// ErrNotImplemented は宣言だけされた操作（FastSubset など）が返す。
	ErrNotImplemented = errors.New("not implemented")

	// ErrEmptyData は行や列が一つもない入力に対して返す。
	ErrEmptyData = errors.New("empty data")

	// ErrSingularMatrix は正規方程式の X^T X が逆行列を持たないときに返す。
	ErrSingularMatrix = errors.New("singular matrix")
)

// Is は errors.Is の薄いラッパー。
func Is(err, target error) bool { return errors.Is(err, target) }

// As は errors.As の薄いラッパー。
func As(err error, target interface{}) bool { return errors.As(err, target) }

// New はスタック付きのエラーを作る。
func New(message string) error { return errors.New(message) }

// Newf はフォーマット付きの New。
func Newf(format string, args ...interface{}) error { return errors.Newf(format, args...) }

// Wrap は err に文脈を付け加える。err が nil なら nil を返す。
func Wrap(err error, message string) error { return errors.Wrap(err, message) }

// Wrapf はフォーマット付きの Wrap。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// WithStack は呼び出し位置のスタックを err に付与する。
func WithStack(err error) error { return errors.WithStack(err) }
