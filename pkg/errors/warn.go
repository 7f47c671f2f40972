package errors

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// 警告はエラーとして返さず、登録されたシンクへ流す。
// pkg/log は初期化時にデフォルトロガーへ流すシンクを登録する。
var (
	sinkMu sync.RWMutex
	sink   = stderrSink
)

func stderrSink(w error) {
	zerolog.New(os.Stderr).Warn().Timestamp().Err(w).Msg("warning")
}

// SetWarningSink は警告の出力先を差し替える。nil を渡すと標準エラー出力に戻る。
//
//	errors.SetWarningSink(func(w error) {}) // 警告を捨てる
func SetWarningSink(fn func(w error)) {
	if fn == nil {
		fn = stderrSink
	}
	sinkMu.Lock()
	defer sinkMu.Unlock()
	sink = fn
}

// Warn は w を現在のシンクへ渡す。nil は無視する。
func Warn(w error) {
	if w == nil {
		return
	}
	sinkMu.RLock()
	fn := sink
	sinkMu.RUnlock()
	fn(w)
}
