package selection

import (
	"github.com/YuminosukeSato/ffselect/pkg/errors"
)

// FastSubset is reserved for a cheaper, non-exhaustive variant of
// MinimalSubset. It always fails with an error matching errors.ErrNotImplemented.
func FastSubset[D any](data D, target string, evaluator Evaluator[D], features []string, opts ...Option) (float64, []string, error) {
	return 0, nil, errors.Wrap(errors.ErrNotImplemented, "selection.FastSubset")
}
