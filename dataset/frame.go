// Package dataset provides a named-column, in-memory frame backed by a gonum
// matrix. It is the data handle the reference evaluator understands; the
// selection core itself treats data as opaque.
package dataset

import (
	"fmt"

	"github.com/YuminosukeSato/ffselect/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Frame is an immutable table of float64 columns addressed by name.
type Frame struct {
	names []string
	index map[string]int
	data  *mat.Dense
}

// NewFrame wraps data, naming its columns in order. The matrix is not copied.
func NewFrame(names []string, data *mat.Dense) (*Frame, error) {
	if data == nil {
		return nil, errors.NewModelError("NewFrame", "empty data", errors.ErrEmptyData)
	}
	_, c := data.Dims()
	if len(names) != c {
		return nil, errors.NewDimensionError("NewFrame", c, len(names), 1)
	}

	index := make(map[string]int, len(names))
	for j, name := range names {
		if name == "" {
			return nil, errors.NewValidationError("names", "column name must not be empty", j)
		}
		if _, dup := index[name]; dup {
			return nil, errors.NewValidationError("names", "duplicate column name", name)
		}
		index[name] = j
	}

	return &Frame{
		names: append([]string(nil), names...),
		index: index,
		data:  data,
	}, nil
}

// FromColumns builds a Frame from equally long columns given in names order.
func FromColumns(names []string, columns [][]float64) (*Frame, error) {
	if len(names) != len(columns) {
		return nil, errors.NewDimensionError("FromColumns", len(names), len(columns), 1)
	}
	if len(columns) == 0 || len(columns[0]) == 0 {
		return nil, errors.NewModelError("FromColumns", "empty data", errors.ErrEmptyData)
	}

	rows := len(columns[0])
	data := mat.NewDense(rows, len(columns), nil)
	for j, col := range columns {
		if len(col) != rows {
			return nil, errors.NewDimensionError(fmt.Sprintf("FromColumns(%s)", names[j]), rows, len(col), 0)
		}
		data.SetCol(j, col)
	}
	return NewFrame(names, data)
}

// Names returns a copy of the column names in order.
func (f *Frame) Names() []string {
	return append([]string(nil), f.names...)
}

// Dims returns the number of rows and columns.
func (f *Frame) Dims() (rows, cols int) {
	return f.data.Dims()
}

// Has reports whether the frame holds a column called name.
func (f *Frame) Has(name string) bool {
	_, ok := f.index[name]
	return ok
}

func (f *Frame) lookup(op, name string) (int, error) {
	j, ok := f.index[name]
	if !ok {
		return 0, errors.NewValueError(op, fmt.Sprintf("unknown feature %q", name))
	}
	return j, nil
}

// Column returns a copy of the named column.
func (f *Frame) Column(name string) (*mat.VecDense, error) {
	j, err := f.lookup("Frame.Column", name)
	if err != nil {
		return nil, err
	}
	rows, _ := f.data.Dims()
	return mat.NewVecDense(rows, mat.Col(nil, j, f.data)), nil
}

// Matrix returns a rows×len(names) copy holding the named columns in the
// given order. gonum matrices cannot have zero columns, so an empty names
// list is an error; callers handle the empty subset themselves.
func (f *Frame) Matrix(names []string) (*mat.Dense, error) {
	if len(names) == 0 {
		return nil, errors.NewValueError("Frame.Matrix", "no features requested")
	}

	cols := make([]int, len(names))
	for k, name := range names {
		j, err := f.lookup("Frame.Matrix", name)
		if err != nil {
			return nil, err
		}
		cols[k] = j
	}

	rows, _ := f.data.Dims()
	out := mat.NewDense(rows, len(cols), nil)
	for k, j := range cols {
		out.SetCol(k, mat.Col(nil, j, f.data))
	}
	return out, nil
}
