// SPDX-License-Identifier: MIT
// Package eval: row-major input matrix view.
package eval

import (
	"errors"

	"github.com/katalvlaran/dynexpr/expr"
)

// ErrRaggedRows indicates FromRows received rows of unequal length.
var ErrRaggedRows = errors.New("eval: rows have unequal length")

// Matrix is a row-major contiguous view of shape (Rows, Cols) over a flat
// slice: element (r, c) lives at Data[r*Cols + c]. It is a view, not a
// container — Data is adopted, never copied, and the evaluation core only
// ever reads it.
//
// The layout is the module-wide input contract: feature columns are
// accessed as strided views (offset=feature, stride=Cols) directly off
// Data, so kernels never materialise column copies.
type Matrix[T expr.Float] struct {
	Data []T
	Rows int
	Cols int
}

// NewMatrix allocates a zeroed rows×cols matrix.
// Complexity: O(rows*cols).
func NewMatrix[T expr.Float](rows, cols int) Matrix[T] {
	return Matrix[T]{Data: make([]T, rows*cols), Rows: rows, Cols: cols}
}

// FromRows packs a slice of equal-length rows into a fresh Matrix.
// Returns ErrRaggedRows when lengths differ. An empty input yields the
// 0×0 matrix.
// Complexity: O(rows*cols).
func FromRows[T expr.Float](rows [][]T) (Matrix[T], error) {
	if len(rows) == 0 {
		return Matrix[T]{}, nil
	}

	cols := len(rows[0])
	data := make([]T, 0, len(rows)*cols)
	for _, r := range rows {
		if len(r) != cols {
			return Matrix[T]{}, ErrRaggedRows
		}
		data = append(data, r...)
	}

	return Matrix[T]{Data: data, Rows: len(rows), Cols: cols}, nil
}

// At returns element (r, c). No bounds checks beyond the slice's own:
// this is a hot-path accessor and indices come from validated plans.
func (m Matrix[T]) At(r, c int) T {
	return m.Data[r*m.Cols+c]
}

// checkShape panics unless Data is exactly Rows*Cols long. Drivers call it
// once per evaluation; a short or oversized backing slice is a precondition
// violation, not a runtime error.
func (m Matrix[T]) checkShape() {
	if len(m.Data) != m.Rows*m.Cols {
		panic("eval: matrix data length does not match Rows*Cols (input must be row-major contiguous)")
	}
}
