// SPDX-License-Identifier: MIT
// Package eval: gonum interop for float64 callers.
//
// mat.Dense stores row-major float64 data, which is exactly the input
// contract, so a Dense converts to a Matrix view without copying whenever
// its stride equals its column count.
package eval

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/dynexpr/expr"
	"github.com/katalvlaran/dynexpr/ops"
)

// FromDense views d as a row-major Matrix. When d's stride equals its
// width (the common case for a freshly built Dense) the backing slice is
// shared; a strided Dense (e.g. a Slice view) is compacted into a copy so
// the contiguity contract always holds.
func FromDense(d *mat.Dense) Matrix[float64] {
	raw := d.RawMatrix()
	if raw.Stride == raw.Cols {
		return Matrix[float64]{Data: raw.Data[:raw.Rows*raw.Cols], Rows: raw.Rows, Cols: raw.Cols}
	}

	// Compact the strided view row by row.
	data := make([]float64, raw.Rows*raw.Cols)
	for r := 0; r < raw.Rows; r++ {
		copy(data[r*raw.Cols:(r+1)*raw.Cols], raw.Data[r*raw.Stride:r*raw.Stride+raw.Cols])
	}

	return Matrix[float64]{Data: data, Rows: raw.Rows, Cols: raw.Cols}
}

// EvalTreeDense is EvalTreeArray over a gonum Dense input — the
// convenience entry point for float64 pipelines already speaking mat.
func EvalTreeDense(
	e *expr.Expr[float64],
	x *mat.Dense,
	set *ops.Set[float64],
	opts *EvalOptions,
) ([]float64, bool, error) {
	return EvalTreeArray(e, FromDense(x), set, opts)
}
