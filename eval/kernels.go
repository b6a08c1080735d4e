// SPDX-License-Identifier: MIT
// Package eval: column-at-a-time operator kernels.
//
// The three kernels are the inner loops of the drivers. They share the
// SrcRef row-read abstraction and the non-finite policy: under
// CheckFinite+EarlyExit they stop at the first non-finite value (leaving
// the tail of the destination column unspecified — the driver NaN-fills
// the caller-visible outputs); under CheckFinite alone they run to
// completion and report whether every value landed finite.
package eval

import (
	"github.com/katalvlaran/dynexpr/expr"
	"github.com/katalvlaran/dynexpr/ops"
)

// allFinite reports whether every element of vals is finite.
func allFinite[T expr.Float](vals []T) bool {
	for _, v := range vals {
		if !ops.IsFinite(v) {
			return false
		}
	}

	return true
}

// fillNaN overwrites dst with quiet NaNs.
func fillNaN[T expr.Float](dst []T) {
	nan := ops.NaN[T]()
	for i := range dst {
		dst[i] = nan
	}
}

// evalKernel fills out with the operator applied pointwise to its
// arguments. When every argument is a broadcast scalar the result is
// computed once and splatted — constant subexpressions cost O(n) copies,
// not O(n) evaluations.
func evalKernel[T expr.Float](
	op *ops.Op[T],
	arity int,
	out []T,
	args *[expr.MaxArity]SrcRef[T],
	opts *EvalOptions,
) bool {
	// Constant fast path: one evaluation, one fill.
	constOnly := true
	for j := 0; j < arity; j++ {
		if !args[j].IsScalar() {
			constOnly = false
			break
		}
	}
	if constOnly {
		var vals [expr.MaxArity]T
		for j := 0; j < arity; j++ {
			vals[j] = args[j].At(0)
		}
		v := op.Eval(&vals)
		for i := range out {
			out[i] = v
		}
		if !opts.CheckFinite {
			return true
		}

		return ops.IsFinite(v)
	}

	var vals [expr.MaxArity]T
	if opts.CheckFinite && opts.EarlyExit {
		for row := range out {
			for j := 0; j < arity; j++ {
				vals[j] = args[j].At(row)
			}
			v := op.Eval(&vals)
			out[row] = v
			if !ops.IsFinite(v) {
				return false
			}
		}

		return true
	}

	for row := range out {
		for j := 0; j < arity; j++ {
			vals[j] = args[j].At(row)
		}
		out[row] = op.Eval(&vals)
	}
	if !opts.CheckFinite {
		return true
	}

	return allFinite(out)
}

// diffKernel fills outVal with the operator's value and outDer with the
// tangent Σⱼ ∂f/∂argⱼ(args) · d(argⱼ) at each row.
func diffKernel[T expr.Float](
	op *ops.Op[T],
	arity int,
	outVal, outDer []T,
	args, dargs *[expr.MaxArity]SrcRef[T],
	opts *EvalOptions,
) bool {
	var vals, dvals [expr.MaxArity]T

	if opts.CheckFinite && opts.EarlyExit {
		for row := range outVal {
			for j := 0; j < arity; j++ {
				vals[j] = args[j].At(row)
				dvals[j] = dargs[j].At(row)
			}
			v := op.Eval(&vals)
			var d T
			for j := 0; j < arity; j++ {
				d += op.Partial(&vals, j) * dvals[j]
			}
			outVal[row] = v
			outDer[row] = d
			if !ops.IsFinite(v) {
				return false
			}
		}

		return true
	}

	for row := range outVal {
		for j := 0; j < arity; j++ {
			vals[j] = args[j].At(row)
			dvals[j] = dargs[j].At(row)
		}
		v := op.Eval(&vals)
		var d T
		for j := 0; j < arity; j++ {
			d += op.Partial(&vals, j) * dvals[j]
		}
		outVal[row] = v
		outDer[row] = d
	}
	if !opts.CheckFinite {
		return true
	}

	// Completion tracks the value column only; derivative columns may go
	// non-finite without flipping the flag.
	return allFinite(outVal)
}

// gradKernel fills outVal in a first pass, then for every direction fills
// the direction-major slab outGrad[dir*nRows+row] with
// Σⱼ ∂f/∂argⱼ(args) · argGrad[j](dir, row). On early exit the whole slab
// is NaN-filled before returning.
func gradKernel[T expr.Float](
	op *ops.Op[T],
	arity int,
	outVal, outGrad []T,
	args *[expr.MaxArity]SrcRef[T],
	argGrads *[expr.MaxArity]GradRef[T],
	nDir, nRows int,
	opts *EvalOptions,
) bool {
	var vals [expr.MaxArity]T

	// Pass 1: values, with the policy applied to them.
	if opts.CheckFinite && opts.EarlyExit {
		for row := range outVal {
			for j := 0; j < arity; j++ {
				vals[j] = args[j].At(row)
			}
			v := op.Eval(&vals)
			outVal[row] = v
			if !ops.IsFinite(v) {
				fillNaN(outGrad)

				return false
			}
		}
	} else {
		for row := range outVal {
			for j := 0; j < arity; j++ {
				vals[j] = args[j].At(row)
			}
			outVal[row] = op.Eval(&vals)
		}
	}

	// Pass 2: one contiguous slab per direction. Argument values are
	// re-read per row so the partials see the same operands as pass 1.
	for dir := 0; dir < nDir; dir++ {
		slab := outGrad[dir*nRows : (dir+1)*nRows]
		for row := range slab {
			for j := 0; j < arity; j++ {
				vals[j] = args[j].At(row)
			}
			var g T
			for j := 0; j < arity; j++ {
				g += op.Partial(&vals, j) * GradAt(argGrads[j], dir, row, nRows)
			}
			slab[row] = g
		}
	}

	if !opts.CheckFinite {
		return true
	}

	return allFinite(outVal)
}
