// SPDX-License-Identifier: MIT
// Package eval: Jacobian driver and the direction-major gradient matrix.
package eval

import (
	"github.com/katalvlaran/dynexpr/expr"
	"github.com/katalvlaran/dynexpr/ops"
)

// GradMatrix is a Jacobian stored direction-major: entry (dir, row) lives
// at Data[dir*NRows + row], so each direction's slab is contiguous —
// cache-friendly for the outer-direction loop and for copying slabs out.
type GradMatrix[T expr.Float] struct {
	Data  []T
	NDir  int
	NRows int
}

// Slab returns the contiguous row slab for one direction.
func (g GradMatrix[T]) Slab(dir int) []T {
	return g.Data[dir*g.NRows : (dir+1)*g.NRows]
}

// At returns the Jacobian entry for (dir, row).
func (g GradMatrix[T]) At(dir, row int) T {
	return g.Data[dir*g.NRows+row]
}

// nanGradReturn builds the NaN-filled early-exit result.
func nanGradReturn[T expr.Float](nRows, nDir int) ([]T, GradMatrix[T], bool) {
	out := make([]T, nRows)
	fillNaN(out)
	grad := GradMatrix[T]{Data: make([]T, nDir*nRows), NDir: nDir, NRows: nRows}
	fillNaN(grad.Data)

	return out, grad, false
}

// EvalGradTreeArray evaluates the expression and its full Jacobian over
// every row of x. With variable=true differentiation runs with respect to
// the feature columns (nDir = x.Cols); otherwise with respect to the
// embedded constants (nDir = len(e.Consts) — pass a constant-free tape
// and you get an empty matrix).
//
// Returns the value column, the direction-major GradMatrix, the
// completion flag, and a compile error for malformed tapes.
//
// Preconditions (panic): ctx.NRows == x.Rows, x row-major contiguous.
func EvalGradTreeArray[T expr.Float](
	e *expr.Expr[T],
	x Matrix[T],
	variable bool,
	ctx *GradContext[T],
	set *ops.Set[T],
	opts *EvalOptions,
) ([]T, GradMatrix[T], bool, error) {
	// 1) Preconditions and direction count.
	x.checkShape()
	if ctx.NRows != x.Rows {
		panic("eval: context row count does not match input")
	}
	nRows := x.Rows
	nDir := len(e.Consts)
	if variable {
		nDir = x.Cols
	}

	// 2) Plan and scratch.
	plan, err := ctx.lookup(e.Nodes, x.Cols, len(e.Consts))
	if err != nil {
		return nil, GradMatrix[T]{}, false, err
	}
	ctx.EnsureScratch(plan.NSlots, nDir)

	complete := true

	// 3) Instruction loop.
	for i := range plan.Instrs {
		instr := &plan.Instrs[i]
		dst := int(instr.Dst)
		arity := int(instr.Arity)

		valBefore := ctx.ValScratch[:dst]
		valRest := ctx.ValScratch[dst:]
		dstVal := valRest[0]
		valAfter := valRest[1:]

		gradBefore := ctx.GradScratch[:dst]
		gradRest := ctx.GradScratch[dst:]
		dstGrad := gradRest[0]
		gradAfter := gradRest[1:]

		var args [expr.MaxArity]SrcRef[T]
		var argGrads [expr.MaxArity]GradRef[T]
		for j := 0; j < arity; j++ {
			args[j] = resolveValSrc(instr.Args[j], x.Data, x.Cols, e.Consts, dst, valBefore, valAfter)
			argGrads[j] = resolveGradSrc[T](instr.Args[j], variable, dst, gradBefore, gradAfter)
		}

		// The kernel overwrites the slab, but start from a clean buffer
		// so an additive kernel added later cannot read stale data.
		clear(dstGrad)

		op := set.Op(ops.OpID{Arity: instr.Arity, ID: instr.Op})
		ok := gradKernel(op, arity, dstVal, dstGrad, &args, &argGrads, nDir, nRows, opts)
		complete = complete && ok
		if opts.EarlyExit && !ok {
			out, grad, _ := nanGradReturn[T](nRows, nDir)

			return out, grad, false, nil
		}
	}

	// 4) Materialise value and Jacobian from the root.
	out := make([]T, nRows)
	grad := GradMatrix[T]{Data: make([]T, nDir*nRows), NDir: nDir, NRows: nRows}

	switch plan.Root.Kind {
	case expr.SrcVar:
		f := int(plan.Root.Index)
		for row := 0; row < nRows; row++ {
			out[row] = x.Data[row*x.Cols+f]
		}
		if variable {
			// One-hot slab: ∂x_f/∂x_f ≡ 1. In constant mode a variable
			// root has zero gradient w.r.t. every constant.
			slab := grad.Slab(f)
			for row := range slab {
				slab[row] = 1
			}
		}
	case expr.SrcConst:
		c := int(plan.Root.Index)
		v := e.Consts[c]
		for row := range out {
			out[row] = v
		}
		if !variable {
			slab := grad.Slab(c)
			for row := range slab {
				slab[row] = 1
			}
		}
		if opts.CheckFinite && !ops.IsFinite(v) {
			complete = false
			if opts.EarlyExit {
				out, grad, _ := nanGradReturn[T](nRows, nDir)

				return out, grad, false, nil
			}
		}
	default:
		copy(out, ctx.ValScratch[plan.Root.Index])
		copy(grad.Data, ctx.GradScratch[plan.Root.Index])
	}

	return out, grad, complete, nil
}
