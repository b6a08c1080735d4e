// SPDX-License-Identifier: MIT
// Package eval: tangent (forward-mode directional derivative) driver.
package eval

import (
	"github.com/katalvlaran/dynexpr/expr"
	"github.com/katalvlaran/dynexpr/ops"
)

// EvalDiffTreeArray evaluates the expression and its directional
// derivative with respect to feature column direction, over every row of
// x. Returns the value column, the tangent column, the completion flag,
// and a compile error for malformed tapes.
//
// The tangent seeds are the Kronecker delta: d(Var f) is 1 iff
// f == direction, d(Const) is 0. Per row the kernels propagate
// d = Σⱼ ∂f/∂argⱼ(args) · d(argⱼ).
//
// Preconditions (panic): direction < x.Cols, ctx.NRows == x.Rows, x
// row-major contiguous.
func EvalDiffTreeArray[T expr.Float](
	e *expr.Expr[T],
	x Matrix[T],
	direction int,
	ctx *DiffContext[T],
	set *ops.Set[T],
	opts *EvalOptions,
) ([]T, []T, bool, error) {
	// 1) Preconditions.
	x.checkShape()
	if direction < 0 || direction >= x.Cols {
		panic("eval: differentiation direction out of feature range")
	}
	if ctx.NRows != x.Rows {
		panic("eval: context row count does not match input")
	}
	nRows := x.Rows

	// 2) Plan (cached on the tape signature) and scratch.
	plan, err := ctx.lookup(e.Nodes, x.Cols, len(e.Consts))
	if err != nil {
		return nil, nil, false, err
	}
	ctx.EnsureScratch(plan.NSlots)

	out := make([]T, nRows)
	dOut := make([]T, nRows)
	complete := true

	// 3) Instruction loop over parallel value/derivative scratch.
	for i := range plan.Instrs {
		instr := &plan.Instrs[i]
		dst := int(instr.Dst)
		arity := int(instr.Arity)

		valBefore := ctx.ValScratch[:dst]
		valRest := ctx.ValScratch[dst:]
		dstVal := valRest[0]
		valAfter := valRest[1:]

		derBefore := ctx.DerScratch[:dst]
		derRest := ctx.DerScratch[dst:]
		dstDer := derRest[0]
		derAfter := derRest[1:]

		var args, dargs [expr.MaxArity]SrcRef[T]
		for j := 0; j < arity; j++ {
			args[j] = resolveValSrc(instr.Args[j], x.Data, x.Cols, e.Consts, dst, valBefore, valAfter)
			dargs[j] = resolveDerSrc[T](instr.Args[j], direction, dst, derBefore, derAfter)
		}

		op := set.Op(ops.OpID{Arity: instr.Arity, ID: instr.Op})
		ok := diffKernel(op, arity, dstVal, dstDer, &args, &dargs, opts)
		complete = complete && ok
		if opts.EarlyExit && !ok {
			fillNaN(out)
			fillNaN(dOut)

			return out, dOut, false, nil
		}
	}

	// 4) Materialise value and tangent from the root.
	switch plan.Root.Kind {
	case expr.SrcVar:
		f := int(plan.Root.Index)
		for row := 0; row < nRows; row++ {
			out[row] = x.Data[row*x.Cols+f]
		}
		if f == direction {
			for row := range dOut {
				dOut[row] = 1
			}
		}
	case expr.SrcConst:
		v := e.Consts[plan.Root.Index]
		if opts.CheckFinite && !ops.IsFinite(v) {
			complete = false
			if opts.EarlyExit {
				fillNaN(out)
				fillNaN(dOut)

				return out, dOut, false, nil
			}
		}
		for row := range out {
			out[row] = v
		}
		// Tangent of a constant is identically zero; dOut is fresh.
	default:
		copy(out, ctx.ValScratch[plan.Root.Index])
		copy(dOut, ctx.DerScratch[plan.Root.Index])
	}

	return out, dOut, complete, nil
}
