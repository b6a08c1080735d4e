// SPDX-License-Identifier: MIT
// Package eval: value evaluation drivers.
package eval

import (
	"github.com/katalvlaran/dynexpr/expr"
	"github.com/katalvlaran/dynexpr/ops"
)

// EvalTreeArray evaluates the expression over every row of x with a fresh
// context — the one-shot convenience entry point. Returns the output
// column, the completion flag, and a compile error for malformed tapes.
//
// Preconditions (panic): x row-major contiguous.
// Complexity: O(len(nodes) · nRows) after an O(len(nodes)) compile.
func EvalTreeArray[T expr.Float](
	e *expr.Expr[T],
	x Matrix[T],
	set *ops.Set[T],
	opts *EvalOptions,
) ([]T, bool, error) {
	ctx := NewEvalContext[T](x.Rows)
	out := make([]T, x.Rows)
	complete, err := EvalTreeArrayInto(out, e, x, ctx, set, opts)
	if err != nil {
		return nil, false, err
	}

	return out, complete, nil
}

// EvalTreeArrayInto evaluates into a caller-provided output column,
// reusing ctx's cached plan and scratch. After warm-up the call performs
// no heap allocation.
//
// Preconditions (panic): len(out) == x.Rows, ctx.NRows == x.Rows, x
// row-major contiguous.
func EvalTreeArrayInto[T expr.Float](
	out []T,
	e *expr.Expr[T],
	x Matrix[T],
	ctx *EvalContext[T],
	set *ops.Set[T],
	opts *EvalOptions,
) (bool, error) {
	if len(out) != x.Rows {
		panic("eval: output length does not match row count")
	}
	if ctx.NRows != x.Rows {
		panic("eval: context row count does not match input")
	}

	plan, err := ctx.lookup(e.Nodes, x.Cols, len(e.Consts))
	if err != nil {
		return false, err
	}

	return EvalPlanArrayInto(out, plan, e, x, &ctx.Scratch, set, opts), nil
}

// EvalPlanArrayInto executes a precompiled plan against x, writing the
// result into out. scratch is grown as needed and retained by the caller.
// The returned flag reports whether every observed value stayed finite
// under the options' policy; on early exit out is NaN-filled.
//
// Preconditions (panic): len(out) == x.Rows, x row-major contiguous, plan
// compiled against the same nFeatures/nConsts as (x, e).
func EvalPlanArrayInto[T expr.Float](
	out []T,
	plan *EvalPlan,
	e *expr.Expr[T],
	x Matrix[T],
	scratch *[][]T,
	set *ops.Set[T],
	opts *EvalOptions,
) bool {
	// 1) Preconditions.
	x.checkShape()
	if len(out) != x.Rows {
		panic("eval: output length does not match row count")
	}
	nRows := x.Rows

	// 2) Scratch: one column per slot.
	ensureSlots(scratch, plan.NSlots, nRows)

	complete := true

	// 3) Instruction loop: split scratch around dst, resolve, invoke.
	for i := range plan.Instrs {
		instr := &plan.Instrs[i]
		dst := int(instr.Dst)
		arity := int(instr.Arity)

		before := (*scratch)[:dst]
		rest := (*scratch)[dst:]
		dstBuf := rest[0]
		after := rest[1:]

		var args [expr.MaxArity]SrcRef[T]
		for j := 0; j < arity; j++ {
			args[j] = resolveValSrc(instr.Args[j], x.Data, x.Cols, e.Consts, dst, before, after)
		}

		op := set.Op(ops.OpID{Arity: instr.Arity, ID: instr.Op})
		ok := evalKernel(op, arity, dstBuf, &args, opts)
		complete = complete && ok
		if opts.EarlyExit && !ok {
			fillNaN(out)

			return false
		}
	}

	// 4) Materialise the root.
	switch plan.Root.Kind {
	case expr.SrcVar:
		offset := int(plan.Root.Index)
		for row := 0; row < nRows; row++ {
			out[row] = x.Data[row*x.Cols+offset]
		}
	case expr.SrcConst:
		v := e.Consts[plan.Root.Index]
		if opts.CheckFinite && !ops.IsFinite(v) {
			complete = false
			if opts.EarlyExit {
				fillNaN(out)

				return false
			}
		}
		for row := range out {
			out[row] = v
		}
	default:
		copy(out, (*scratch)[plan.Root.Index])
	}

	return complete
}
