// Package dynexpr (root) is your toolbox for compiling and evaluating
// dynamic arithmetic expressions in Go — values, forward-mode tangents,
// and full Jacobians over batches of rows.
//
// 🚀 What is dynexpr?
//
//	A small, allocation-conscious library that turns a flat postfix tape
//	into a slot-scheduled instruction plan and runs it column-at-a-time:
//
//	  • expr/    — the tape model: nodes, constant pools, validation,
//	               tree metrics & constant accessors
//	  • ops/     — the typed operator set: 40 builtins with exact
//	               partial derivatives, extensible by registration
//	  • eval/    — compiler, resolver, kernels, reusable contexts,
//	               non-finite policy, gonum interop
//	  • builder/ — algebraic composition of tapes
//
// ✨ Why choose dynexpr?
//
//   - Hot-path friendly — plans cached on the tape signature, scratch
//     grown monotonically, zero allocations after warm-up
//   - Derivatives that agree — one source abstraction feeds the value,
//     tangent and Jacobian kernels, so they can never drift apart
//   - Honest numerics — IEEE-754 all the way down; non-finite values are
//     observed and reported, never silently patched
//   - Generic scalars — the whole stack instantiates over float32 and
//     float64
//
// Quick example:
//
//	set := ops.Builtin[float64]()
//	x0 := builder.Variable[float64](0)
//	e, _ := builder.MulLit(set, x0, 2.0)           // 2·x0
//	x, _ := eval.FromRows([][]float64{{3}, {5}})
//	opts := eval.DefaultOptions()
//	out, complete, _ := eval.EvalTreeArray(e, x, set, &opts)
//	// out = [6, 10], complete = true
//
// Designed as the evaluation core of a symbolic-regression search loop,
// but self-contained: no I/O, no global state, no goroutines.
package dynexpr
