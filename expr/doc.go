// Package expr defines the linearised postfix representation of an
// arithmetic expression: the tape of nodes, its constant pool, and the
// compile-time Source descriptor shared with the evaluation planner.
//
// 🚀 What is a postfix tape?
//
//	A flat node sequence whose left-to-right stack simulation yields the
//	expression value.  `x0 * cos(x1) + 2.5` becomes
//
//	    [Var 0, Var 1, Op(1, cos), Op(2, mul), Const 0, Op(2, add)]
//
//	with the constant pool [2.5].  Tapes are the unit of evaluation: the
//	eval package lowers them into slot-scheduled instruction plans and
//	runs values, tangents and Jacobians over row batches.
//
// ✨ Key features:
//   - compact tagged Node variant (Var / Const / Op) with uint16 indices
//   - Expr[T] generic over float32/float64 scalar pools
//   - Validate: stack-simulation well-formedness with sentinel errors
//   - tree metrics (node counts, depth, subtree ranges) for callers that
//     mutate or sample tapes
//   - constant accessors for optimiser loops that tune the pool in place
//
// Tapes are immutable during evaluation; only builder-style composition or
// explicit constant updates mutate them between calls.
//
// See the eval package for compilation and execution, and the builder
// package for algebraic construction.
package expr
