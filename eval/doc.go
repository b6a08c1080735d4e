// Package eval compiles postfix tapes into slot-scheduled instruction
// plans and evaluates them — values, forward-mode directional derivatives,
// and full Jacobians — column-at-a-time over row batches with reusable
// scratch memory.
//
// 🚀 How it works
//
//	tape ──CompilePlan──▶ EvalPlan ──driver──▶ output column(s)
//
//	The compiler runs one left-to-right pass with a stack of symbolic
//	Sources, allocating one scratch slot per operator node.  A driver then
//	walks the instruction stream: for each instruction it splits scratch
//	around the destination slot (so sibling reads and the destination
//	write can never alias), resolves each argument Source to a concrete
//	column view, and invokes the operator's column kernel.  The plan root
//	finally selects the output: copy a slot, broadcast a constant, or
//	gather a feature column.
//
// ✨ Key features:
//   - three coupled kernels (value, tangent, Jacobian) sharing one source
//     abstraction, guaranteed to agree numerically
//   - reusable contexts caching the compiled plan on the tape signature
//     (nodes length, constant count, feature count); scratch grows
//     monotonically and the hot path is allocation-free after warm-up
//   - non-finite policy with optional early exit: outputs are NaN-filled
//     so partial data can never leak to the caller
//   - Jacobians w.r.t. either variables or embedded constants, stored
//     direction-major so per-direction slabs are contiguous
//   - float64 convenience entry points over gonum's mat.Dense
//
// ⚙️ Usage:
//
//	set := ops.Builtin[float64]()
//	add := set.MustID("add", 2)
//	e := expr.New([]expr.Node{expr.Var(0), expr.Var(1), expr.OpNode(2, add.ID)},
//	    nil, expr.Metadata{})
//	x, _ := eval.FromRows([][]float64{{1, 2}, {3, 4}})
//	opts := eval.DefaultOptions()
//	out, complete, err := eval.EvalTreeArray(e, x, set, &opts)
//
// Concurrency: a context is exclusively owned by its caller for the
// duration of a call. Plans and operator sets are immutable and safely
// shared; run independent evaluations on distinct contexts.
//
// Input layout contract: the matrix is row-major contiguous with shape
// (nRows, nFeatures). Shape violations are programmer errors and panic.
package eval
