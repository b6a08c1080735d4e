// Package ops defines the typed operator set consumed by the evaluation
// core: stable numeric identifiers mapped to pure scalar kernels with
// known partial derivatives.
//
// 🚀 What is an operator set?
//
//	A closed registry keyed by (arity, id). Each entry carries a pure
//	value function f(args) and pure partials ∂f/∂argⱼ(args), plus a
//	display name, an optional infix symbol, and an optional algebraic
//	role tag (Add/Sub/Mul/Div/Neg) that the builder package uses for
//	convenience constructors.
//
// ✨ Key features:
//   - Builtin[T](): batteries-included set with 30 unary, 8 binary and
//     2 ternary operators over float32 or float64
//   - dense per-arity ids assigned in registration order — stable within
//     a program run, cheap to dispatch on
//   - ByName lookup with sentinel errors for front-ends resolving textual
//     operator names (outside the evaluation hot path)
//   - extensible: Register appends new operators without touching the core
//
// Numerical semantics follow IEEE-754 through Go's math package; operators
// may produce non-finite values, which the eval package's policy layer
// observes but never corrects.
//
// Partial-derivative conventions at non-smooth points: min/max return ½ at
// ties, sign' is 0 everywhere, abs' is 0 at the origin, and clamp counts
// its interval boundaries as inside.
package ops
