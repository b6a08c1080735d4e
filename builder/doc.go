// Package builder assembles postfix expression tapes algebraically:
// lift scalars and feature references into single-node expressions, then
// combine them with operator applications.
//
// 🚀 How composition works
//
//	Postfix concatenation is tree composition: Apply(set, op, a, b)
//	concatenates a's tape and b's tape, re-indexes b's constant
//	references by a's pool size, merges the pools, and appends one
//	operator node.  No stack simulation, no rebalancing.
//
// ⚙️ Usage:
//
//	set := ops.Builtin[float64]()
//	x0 := builder.Variable[float64](0)
//	cosX0, _ := builder.Apply(set, set.MustID("cos", 1), x0)
//	e, _ := builder.Mul(set, cosX0, builder.Lit(2.0))
//	// e is the tape for cos(x0) * 2.0
//
// Role-tagged shortcuts (Add, Sub, Mul, Div, Neg and their *Lit scalar
// variants) resolve through the operator set's algebraic-role tags, so
// they work with any registry that claims the roles — not just the
// builtin one.
//
// All constructors return fresh expressions; inputs are never mutated.
// Errors are sentinels: branch with errors.Is.
package builder
