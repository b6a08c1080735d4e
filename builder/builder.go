// SPDX-License-Identifier: MIT
// Package builder: composition primitives.
package builder

import (
	"math"

	"github.com/katalvlaran/dynexpr/expr"
	"github.com/katalvlaran/dynexpr/ops"
)

// Lit lifts a scalar into a one-node expression: a single constant-pool
// entry referenced by a single Const cell.
func Lit[T expr.Float](v T) *expr.Expr[T] {
	return expr.New([]expr.Node{expr.Const(0)}, []T{v}, expr.Metadata{})
}

// Variable lifts feature column f into a one-node expression.
func Variable[T expr.Float](f uint16) *expr.Expr[T] {
	return expr.New[T]([]expr.Node{expr.Var(f)}, nil, expr.Metadata{})
}

// Apply builds the application of operator id to the given argument
// expressions, in order. The arguments' tapes are concatenated
// left-to-right with each tape's constant references shifted by the
// cumulative pool offset, the pools are merged, and one operator node is
// appended. Metadata variable names are adopted from the first argument
// that carries any.
//
// Stage 1 (Validate): id arity vs MaxArity and argument count; nil args.
// Stage 2 (Merge): concatenate tapes, re-indexing constants.
// Stage 3 (Finalize): append the operator node.
// Complexity: O(Σ len(args[i].Nodes) + Σ len(args[i].Consts)).
func Apply[T expr.Float](set *ops.Set[T], id ops.OpID, args ...*expr.Expr[T]) (*expr.Expr[T], error) {
	// Validate the arity against the instruction argument cap.
	if id.Arity < 1 || id.Arity > expr.MaxArity {
		return nil, ErrArityExceeded
	}
	if len(args) != int(id.Arity) {
		return nil, ErrArityMismatch
	}
	// The id must belong to the set; Op panics on foreign ids, so probe
	// the registered count instead and keep this a data error.
	if int(id.ID) >= set.Len(id.Arity) {
		return nil, ErrUnknownOp
	}

	totalNodes := 1
	totalConsts := 0
	for _, a := range args {
		if a == nil {
			return nil, ErrNilExpr
		}
		totalNodes += len(a.Nodes)
		totalConsts += len(a.Consts)
	}
	if totalConsts > math.MaxUint16+1 {
		return nil, ErrTooManyConstants
	}

	outNodes := make([]expr.Node, 0, totalNodes)
	outConsts := make([]T, 0, totalConsts)
	var outMeta expr.Metadata

	for _, a := range args {
		// First argument with names wins; later names are ignored.
		if outMeta.VariableNames == nil && len(a.Meta.VariableNames) > 0 {
			outMeta.VariableNames = make([]string, len(a.Meta.VariableNames))
			copy(outMeta.VariableNames, a.Meta.VariableNames)
		}

		// Shift this tape's constant references past the pool built so far.
		offset := uint16(len(outConsts))
		for _, n := range a.Nodes {
			if n.Kind == expr.KindConst {
				n.Index += offset
			}
			outNodes = append(outNodes, n)
		}
		outConsts = append(outConsts, a.Consts...)
	}

	outNodes = append(outNodes, expr.OpNode(id.Arity, id.ID))

	return expr.New(outNodes, outConsts, outMeta), nil
}

// roleApply resolves role through the set and applies it.
func roleApply[T expr.Float](set *ops.Set[T], role ops.Role, args ...*expr.Expr[T]) (*expr.Expr[T], error) {
	id, ok := set.RoleOp(role)
	if !ok {
		return nil, ErrRoleMissing
	}

	return Apply(set, id, args...)
}

// Add applies the set's canonical addition to a and b.
func Add[T expr.Float](set *ops.Set[T], a, b *expr.Expr[T]) (*expr.Expr[T], error) {
	return roleApply(set, ops.RoleAdd, a, b)
}

// Sub applies the set's canonical subtraction to a and b.
func Sub[T expr.Float](set *ops.Set[T], a, b *expr.Expr[T]) (*expr.Expr[T], error) {
	return roleApply(set, ops.RoleSub, a, b)
}

// Mul applies the set's canonical multiplication to a and b.
func Mul[T expr.Float](set *ops.Set[T], a, b *expr.Expr[T]) (*expr.Expr[T], error) {
	return roleApply(set, ops.RoleMul, a, b)
}

// Div applies the set's canonical division to a and b.
func Div[T expr.Float](set *ops.Set[T], a, b *expr.Expr[T]) (*expr.Expr[T], error) {
	return roleApply(set, ops.RoleDiv, a, b)
}

// Neg applies the set's canonical negation to a.
func Neg[T expr.Float](set *ops.Set[T], a *expr.Expr[T]) (*expr.Expr[T], error) {
	return roleApply(set, ops.RoleNeg, a)
}

// AddLit is Add with a scalar right-hand side.
func AddLit[T expr.Float](set *ops.Set[T], a *expr.Expr[T], v T) (*expr.Expr[T], error) {
	return Add(set, a, Lit(v))
}

// SubLit is Sub with a scalar right-hand side.
func SubLit[T expr.Float](set *ops.Set[T], a *expr.Expr[T], v T) (*expr.Expr[T], error) {
	return Sub(set, a, Lit(v))
}

// MulLit is Mul with a scalar right-hand side.
func MulLit[T expr.Float](set *ops.Set[T], a *expr.Expr[T], v T) (*expr.Expr[T], error) {
	return Mul(set, a, Lit(v))
}

// DivLit is Div with a scalar right-hand side.
func DivLit[T expr.Float](set *ops.Set[T], a *expr.Expr[T], v T) (*expr.Expr[T], error) {
	return Div(set, a, Lit(v))
}
