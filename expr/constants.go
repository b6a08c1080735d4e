// SPDX-License-Identifier: MIT
// Package expr: scalar constant accessors.
//
// Optimiser loops tune an expression's constants in place between
// evaluations. ConstRef records which pool positions a snapshot came from,
// so a later write-back stays aligned even if callers filter the vector.
package expr

// ConstRef maps positions of an extracted constant vector back onto pool
// indices of the expression it was taken from.
type ConstRef struct {
	ConstIndices []int
}

// ScalarConstants snapshots the expression's constant pool. The returned
// slice is a copy; mutating it does not touch the expression. The ConstRef
// pairs each copied value with its pool index for SetScalarConstants.
// Complexity: O(nConsts).
func ScalarConstants[T Float](e *Expr[T]) ([]T, ConstRef) {
	values := make([]T, len(e.Consts))
	copy(values, e.Consts)

	indices := make([]int, len(e.Consts))
	for i := range indices {
		indices[i] = i
	}

	return values, ConstRef{ConstIndices: indices}
}

// SetScalarConstants writes values back into the pool positions named by
// ref. Panics if the lengths disagree: a mismatched write-back is a
// programmer error, never a data condition.
// Complexity: O(len(values)).
func SetScalarConstants[T Float](e *Expr[T], values []T, ref ConstRef) {
	if len(values) != len(ref.ConstIndices) {
		panic("expr: SetScalarConstants length mismatch")
	}
	for i, dst := range ref.ConstIndices {
		e.Consts[dst] = values[i]
	}
}
