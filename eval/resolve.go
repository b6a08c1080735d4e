// SPDX-License-Identifier: MIT
// Package eval: symbolic source → concrete column view resolution.
//
// Drivers split the scratch array around the destination slot before
// resolving arguments: before holds slots < dst, after holds slots > dst.
// Splitting makes sibling reads and the destination write provably
// non-aliasing; a source naming the destination itself violates the
// single-assignment invariant and panics.
package eval

import "github.com/katalvlaran/dynexpr/expr"

// slotSlice maps a slot index onto the split scratch halves.
// slot == dst is the invariant violation guard.
func slotSlice[T expr.Float](slot, dst int, before, after [][]T) []T {
	if slot < dst {
		return before[slot]
	}
	if slot > dst {
		return after[slot-dst-1]
	}
	panic("eval: instruction argument references its own destination slot")
}

// resolveValSrc maps a value-argument Source to its runtime view:
// a strided feature column, a broadcast constant, or a sibling slot.
func resolveValSrc[T expr.Float](
	src expr.Source,
	xData []T,
	nFeatures int,
	consts []T,
	dst int,
	before, after [][]T,
) SrcRef[T] {
	switch src.Kind {
	case expr.SrcVar:
		return StridedRef(xData, int(src.Index), nFeatures)
	case expr.SrcConst:
		return ScalarRef(consts[src.Index])
	default:
		return SliceRef(slotSlice[T](int(src.Index), dst, before, after))
	}
}

// resolveDerSrc maps a Source to its tangent view for the given
// differentiation direction: a variable's tangent is the Kronecker delta
// against the direction, a constant's tangent is zero, and a slot reads
// the sibling derivative column.
func resolveDerSrc[T expr.Float](
	src expr.Source,
	direction int,
	dst int,
	before, after [][]T,
) SrcRef[T] {
	switch src.Kind {
	case expr.SrcVar:
		if int(src.Index) == direction {
			return ScalarRef[T](1)
		}

		return ScalarRef[T](0)
	case expr.SrcConst:
		return ScalarRef[T](0)
	default:
		return SliceRef(slotSlice[T](int(src.Index), dst, before, after))
	}
}

// resolveGradSrc maps a Source to its Jacobian-gradient view. In variable
// mode a Var(f) is the one-hot basis for direction f and constants are
// zero; in constant mode the roles swap.
func resolveGradSrc[T expr.Float](
	src expr.Source,
	variable bool,
	dst int,
	before, after [][]T,
) GradRef[T] {
	switch src.Kind {
	case expr.SrcVar:
		if variable {
			return BasisRef[T](int(src.Index))
		}

		return ZeroGradRef[T]()
	case expr.SrcConst:
		if variable {
			return ZeroGradRef[T]()
		}

		return BasisRef[T](int(src.Index))
	default:
		return GradSliceRef(slotSlice[T](int(src.Index), dst, before, after))
	}
}
