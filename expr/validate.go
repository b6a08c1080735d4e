// SPDX-License-Identifier: MIT
// Package expr: tape well-formedness validation.
package expr

// Validate checks that nodes form a well-formed postfix tape against the
// given feature and constant-pool sizes: a left-to-right stack simulation
// must never underflow and must terminate with exactly one value.
//
// Stage 1 (Scan): walk the tape once, tracking simulated stack depth.
// Stage 2 (Finalize): exactly one value must remain.
// Complexity: O(len(nodes)) time, O(1) space.
func Validate(nodes []Node, nFeatures, nConsts int) error {
	// Reject the empty tape outright: it denotes no expression at all.
	if len(nodes) == 0 {
		return ErrEmptyTape
	}

	// depth is the simulated stack depth; no values are materialised.
	depth := 0
	for _, n := range nodes {
		switch n.Kind {
		case KindVar:
			// Feature references must land inside the input matrix.
			if int(n.Index) >= nFeatures {
				return ErrVarOutOfRange
			}
			depth++
		case KindConst:
			// Pool references must land inside this tape's pool.
			if int(n.Index) >= nConsts {
				return ErrConstOutOfRange
			}
			depth++
		case KindOp:
			// Arity is bounded by the instruction argument array.
			if n.Arity < 1 || n.Arity > MaxArity {
				return ErrArityOutOfRange
			}
			// Popping Arity values must not underflow.
			if depth < int(n.Arity) {
				return ErrStackUnderflow
			}
			// Pop Arity, push the result.
			depth -= int(n.Arity) - 1
		}
	}

	// A well-formed tape reduces to exactly one value.
	if depth != 1 {
		return ErrDanglingValues
	}

	return nil
}
