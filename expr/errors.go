// SPDX-License-Identifier: MIT
// Package expr: sentinel errors for tape well-formedness.
//
// Error policy (matches the rest of the module):
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Every specific failure also matches ErrMalformedTape, so callers that
//     only care about "is this tape usable" test a single sentinel.
//   - Validation never panics; panics are reserved for programmer errors
//     inside the evaluation hot path (see eval).
package expr

import (
	"errors"
	"fmt"
)

// ErrMalformedTape is the umbrella sentinel for every tape validation
// failure. errors.Is(err, ErrMalformedTape) holds for all errors below.
var ErrMalformedTape = errors.New("expr: malformed tape")

var (
	// ErrEmptyTape indicates a zero-length node sequence.
	ErrEmptyTape = fmt.Errorf("%w: empty tape", ErrMalformedTape)

	// ErrStackUnderflow indicates an operator node pops more values than
	// the simulation stack holds at that point.
	ErrStackUnderflow = fmt.Errorf("%w: operator underflows the stack", ErrMalformedTape)

	// ErrDanglingValues indicates the simulation terminates with more than
	// one value on the stack (the tape encodes a forest, not a tree).
	ErrDanglingValues = fmt.Errorf("%w: tape leaves multiple values on the stack", ErrMalformedTape)

	// ErrArityOutOfRange indicates an operator node with arity 0 or above
	// MaxArity.
	ErrArityOutOfRange = fmt.Errorf("%w: operator arity out of range", ErrMalformedTape)

	// ErrVarOutOfRange indicates a Var node whose feature index is not
	// below nFeatures.
	ErrVarOutOfRange = fmt.Errorf("%w: variable feature index out of range", ErrMalformedTape)

	// ErrConstOutOfRange indicates a Const node whose pool index is not
	// below nConsts.
	ErrConstOutOfRange = fmt.Errorf("%w: constant pool index out of range", ErrMalformedTape)
)
