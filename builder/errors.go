// SPDX-License-Identifier: MIT
// Package builder: sentinel errors.
//
// Error policy (matches the module):
//   - Only package-level sentinels; callers branch with errors.Is.
//   - Constructors never panic on caller input; panics are reserved for
//     programmer errors (none exist in this package).
package builder

import "errors"

// ErrNilExpr indicates a nil expression argument.
var ErrNilExpr = errors.New("builder: nil expression argument")

// ErrArityMismatch indicates the argument count does not match the
// operator id's arity.
var ErrArityMismatch = errors.New("builder: argument count does not match operator arity")

// ErrArityExceeded indicates an operator arity above expr.MaxArity.
var ErrArityExceeded = errors.New("builder: operator arity exceeds the maximum")

// ErrUnknownOp indicates an operator id outside the set's registered
// range.
var ErrUnknownOp = errors.New("builder: operator id not registered in the set")

// ErrRoleMissing indicates the operator set claims no operator for the
// requested algebraic role.
var ErrRoleMissing = errors.New("builder: operator set has no operator for role")

// ErrTooManyConstants indicates the merged constant pool cannot be
// indexed by uint16 tape cells.
var ErrTooManyConstants = errors.New("builder: merged constant pool exceeds uint16 index range")
