// SPDX-License-Identifier: MIT
// Package ops: operator identity, descriptors and the registry.
//
// Design contract (strict):
//   - Operator identity is (arity, id); ids are dense per arity class and
//     assigned in registration order, so they are stable within a run.
//   - The registry is append-only and immutable once evaluation starts;
//     compiled plans and Set pointers are safely shareable across
//     goroutines.
//   - Hot-path dispatch (Set.Op) panics on an unknown id: an id that did
//     not come from this Set is a compiler or caller bug, never data.
//   - Textual lookup (Set.ByName) is for front-ends and returns sentinel
//     errors; it never runs inside the evaluation loop.
package ops

import (
	"errors"

	"github.com/katalvlaran/dynexpr/expr"
)

// Sentinel errors for textual operator lookup.
var (
	// ErrUnknownName indicates no registered operator carries the name.
	ErrUnknownName = errors.New("ops: unknown operator name")

	// ErrArityMismatch indicates the name exists, but not at the
	// requested arity.
	ErrArityMismatch = errors.New("ops: operator name registered at a different arity")
)

// OpID identifies an operator: the arity class plus a dense index within
// that class.
type OpID struct {
	Arity uint8
	ID    uint16
}

// Role tags operators with an algebraic meaning the builder package can
// exploit for convenience constructors. RoleNone is the common case.
type Role uint8

const (
	// RoleNone marks an operator with no algebraic shortcut.
	RoleNone Role = iota

	// RoleAdd marks the set's canonical binary addition.
	RoleAdd

	// RoleSub marks the set's canonical binary subtraction.
	RoleSub

	// RoleMul marks the set's canonical binary multiplication.
	RoleMul

	// RoleDiv marks the set's canonical binary division.
	RoleDiv

	// RoleNeg marks the set's canonical unary negation.
	RoleNeg
)

// Op describes one operator: a pure value function over its argument
// vector and a pure partial-derivative function per argument index.
// Only the first Arity entries of the argument array are significant.
type Op[T expr.Float] struct {
	// Name is the canonical lower-case identifier ("cos", "add", ...).
	Name string

	// Infix is the optional infix symbol ("+", "*"); empty when none.
	Infix string

	// Role is the optional algebraic tag; RoleNone for most operators.
	Role Role

	// Eval computes f(args) pointwise.
	Eval func(args *[expr.MaxArity]T) T

	// Partial computes ∂f/∂args[j](args). j < the operator's arity.
	Partial func(args *[expr.MaxArity]T, j int) T
}

// Display returns the preferred rendering: the infix symbol when present,
// otherwise the canonical name.
func (op *Op[T]) Display() string {
	if op.Infix != "" {
		return op.Infix
	}

	return op.Name
}

// Set is a closed operator registry. The zero value is not usable; create
// one with NewSet or Builtin.
type Set[T expr.Float] struct {
	// byArity[a] holds the operators of arity a, indexed by OpID.ID.
	// Index 0 is unused (arity ≥ 1).
	byArity [expr.MaxArity + 1][]Op[T]

	// roles maps algebraic tags to the operator that claimed them.
	roles map[Role]OpID
}

// NewSet returns an empty registry ready for Register calls.
func NewSet[T expr.Float]() *Set[T] {
	return &Set[T]{roles: make(map[Role]OpID)}
}

// Register appends op to the given arity class and returns its identity.
// The first operator registered with a non-RoleNone role claims that role.
//
// Panics when arity is 0 or exceeds MaxArity, or when Eval/Partial are
// nil: registration happens at program setup, so a bad descriptor is a
// programmer error.
func (s *Set[T]) Register(arity uint8, op Op[T]) OpID {
	if arity < 1 || arity > expr.MaxArity {
		panic("ops: Register arity out of range")
	}
	if op.Eval == nil || op.Partial == nil {
		panic("ops: Register requires Eval and Partial")
	}

	id := OpID{Arity: arity, ID: uint16(len(s.byArity[arity]))}
	s.byArity[arity] = append(s.byArity[arity], op)

	if op.Role != RoleNone {
		if _, taken := s.roles[op.Role]; !taken {
			s.roles[op.Role] = id
		}
	}

	return id
}

// Op returns the descriptor for id. Panics on an id that was not issued by
// this set — per the package contract that is a programmer error.
// Complexity: O(1).
func (s *Set[T]) Op(id OpID) *Op[T] {
	if int(id.Arity) >= len(s.byArity) || int(id.ID) >= len(s.byArity[id.Arity]) {
		panic("ops: unknown operator id")
	}

	return &s.byArity[id.Arity][id.ID]
}

// Len reports how many operators are registered at the given arity.
func (s *Set[T]) Len(arity uint8) int {
	if int(arity) >= len(s.byArity) {
		return 0
	}

	return len(s.byArity[arity])
}

// ByName resolves a textual operator name at the given arity.
// Returns ErrUnknownName when no operator carries the name at any arity,
// and ErrArityMismatch when it exists only at other arities.
// Complexity: O(total operators); this path never runs per-row.
func (s *Set[T]) ByName(name string, arity uint8) (OpID, error) {
	seenElsewhere := false
	for a := 1; a <= expr.MaxArity; a++ {
		for i := range s.byArity[a] {
			if s.byArity[a][i].Name != name {
				continue
			}
			if uint8(a) == arity {
				return OpID{Arity: arity, ID: uint16(i)}, nil
			}
			seenElsewhere = true
		}
	}
	if seenElsewhere {
		return OpID{}, ErrArityMismatch
	}

	return OpID{}, ErrUnknownName
}

// MustID is ByName for fixtures and wiring code: it panics instead of
// returning an error.
func (s *Set[T]) MustID(name string, arity uint8) OpID {
	id, err := s.ByName(name, arity)
	if err != nil {
		panic("ops: MustID: " + name + ": " + err.Error())
	}

	return id
}

// RoleOp returns the operator claiming the given algebraic role, if any.
func (s *Set[T]) RoleOp(role Role) (OpID, bool) {
	id, ok := s.roles[role]

	return id, ok
}
