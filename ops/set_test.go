package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynexpr/expr"
	"github.com/katalvlaran/dynexpr/ops"
)

// TestBuiltin_Counts verifies the builtin set registers the documented
// operator counts per arity.
func TestBuiltin_Counts(t *testing.T) {
	s := ops.Builtin[float64]()
	assert.Equal(t, 30, s.Len(1), "30 unary operators")
	assert.Equal(t, 8, s.Len(2), "8 binary operators")
	assert.Equal(t, 2, s.Len(3), "2 ternary operators")
}

// TestBuiltin_IDStability verifies ids are identical across independent
// constructions — registration order is part of the contract.
func TestBuiltin_IDStability(t *testing.T) {
	a := ops.Builtin[float64]()
	b := ops.Builtin[float64]()

	for _, name := range []string{"abs", "cos", "identity", "tanh"} {
		assert.Equal(t, a.MustID(name, 1), b.MustID(name, 1), "unary id for %s must be stable", name)
	}
	for _, name := range []string{"add", "pow", "sub"} {
		assert.Equal(t, a.MustID(name, 2), b.MustID(name, 2), "binary id for %s must be stable", name)
	}
}

// TestByName_Lookup verifies textual resolution and its sentinel errors.
func TestByName_Lookup(t *testing.T) {
	s := ops.Builtin[float64]()

	id, err := s.ByName("cos", 1)
	require.NoError(t, err, "cos is registered at arity 1")
	assert.Equal(t, "cos", s.Op(id).Name, "resolved id round-trips to the name")

	_, err = s.ByName("frobnicate", 1)
	assert.ErrorIs(t, err, ops.ErrUnknownName, "unregistered names must error")

	_, err = s.ByName("cos", 2)
	assert.ErrorIs(t, err, ops.ErrArityMismatch, "cos exists, but not at arity 2")
}

// TestRoles verifies the algebraic role tags point at the expected
// operators.
func TestRoles(t *testing.T) {
	s := ops.Builtin[float64]()

	cases := []struct {
		role ops.Role
		name string
	}{
		{ops.RoleAdd, "add"},
		{ops.RoleSub, "sub"},
		{ops.RoleMul, "mul"},
		{ops.RoleDiv, "div"},
		{ops.RoleNeg, "neg"},
	}
	for _, tc := range cases {
		id, ok := s.RoleOp(tc.role)
		require.True(t, ok, "builtin set must claim role for %s", tc.name)
		assert.Equal(t, tc.name, s.Op(id).Name, "role resolves to %s", tc.name)
	}

	_, ok := ops.NewSet[float64]().RoleOp(ops.RoleAdd)
	assert.False(t, ok, "an empty set claims no roles")
}

// TestDisplay verifies infix symbols take precedence over names.
func TestDisplay(t *testing.T) {
	s := ops.Builtin[float64]()
	assert.Equal(t, "+", s.Op(s.MustID("add", 2)).Display(), "add displays as infix +")
	assert.Equal(t, "-", s.Op(s.MustID("neg", 1)).Display(), "neg displays as infix -")
	assert.Equal(t, "cos", s.Op(s.MustID("cos", 1)).Display(), "cos has no infix symbol")
}

// TestRegister_Extensibility verifies appending a custom operator yields
// the next dense id and never disturbs existing ones.
func TestRegister_Extensibility(t *testing.T) {
	s := ops.Builtin[float64]()
	before := s.Len(1)

	id := s.Register(1, ops.Op[float64]{
		Name:    "cube",
		Eval:    func(a *[expr.MaxArity]float64) float64 { return a[0] * a[0] * a[0] },
		Partial: func(a *[expr.MaxArity]float64, _ int) float64 { return 3 * a[0] * a[0] },
	})

	assert.Equal(t, uint16(before), id.ID, "new id extends the dense range")
	assert.Equal(t, "cube", s.Op(id).Name, "descriptor is retrievable")
	assert.Equal(t, "cos", s.Op(s.MustID("cos", 1)).Name, "existing operators unchanged")
}

// TestRegister_BadDescriptor verifies registration guards panic on
// programmer errors.
func TestRegister_BadDescriptor(t *testing.T) {
	s := ops.NewSet[float64]()
	assert.Panics(t, func() {
		s.Register(0, ops.Op[float64]{Name: "zero"})
	}, "arity 0 must panic")
	assert.Panics(t, func() {
		s.Register(1, ops.Op[float64]{Name: "nilfns"})
	}, "nil Eval/Partial must panic")
}

// TestOp_UnknownID verifies hot-path dispatch panics on foreign ids.
func TestOp_UnknownID(t *testing.T) {
	s := ops.Builtin[float64]()
	assert.Panics(t, func() {
		s.Op(ops.OpID{Arity: 1, ID: uint16(s.Len(1))})
	}, "id past the dense range must panic")
}
