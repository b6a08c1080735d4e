package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynexpr/builder"
	"github.com/katalvlaran/dynexpr/eval"
	"github.com/katalvlaran/dynexpr/expr"
	"github.com/katalvlaran/dynexpr/ops"
)

var set = ops.Builtin[float64]()

// TestLifts verifies the nullary constructors produce one-node tapes.
func TestLifts(t *testing.T) {
	l := builder.Lit(2.5)
	require.Len(t, l.Nodes, 1)
	assert.Equal(t, expr.Const(0), l.Nodes[0], "Lit is a single Const cell")
	assert.Equal(t, []float64{2.5}, l.Consts, "Lit owns a one-entry pool")

	v := builder.Variable[float64](3)
	require.Len(t, v.Nodes, 1)
	assert.Equal(t, expr.Var(3), v.Nodes[0], "Variable is a single Var cell")
	assert.Empty(t, v.Consts, "Variable carries no constants")
}

// TestApply_ConcatenatesAndReindexes verifies postfix concatenation with
// constant re-indexing: both operands carry pool entry 0, and the merged
// tape must keep them distinct.
func TestApply_ConcatenatesAndReindexes(t *testing.T) {
	mul := set.MustID("mul", 2)

	a, err := builder.AddLit(set, builder.Variable[float64](0), 1.5) // x0 + 1.5
	require.NoError(t, err)
	b, err := builder.AddLit(set, builder.Variable[float64](1), 2.5) // x1 + 2.5
	require.NoError(t, err)

	e, err := builder.Apply(set, mul, a, b)
	require.NoError(t, err)

	assert.Equal(t, []float64{1.5, 2.5}, e.Consts, "pools merge in argument order")

	// The RHS tape's Const reference must have shifted to index 1.
	wantNodes := []expr.Node{
		expr.Var(0), expr.Const(0), expr.OpNode(2, set.MustID("add", 2).ID),
		expr.Var(1), expr.Const(1), expr.OpNode(2, set.MustID("add", 2).ID),
		expr.OpNode(2, mul.ID),
	}
	assert.Equal(t, wantNodes, e.Nodes, "concatenation appends one operator node")

	assert.NoError(t, expr.Validate(e.Nodes, 2, len(e.Consts)), "composed tape is well-formed")
}

// TestApply_DoesNotMutateArguments verifies inputs stay intact — the
// builder works on copies.
func TestApply_DoesNotMutateArguments(t *testing.T) {
	a, err := builder.AddLit(set, builder.Variable[float64](0), 1.0)
	require.NoError(t, err)
	before := a.Clone()

	_, err = builder.Mul(set, builder.Lit(3.0), a)
	require.NoError(t, err)

	assert.Equal(t, before.Nodes, a.Nodes, "argument tape untouched")
	assert.Equal(t, before.Consts, a.Consts, "argument pool untouched")
}

// TestApply_Errors verifies the sentinel set.
func TestApply_Errors(t *testing.T) {
	add := set.MustID("add", 2)

	_, err := builder.Apply(set, add, builder.Variable[float64](0))
	assert.ErrorIs(t, err, builder.ErrArityMismatch, "one argument for a binary op")

	_, err = builder.Apply(set, add, builder.Variable[float64](0), nil)
	assert.ErrorIs(t, err, builder.ErrNilExpr, "nil argument")

	_, err = builder.Apply(set, ops.OpID{Arity: expr.MaxArity + 1}, nil, nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrArityExceeded, "arity above the cap")

	foreign := ops.OpID{Arity: 2, ID: uint16(set.Len(2))}
	_, err = builder.Apply(set, foreign, builder.Variable[float64](0), builder.Variable[float64](1))
	assert.ErrorIs(t, err, builder.ErrUnknownOp, "id outside the set's dense range")
}

// TestRoleShortcuts_EvaluateCorrectly builds (x0 + 2)·x1 − x0/4 through
// the role shortcuts and checks it end-to-end.
func TestRoleShortcuts_EvaluateCorrectly(t *testing.T) {
	x0 := builder.Variable[float64](0)
	x1 := builder.Variable[float64](1)

	sum, err := builder.AddLit(set, x0, 2.0)
	require.NoError(t, err)
	prod, err := builder.Mul(set, sum, x1)
	require.NoError(t, err)
	quot, err := builder.DivLit(set, x0, 4.0)
	require.NoError(t, err)
	e, err := builder.Sub(set, prod, quot)
	require.NoError(t, err)

	x, err := eval.FromRows([][]float64{{4, 3}, {0, 5}})
	require.NoError(t, err)
	opts := eval.DefaultOptions()

	out, complete, err := eval.EvalTreeArray(e, x, set, &opts)
	require.NoError(t, err)
	assert.True(t, complete)
	// (4+2)·3 − 4/4 = 17; (0+2)·5 − 0 = 10.
	assert.Equal(t, []float64{17, 10}, out, "composed expression evaluates correctly")
}

// TestNeg verifies the unary role shortcut.
func TestNeg(t *testing.T) {
	e, err := builder.Neg(set, builder.Variable[float64](0))
	require.NoError(t, err)

	x, err := eval.FromRows([][]float64{{3}, {-2}})
	require.NoError(t, err)
	opts := eval.DefaultOptions()

	out, _, err := eval.EvalTreeArray(e, x, set, &opts)
	require.NoError(t, err)
	assert.Equal(t, []float64{-3, 2}, out, "negation flips signs")
}

// TestRoleMissing verifies a set without role tags rejects shortcuts.
func TestRoleMissing(t *testing.T) {
	bare := ops.NewSet[float64]()
	_, err := builder.Add(bare, builder.Variable[float64](0), builder.Variable[float64](1))
	assert.ErrorIs(t, err, builder.ErrRoleMissing, "no RoleAdd claimed")
}

// TestMetadataAdoption verifies variable names flow from the first
// argument that has any.
func TestMetadataAdoption(t *testing.T) {
	named := expr.New([]expr.Node{expr.Var(0)}, []float64(nil),
		expr.Metadata{VariableNames: []string{"alpha", "beta"}})

	e, err := builder.Add(set, builder.Variable[float64](1), named)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, e.Meta.VariableNames, "names adopted from the named operand")
}
