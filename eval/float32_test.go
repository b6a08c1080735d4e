package eval_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynexpr/eval"
	"github.com/katalvlaran/dynexpr/expr"
	"github.com/katalvlaran/dynexpr/ops"
)

// The generic-scalar contract: every scenario that passes over float64
// must pass over float32 as well. These tests replay the literal
// scenarios at float32 tolerances.

var f32set = ops.Builtin[float32]()

// TestFloat32_AddScenario: x0 + x1 over [[1,2],[3,4]].
func TestFloat32_AddScenario(t *testing.T) {
	add := f32set.MustID("add", 2)
	e := expr.New([]expr.Node{expr.Var(0), expr.Var(1), expr.OpNode(2, add.ID)}, []float32(nil), expr.Metadata{})
	x, err := eval.FromRows([][]float32{{1, 2}, {3, 4}})
	require.NoError(t, err)
	opts := eval.DefaultOptions()

	out, complete, err := eval.EvalTreeArray(e, x, f32set, &opts)
	require.NoError(t, err)
	assert.True(t, complete)
	assert.Equal(t, []float32{3, 7}, out)
}

// TestFloat32_DiffScenario: tangent of cos(x0)·2 at x0=0 is 0.
func TestFloat32_DiffScenario(t *testing.T) {
	cos := f32set.MustID("cos", 1)
	mul := f32set.MustID("mul", 2)
	e := expr.New([]expr.Node{
		expr.Var(0), expr.OpNode(1, cos.ID),
		expr.Const(0), expr.OpNode(2, mul.ID),
	}, []float32{2.0}, expr.Metadata{})
	x, err := eval.FromRows([][]float32{{0.0}})
	require.NoError(t, err)
	ctx := eval.NewDiffContext[float32](1)
	opts := eval.DefaultOptions()

	out, dOut, complete, err := eval.EvalDiffTreeArray(e, x, 0, ctx, f32set, &opts)
	require.NoError(t, err)
	assert.True(t, complete)
	assert.InDelta(t, float32(2.0), out[0], 1e-6)
	assert.InDelta(t, float32(0.0), dOut[0], 1e-6)
}

// TestFloat32_EarlyExit: x0/x1 at (1,0) NaN-fills under the default
// policy.
func TestFloat32_EarlyExit(t *testing.T) {
	div := f32set.MustID("div", 2)
	e := expr.New([]expr.Node{expr.Var(0), expr.Var(1), expr.OpNode(2, div.ID)}, []float32(nil), expr.Metadata{})
	x, err := eval.FromRows([][]float32{{1, 0}})
	require.NoError(t, err)
	opts := eval.DefaultOptions()

	out, complete, err := eval.EvalTreeArray(e, x, f32set, &opts)
	require.NoError(t, err)
	assert.False(t, complete)
	require.Len(t, out, 1)
	assert.True(t, math.IsNaN(float64(out[0])), "NaN-filled float32 output")
}

// TestFloat32_GradScenarios: pow and fma Jacobians at float32 tolerance.
func TestFloat32_GradScenarios(t *testing.T) {
	pow := f32set.MustID("pow", 2)
	e := expr.New([]expr.Node{expr.Var(0), expr.Const(0), expr.OpNode(2, pow.ID)}, []float32{2.0}, expr.Metadata{})
	x, err := eval.FromRows([][]float32{{3.0}})
	require.NoError(t, err)
	ctx := eval.NewGradContext[float32](1)
	opts := eval.DefaultOptions()

	out, grad, complete, err := eval.EvalGradTreeArray(e, x, true, ctx, f32set, &opts)
	require.NoError(t, err)
	assert.True(t, complete)
	assert.InDelta(t, float32(9.0), out[0], 1e-5)
	assert.InDelta(t, float32(6.0), grad.At(0, 0), 1e-5)

	fma := f32set.MustID("fma", 3)
	e = expr.New([]expr.Node{
		expr.Var(0), expr.Var(1), expr.Var(2), expr.OpNode(3, fma.ID),
	}, []float32(nil), expr.Metadata{})
	x, err = eval.FromRows([][]float32{{2, 3, 4}})
	require.NoError(t, err)
	ctx = eval.NewGradContext[float32](1)

	out, grad, complete, err = eval.EvalGradTreeArray(e, x, true, ctx, f32set, &opts)
	require.NoError(t, err)
	assert.True(t, complete)
	assert.Equal(t, float32(10), out[0])
	assert.Equal(t, []float32{3}, grad.Slab(0))
	assert.Equal(t, []float32{2}, grad.Slab(1))
	assert.Equal(t, []float32{1}, grad.Slab(2))
}

// TestFloat32_ConstantModeScenario: c0·x0 + c1 constant-mode slabs.
func TestFloat32_ConstantModeScenario(t *testing.T) {
	mul := f32set.MustID("mul", 2)
	add := f32set.MustID("add", 2)
	e := expr.New([]expr.Node{
		expr.Const(0), expr.Var(0), expr.OpNode(2, mul.ID),
		expr.Const(1), expr.OpNode(2, add.ID),
	}, []float32{0.5, 1.0}, expr.Metadata{})
	x, err := eval.FromRows([][]float32{{4.0}})
	require.NoError(t, err)
	ctx := eval.NewGradContext[float32](1)
	opts := eval.DefaultOptions()

	out, grad, complete, err := eval.EvalGradTreeArray(e, x, false, ctx, f32set, &opts)
	require.NoError(t, err)
	assert.True(t, complete)
	assert.Equal(t, float32(3), out[0])
	assert.Equal(t, []float32{4}, grad.Slab(0))
	assert.Equal(t, []float32{1}, grad.Slab(1))
}
