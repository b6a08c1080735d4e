package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/dynexpr/expr"
)

// TestScalarConstants verifies the snapshot is a copy aligned with the
// pool.
func TestScalarConstants(t *testing.T) {
	e := expr.New([]expr.Node{expr.Const(0)}, []float64{1.5, -2, 0.25}, expr.Metadata{})

	values, ref := expr.ScalarConstants(e)
	assert.Equal(t, []float64{1.5, -2, 0.25}, values, "snapshot carries the pool values")
	assert.Equal(t, []int{0, 1, 2}, ref.ConstIndices, "reference covers every pool position")

	// Mutating the snapshot must not touch the expression.
	values[0] = 99
	assert.Equal(t, 1.5, e.Consts[0], "snapshot is a copy")
}

// TestSetScalarConstants verifies the write-back path, including partial
// references.
func TestSetScalarConstants(t *testing.T) {
	e := expr.New([]expr.Node{expr.Const(0)}, []float64{1, 2, 3}, expr.Metadata{})

	expr.SetScalarConstants(e, []float64{10, 30}, expr.ConstRef{ConstIndices: []int{0, 2}})
	assert.Equal(t, []float64{10, 2, 30}, e.Consts, "only referenced positions change")
}

// TestSetScalarConstants_LengthMismatch verifies a mismatched write-back
// panics — it is a programmer error, not a data condition.
func TestSetScalarConstants_LengthMismatch(t *testing.T) {
	e := expr.New([]expr.Node{expr.Const(0)}, []float64{1}, expr.Metadata{})

	assert.Panics(t, func() {
		expr.SetScalarConstants(e, []float64{1, 2}, expr.ConstRef{ConstIndices: []int{0}})
	}, "length mismatch must panic")
}
