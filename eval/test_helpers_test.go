package eval_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynexpr/eval"
	"github.com/katalvlaran/dynexpr/expr"
	"github.com/katalvlaran/dynexpr/ops"
)

// f64set is the shared builtin registry for float64 tests. Sets are
// immutable after construction, so sharing across tests is safe.
var f64set = ops.Builtin[float64]()

// mustMatrix packs rows into a Matrix, failing the test on ragged input.
func mustMatrix(t *testing.T, rows [][]float64) eval.Matrix[float64] {
	t.Helper()
	m, err := eval.FromRows(rows)
	require.NoError(t, err, "fixture rows must be rectangular")

	return m
}

// tape builds an Expr from nodes and consts.
func tape(nodes []expr.Node, consts []float64) *expr.Expr[float64] {
	return expr.New(nodes, consts, expr.Metadata{})
}

// referenceEval walks the tape per row with a value stack — the oracle
// the compiled plan must agree with.
func referenceEval(t *testing.T, e *expr.Expr[float64], x eval.Matrix[float64], set *ops.Set[float64]) []float64 {
	t.Helper()
	out := make([]float64, x.Rows)
	stack := make([]float64, 0, len(e.Nodes))

	for row := 0; row < x.Rows; row++ {
		stack = stack[:0]
		for _, n := range e.Nodes {
			switch n.Kind {
			case expr.KindVar:
				stack = append(stack, x.At(row, int(n.Index)))
			case expr.KindConst:
				stack = append(stack, e.Consts[n.Index])
			case expr.KindOp:
				arity := int(n.Arity)
				var args [expr.MaxArity]float64
				base := len(stack) - arity
				copy(args[:arity], stack[base:])
				stack = stack[:base]
				stack = append(stack, set.Op(ops.OpID{Arity: n.Arity, ID: n.Op}).Eval(&args))
			}
		}
		require.Len(t, stack, 1, "reference interpreter must reduce to one value")
		out[row] = stack[0]
	}

	return out
}
