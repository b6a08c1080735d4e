// SPDX-License-Identifier: MIT
// Package expr: structural metrics over postfix tapes.
//
// These helpers serve callers that mutate, sample or score tapes (search
// loops, simplifiers). They assume a well-formed tape; run Validate first
// when provenance is uncertain.
package expr

// CountNodes returns the number of tape cells.
// Complexity: O(1).
func CountNodes[T Float](e *Expr[T]) int {
	return len(e.Nodes)
}

// CountConstantNodes returns how many cells reference the constant pool.
// Note this counts references, not pool entries: a pool entry used twice
// contributes two.
// Complexity: O(n).
func CountConstantNodes[T Float](e *Expr[T]) int {
	count := 0
	for _, n := range e.Nodes {
		if n.Kind == KindConst {
			count++
		}
	}

	return count
}

// HasConstants reports whether any cell references the constant pool.
// Complexity: O(n), early exit on first hit.
func HasConstants[T Float](e *Expr[T]) bool {
	for _, n := range e.Nodes {
		if n.Kind == KindConst {
			return true
		}
	}

	return false
}

// HasOperators reports whether the tape applies any operator.
// Complexity: O(n), early exit on first hit.
func HasOperators[T Float](e *Expr[T]) bool {
	for _, n := range e.Nodes {
		if n.Kind == KindOp {
			return true
		}
	}

	return false
}

// Depth returns the height of the expression tree the tape encodes: a
// single leaf has depth 1, an operator is one deeper than its deepest
// argument. Returns 0 for an empty tape.
//
// Stage 1 (Simulate): replay the stack simulation carrying depths.
// Stage 2 (Finalize): the lone remaining depth is the tree height.
// Complexity: O(n) time, O(n) stack space worst case.
func Depth[T Float](e *Expr[T]) int {
	if len(e.Nodes) == 0 {
		return 0
	}

	stack := make([]int, 0, len(e.Nodes))
	for _, n := range e.Nodes {
		if n.Kind != KindOp {
			stack = append(stack, 1)
			continue
		}
		// Pop the operator's argument depths, keep the maximum.
		arity := int(n.Arity)
		deepest := 0
		for j := 0; j < arity; j++ {
			d := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if d > deepest {
				deepest = d
			}
		}
		stack = append(stack, deepest+1)
	}

	return stack[len(stack)-1]
}

// SubtreeSizes returns, for each tape position i, the number of cells in
// the subtree rooted at i (the node itself plus all its arguments,
// transitively). Leaves report 1.
// Complexity: O(n) time, O(n) space.
func SubtreeSizes(nodes []Node) []int {
	sizes := make([]int, len(nodes))
	stack := make([]int, 0, len(nodes))
	for i, n := range nodes {
		size := 1
		if n.Kind == KindOp {
			// Argument subtrees sit immediately below on the stack.
			arity := int(n.Arity)
			for j := 0; j < arity; j++ {
				size += stack[len(stack)-1]
				stack = stack[:len(stack)-1]
			}
		}
		sizes[i] = size
		stack = append(stack, size)
	}

	return sizes
}

// SubtreeRange returns the half-open tape interval [start, end) spanned by
// the subtree rooted at position root. In postfix order a subtree is always
// contiguous and ends at its root, so end == root+1.
// Complexity: O(n) time (dominated by SubtreeSizes).
func SubtreeRange(nodes []Node, root int) (start, end int) {
	sizes := SubtreeSizes(nodes)
	end = root + 1
	start = end - sizes[root]

	return start, end
}
