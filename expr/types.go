// SPDX-License-Identifier: MIT
// Package expr: central tape types.
//
// This file declares the Node tagged variant, the Source descriptor, the
// Expr container and its Metadata, and the Float scalar bound used across
// the module.
package expr

import "golang.org/x/exp/constraints"

// Float bounds the scalar types an expression can be evaluated over.
// Two concrete instantiations are supported and tested: float32 and float64.
type Float interface {
	constraints.Float
}

// MaxArity is the compile-time cap D on operator arity. Instruction
// argument arrays are dimensioned by it; the builtin operator set tops out
// at ternary operators.
const MaxArity = 3

// NodeKind tags the three Node variants.
type NodeKind uint8

const (
	// KindVar references a feature column of the input matrix.
	KindVar NodeKind = iota

	// KindConst references an entry of the tape's constant pool.
	KindConst

	// KindOp applies an operator to the top Arity stack values.
	KindOp
)

// Node is one tape cell. Exactly one variant is active, selected by Kind:
//
//	KindVar:   Index is the 0-based feature column (< nFeatures).
//	KindConst: Index is the constant-pool position (< nConsts).
//	KindOp:    Arity and Op identify the operator; Index is unused.
type Node struct {
	// Kind selects the active variant.
	Kind NodeKind

	// Index is the feature column (KindVar) or pool index (KindConst).
	Index uint16

	// Arity is the operand count for KindOp; 1 ≤ Arity ≤ MaxArity.
	Arity uint8

	// Op is the operator identifier within its arity class (KindOp only).
	Op uint16
}

// Var returns a node referencing feature column f of the input matrix.
func Var(f uint16) Node {
	return Node{Kind: KindVar, Index: f}
}

// Const returns a node referencing entry idx of the constant pool.
func Const(idx uint16) Node {
	return Node{Kind: KindConst, Index: idx}
}

// OpNode returns an operator-application node popping arity values.
func OpNode(arity uint8, op uint16) Node {
	return Node{Kind: KindOp, Arity: arity, Op: op}
}

// SourceKind tags the three Source variants.
type SourceKind uint8

const (
	// SrcSlot names the result of an earlier instruction.
	SrcSlot SourceKind = iota

	// SrcVar names a feature column of the input matrix.
	SrcVar

	// SrcConst names a constant-pool entry.
	SrcConst
)

// Source is the compile-time descriptor of where an operator argument (or
// the plan root) comes from. All sources are resolved during compilation;
// evaluation never re-inspects the tape.
type Source struct {
	Kind  SourceKind
	Index uint16
}

// SlotSource names scratch slot s, owned by an earlier instruction.
func SlotSource(s uint16) Source { return Source{Kind: SrcSlot, Index: s} }

// VarSource names feature column f.
func VarSource(f uint16) Source { return Source{Kind: SrcVar, Index: f} }

// ConstSource names constant-pool entry c.
func ConstSource(c uint16) Source { return Source{Kind: SrcConst, Index: c} }

// Metadata carries human-readable annotations. The evaluation core never
// reads it; printers and front-ends do.
type Metadata struct {
	// VariableNames maps feature index to display name, when known.
	VariableNames []string
}

// Expr is the (tape, constant pool, metadata) triple. The tape is Nodes in
// postfix order; Consts is the pool addressed by KindConst nodes. Each Expr
// owns a distinct pool.
type Expr[T Float] struct {
	Nodes  []Node
	Consts []T
	Meta   Metadata
}

// New assembles an expression from its parts. The slices are adopted, not
// copied; callers hand over ownership.
func New[T Float](nodes []Node, consts []T, meta Metadata) *Expr[T] {
	return &Expr[T]{Nodes: nodes, Consts: consts, Meta: meta}
}

// Clone returns a deep copy sharing no backing storage with the receiver.
// Complexity: O(len(Nodes) + len(Consts)).
func (e *Expr[T]) Clone() *Expr[T] {
	// Copy the node tape.
	nodes := make([]Node, len(e.Nodes))
	copy(nodes, e.Nodes)
	// Copy the constant pool.
	consts := make([]T, len(e.Consts))
	copy(consts, e.Consts)
	// Copy variable names so renames never alias across clones.
	var meta Metadata
	if e.Meta.VariableNames != nil {
		meta.VariableNames = make([]string, len(e.Meta.VariableNames))
		copy(meta.VariableNames, e.Meta.VariableNames)
	}

	return &Expr[T]{Nodes: nodes, Consts: consts, Meta: meta}
}
