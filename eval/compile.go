// SPDX-License-Identifier: MIT
// Package eval: single-pass lowering of postfix tapes to instruction plans.
package eval

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dynexpr/expr"
)

// Instr is one scheduled operation: write the operator's column result
// into scratch slot Dst, reading the first Arity argument Sources. Dst is
// uniquely owned by this instruction (single assignment), and every
// Slot argument names a slot assigned by an earlier instruction.
type Instr struct {
	// Dst is the destination scratch slot.
	Dst uint16

	// Arity is the significant prefix of Args.
	Arity uint8

	// Op is the operator id within its arity class.
	Op uint16

	// Args are the resolved argument sources; entries past Arity are
	// zero values and never read.
	Args [expr.MaxArity]expr.Source
}

// EvalPlan is the compiled form of a tape: a linear instruction stream in
// strict topological order, the scratch-slot count it needs, and the
// Source naming the overall result. Root may be any variant — a tape with
// no operators compiles to zero instructions and a bare Var or Const root.
//
// Plans are immutable and safely shareable across goroutines.
type EvalPlan struct {
	Instrs []Instr
	NSlots int
	Root   expr.Source
}

// CompilePlan lowers a postfix tape into an EvalPlan in one left-to-right
// pass with a stack of symbolic Sources:
//
//  1. Var pushes a SrcVar source, Const pushes a SrcConst source.
//  2. Op pops its arity's worth of sources (stack order preserves
//     argument order), allocates the next free slot, emits the
//     instruction, and pushes the slot as a source.
//  3. The single remaining source is the root; NSlots is the operator
//     count.
//
// Fails with a sentinel matching expr.ErrMalformedTape when the stack
// underflows, more than one source remains, an arity exceeds
// expr.MaxArity, or an index is out of range.
//
// Complexity: O(len(nodes)) time and space.
func CompilePlan(nodes []expr.Node, nFeatures, nConsts int) (*EvalPlan, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("CompilePlan: %w", expr.ErrEmptyTape)
	}

	// Symbolic source stack; depth is bounded by the tape length.
	stack := make([]expr.Source, 0, len(nodes))
	instrs := make([]Instr, 0, len(nodes))
	nextSlot := 0

	for _, n := range nodes {
		switch n.Kind {
		case expr.KindVar:
			if int(n.Index) >= nFeatures {
				return nil, fmt.Errorf("CompilePlan: feature %d: %w", n.Index, expr.ErrVarOutOfRange)
			}
			stack = append(stack, expr.VarSource(n.Index))

		case expr.KindConst:
			if int(n.Index) >= nConsts {
				return nil, fmt.Errorf("CompilePlan: const %d: %w", n.Index, expr.ErrConstOutOfRange)
			}
			stack = append(stack, expr.ConstSource(n.Index))

		case expr.KindOp:
			arity := int(n.Arity)
			if arity < 1 || arity > expr.MaxArity {
				return nil, fmt.Errorf("CompilePlan: arity %d: %w", arity, expr.ErrArityOutOfRange)
			}
			if len(stack) < arity {
				return nil, fmt.Errorf("CompilePlan: %w", expr.ErrStackUnderflow)
			}
			// Slot ids travel in uint16 sources; a tape this long is
			// degenerate but must not wrap silently.
			if nextSlot > math.MaxUint16 {
				return nil, fmt.Errorf("CompilePlan: slot count exceeds %d: %w", math.MaxUint16, expr.ErrMalformedTape)
			}

			instr := Instr{Dst: uint16(nextSlot), Arity: n.Arity, Op: n.Op}
			// The popped sources keep their stack order: args[0] is the
			// leftmost argument.
			base := len(stack) - arity
			for j := 0; j < arity; j++ {
				instr.Args[j] = stack[base+j]
			}
			stack = stack[:base]

			instrs = append(instrs, instr)
			stack = append(stack, expr.SlotSource(uint16(nextSlot)))
			nextSlot++
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("CompilePlan: %w", expr.ErrDanglingValues)
	}

	return &EvalPlan{Instrs: instrs, NSlots: nextSlot, Root: stack[0]}, nil
}
