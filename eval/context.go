// SPDX-License-Identifier: MIT
// Package eval: reusable evaluation contexts.
//
// A context amortises the two per-call costs: plan compilation (cached on
// the tape signature) and scratch allocation (grown monotonically, never
// shrunk). A context is exclusively owned by its caller for the duration
// of a call; independent evaluations need distinct contexts.
package eval

import "github.com/katalvlaran/dynexpr/expr"

// planCache holds the last-compiled plan keyed on the tape signature
// (nodes length, constant count, feature count). Any change to the
// signature invalidates the plan and triggers recompilation.
type planCache struct {
	plan       *EvalPlan
	nodesLen   int
	nConsts    int
	nFeatures  int
	recompiles int
}

// lookup returns the cached plan when the signature matches, otherwise
// recompiles and re-keys the cache.
func (p *planCache) lookup(nodes []expr.Node, nFeatures, nConsts int) (*EvalPlan, error) {
	if p.plan != nil && p.nodesLen == len(nodes) && p.nConsts == nConsts && p.nFeatures == nFeatures {
		return p.plan, nil
	}

	plan, err := CompilePlan(nodes, nFeatures, nConsts)
	if err != nil {
		return nil, err
	}
	p.plan = plan
	p.nodesLen = len(nodes)
	p.nConsts = nConsts
	p.nFeatures = nFeatures
	p.recompiles++

	return plan, nil
}

// Recompiles reports how many times the cache recompiled; a test hook for
// the plan-caching invariant.
func (p *planCache) Recompiles() int { return p.recompiles }

// ensureSlots grows scratch to nSlots columns of rowLen elements each.
// Columns are grown in place where capacity allows, with appended elements
// zero-filled; storage is never released.
func ensureSlots[T expr.Float](scratch *[][]T, nSlots, rowLen int) {
	if len(*scratch) < nSlots {
		if cap(*scratch) >= nSlots {
			*scratch = (*scratch)[:nSlots]
		} else {
			grown := make([][]T, nSlots)
			copy(grown, *scratch)
			*scratch = grown
		}
	}
	for i := 0; i < nSlots; i++ {
		col := (*scratch)[i]
		switch {
		case len(col) == rowLen:
			// Already sized.
		case cap(col) >= rowLen:
			// Reslice and zero the newly exposed tail.
			if len(col) < rowLen {
				clear(col[len(col):rowLen])
			}
			(*scratch)[i] = col[:rowLen]
		default:
			fresh := make([]T, rowLen)
			copy(fresh, col)
			(*scratch)[i] = fresh
		}
	}
}

// EvalContext is the reusable state for value evaluation: one slot-major
// scratch array plus the plan cache. NRows is fixed at construction and
// must match the input batch.
type EvalContext[T expr.Float] struct {
	planCache

	// NRows is the row count every evaluation through this context uses.
	NRows int

	// Scratch is slot-major: Scratch[slot][row].
	Scratch [][]T
}

// NewEvalContext returns a context for batches of nRows rows.
func NewEvalContext[T expr.Float](nRows int) *EvalContext[T] {
	return &EvalContext[T]{NRows: nRows}
}

// EnsureScratch sizes the scratch to nSlots columns of NRows each.
func (c *EvalContext[T]) EnsureScratch(nSlots int) {
	ensureSlots(&c.Scratch, nSlots, c.NRows)
}

// DiffContext is the reusable state for tangent evaluation: parallel
// value and derivative slot arrays plus the plan cache.
type DiffContext[T expr.Float] struct {
	planCache

	NRows int

	// ValScratch and DerScratch are parallel slot-major arrays.
	ValScratch [][]T
	DerScratch [][]T
}

// NewDiffContext returns a tangent context for batches of nRows rows.
func NewDiffContext[T expr.Float](nRows int) *DiffContext[T] {
	return &DiffContext[T]{NRows: nRows}
}

// EnsureScratch sizes both slot arrays to nSlots columns of NRows each.
func (c *DiffContext[T]) EnsureScratch(nSlots int) {
	ensureSlots(&c.ValScratch, nSlots, c.NRows)
	ensureSlots(&c.DerScratch, nSlots, c.NRows)
}

// GradContext is the reusable state for Jacobian evaluation: value slots
// of NRows elements and gradient slabs of nDir*NRows elements, plus the
// plan cache.
type GradContext[T expr.Float] struct {
	planCache

	NRows int

	// ValScratch is slot-major value storage.
	ValScratch [][]T

	// GradScratch is slot-major gradient storage; each column is a
	// direction-major slab of nDir*NRows elements.
	GradScratch [][]T
}

// NewGradContext returns a Jacobian context for batches of nRows rows.
func NewGradContext[T expr.Float](nRows int) *GradContext[T] {
	return &GradContext[T]{NRows: nRows}
}

// EnsureScratch sizes value columns to NRows and gradient slabs to
// nDir*NRows.
func (c *GradContext[T]) EnsureScratch(nSlots, nDir int) {
	ensureSlots(&c.ValScratch, nSlots, c.NRows)
	ensureSlots(&c.GradScratch, nSlots, nDir*c.NRows)
}
