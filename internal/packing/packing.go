// Package packing implements the candidate-solution data model shared by
// every search in this module: the Packing itself, its neighbourhood, the
// two interchangeable quality orders, the repair routine, and the two
// initial-packing generators.
package packing

import (
	"fmt"

	"github.com/binpack-go/solver/internal/bperrors"
	"github.com/binpack-go/solver/internal/instance"
)

// Packing is a candidate solution: every item assigned to exactly one bin,
// plus the derived per-bin fill weights. A Packing is logically immutable
// once exposed to search code; transformations return a new Packing.
//
// Invariants (checked by Validate, enforced by every constructor):
//
//	I1: every item has exactly one bin (len(assignment) == len(inst.Items))
//	I2: for all b, 0 < fill[b] <= capacity
//	I3: sum(fill) == sum(itemWeight)
//	I4: bin indices are dense in 0..k-1
type Packing struct {
	inst       *instance.Instance
	assignment []int
	fill       []float64
}

// New builds a Packing from an explicit item->bin assignment, computing
// fill from scratch and validating I1-I4. Used by InitialPacking and by
// tests; ordinary search code instead calls Clone or a Neighbour's
// Materialize.
func New(inst *instance.Instance, assignment []int) (*Packing, error) {
	if len(assignment) != len(inst.Items) {
		return nil, fmt.Errorf("assignment has %d entries, instance has %d items: %w", len(assignment), len(inst.Items), bperrors.ErrInvariantViolation)
	}

	k := 0
	for _, b := range assignment {
		if b+1 > k {
			k = b + 1
		}
	}

	fill := make([]float64, k)
	for i, b := range assignment {
		fill[b] += inst.Items[i]
	}

	p := &Packing{inst: inst, assignment: append([]int(nil), assignment...), fill: fill}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks invariants I1-I4 against the instance's item weights.
func (p *Packing) Validate() error {
	if len(p.assignment) != len(p.inst.Items) {
		return fmt.Errorf("assignment length %d != item count %d: %w", len(p.assignment), len(p.inst.Items), bperrors.ErrInvariantViolation)
	}

	want := make([]float64, len(p.fill))
	for i, b := range p.assignment {
		if b < 0 || b >= len(p.fill) {
			return fmt.Errorf("item %d assigned to out-of-range bin %d (k=%d): %w", i, b, len(p.fill), bperrors.ErrInvariantViolation)
		}
		want[b] += p.inst.Items[i]
	}

	var total float64
	for b, f := range p.fill {
		if f <= 0 || f > p.inst.Capacity+1e-9 {
			return fmt.Errorf("bin %d has fill %v outside (0, %v]: %w", b, f, p.inst.Capacity, bperrors.ErrInvariantViolation)
		}
		if diff := f - want[b]; diff > 1e-6 || diff < -1e-6 {
			return fmt.Errorf("bin %d fill %v does not match assigned item weights %v: %w", b, f, want[b], bperrors.ErrInvariantViolation)
		}
		total += f
	}

	var itemsTotal float64
	for _, w := range p.inst.Items {
		itemsTotal += w
	}
	if diff := total - itemsTotal; diff > 1e-6 || diff < -1e-6 {
		return fmt.Errorf("total fill %v does not match total item weight %v: %w", total, itemsTotal, bperrors.ErrInvariantViolation)
	}

	return nil
}

// Clone returns a deep copy, independent of the receiver.
func (p *Packing) Clone() *Packing {
	return &Packing{
		inst:       p.inst,
		assignment: append([]int(nil), p.assignment...),
		fill:       append([]float64(nil), p.fill...),
	}
}

// Instance returns the problem instance this packing assigns items from.
func (p *Packing) Instance() *instance.Instance { return p.inst }

// ContainersCount returns k, the current number of bins.
func (p *Packing) ContainersCount() int { return len(p.fill) }

// Fill returns the per-bin fill weights. Callers must not mutate the slice.
func (p *Packing) Fill() []float64 { return p.fill }

// BinOf returns the bin index holding the given item.
func (p *Packing) BinOf(item int) int { return p.assignment[item] }

// ItemsInBin returns the indices of every item assigned to bin b, ascending.
func (p *Packing) ItemsInBin(b int) []int {
	items := make([]int, 0)
	for i, ab := range p.assignment {
		if ab == b {
			items = append(items, i)
		}
	}
	return items
}

// ItemCount returns the number of items in the instance.
func (p *Packing) ItemCount() int { return len(p.assignment) }

// Slack returns capacity - fill[b].
func (p *Packing) Slack(b int) float64 { return p.inst.Capacity - p.fill[b] }
