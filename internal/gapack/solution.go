// Package gapack implements the grouping genetic algorithm: a steady-state
// population of bin-level solutions evolved by bin-segment crossover and
// bin-level mutation, plus an alternate driver built on eaopt for the same
// representation.
package gapack

import (
	"github.com/binpack-go/solver/internal/instance"
	"github.com/binpack-go/solver/internal/packing"
)

// Solution is one individual: a set of bins covering every item exactly
// once. Unlike Packing, a Solution's bin order is meaningful (crossover
// operates on contiguous bin segments) and its equality test is
// multiset-of-bins equality, not structural equality.
type Solution struct {
	inst *instance.Instance
	bins []*packing.Bin
}

// NewSolution builds a Solution from an initial Packing, grouping items by
// bin.
func NewSolution(inst *instance.Instance, p *packing.Packing) *Solution {
	bins := make([]*packing.Bin, p.ContainersCount())
	for b := range bins {
		bins[b] = packing.NewBin(inst.Capacity)
	}
	for i := 0; i < p.ItemCount(); i++ {
		b := p.BinOf(i)
		_ = bins[b].Insert(packing.ItemRef{Index: i, Weight: inst.Items[i]})
	}
	return &Solution{inst: inst, bins: bins}
}

// Bins returns the solution's bins. Callers must not mutate the slice.
func (s *Solution) Bins() []*packing.Bin { return s.bins }

// Clone returns a deep copy, independent of the receiver.
func (s *Solution) Clone() *Solution {
	bins := make([]*packing.Bin, len(s.bins))
	for i, b := range s.bins {
		bins[i] = b.Clone()
	}
	return &Solution{inst: s.inst, bins: bins}
}

// Fitness returns the mean-squared-fill score: higher is better.
func (s *Solution) Fitness() float64 {
	if len(s.bins) == 0 {
		return 0
	}
	var sum float64
	for _, b := range s.bins {
		sum += b.Fitness()
	}
	return sum / float64(len(s.bins))
}

// ToPacking converts the solution back into a packing.Packing.
func (s *Solution) ToPacking() (*packing.Packing, error) {
	assignment := make([]int, len(s.inst.Items))
	for b, bin := range s.bins {
		for _, it := range bin.Items() {
			assignment[it.Index] = b
		}
	}
	return packing.New(s.inst, assignment)
}

// Equal reports whether s and other hold the same multiset of bins (a bin
// set equal up to reordering and up to the identity of equal bins). This
// is the population-uniqueness test used by the steady-state GA: two
// solutions that assign items identically, modulo bin order, are
// considered duplicates even if their scalar fitness happens to coincide
// with an unrelated solution's.
func Equal(a, b *Solution) bool {
	if len(a.bins) != len(b.bins) {
		return false
	}
	used := make([]bool, len(b.bins))
	for _, ba := range a.bins {
		matched := false
		for j, bb := range b.bins {
			if used[j] {
				continue
			}
			if packing.Equal(ba, bb) {
				used[j] = true
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}
