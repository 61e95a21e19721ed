package packing

import (
	"math/rand"

	"github.com/binpack-go/solver/internal/instance"
)

// FFRandom builds a starting Packing with a randomised first-fit: items are
// offered to existing bins in order, but each bin that could legally accept
// the item is, with probability 0.5 (a fair Bernoulli skip), passed over
// anyway before a new bin is opened as the fallback. This seeds local
// search away from the deterministic first-fit corner of the search space
// without sacrificing feasibility.
func FFRandom(inst *instance.Instance, rng *rand.Rand) *Packing {
	bins := make([]*Bin, 0, len(inst.Items))

	for i, w := range inst.Items {
		item := ItemRef{Index: i, Weight: w}
		placed := false

		for _, b := range bins {
			if !b.CanInsert(item) {
				continue
			}
			if rng.Float64() > 0.5 {
				continue
			}
			_ = b.Insert(item)
			placed = true
			break
		}

		if !placed {
			bins = append(bins, NewBinWithItem(inst.Capacity, item))
		}
	}

	return fromBins(inst, bins)
}

// WorstCase places each item in its own bin, the feasible packing with the
// largest possible bin count. Used as a guaranteed-feasible fallback and as
// a worst-case baseline in benchmarking.
func WorstCase(inst *instance.Instance) *Packing {
	assignment := make([]int, len(inst.Items))
	for i := range assignment {
		assignment[i] = i
	}
	p, err := New(inst, assignment)
	if err != nil {
		panic(err)
	}
	return p
}

// fromBins converts a []*Bin (as produced by FFRandom or Fit) back into a
// Packing, relying on each Bin's Items() to recover the assignment.
func fromBins(inst *instance.Instance, bins []*Bin) *Packing {
	assignment := make([]int, len(inst.Items))
	for b, bin := range bins {
		for _, it := range bin.Items() {
			assignment[it.Index] = b
		}
	}
	p, err := New(inst, assignment)
	if err != nil {
		panic(err)
	}
	return p
}
