package antcolony

import (
	"math/rand"
	"testing"

	"github.com/binpack-go/solver/internal/instance"
	"github.com/binpack-go/solver/internal/packing"
)

func TestConstruct_ProducesFeasiblePacking(t *testing.T) {
	inst := &instance.Instance{Name: "x", Capacity: 10, Items: []float64{6, 5, 4, 3, 2, 1}}
	trail := NewPheromoneTrail(inst.Items, 0.75, ClampZero)
	rng := rand.New(rand.NewSource(1))

	sol := construct(inst, trail, rng)

	var total float64
	seen := make(map[int]bool)
	for _, b := range sol.bins {
		if b.Size() > b.Capacity()+1e-9 {
			t.Fatalf("bin overflows capacity: size %v > %v", b.Size(), b.Capacity())
		}
		for _, it := range b.Items() {
			if seen[it.Index] {
				t.Fatalf("item %d placed in more than one bin", it.Index)
			}
			seen[it.Index] = true
			total += it.Weight
		}
	}
	if len(seen) != len(inst.Items) {
		t.Fatalf("construct placed %d items, want %d", len(seen), len(inst.Items))
	}
}

func TestMutate_KeepsEveryItem(t *testing.T) {
	inst := &instance.Instance{Name: "x", Capacity: 10, Items: []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}}
	trail := NewPheromoneTrail(inst.Items, 0.75, ClampZero)
	rng := rand.New(rand.NewSource(2))

	sol := construct(inst, trail, rng)
	mutated := mutate(sol, rng)

	var seen int
	for _, b := range mutated.bins {
		seen += len(b.Items())
	}
	if seen != len(inst.Items) {
		t.Errorf("mutate lost items: got %d, want %d", seen, len(inst.Items))
	}
}

func TestRun_ConvergesOnTrivialInstance(t *testing.T) {
	inst := &instance.Instance{Name: "x", Capacity: 10, Items: []float64{5, 5, 5, 5}, BestKnown: 2}
	rng := rand.New(rand.NewSource(3))

	params := DefaultParams(rng)
	params.MaxGenerations = 50

	result, err := Run(inst, params)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.ContainersCount() != inst.BestKnown {
		t.Errorf("Run found %d bins, want %d", result.ContainersCount(), inst.BestKnown)
	}
}

func TestWorstBin_ReturnsLightest(t *testing.T) {
	a := packing.NewBinWithItem(10, packing.ItemRef{Index: 0, Weight: 7})
	b := packing.NewBinWithItem(10, packing.ItemRef{Index: 1, Weight: 2})
	bins := []*packing.Bin{a, b}

	if idx := worstBin(bins); idx != 1 {
		t.Errorf("worstBin = %d, want 1", idx)
	}
}
