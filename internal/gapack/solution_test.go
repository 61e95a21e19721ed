package gapack

import (
	"math/rand"
	"testing"

	"github.com/binpack-go/solver/internal/instance"
	"github.com/binpack-go/solver/internal/packing"
)

func smallInstance() *instance.Instance {
	return &instance.Instance{Name: "x", Capacity: 10, Items: []float64{6, 5, 4, 3, 2, 1}}
}

func TestSolution_RoundTripsThroughPacking(t *testing.T) {
	inst := smallInstance()
	p := packing.WorstCase(inst)
	sol := NewSolution(inst, p)

	back, err := sol.ToPacking()
	if err != nil {
		t.Fatalf("ToPacking: %v", err)
	}
	if back.ContainersCount() != p.ContainersCount() {
		t.Errorf("ContainersCount = %d, want %d", back.ContainersCount(), p.ContainersCount())
	}
}

func TestSolution_Equal_IgnoresBinOrder(t *testing.T) {
	inst := smallInstance()
	p := packing.WorstCase(inst)
	a := NewSolution(inst, p)
	b := NewSolution(inst, p)
	b.bins[0], b.bins[1] = b.bins[1], b.bins[0]

	if !Equal(a, b) {
		t.Error("Solutions with the same bins in different order should be Equal")
	}
}

func TestSolution_Equal_DetectsDifference(t *testing.T) {
	inst := smallInstance()
	rng := rand.New(rand.NewSource(1))
	a := NewSolution(inst, packing.FFRandom(inst, rng))
	b := NewSolution(inst, packing.WorstCase(inst))

	if Equal(a, b) {
		t.Error("structurally different solutions should not be Equal")
	}
}

func TestSolution_Clone_Independent(t *testing.T) {
	inst := smallInstance()
	sol := NewSolution(inst, packing.WorstCase(inst))
	clone := sol.Clone()

	_ = clone.bins[0].Remove(clone.bins[0].Items()[0])

	if len(sol.bins[0].Items()) == 0 {
		t.Error("Clone shares bin state with the original Solution")
	}
}
