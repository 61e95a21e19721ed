package gapack

import (
	"math/rand"
	"testing"

	"github.com/binpack-go/solver/internal/instance"
	"github.com/binpack-go/solver/internal/packing"
)

func TestGenome_EvaluateRewardsFewerBins(t *testing.T) {
	inst := &instance.Instance{Name: "x", Capacity: 10, Items: []float64{5, 5, 5, 5}}
	twoBins := &genome{sol: NewSolution(inst, mustPacking(t, inst, []int{0, 0, 1, 1}))}
	fourBins := &genome{sol: NewSolution(inst, packing.WorstCase(inst))}

	scoreTwo, err := twoBins.Evaluate()
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	scoreFour, err := fourBins.Evaluate()
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	if scoreTwo >= scoreFour {
		t.Errorf("2-bin genome score %v should be lower (better, minimising) than 4-bin score %v", scoreTwo, scoreFour)
	}
}

func TestGenome_CloneIsIndependent(t *testing.T) {
	inst := &instance.Instance{Name: "x", Capacity: 10, Items: []float64{5, 5}}
	g := &genome{sol: NewSolution(inst, packing.WorstCase(inst))}
	clone := g.Clone().(*genome)

	_ = clone.sol.bins[0].Remove(clone.sol.bins[0].Items()[0])

	if len(g.sol.bins[0].Items()) == 0 {
		t.Error("Clone shares Solution state with the original genome")
	}
}

func TestGenome_MutateAndCrossoverPreserveItemCount(t *testing.T) {
	inst := &instance.Instance{Name: "x", Capacity: 10, Items: []float64{6, 5, 4, 3, 2, 1}}
	rng := rand.New(rand.NewSource(9))

	a := &genome{sol: NewSolution(inst, packing.FFRandom(inst, rng))}
	b := &genome{sol: NewSolution(inst, packing.FFRandom(inst, rng))}

	a.Mutate(rng)
	if p, err := a.sol.ToPacking(); err != nil || p.ItemCount() != len(inst.Items) {
		t.Fatalf("after Mutate: packing=%v err=%v", p, err)
	}

	a.Crossover(b, rng)
	if p, err := a.sol.ToPacking(); err != nil || p.ItemCount() != len(inst.Items) {
		t.Fatalf("after Crossover: packing=%v err=%v", p, err)
	}
}

func mustPacking(t *testing.T, inst *instance.Instance, assignment []int) *packing.Packing {
	t.Helper()
	p, err := packing.New(inst, assignment)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}
