package localsearch

import (
	"testing"

	"github.com/binpack-go/solver/internal/instance"
	"github.com/binpack-go/solver/internal/packing"
)

func TestSearch_ImprovesOnWorstCase(t *testing.T) {
	inst := &instance.Instance{Name: "x", Capacity: 10, Items: []float64{6, 5, 4, 3, 2, 1}}
	start := packing.WorstCase(inst)
	quality := packing.MeanSquaredFill{}

	result := Search(start, TabuParams{
		Quality:  quality,
		MaxSteps: 200,
		Tenure:   ConstTenure(3),
	})

	if !quality.Less(result, start) {
		t.Errorf("tabu search result (%d bins) is not better than worst case (%d bins)", result.ContainersCount(), start.ContainersCount())
	}
}

func TestSearch_StopsAtMaxSteps(t *testing.T) {
	inst := &instance.Instance{Name: "x", Capacity: 10, Items: []float64{5, 5}}
	start := packing.WorstCase(inst)

	// A 2-item instance converges in very few steps regardless of budget;
	// this just confirms Search terminates and returns a valid packing.
	result := Search(start, TabuParams{
		Quality:  packing.MeanSquaredFill{},
		MaxSteps: 5,
		Tenure:   ConstTenure(1),
	})

	if err := result.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestTenureFormulas(t *testing.T) {
	if got := ConstTenure(7)(100, 10); got != 7 {
		t.Errorf("ConstTenure(7)(100,10) = %d, want 7", got)
	}
	if got := SqrtNTenure(100, 10); got != 12 {
		t.Errorf("SqrtNTenure(100,10) = %d, want 12", got)
	}
	if got := SqrtNKTenure(100, 10); got != 37 {
		t.Errorf("SqrtNKTenure(100,10) = %d, want 37", got)
	}
	// floor(1.2 * sqrt(12*1)) = floor(4.157) = 4.
	if got := SqrtNKTenure(12, 1); got != 4 {
		t.Errorf("SqrtNKTenure(12,1) = %d, want 4", got)
	}
}

func TestSearch_PairKeyed_ReachesValidPacking(t *testing.T) {
	inst := &instance.Instance{Name: "x", Capacity: 10, Items: []float64{6, 5, 4, 3, 2, 1}}
	start := packing.WorstCase(inst)
	quality := packing.MeanSquaredFill{}

	result := Search(start, TabuParams{
		Quality:   quality,
		MaxSteps:  200,
		Tenure:    SqrtNKTenure,
		PairKeyed: true,
	})

	if err := result.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !quality.Less(result, start) {
		t.Errorf("pair-keyed tabu search result (%d bins) is not better than worst case (%d bins)", result.ContainersCount(), start.ContainersCount())
	}
}

func TestApplyTenure_PairKeyedUsesTenurePlusOne(t *testing.T) {
	memory := make(map[tabuKey]int)
	n := packing.Neighbour{Kind: packing.Move, FromBin: 0, ToBin: 1, Item: 2}

	applyTenure(memory, n, true, 4)

	for _, bi := range n.ChangedKeys() {
		k := tabuKey{bin: bi[0], item: bi[1]}
		if memory[k] != 5 {
			t.Errorf("pair-keyed applyTenure: memory[%+v] = %d, want tenure+1 = 5", k, memory[k])
		}
	}
}

func TestApplyTenure_ItemKeyedUsesTenure(t *testing.T) {
	memory := make(map[tabuKey]int)
	n := packing.Neighbour{Kind: packing.Move, FromBin: 0, ToBin: 1, Item: 2}

	applyTenure(memory, n, false, 4)

	for _, item := range n.ChangedItems() {
		k := tabuKey{bin: -1, item: item}
		if memory[k] != 4 {
			t.Errorf("item-keyed applyTenure: memory[%+v] = %d, want tenure = 4", k, memory[k])
		}
	}
}
