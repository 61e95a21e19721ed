package localsearch

import (
	"math"
	"strconv"

	"github.com/binpack-go/solver/internal/packing"
	"github.com/binpack-go/solver/internal/solverlog"
)

// TenureFormula computes the tabu tenure (in steps) from the instance size.
type TenureFormula func(itemsCount, containersCount int) int

// ConstTenure returns a TenureFormula that always yields n.
func ConstTenure(n int) TenureFormula {
	return func(int, int) int { return n }
}

// SqrtNTenure scales tenure with sqrt(itemsCount), the variant that ignores
// bin count.
func SqrtNTenure(itemsCount, _ int) int {
	return int(math.Sqrt(float64(itemsCount)) * 1.2)
}

// SqrtNKTenure is the original tenure formula: sqrt(itemsCount *
// containersCount) * 1.2.
func SqrtNKTenure(itemsCount, containersCount int) int {
	return int(math.Sqrt(float64(itemsCount*containersCount)) * 1.2)
}

// TabuParams configures tabu search.
type TabuParams struct {
	Quality   packing.QualityOrder
	MaxSteps  int // step budget; original uses 200
	Tenure    TenureFormula
	PairKeyed bool // true: tenure keyed on (bin, item) as in the original; false: keyed on item alone
	Logger    *solverlog.Logger
}

type tabuKey struct {
	bin  int // -1 when not PairKeyed
	item int
}

// Search runs tabu search from start for at most params.MaxSteps steps,
// returning the best packing visited. A short-term memory records, per
// (bin, item) pair (or per item alone, when not PairKeyed), how many more
// steps a move touching that pair remains forbidden; every step ages the
// whole memory by one. A candidate whose relevant pairs are all tabu is
// still taken if no non-tabu candidate exists (aspiration-by-least-tabu),
// preferring whichever tabu candidate carries the smallest total penalty.
func Search(start *packing.Packing, params TabuParams) *packing.Packing {
	current := start
	best := start
	memory := make(map[tabuKey]int)

	tenure := params.Tenure(current.ItemCount(), current.ContainersCount())
	params.Logger.Verbose("tabu", "tabu tenure "+strconv.Itoa(tenure))

	step := 0
	for ; step < params.MaxSteps; step++ {
		neighbours := current.Neighbourhood()
		if len(neighbours) == 0 {
			break
		}

		var bestN *packing.Neighbour
		var bestP *packing.Packing
		var laxN *packing.Neighbour
		var laxP *packing.Packing
		minTabu := math.MaxInt

		for idx := range neighbours {
			n := neighbours[idx]
			overall := tabuPenalty(memory, n, params.PairKeyed)

			if overall > 0 {
				if overall < minTabu {
					minTabu = overall
					laxN = &neighbours[idx]
					laxP = n.Materialize()
				}
				continue
			}

			p := n.Materialize()
			if bestP == nil || params.Quality.Less(p, bestP) {
				bestN = &neighbours[idx]
				bestP = p
			}
		}

		if bestN != nil {
			params.Logger.Found("tabu", step, bestP.ContainersCount(), packing.Score(bestP))
		}

		var chosenN *packing.Neighbour
		var chosenP *packing.Packing
		switch {
		case bestN != nil:
			chosenN, chosenP = bestN, bestP
			if params.Quality.Less(current, chosenP) {
				params.Logger.Verbose("tabu", "bad result accepted to escape plateau")
			}
			applyTenure(memory, *chosenN, params.PairKeyed, tenure)
			if params.Quality.Less(chosenP, best) {
				best = chosenP
				params.Logger.BestKnown("tabu", step, best.ContainersCount())
			}
		case laxN != nil:
			chosenN, chosenP = laxN, laxP
			if params.Quality.Less(chosenP, best) {
				best = chosenP
				params.Logger.BestKnown("tabu", step, best.ContainersCount())
			}
		default:
			// every neighbour is tabu with no aspiration candidate: stuck
			step++
		}

		if chosenN == nil {
			break
		}

		if chosenN.Kind == packing.Move && chosenN.DeletesBin {
			rekeyAfterBinDeletion(memory, chosenN.FromBin)
		}

		current = chosenP
		ageMemory(memory)
	}

	params.Logger.Stop("tabu", step, best.ContainersCount(), packing.Score(best))
	return best
}

func tabuPenalty(memory map[tabuKey]int, n packing.Neighbour, pairKeyed bool) int {
	total := 0
	if pairKeyed {
		for _, bi := range n.ChangedKeys() {
			if t, ok := memory[tabuKey{bin: bi[0], item: bi[1]}]; ok && t > 0 {
				total += t
			}
		}
		return total
	}
	for _, item := range n.ChangedItems() {
		if t, ok := memory[tabuKey{bin: -1, item: item}]; ok && t > 0 {
			total += t
		}
	}
	return total
}

func applyTenure(memory map[tabuKey]int, n packing.Neighbour, pairKeyed bool, tenure int) {
	if pairKeyed {
		for _, bi := range n.ChangedKeys() {
			memory[tabuKey{bin: bi[0], item: bi[1]}] = tenure + 1
		}
		return
	}
	for _, item := range n.ChangedItems() {
		memory[tabuKey{bin: -1, item: item}] = tenure
	}
}

// rekeyAfterBinDeletion mirrors the original's short-term-memory row
// shift: a deleted bin's own entries are dropped, and every entry keyed on
// a higher bin index moves down by one to track the renumbering done by
// Neighbour.Materialize's removeBin.
func rekeyAfterBinDeletion(memory map[tabuKey]int, deleted int) {
	next := make(map[tabuKey]int, len(memory))
	for k, v := range memory {
		switch {
		case k.bin == deleted:
			continue
		case k.bin > deleted:
			next[tabuKey{bin: k.bin - 1, item: k.item}] = v
		default:
			next[k] = v
		}
	}
	for k := range memory {
		delete(memory, k)
	}
	for k, v := range next {
		memory[k] = v
	}
}

func ageMemory(memory map[tabuKey]int) {
	for k, v := range memory {
		if v <= 1 {
			delete(memory, k)
			continue
		}
		memory[k] = v - 1
	}
}

