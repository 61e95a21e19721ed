package antcolony

import (
	"math"
	"math/rand"
	"sort"

	"github.com/binpack-go/solver/internal/instance"
	"github.com/binpack-go/solver/internal/packing"
	"github.com/binpack-go/solver/internal/solverlog"
)

// Params configures the ant colony search.
type Params struct {
	AntsPerGen     int // ants constructing a solution each generation; original hardcodes 10
	MaxGenerations int
	Evaporation    float64 // rho, original uses 0.75
	MinimalTrail   float64 // floor applied after each reinforcement; ClampZero or ClampLongRun(Evaporation)
	Logger         *solverlog.Logger
	Rng            *rand.Rand
}

// DefaultParams returns the original algorithm's parameterisation.
func DefaultParams(rng *rand.Rand) Params {
	return Params{
		AntsPerGen:     10,
		MaxGenerations: 1000,
		Evaporation:    0.75,
		MinimalTrail:   ClampZero,
		Rng:            rng,
	}
}

type solution struct {
	bins []*packing.Bin
}

func (s *solution) fitness() float64 {
	if len(s.bins) == 0 {
		return 0
	}
	var sum float64
	for _, b := range s.bins {
		sum += b.Fitness()
	}
	return sum / float64(len(s.bins))
}

// Run constructs AntsPerGen solutions per generation via pheromone-guided
// best-fit-decreasing-flavoured placement, keeps the generation's best,
// reinforces the trail by its fitness, and evaporates the rest. Returns
// the best packing seen across all generations, stopping early once its
// bin count matches the instance's published best-known value.
func Run(inst *instance.Instance, params Params) (*packing.Packing, error) {
	trail := NewPheromoneTrail(inst.Items, params.Evaporation, params.MinimalTrail)

	var best *solution

	for gen := 0; gen < params.MaxGenerations; gen++ {
		var genBest *solution

		for a := 0; a < params.AntsPerGen; a++ {
			s := construct(inst, trail, params.Rng)
			s = mutate(s, params.Rng)
			if genBest == nil || s.fitness() > genBest.fitness() {
				genBest = s
			}
		}

		if best == nil || genBest.fitness() > best.fitness() {
			best = genBest
			params.Logger.Found("aco", gen, len(best.bins), best.fitness())
		}

		params.Logger.Generation("aco", gen, len(best.bins), best.fitness())

		if len(best.bins) == inst.BestKnown {
			break
		}

		trail.Evaporate()
		trail.Reinforce(genBest.bins, genBest.fitness())
	}

	return toPacking(inst, best)
}

// construct builds one ant's solution: items are offered heaviest-first;
// for the currently-open bin, every item that still fits is a candidate,
// weighted by pheromoneForBinAndItem(bin, item) * weight^beta (falling
// back to weight^beta alone if every candidate's pheromone-weighted score
// is zero), and one is chosen by roulette selection. A bin closes and a
// new one opens once no remaining item fits.
func construct(inst *instance.Instance, trail *PheromoneTrail, rng *rand.Rand) *solution {
	loose := make([]packing.ItemRef, len(inst.Items))
	for i, w := range inst.Items {
		loose[i] = packing.ItemRef{Index: i, Weight: w}
	}
	sort.Slice(loose, func(i, j int) bool { return loose[i].Weight > loose[j].Weight })

	var bins []*packing.Bin
	for len(loose) > 0 {
		bin := packing.NewBin(inst.Capacity)

		for {
			candidates := make([]packing.ItemRef, 0, len(loose))
			for _, it := range loose {
				if bin.CanInsert(it) {
					candidates = append(candidates, it)
				}
			}
			if len(candidates) == 0 {
				break
			}

			probabilities := make([]float64, len(candidates))
			var sum float64
			for i, it := range candidates {
				probabilities[i] = trail.ForBinAndItem(bin, it) * math.Pow(it.Weight, beta)
				sum += probabilities[i]
			}
			if sum == 0 {
				sum = 0
				for i, it := range candidates {
					probabilities[i] = math.Pow(it.Weight, beta)
					sum += probabilities[i]
				}
			}
			for i := range probabilities {
				probabilities[i] /= sum
			}

			chosen := selectItem(probabilities, rng)
			item := candidates[chosen]
			_ = bin.Insert(item)
			loose = removeItem(loose, item)
		}

		bins = append(bins, bin)
	}

	return &solution{bins: bins}
}

func selectItem(probabilities []float64, rng *rand.Rand) int {
	r := rng.Float64()
	var sum float64
	for i := 0; i < len(probabilities)-1; i++ {
		sum += probabilities[i]
		if r <= sum {
			return i
		}
	}
	return len(probabilities) - 1
}

func removeItem(items []packing.ItemRef, target packing.ItemRef) []packing.ItemRef {
	for i, it := range items {
		if it.Index == target.Index {
			return append(items[:i], items[i+1:]...)
		}
	}
	return items
}

// mutate removes the 5 currently-worst bins (recomputed after each
// removal) and 5 further random bins, then repairs with Fit. Distinct from
// gapack's mutation: no probabilistic best-bin drop, always 5+5 removals.
func mutate(s *solution, rng *rand.Rand) *solution {
	bins := cloneBins(s.bins)
	var loose []packing.ItemRef

	for i := 0; i < 5 && len(bins) > 0; i++ {
		idx := worstBin(bins)
		loose = append(loose, bins[idx].Items()...)
		bins = append(bins[:idx], bins[idx+1:]...)
	}

	for i := 0; i < 5 && len(bins) > 0; i++ {
		idx := rng.Intn(len(bins))
		loose = append(loose, bins[idx].Items()...)
		bins = append(bins[:idx], bins[idx+1:]...)
	}

	// With every bin removed, hand Fit an empty bin of the original capacity
	// so the bins it opens keep that capacity.
	if len(bins) == 0 && len(s.bins) > 0 {
		bins = append(bins, packing.NewBin(s.bins[0].Capacity()))
	}

	bins = packing.Fit(bins, loose)
	return &solution{bins: bins}
}

func worstBin(bins []*packing.Bin) int {
	worst := 0
	for i := 1; i < len(bins); i++ {
		if bins[i].Size() < bins[worst].Size() {
			worst = i
		}
	}
	return worst
}

func cloneBins(bins []*packing.Bin) []*packing.Bin {
	out := make([]*packing.Bin, len(bins))
	for i, b := range bins {
		out[i] = b.Clone()
	}
	return out
}

func toPacking(inst *instance.Instance, s *solution) (*packing.Packing, error) {
	assignment := make([]int, len(inst.Items))
	for b, bin := range s.bins {
		for _, it := range bin.Items() {
			assignment[it.Index] = b
		}
	}
	return packing.New(inst, assignment)
}
