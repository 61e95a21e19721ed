package gapack

import (
	"math/rand"

	"github.com/binpack-go/solver/internal/instance"
	"github.com/binpack-go/solver/internal/packing"
	"github.com/binpack-go/solver/internal/solverlog"
)

// Params configures the steady-state grouping GA.
type Params struct {
	PopulationSize           int
	MaxGenerations           int
	CrossoverProb            float64 // probability of crossover vs mutation each generation
	PreferBetterProb         float64 // tournament bias toward the fitter of each pair
	MutationDropBestProb     float64 // chance mutation also empties the fullest bin
	MutationExtraBinsRemoved int     // additional random bins emptied by mutation
	Logger                   *solverlog.Logger
	Rng                      *rand.Rand
}

// DefaultParams returns the original algorithm's parameterisation.
func DefaultParams(rng *rand.Rand) Params {
	return Params{
		PopulationSize:           100,
		MaxGenerations:           1000,
		CrossoverProb:            0.8,
		PreferBetterProb:         0.8,
		MutationDropBestProb:     0.2,
		MutationExtraBinsRemoved: 5,
		Rng:                      rng,
	}
}

// Run executes the steady-state grouping GA: starting from a population of
// distinct FFRandom solutions, each generation produces one child by
// crossover (with probability CrossoverProb) or mutation, discards it if
// it duplicates an existing member (by multiset-of-bins equality), and
// otherwise inserts it and evicts the population's current worst. Returns
// the best solution found, stopping early once its bin count matches the
// instance's published best-known value.
func Run(inst *instance.Instance, params Params) *Solution {
	population := make([]*Solution, 0, params.PopulationSize)
	for len(population) < params.PopulationSize {
		p := packing.FFRandom(inst, params.Rng)
		s := NewSolution(inst, p)
		if !includes(population, s) {
			population = append(population, s)
		}
	}

	best := indexOfBest(population)

	for gen := 0; gen < params.MaxGenerations; {
		if len(population[best].Bins()) == inst.BestKnown {
			break
		}

		var child *Solution
		if params.Rng.Float64() <= params.CrossoverProb {
			a := tournament(population, 4, params.PreferBetterProb, params.Rng)
			b := tournament(population, 4, params.PreferBetterProb, params.Rng)
			child = crossover(population[a], population[b], params)
		} else {
			w := tournament(population, 8, params.PreferBetterProb, params.Rng)
			child = mutate(population[w], params)
		}

		if includes(population, child) {
			continue
		}

		population = append(population, child)
		worst := indexOfWorst(population)
		population = append(population[:worst], population[worst+1:]...)
		if worst < best {
			best--
		}
		if child.Fitness() > population[best].Fitness() {
			best = len(population) - 1
		}

		gen++
		params.Logger.Generation("ga", gen, len(population[best].Bins()), population[best].Fitness())
	}

	return population[best]
}

func includes(population []*Solution, s *Solution) bool {
	for _, p := range population {
		if Equal(p, s) {
			return true
		}
	}
	return false
}

func indexOfBest(population []*Solution) int {
	best := 0
	for i := 1; i < len(population); i++ {
		if population[i].Fitness() > population[best].Fitness() {
			best = i
		}
	}
	return best
}

func indexOfWorst(population []*Solution) int {
	worst := 0
	for i := 1; i < len(population); i++ {
		if population[i].Fitness() < population[worst].Fitness() {
			worst = i
		}
	}
	return worst
}

// tournament runs a single-elimination bracket of the given size (a power
// of two: 4 for binary tournament, 8 for trinary) and returns the winning
// population index. Each round the fitter of a pair wins with probability
// preferBetter; otherwise the pair's loser wins anyway, so the bracket
// occasionally surfaces a weaker solution.
func tournament(population []*Solution, size int, preferBetter float64, rng *rand.Rand) int {
	chosen := make([]int, size)
	for i := range chosen {
		chosen[i] = rng.Intn(len(population))
	}

	for n := size; n != 1; n /= 2 {
		for i := 0; i < n; i += 2 {
			better, worse := i, i+1
			if population[chosen[i+1]].Fitness() > population[chosen[i]].Fitness() {
				better, worse = i+1, i
			}
			winner := worse
			if rng.Float64() <= preferBetter {
				winner = better
			}
			chosen[i/2] = chosen[winner]
		}
	}
	return chosen[0]
}

// crossover builds a child by splicing a random contiguous bin segment
// from first into a copy of second's bins, then discarding (and later
// repairing via Fit) any other bin in the child that now shares an item
// with the spliced segment.
func crossover(first, second *Solution, params Params) *Solution {
	rng := params.Rng
	firstBins := first.bins
	secondBins := cloneBins(second.bins)

	if len(firstBins) < 2 || len(secondBins) < 2 {
		return first.Clone()
	}

	stop1 := rng.Intn(len(firstBins) - 1)
	stop2 := stop1
	for stop2 <= stop1 {
		stop2 = rng.Intn(len(firstBins))
	}

	segment := make([]*packing.Bin, stop2-stop1)
	insertedItems := make(map[int]bool, (stop2-stop1)*4)
	for i := range segment {
		segment[i] = firstBins[stop1+i].Clone()
		for _, it := range segment[i].Items() {
			insertedItems[it.Index] = true
		}
	}

	at := rng.Intn(len(secondBins) - 1)
	grown := make([]*packing.Bin, 0, len(secondBins)+len(segment))
	grown = append(grown, secondBins[:at]...)
	grown = append(grown, segment...)
	grown = append(grown, secondBins[at:]...)

	var loose []packing.ItemRef
	kept := make([]*packing.Bin, 0, len(grown))
	for i, b := range grown {
		if i >= at && i < at+len(segment) {
			kept = append(kept, b)
			continue
		}
		conflict := false
		for _, it := range b.Items() {
			if insertedItems[it.Index] {
				conflict = true
				break
			}
		}
		if conflict {
			for _, it := range b.Items() {
				if !insertedItems[it.Index] {
					loose = append(loose, it)
				}
			}
			continue
		}
		kept = append(kept, b)
	}

	kept = packing.Fit(kept, loose)
	return &Solution{inst: first.inst, bins: kept}
}

// mutate empties the solution's least-full bin (and, with probability
// MutationDropBestProb, its fullest bin too), plus MutationExtraBinsRemoved
// further random bins, then repairs the result with Fit.
func mutate(s *Solution, params Params) *Solution {
	bins := cloneBins(s.bins)
	rng := params.Rng

	bestBin, worstBin := 0, 0
	for i := 1; i < len(bins); i++ {
		if bins[i].Size() > bins[bestBin].Size() {
			bestBin = i
		}
		if bins[i].Size() < bins[worstBin].Size() {
			worstBin = i
		}
	}

	var loose []packing.ItemRef
	if rng.Float64() <= params.MutationDropBestProb {
		loose = append(loose, bins[bestBin].Items()...)
		bins = append(bins[:bestBin], bins[bestBin+1:]...)
		if bestBin < worstBin {
			worstBin--
		}
	}
	loose = append(loose, bins[worstBin].Items()...)
	bins = append(bins[:worstBin], bins[worstBin+1:]...)

	for i := 0; i < params.MutationExtraBinsRemoved && len(bins) > 0; i++ {
		idx := rng.Intn(len(bins))
		loose = append(loose, bins[idx].Items()...)
		bins = append(bins[:idx], bins[idx+1:]...)
	}

	bins = packing.Fit(bins, loose)
	return &Solution{inst: s.inst, bins: bins}
}

func cloneBins(bins []*packing.Bin) []*packing.Bin {
	out := make([]*packing.Bin, len(bins))
	for i, b := range bins {
		out[i] = b.Clone()
	}
	return out
}
