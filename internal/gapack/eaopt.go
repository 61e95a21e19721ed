package gapack

import (
	"math/rand"

	"github.com/MaxHalford/eaopt"

	"github.com/binpack-go/solver/internal/instance"
	"github.com/binpack-go/solver/internal/packing"
	"github.com/binpack-go/solver/internal/solverlog"
)

// genome adapts Solution to eaopt.Genome, the interface eaopt's generational
// and simulated-annealing drivers require: Evaluate, Mutate, Crossover,
// Clone.
type genome struct {
	sol *Solution
}

// Evaluate scores the genome for minimisation: bin count dominates, with
// the fractional mean-squared-fill score (always in [0,1]) breaking ties
// between equally-sized solutions.
func (g *genome) Evaluate() (float64, error) {
	return float64(len(g.sol.bins)) - g.sol.Fitness(), nil
}

func (g *genome) Mutate(rng *rand.Rand) {
	p := DefaultParams(rng)
	g.sol = mutate(g.sol, p)
}

func (g *genome) Crossover(other eaopt.Genome, rng *rand.Rand) {
	o := other.(*genome)
	p := DefaultParams(rng)
	g.sol = crossover(g.sol, o.sol, p)
}

func (g *genome) Clone() eaopt.Genome {
	return &genome{sol: g.sol.Clone()}
}

// EaoptParams configures the eaopt-backed alternate GA driver.
type EaoptParams struct {
	NGenerations uint
	Logger       *solverlog.Logger
}

// RunEaopt drives the same representation and operators as Run (bin-segment
// crossover, bin-removal mutation) through eaopt's off-the-shelf generational
// GA instead of the hand-written steady-state loop. Useful as a second
// opinion: same genome and operators, a differently-tuned
// population/selection/replacement strategy supplied by the library.
func RunEaopt(inst *instance.Instance, params EaoptParams) (*Solution, error) {
	cfg := eaopt.NewDefaultGAConfig()
	cfg.NGenerations = params.NGenerations
	cfg.Callback = func(ga *eaopt.GA) {
		best := ga.HallOfFame[0].Genome.(*genome).sol
		params.Logger.Generation("ga-eaopt", int(ga.Generations), len(best.Bins()), best.Fitness())
	}

	ga, err := cfg.NewGA()
	if err != nil {
		return nil, err
	}

	err = ga.Minimize(func(rng *rand.Rand) eaopt.Genome {
		p := packing.FFRandom(inst, rng)
		return &genome{sol: NewSolution(inst, p)}
	})
	if err != nil {
		return nil, err
	}

	best := ga.HallOfFame[0].Genome.(*genome).sol
	return best, nil
}
