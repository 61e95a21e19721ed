// Package localsearch implements hill climbing and tabu search over the
// Packing neighbourhood, plus an opt-in bounded-parallel neighbourhood scan.
package localsearch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/binpack-go/solver/internal/packing"
	"github.com/binpack-go/solver/internal/solverlog"
)

// HillClimbParams configures the hill-climbing search.
type HillClimbParams struct {
	Quality  packing.QualityOrder
	Parallel bool // fan neighbourhood scoring out across runtime.NumCPU() workers
	Logger   *solverlog.Logger
}

// HillClimb runs best-improvement local search from start until no
// neighbour improves on the current packing, returning the local optimum.
// Every neighbour in the current packing's neighbourhood is scored under
// Quality; the strictly best one is applied, repeating until none improves.
func HillClimb(start *packing.Packing, params HillClimbParams) *packing.Packing {
	current := start
	step := 0

	for {
		neighbours := current.Neighbourhood()
		if len(neighbours) == 0 {
			break
		}

		best, bestPacking, ok := bestNeighbour(current, neighbours, params.Quality, params.Parallel)
		if !ok || !params.Quality.Less(bestPacking, current) {
			break
		}

		current = bestPacking
		step++
		_ = best
		if params.Logger != nil {
			params.Logger.Found("hill", step, current.ContainersCount(), packing.Score(current))
		}
	}

	if params.Logger != nil {
		params.Logger.Stop("hill", step, current.ContainersCount(), packing.Score(current))
	}

	return current
}

// bestNeighbour scores every neighbour and returns the strictly best one,
// its materialised Packing, and whether any neighbour existed. Sequential
// and parallel scans produce identical results: both compare each
// materialised candidate to the current incumbent with a strict Less, so
// ties are broken by neighbour emission order regardless of evaluation
// order.
func bestNeighbour(current *packing.Packing, neighbours []packing.Neighbour, quality packing.QualityOrder, parallel bool) (packing.Neighbour, *packing.Packing, bool) {
	if !parallel || len(neighbours) < 2*runtime.NumCPU() {
		return bestNeighbourSequential(neighbours, quality)
	}
	return bestNeighbourParallel(neighbours, quality)
}

func bestNeighbourSequential(neighbours []packing.Neighbour, quality packing.QualityOrder) (packing.Neighbour, *packing.Packing, bool) {
	var bestN packing.Neighbour
	var bestP *packing.Packing
	found := false

	for _, n := range neighbours {
		p := n.Materialize()
		if !found || quality.Less(p, bestP) {
			bestN, bestP, found = n, p, true
		}
	}
	return bestN, bestP, found
}

// bestNeighbourParallel distributes the neighbour list across
// runtime.NumCPU() workers via errgroup, each computing its own local
// champion, then reduces sequentially by emission order so results match
// bestNeighbourSequential exactly.
func bestNeighbourParallel(neighbours []packing.Neighbour, quality packing.QualityOrder) (packing.Neighbour, *packing.Packing, bool) {
	workers := runtime.NumCPU()
	chunk := (len(neighbours) + workers - 1) / workers

	type champion struct {
		idx int
		n   packing.Neighbour
		p   *packing.Packing
		ok  bool
	}
	champs := make([]champion, workers)

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= len(neighbours) {
			break
		}
		end := min(start+chunk, len(neighbours))
		w := w
		g.Go(func() error {
			slice := neighbours[start:end]
			var localN packing.Neighbour
			var localP *packing.Packing
			found := false
			for _, n := range slice {
				p := n.Materialize()
				if !found || quality.Less(p, localP) {
					localN, localP, found = n, p, true
				}
			}
			champs[w] = champion{idx: start, n: localN, p: localP, ok: found}
			return nil
		})
	}
	_ = g.Wait()

	var bestN packing.Neighbour
	var bestP *packing.Packing
	found := false
	for _, c := range champs {
		if !c.ok {
			continue
		}
		if !found || quality.Less(c.p, bestP) {
			bestN, bestP, found = c.n, c.p, true
		}
	}
	return bestN, bestP, found
}
