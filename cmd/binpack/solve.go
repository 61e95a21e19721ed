package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/binpack-go/solver/internal/antcolony"
	"github.com/binpack-go/solver/internal/config"
	"github.com/binpack-go/solver/internal/gapack"
	"github.com/binpack-go/solver/internal/instance"
	"github.com/binpack-go/solver/internal/localsearch"
	"github.com/binpack-go/solver/internal/packing"
	"github.com/binpack-go/solver/internal/solverlog"
)

// solveCommand runs one algorithm against one dataset and reports the
// resulting packing.
var solveCommand = &cli.Command{
	Name:      "solve",
	Usage:     "Run one search algorithm against one dataset",
	ArgsUsage: "<benchmark-file> <dataset>",
	Flags:     flagsSlice("algorithm", "quality", "tenure", "tabu-key", "seed", "parallel", "log-file", "verbose"),
	Action:    solveAction,
}

func solveAction(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("expected <benchmark-file> <dataset>, got %d args", c.Args().Len())
	}

	inst, err := loadDataset(c.Args().Get(0), c.Args().Get(1))
	if err != nil {
		return err
	}

	algo, err := config.ParseAlgorithm(c.String("algorithm"))
	if err != nil {
		return err
	}
	quality, err := config.ParseQuality(c.String("quality"))
	if err != nil {
		return err
	}
	tenure, err := config.ParseTenure(c.String("tenure"))
	if err != nil {
		return err
	}
	pairKeyed, err := config.ParseTabuKey(c.String("tabu-key"))
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(c)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := resolveSeed(c.Int64("seed"))
	rng := rand.New(rand.NewSource(seed))

	result, err := runAlgorithm(inst, algo, quality, tenure, pairKeyed, rng, c.Bool("parallel"), logger)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d bins (best known %d), seed %d\n", inst.Name, result.ContainersCount(), inst.BestKnown, seed)
	return nil
}

// runAlgorithm dispatches to the requested search and returns the resulting
// packing, converting gapack/antcolony representations back to a Packing.
func runAlgorithm(
	inst *instance.Instance,
	algo config.Algorithm,
	quality packing.QualityOrder,
	tenure localsearch.TenureFormula,
	pairKeyed bool,
	rng *rand.Rand,
	parallel bool,
	logger *solverlog.Logger,
) (*packing.Packing, error) {
	switch algo {
	case config.Hill:
		start := packing.FFRandom(inst, rng)
		return localsearch.HillClimb(start, localsearch.HillClimbParams{
			Quality:  quality,
			Parallel: parallel,
			Logger:   logger,
		}), nil

	case config.Tabu:
		start := packing.FFRandom(inst, rng)
		return localsearch.Search(start, localsearch.TabuParams{
			Quality:   quality,
			MaxSteps:  200,
			Tenure:    tenure,
			PairKeyed: pairKeyed,
			Logger:    logger,
		}), nil

	case config.GA:
		params := gapack.DefaultParams(rng)
		params.Logger = logger
		sol := gapack.Run(inst, params)
		return sol.ToPacking()

	case config.GAEaopt:
		sol, err := gapack.RunEaopt(inst, gapack.EaoptParams{NGenerations: 1000, Logger: logger})
		if err != nil {
			return nil, err
		}
		return sol.ToPacking()

	case config.ACO:
		params := antcolony.DefaultParams(rng)
		params.Logger = logger
		return antcolony.Run(inst, params)

	default:
		return nil, fmt.Errorf("unhandled algorithm %q", algo)
	}
}

// newLogger builds a solverlog.Logger writing to stdout and, if --log-file
// is set, to a JSONL file; the returned close func closes the file if one
// was opened.
func newLogger(c *cli.Command) (*solverlog.Logger, func(), error) {
	verbose := c.Bool("verbose")
	logPath := c.String("log-file")

	if logPath == "" {
		return solverlog.New(os.Stdout, nil, verbose), func() {}, nil
	}

	f, err := os.Create(logPath)
	if err != nil {
		return nil, nil, fmt.Errorf("creating log file %q: %w", logPath, err)
	}
	return solverlog.New(os.Stdout, f, verbose), func() {
		if err := f.Close(); err != nil {
			log.Printf("error closing log file: %v", err)
		}
	}, nil
}
