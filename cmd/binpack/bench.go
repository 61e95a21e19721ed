package main

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"

	"github.com/binpack-go/solver/internal/config"
)

// benchCommand runs every algorithm across a range of seeds against one
// dataset and summarises mean/best bin counts in a table.
var benchCommand = &cli.Command{
	Name:      "bench",
	Usage:     "Benchmark every algorithm across several seeds",
	ArgsUsage: "<benchmark-file> <dataset>",
	Flags:     flagsSlice("seeds", "quality", "tenure"),
	Action:    benchAction,
}

var benchAlgorithms = []config.Algorithm{
	config.Hill,
	config.Tabu,
	config.GA,
	config.GAEaopt,
	config.ACO,
}

func benchAction(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("expected <benchmark-file> <dataset>, got %d args", c.Args().Len())
	}

	inst, err := loadDataset(c.Args().Get(0), c.Args().Get(1))
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

	seeds := c.Int("seeds")

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Algorithm", "Best Bins", "Mean Bins", "Runs"})

	for _, algo := range benchAlgorithms {
		best := -1
		var sum int
		for i := 0; i < seeds; i++ {
			seed := int64(i + 1)
			rng := rand.New(rand.NewSource(seed))
			result, err := runAlgorithm(inst, algo, quality, tenure, false, rng, false, nil)
			if err != nil {
				return fmt.Errorf("%s: %w", algo, err)
			}
			bins := result.ContainersCount()
			sum += bins
			if best == -1 || bins < best {
				best = bins
			}
		}
		tw.AppendRow(table.Row{algo, best, fmt.Sprintf("%.2f", float64(sum)/float64(seeds)), seeds})
	}

	fmt.Printf("%s (best known %d)\n", inst.Name, inst.BestKnown)
	fmt.Println(tw.Render())
	return nil
}
