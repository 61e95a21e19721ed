// Package main provides the CLI entrypoint for the binpack tool.
//
// flags.go centralises CLI flag definitions shared across commands.
//
// solve.go implements the "solve" command: runs one algorithm against one
// dataset and reports the resulting packing.
//
// list.go implements the "list" command: prints the datasets held in a
// benchmark file.
//
// bench.go implements the "bench" command: runs every algorithm across a
// range of seeds and summarises the results in a table.
package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// appFlagsMap centralizes flag definitions so commands can select only the
// ones they need via flagsSlice.
var appFlagsMap = map[string]cli.Flag{
	"algorithm": &cli.StringFlag{
		Name:    "algorithm",
		Aliases: []string{"a"},
		Usage:   "search to run: hill, tabu, ga, ga-eaopt, or aco",
		Value:   "hill",
	},
	"quality": &cli.StringFlag{
		Name:    "quality",
		Aliases: []string{"q"},
		Usage:   "neighbour ordering: lex (lexicographic-on-slack) or mean-sq (mean squared fill)",
		Value:   "lex",
	},
	"tenure": &cli.StringFlag{
		Name:  "tenure",
		Usage: "tabu tenure formula: const:N, sqrt-n, or sqrt-nk (tabu only)",
		Value: "sqrt-nk",
	},
	"tabu-key": &cli.StringFlag{
		Name:  "tabu-key",
		Usage: "tabu short-term-memory key: item (default) or pair, i.e. (bin, item) (tabu only)",
		Value: "item",
	},
	"seed": &cli.Int64Flag{
		Name:    "seed",
		Aliases: []string{"s"},
		Usage:   "random seed for reproducible results; uses current time if 0",
		Value:   0,
	},
	"parallel": &cli.BoolFlag{
		Name:  "parallel",
		Usage: "score the hill-climb neighbourhood across runtime.NumCPU() workers",
		Value: false,
	},
	"log-file": &cli.StringFlag{
		Name:    "log-file",
		Aliases: []string{"lf"},
		Usage:   "JSONL log file path for detailed search events",
	},
	"verbose": &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "emit diagnostic V: lines to the console",
		Value:   false,
	},
	"seeds": &cli.IntFlag{
		Name:  "seeds",
		Usage: "number of seeds to run each algorithm over",
		Value: 5,
		Action: func(ctx context.Context, c *cli.Command, value int) error {
			if value < 1 {
				return fmt.Errorf("--seeds must be at least 1 (got %d)", value)
			}
			return nil
		},
	},
}

// flagsSlice returns the cli.Flag values for the given keys from appFlagsMap.
func flagsSlice(keys ...string) []cli.Flag {
	flags := make([]cli.Flag, 0, len(keys))
	for _, k := range keys {
		if f, ok := appFlagsMap[k]; ok {
			flags = append(flags, f)
		}
	}
	return flags
}
