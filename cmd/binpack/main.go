package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// main sets up the CLI application and registers commands.
func main() {
	app := &cli.Command{
		Name:  "binpack",
		Usage: "Run one-dimensional bin-packing metaheuristics against OR-library benchmarks",
		Commands: []*cli.Command{
			solveCommand,
			listCommand,
			benchCommand,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
