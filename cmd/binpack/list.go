package main

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"

	"github.com/binpack-go/solver/internal/instance"
)

// listCommand prints the datasets held in a benchmark file.
var listCommand = &cli.Command{
	Name:      "list",
	Usage:     "List the datasets in a benchmark file",
	ArgsUsage: "<benchmark-file>",
	Action:    listAction,
}

func listAction(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected <benchmark-file>, got %d args", c.Args().Len())
	}

	instances, err := instance.LoadFile(c.Args().Get(0))
	if err != nil {
		return err
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Name", "Capacity", "Items", "Best Known", "Lower Bound"})
	for i, in := range instances {
		tw.AppendRow(table.Row{i, in.Name, in.Capacity, len(in.Items), in.BestKnown, in.LowerBound()})
	}
	fmt.Println(tw.Render())
	return nil
}
