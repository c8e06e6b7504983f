package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundtrend"
	"github.com/etnz/fundtrend/chart"
	"github.com/etnz/fundtrend/renderer"
	"github.com/google/subcommands"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	selection
	by string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "draw the stacked bar chart of valuations over time" }
func (*chartCmd) Usage() string {
	return `ftrend chart [-by fund|account] [-stocks] [-range <from..to>]

  Reads every export of the data directory and writes the chart as
  fund_distribution_over_time.png and fund_distribution_over_time.html
  in the output directory.

  This is the command run when ftrend is called without arguments.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	c.selection.SetFlags(f)
	f.StringVar(&c.by, "by", "fund", "Series of the chart: fund or account")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	by, err := fundtrend.ParseDimension(c.by)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	table, report, err := c.load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading exports: %v\n", err)
		return subcommands.ExitFailure
	}

	pivot := table.Pivot(by)
	outputs, err := chart.Write(*outputDir, pivot, chart.DefaultOptions(table.Currency()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing chart: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(os.Stdout, renderer.RenderRun(renderer.NewRun(*dataDir, table, report, pivot, outputs)))
	return subcommands.ExitSuccess
}
