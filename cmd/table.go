package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundtrend"
	"github.com/etnz/fundtrend/renderer"
	"github.com/google/subcommands"
)

// tableCmd holds the flags for the 'table' subcommand.
type tableCmd struct {
	selection
	by string
}

func (*tableCmd) Name() string     { return "table" }
func (*tableCmd) Synopsis() string { return "display valuations as a date by fund table" }
func (*tableCmd) Usage() string {
	return `ftrend table [-by fund|account] [-stocks] [-range <from..to>]

  Displays the table the chart is drawn from: one row per date and one
  column per fund (or account type), zero where a fund is not held.
`
}

func (c *tableCmd) SetFlags(f *flag.FlagSet) {
	c.selection.SetFlags(f)
	f.StringVar(&c.by, "by", "fund", "Columns of the table: fund or account")
}

func (c *tableCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	by, err := fundtrend.ParseDimension(c.by)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	table, _, err := c.load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading exports: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(os.Stdout, renderer.TableMarkdown(table.Pivot(by), "Valuation by "+by.String()))
	return subcommands.ExitSuccess
}
