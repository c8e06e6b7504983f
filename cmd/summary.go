package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundtrend/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	selection
	html string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display totals per account type and the files read" }
func (*summaryCmd) Usage() string {
	return `ftrend summary [-stocks] [-range <from..to>] [-html <file>]

  Displays, for each date, the value held in each account type, then the
  list of files read with their counts of rows and sections.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.selection.SetFlags(f)
	f.StringVar(&c.html, "html", "", "Also write the summary as an HTML page to this `file`")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table, report, err := c.load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading exports: %v\n", err)
		return subcommands.ExitFailure
	}

	md := renderer.SummaryMarkdown(renderer.NewSummary(table, report))
	if c.html != "" {
		page, err := renderer.HTML("Portfolio Summary", md)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering HTML: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := os.WriteFile(c.html, []byte(page), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.html, err)
			return subcommands.ExitFailure
		}
	}
	printMarkdown(os.Stdout, md)
	return subcommands.ExitSuccess
}
