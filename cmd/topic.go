package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/fundtrend/docs"
	"github.com/google/subcommands"
)

// topicCmd prints the embedded ftrend documentation.
type topicCmd struct {
	list bool
	raw  bool
	out  io.Writer // os.Stdout when nil
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the ftrend documentation" }
func (*topicCmd) Usage() string {
	return `ftrend topic [-list] [-raw] [<topic>...]

Prints the documentation of ftrend: the CSV export layout, the classification
profile and the commands. Without a topic, the readme is printed; "*" prints
every topic.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "list the available topics")
	f.BoolVar(&c.raw, "raw", false, "print the markdown source instead of rendering it")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	out := c.out
	if out == nil {
		out = os.Stdout
	}

	if c.list {
		topics, err := docs.GetAllTopics()
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not list topics: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(out, strings.Join(append([]string{"readme"}, topics...), "\n"))
		return subcommands.ExitSuccess
	}

	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}
	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not read documentation: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.raw {
		fmt.Fprint(out, doc)
		return subcommands.ExitSuccess
	}
	printMarkdown(out, doc)
	return subcommands.ExitSuccess
}
