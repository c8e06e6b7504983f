package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/fundtrend/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	// Exits when called by the shell for completion.
	cmd.Completion(commander).Complete("ftrend")

	flag.Parse()
	ctx, err := cmd.Setup(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}

	if flag.NArg() == 0 {
		os.Exit(int(cmd.Default(ctx)))
	}
	if name := flag.Arg(0); !cmd.Known(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(ctx)))
}
