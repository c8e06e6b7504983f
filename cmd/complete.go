package cmd

import (
	"flag"
	"strings"

	"github.com/etnz/fundtrend/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// predictors of flag values, by flag name. Other flags complete to anything, or
// nothing for booleans.
var predictors = map[string]complete.Predictor{
	"data-dir":   predict.Dirs("*"),
	"output-dir": predict.Dirs("*"),
	"profile":    predict.Files("*.yaml"),
	"by":         predict.Set{"fund", "account"},
	"html":       predict.Files("*.html"),
}

// Completion returns the shell completion of the commands registered in c.
//
// Calling Complete on it at the start of main lets the shell complete
// ftrend: run `COMP_INSTALL=1 ftrend` once to install it.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(flag.CommandLine),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(f)
		sub := &complete.Command{Flags: flagPredictors(f)}
		if cmd.Name() == "topic" {
			sub.Args = topicPredictor()
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}

func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		switch p, ok := predictors[fl.Name]; {
		case ok:
			flags[fl.Name] = p
		case isBool(fl):
			flags[fl.Name] = predict.Nothing
		default:
			flags[fl.Name] = predict.Something
		}
	})
	return flags
}

func isBool(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

func topicPredictor() complete.Predictor {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return predict.Nothing
	}
	return predict.Set(append(topics, "readme", "*"))
}

// Known reports whether name is a command registered in c.
func Known(c *subcommands.Commander, name string) bool {
	known := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		known = known || strings.EqualFold(cmd.Name(), name)
	})
	return known
}
