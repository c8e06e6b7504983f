// Package cmd implements the ftrend command line: it reads brokerage exports and charts
// the valuation of funds over time.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/fundtrend"
	"github.com/etnz/fundtrend/date"
	"github.com/etnz/fundtrend/logger"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&chartCmd{}, "pipeline")
	c.Register(&tableCmd{}, "pipeline")
	c.Register(&summaryCmd{}, "pipeline")
	c.Register(&exportCmd{}, "pipeline")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", "data", "Directory holding the brokerage CSV exports")
var outputDir = flag.String("output-dir", "graphs", "Directory where the charts are written")
var profileFile = flag.String("profile", "", "Path to a YAML layout profile. Defaults to the built-in profile.")
var Verbose = flag.Bool("v", false, "Log skipped rows and dropped sections")

// environment variables that override the flags not set on the command line.
var flagEnv = map[string]string{
	"data-dir":   EnvDataDir,
	"output-dir": EnvOutputDir,
	"profile":    EnvProfile,
	"v":          EnvVerbose,
}

// Setup completes the global flags with the environment, read from an optional .env
// file, and returns a context carrying the logger. It must be called after flag.Parse.
func Setup(ctx context.Context) (context.Context, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return ctx, fmt.Errorf("could not read .env file: %w", err)
	}
	if err := applyEnv(flag.CommandLine); err != nil {
		return ctx, err
	}
	log := logger.New(os.Stderr, *Verbose)
	return logger.WithContext(ctx, log), nil
}

// applyEnv sets the flags that were not set explicitly from their environment variable.
func applyEnv(flags *flag.FlagSet) error {
	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })
	for name, env := range flagEnv {
		value, ok := os.LookupEnv(env)
		if set[name] || !ok || value == "" {
			continue
		}
		if err := flags.Set(name, value); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", env, value, err)
		}
	}
	return nil
}

// Default runs the command used when ftrend is called without arguments.
func Default(ctx context.Context) subcommands.ExitStatus {
	c := &chartCmd{}
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	return c.Execute(ctx, f)
}

// selection holds the flags that select which holdings are loaded.
type selection struct {
	stocks bool
	period string
}

func (s *selection) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&s.stocks, "stocks", false, "Include stock holdings, not only funds")
	f.StringVar(&s.period, "range", "", "Restrict to dates in `from..to`. Either bound can be omitted.")
}

// load reads the data directory.
func (s *selection) load(ctx context.Context) (*fundtrend.Table, *fundtrend.Report, error) {
	var opts fundtrend.Options
	if *profileFile != "" {
		p, err := fundtrend.LoadProfile(*profileFile)
		if err != nil {
			return nil, nil, err
		}
		opts.Profile = p
	}
	if !s.stocks {
		opts.Assets = []fundtrend.AssetClass{fundtrend.Fund}
	}
	var r date.Range
	if s.period != "" {
		var err error
		if r, err = date.ParseRange(s.period); err != nil {
			return nil, nil, err
		}
	}

	table, report, err := fundtrend.Load(ctx, *dataDir, opts)
	if err != nil {
		return nil, nil, err
	}
	if !r.IsZero() {
		table = table.Between(r)
	}
	return table, report, nil
}

// printMarkdown renders markdown for the terminal, or prints it as is when it cannot.
func printMarkdown(w io.Writer, md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(w, out)
			return
		}
	}
	fmt.Fprint(w, md)
}
