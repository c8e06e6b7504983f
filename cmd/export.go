package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/fundtrend"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	selection
	query string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "print the valuation records as JSON" }
func (*exportCmd) Usage() string {
	return `ftrend export [-stocks] [-range <from..to>] [-q <jsonpath>]

  Prints one JSON object per line for each (date, fund, account type):

    {"date":"2023-09-25","fund":"...","account":"Taxable","asset":"fund","value":"1000","currency":"JPY"}

  With -q, the records are queried as a JSON array, for instance
  -q '$[?(@.account=="Taxable")].value'.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.selection.SetFlags(f)
	f.StringVar(&c.query, "q", "", "JSONPath `query` evaluated on the array of records")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table, _, err := c.load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading exports: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.query == "" {
		err = writeRecords(os.Stdout, table.Records())
	} else {
		err = queryRecords(os.Stdout, table.Records(), c.query)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting records: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// writeRecords writes records as JSON lines.
func writeRecords(w io.Writer, records []fundtrend.Record) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

// queryRecords evaluates a JSONPath query on records and writes the result as JSON.
func queryRecords(w io.Writer, records []fundtrend.Record, query string) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	result, err := jsonpath.Get(query, doc)
	if err != nil {
		return fmt.Errorf("error evaluating %q: %w", query, err)
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(result)
}
