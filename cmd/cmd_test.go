package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/fundtrend"
	"github.com/etnz/fundtrend/date"
	"github.com/google/go-cmp/cmp"
	"github.com/google/subcommands"
)

func testRecords() []fundtrend.Record {
	on := date.New(2023, 9, 25)
	return []fundtrend.Record{
		{Date: on, Name: "S&P500", Account: fundtrend.Taxable, Asset: fundtrend.Fund, Value: fundtrend.M(1000, "JPY")},
		{Date: on, Name: "全世界株式", Account: fundtrend.NISAGrowth, Asset: fundtrend.Fund, Value: fundtrend.M(2500, "JPY")},
	}
}

func TestWriteRecords(t *testing.T) {
	var buf bytes.Buffer
	if err := writeRecords(&buf, testRecords()); err != nil {
		t.Fatalf("writeRecords() unexpected error: %v", err)
	}
	want := `{"date":"2023-09-25","fund":"S&P500","account":"Taxable","asset":"fund","value":"1000","currency":"JPY"}
{"date":"2023-09-25","fund":"全世界株式","account":"NISA-Growth","asset":"fund","value":"2500","currency":"JPY"}
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("writeRecords() mismatch (-want +got):\n%s", diff)
	}
}

func TestQueryRecords(t *testing.T) {
	testCases := []struct {
		query string
		want  string
	}{
		{`$[?(@.account=="Taxable")].fund`, "[\"S&P500\"]\n"},
		{`$[*].value`, "[\"1000\",\"2500\"]\n"},
		{`$[1].account`, "\"NISA-Growth\"\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			var buf bytes.Buffer
			if err := queryRecords(&buf, testRecords(), tc.query); err != nil {
				t.Fatalf("queryRecords() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, buf.String()); diff != "" {
				t.Errorf("queryRecords() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestQueryRecordsInvalid(t *testing.T) {
	if err := queryRecords(&bytes.Buffer{}, testRecords(), "$[?("); err == nil {
		t.Errorf("queryRecords() expected an error for an invalid query")
	}
}

func TestKnownAndCompletion(t *testing.T) {
	commander := subcommands.NewCommander(flag.NewFlagSet("ftrend", flag.ContinueOnError), "ftrend")
	Register(commander)

	if !Known(commander, "chart") || !Known(commander, "export") {
		t.Errorf("Known() does not find registered commands")
	}
	if Known(commander, "hello") {
		t.Errorf("Known(hello) = true, want false")
	}

	c := Completion(commander)
	for _, name := range []string{"chart", "table", "summary", "export", "topic"} {
		if _, ok := c.Sub[name]; !ok {
			t.Errorf("completion has no %q subcommand", name)
		}
	}
	for _, name := range []string{"by", "stocks", "range"} {
		if _, ok := c.Sub["chart"].Flags[name]; !ok {
			t.Errorf("chart completion has no -%s flag", name)
		}
	}
	if c.Sub["topic"].Args == nil {
		t.Errorf("topic completion has no argument predictor")
	}
}

func TestChartCommand(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "data")
	if err := os.Mkdir(data, 0755); err != nil {
		t.Fatal(err)
	}
	content := "\"投資信託（金額/特定預り）\"\n" +
		"\"ファンド名\",\"買付日\",\"数量\",\"取得単価\",\"現在値\",\"前日比\",\"評価額\"\n" +
		"\"Fund A\",\"--\",\"1\",\"1\",\"1\",\"0\",\"1,000\"\n"
	for _, name := range []string{"portfolio_20230925.csv", "portfolio_20231025.csv"} {
		if err := os.WriteFile(filepath.Join(data, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	oldData, oldOutput := *dataDir, *outputDir
	defer func() { *dataDir, *outputDir = oldData, oldOutput }()
	*dataDir, *outputDir = data, filepath.Join(dir, "graphs")

	if got := Default(context.Background()); got != subcommands.ExitSuccess {
		t.Fatalf("Default() = %v, want success", got)
	}
	for _, name := range []string{"fund_distribution_over_time.png", "fund_distribution_over_time.html"} {
		if _, err := os.Stat(filepath.Join(dir, "graphs", name)); err != nil {
			t.Errorf("expected %s to be written: %v", name, err)
		}
	}

	*dataDir = filepath.Join(dir, "missing")
	if got := Default(context.Background()); got != subcommands.ExitFailure {
		t.Errorf("Default() on a missing directory = %v, want failure", got)
	}
}

func TestTopicCommand(t *testing.T) {
	testCases := []struct {
		args []string
		want string
	}{
		{args: []string{"-list"}, want: "readme\ncommands\ncsv-format\nprofile\n"},
		{args: []string{"-raw"}, want: "# ftrend\n"},
		{args: []string{"-raw", "profile"}, want: "#"},
	}
	for _, tc := range testCases {
		var buf bytes.Buffer
		c := &topicCmd{out: &buf}
		f := flag.NewFlagSet("topic", flag.ContinueOnError)
		c.SetFlags(f)
		if err := f.Parse(tc.args); err != nil {
			t.Fatalf("Parse(%v) unexpected error: %v", tc.args, err)
		}
		if got := c.Execute(context.Background(), f); got != subcommands.ExitSuccess {
			t.Fatalf("topic %v = %v, want success", tc.args, got)
		}
		if tc.args[0] == "-list" {
			if diff := cmp.Diff(tc.want, buf.String()); diff != "" {
				t.Errorf("topic -list mismatch (-want +got):\n%s", diff)
			}
			continue
		}
		if !strings.HasPrefix(buf.String(), tc.want) {
			t.Errorf("topic %v = %q, want prefix %q", tc.args, buf.String(), tc.want)
		}
	}

	c := &topicCmd{out: &bytes.Buffer{}}
	f := flag.NewFlagSet("topic", flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse([]string{"no-such-topic"}); err != nil {
		t.Fatal(err)
	}
	if got := c.Execute(context.Background(), f); got != subcommands.ExitFailure {
		t.Errorf("topic no-such-topic = %v, want failure", got)
	}
}
