package chart

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/etnz/fundtrend"
	"github.com/etnz/fundtrend/date"
	"github.com/google/go-cmp/cmp"
)

func testPivot() *fundtrend.Pivot {
	sep, oct := date.New(2023, 9, 25), date.New(2023, 10, 25)
	record := func(on date.Date, name string, account fundtrend.AccountType, value int) fundtrend.Record {
		return fundtrend.Record{Date: on, Name: name, Account: account, Asset: fundtrend.Fund, Value: fundtrend.M(value, "JPY")}
	}
	return fundtrend.Assemble(
		fundtrend.Snapshot{Date: sep, Records: []fundtrend.Record{
			record(sep, "全世界株式", fundtrend.NISAGrowth, 500000),
			record(sep, "米国株式", fundtrend.Taxable, 300000),
		}},
		fundtrend.Snapshot{Date: oct, Records: []fundtrend.Record{
			record(oct, "米国株式", fundtrend.Taxable, 315000),
		}},
	).Pivot(fundtrend.ByFund)
}

func TestDefaultOptions(t *testing.T) {
	want := Options{
		Title:  "Trend of Fund Valuation",
		XAxis:  "Date",
		YAxis:  "Fund Valuation (JPY)",
		Width:  1200,
		Height: 600,
	}
	if diff := cmp.Diff(want, DefaultOptions("")); diff != "" {
		t.Errorf("DefaultOptions() mismatch (-want +got):\n%s", diff)
	}
	if got := DefaultOptions("USD").YAxis; got != "Fund Valuation (USD)" {
		t.Errorf("DefaultOptions(USD).YAxis = %q", got)
	}
}

func TestHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := HTML(&buf, testPivot(), DefaultOptions("JPY")); err != nil {
		t.Fatalf("HTML() unexpected error: %v", err)
	}
	got := buf.String()
	for _, want := range []string{"Trend of Fund Valuation", "Fund Valuation (JPY)", "2023/09/25", "2023/10/25", "全世界株式", "米国株式", "total"} {
		if !strings.Contains(got, want) {
			t.Errorf("HTML() output does not contain %q", want)
		}
	}
}

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := PNG(&buf, testPivot(), DefaultOptions("JPY")); err != nil {
		t.Fatalf("PNG() unexpected error: %v", err)
	}
	cfg, err := png.DecodeConfig(&buf)
	if err != nil {
		t.Fatalf("PNG() output is not a PNG image: %v", err)
	}
	if cfg.Width != 1200 || cfg.Height != 600 {
		t.Errorf("PNG() image is %dx%d, want 1200x600", cfg.Width, cfg.Height)
	}
}

func TestPNGZeroTotalDate(t *testing.T) {
	sep, nov := date.New(2023, 9, 25), date.New(2023, 11, 25)
	p := fundtrend.Assemble(
		fundtrend.Snapshot{Date: sep, Records: []fundtrend.Record{
			{Date: sep, Name: "Fund A", Account: fundtrend.Taxable, Asset: fundtrend.Fund, Value: fundtrend.M(1000, "JPY")},
		}},
		fundtrend.Snapshot{Date: nov, Records: []fundtrend.Record{
			{Date: nov, Name: "Fund B", Account: fundtrend.Taxable, Asset: fundtrend.Fund, Value: fundtrend.M(0, "JPY")},
		}},
	).Pivot(fundtrend.ByFund)

	var buf bytes.Buffer
	if err := PNG(&buf, p, DefaultOptions("JPY")); err != nil {
		t.Fatalf("PNG() unexpected error: %v", err)
	}
	if _, err := png.DecodeConfig(&buf); err != nil {
		t.Errorf("PNG() output is not a PNG image: %v", err)
	}
}

func TestAmountTicks(t *testing.T) {
	var labels []string
	for _, tick := range (amountTicks{}).Ticks(0, 1500000) {
		if tick.Label != "" {
			labels = append(labels, tick.Label)
		}
	}
	if len(labels) == 0 {
		t.Fatalf("Ticks() returned no labelled tick")
	}
	for _, l := range labels {
		if strings.ContainsAny(l, "e+.") {
			t.Errorf("tick label %q is not a whole amount", l)
		}
	}
	if !slices.ContainsFunc(labels, func(l string) bool { return strings.Contains(l, ",") }) {
		t.Errorf("Ticks() labels = %v, want thousands separators", labels)
	}
}

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "graphs")
	paths, err := Write(dir, testPivot(), DefaultOptions("JPY"))
	if err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}
	want := []string{
		filepath.Join(dir, "fund_distribution_over_time.png"),
		filepath.Join(dir, "fund_distribution_over_time.html"),
	}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("Write() paths mismatch (-want +got):\n%s", diff)
	}
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("expected %s to exist: %v", path, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", path)
		}
	}
}

func TestEmpty(t *testing.T) {
	empty := fundtrend.Assemble().Pivot(fundtrend.ByFund)
	if err := HTML(&bytes.Buffer{}, empty, DefaultOptions("")); !errors.Is(err, ErrEmpty) {
		t.Errorf("HTML() error = %v, want ErrEmpty", err)
	}
	if err := PNG(&bytes.Buffer{}, empty, DefaultOptions("")); !errors.Is(err, ErrEmpty) {
		t.Errorf("PNG() error = %v, want ErrEmpty", err)
	}
	dir := filepath.Join(t.TempDir(), "graphs")
	if _, err := Write(dir, empty, DefaultOptions("")); !errors.Is(err, ErrEmpty) {
		t.Errorf("Write() error = %v, want ErrEmpty", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("Write() created %s for an empty chart", dir)
	}
}
