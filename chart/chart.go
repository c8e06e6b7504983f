// Package chart draws the stacked bar chart of valuations over time, as a PNG image and
// as an interactive HTML page.
package chart

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/etnz/fundtrend"
	"github.com/etnz/fundtrend/date"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// BaseName is the name of the files written by Write, without extension.
const BaseName = "fund_distribution_over_time"

// ErrEmpty is returned when there is no date to draw.
var ErrEmpty = errors.New("nothing to chart")

// Options holds the labels and size of a chart.
type Options struct {
	Title  string
	XAxis  string
	YAxis  string
	Width  int // in pixels
	Height int // in pixels
}

// DefaultOptions returns the labels of the fund valuation chart.
func DefaultOptions(currency string) Options {
	if currency == "" {
		currency = "JPY"
	}
	return Options{
		Title:  "Trend of Fund Valuation",
		XAxis:  "Date",
		YAxis:  fmt.Sprintf("Fund Valuation (%s)", currency),
		Width:  1200,
		Height: 600,
	}
}

func labels(p *fundtrend.Pivot) []string {
	l := make([]string, len(p.Dates))
	for i, on := range p.Dates {
		l[i] = on.Format(date.DisplayFormat)
	}
	return l
}

// HTML writes an interactive stacked bar chart of p.
func HTML(w io.Writer, p *fundtrend.Pivot, o Options) error {
	if len(p.Dates) == 0 {
		return ErrEmpty
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: o.Title,
			Width:     fmt.Sprintf("%dpx", o.Width),
			Height:    fmt.Sprintf("%dpx", o.Height),
		}),
		charts.WithTitleOpts(opts.Title{Title: o.Title}),
		charts.WithXAxisOpts(opts.XAxis{Name: o.XAxis}),
		charts.WithYAxisOpts(opts.YAxis{Name: o.YAxis}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: true, Top: "bottom"}),
	)
	bar.SetXAxis(labels(p))
	for _, s := range p.Series {
		data := make([]opts.BarData, len(s.Values))
		for i, v := range s.Values {
			data[i] = opts.BarData{Value: v.InexactFloat64()}
		}
		bar.AddSeries(s.Name, data, charts.WithBarChartOpts(opts.BarChart{Stack: "total"}))
	}
	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render HTML chart: %w", err)
	}
	return nil
}

// pixel is the length of one pixel on a 96 DPI image.
const pixel = vg.Inch / 96

// PNG writes the same stacked bar chart as HTML, as an image: one bar per date, the
// series stacked on top of each other with their absolute values.
func PNG(w io.Writer, p *fundtrend.Pivot, o Options) error {
	if len(p.Dates) == 0 {
		return ErrEmpty
	}
	plt := plot.New()
	plt.Title.Text = o.Title
	plt.X.Label.Text = o.XAxis
	plt.Y.Label.Text = o.YAxis
	plt.Y.Min = 0
	plt.Y.Tick.Marker = amountTicks{}
	plt.Legend.Top = true
	plt.Legend.Left = true

	width := vg.Length(o.Width) * pixel
	barWidth := min(40*pixel, width/vg.Length(2*len(p.Dates)))
	var below *plotter.BarChart
	for i, s := range p.Series {
		values := make(plotter.Values, len(s.Values))
		for j, v := range s.Values {
			values[j] = v.InexactFloat64()
		}
		bar, err := plotter.NewBarChart(values, barWidth)
		if err != nil {
			return fmt.Errorf("invalid values for %q: %w", s.Name, err)
		}
		bar.LineStyle.Width = 0
		bar.Color = plotutil.Color(i)
		if below != nil {
			bar.StackOn(below)
		}
		plt.Add(bar)
		plt.Legend.Add(s.Name, bar)
		below = bar
	}
	plt.NominalX(labels(p)...)

	c := vgimg.NewWith(vgimg.UseWH(width, vg.Length(o.Height)*pixel), vgimg.UseDPI(96))
	plt.Draw(draw.New(c))
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
		return fmt.Errorf("failed to render PNG chart: %w", err)
	}
	return nil
}

// amountTicks labels the value axis with whole amounts and thousands separators.
type amountTicks struct{}

func (amountTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	printer := message.NewPrinter(language.English)
	for i, t := range ticks {
		if t.Label != "" {
			ticks[i].Label = printer.Sprintf("%.0f", t.Value)
		}
	}
	return ticks
}

// Write renders both charts of p in dir, created if needed, and returns the written paths.
func Write(dir string, p *fundtrend.Pivot, o Options) ([]string, error) {
	if len(p.Dates) == 0 {
		return nil, ErrEmpty
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create output directory: %w", err)
	}
	var paths []string
	for _, output := range []struct {
		ext    string
		render func(io.Writer, *fundtrend.Pivot, Options) error
	}{
		{".png", PNG},
		{".html", HTML},
	} {
		path := filepath.Join(dir, BaseName+output.ext)
		if err := writeFile(path, func(w io.Writer) error { return output.render(w, p, o) }); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", path, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
