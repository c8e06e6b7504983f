package renderer

import (
	"github.com/etnz/fundtrend"
	"github.com/etnz/fundtrend/date"
)

// Run is the view of a chart run.
type Run struct {
	DataDir  string
	Files    int
	Dates    int
	From, To string
	Series   int
	Latest   string
	Outputs  []string
	Skipped  []Skipped
}

// Skipped is a file left out of the table.
type Skipped struct {
	Name   string
	Reason string
}

// NewRun builds the view of a run that read dataDir into t and wrote outputs.
func NewRun(dataDir string, t *fundtrend.Table, r *fundtrend.Report, p *fundtrend.Pivot, outputs []string) *Run {
	run := &Run{
		DataDir: dataDir,
		Files:   len(r.Files),
		Dates:   len(p.Dates),
		Series:  len(p.Series),
		Outputs: outputs,
	}
	if n := len(p.Dates); n > 0 {
		run.From = p.Dates[0].Format(date.DisplayFormat)
		run.To = p.Dates[n-1].Format(date.DisplayFormat)
		run.Latest = t.Total(p.Dates[n-1]).String()
	}
	for _, f := range r.Skipped() {
		run.Skipped = append(run.Skipped, Skipped{Name: f.Name, Reason: f.Err.Error()})
	}
	return run
}
