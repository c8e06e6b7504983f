package renderer

import (
	"github.com/etnz/fundtrend"
	"github.com/etnz/fundtrend/date"
)

// Summary is the per-date breakdown of a table by account type.
type Summary struct {
	Accounts []string
	Rows     []SummaryRow
	Files    []fundtrend.FileReport
}

// SummaryRow holds the value of each account type on one date.
type SummaryRow struct {
	Date   date.Date
	Values []fundtrend.Money // aligned with Summary.Accounts
	Total  fundtrend.Money
}

// NewSummary computes the summary of a loaded table.
func NewSummary(t *fundtrend.Table, r *fundtrend.Report) *Summary {
	p := t.Pivot(fundtrend.ByAccount)
	s := &Summary{}
	if r != nil {
		s.Files = r.Files
	}
	for _, series := range p.Series {
		s.Accounts = append(s.Accounts, series.Name)
	}
	totals := p.Totals()
	for i, on := range p.Dates {
		row := SummaryRow{Date: on, Total: totals[i]}
		for _, series := range p.Series {
			row.Values = append(row.Values, series.Values[i])
		}
		s.Rows = append(s.Rows, row)
	}
	return s
}
