package renderer

import (
	"bytes"

	"github.com/etnz/fundtrend"
	"github.com/etnz/fundtrend/date"
	md "github.com/nao1215/markdown"
)

// TableMarkdown renders a pivot with one row per date, one column per series and a
// total column.
func TableMarkdown(p *fundtrend.Pivot, title string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(p.Dates) == 0 {
		doc.PlainText("No holdings.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Date"},
	}
	for _, s := range p.Series {
		table.Header = append(table.Header, s.Name)
	}
	table.Header = append(table.Header, md.Bold("Total"))

	totals := p.Totals()
	for i, on := range p.Dates {
		row := []string{on.Format(date.DisplayFormat)}
		for _, s := range p.Series {
			row = append(row, s.Values[i].String())
		}
		row = append(row, md.Bold(totals[i].String()))
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	return doc.String()
}
