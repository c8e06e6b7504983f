package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/fundtrend/date"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the summary: totals per account type, then the input files.
func SummaryMarkdown(s *Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Summary")

	if len(s.Rows) == 0 {
		doc.PlainText("No holdings.")
	} else {
		table := md.TableSet{
			Header: []string{"Date"},
		}
		for _, a := range s.Accounts {
			table.Header = append(table.Header, a)
		}
		table.Header = append(table.Header, md.Bold("Total"))
		for _, row := range s.Rows {
			cells := []string{row.Date.Format(date.DisplayFormat)}
			for _, v := range row.Values {
				cells = append(cells, v.String())
			}
			cells = append(cells, md.Bold(row.Total.String()))
			table.Rows = append(table.Rows, cells)
		}
		doc.Table(table)
	}

	if len(s.Files) > 0 {
		doc.H2("Files")
		table := md.TableSet{
			Header: []string{"File", "Date", "Sections", "Rows", "Skipped Rows", "Total"},
		}
		for _, f := range s.Files {
			if f.Skipped() {
				continue
			}
			table.Rows = append(table.Rows, []string{
				f.Name,
				f.Date.Format(date.DisplayFormat),
				strconv.Itoa(f.Sections),
				strconv.Itoa(f.Rows),
				strconv.Itoa(f.SkippedRows),
				f.Total.String(),
			})
		}
		doc.Table(table)
	}

	var b strings.Builder
	b.WriteString(doc.String())
	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprint(w, "\n\n## Skipped Files\n\n")
		n := 0
		for _, f := range s.Files {
			if f.Skipped() {
				fmt.Fprintf(w, "- %s: %v\n", f.Name, f.Err)
				n++
			}
		}
		return n > 0
	})
	return b.String()
}
