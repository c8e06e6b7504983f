package fundtrend

import (
	"encoding/csv"
	"strings"
)

// Section is a block of rows sharing one title line and one column header line.
type Section struct {
	Title  string
	Header []string
	Rows   []Row
}

// Row is a parsed CSV line with its 1-based line number in the file.
type Row struct {
	Line   int
	Fields []string
}

// Split partitions the content of an export into sections.
//
// A section ends on a blank line, or on a line holding a single cell, which opens the
// next section whatever its title. Blocks of a single line (file title, footers) and
// summary sections are discarded, as are blocks without any column header.
func (p *Profile) Split(content string) []Section {
	var sections []Section
	var block []Row
	flush := func() {
		if s, ok := p.newSection(block); ok {
			sections = append(sections, s)
		}
		block = nil
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	for i, line := range strings.Split(content, "\n") {
		fields, ok := splitLine(line)
		if !ok {
			continue
		}
		if isBlank(fields) {
			flush()
			continue
		}
		if len(block) > 0 && isTitle(fields) {
			flush()
		}
		block = append(block, Row{Line: i + 1, Fields: fields})
	}
	flush()
	return sections
}

// newSection builds a section from a block of rows. The first row is the title, the
// second the column header.
func (p *Profile) newSection(block []Row) (Section, bool) {
	if len(block) < 2 {
		return Section{}, false
	}
	title := firstCell(block[0].Fields)
	if title == "" || p.IsSummary(title) {
		return Section{}, false
	}
	return Section{
		Title:  title,
		Header: block[1].Fields,
		Rows:   block[2:],
	}, true
}

// isTitle reports whether fields holds a single non-empty cell, the shape of a section
// title. Data rows, headers and totals always span several cells.
func isTitle(fields []string) bool {
	n := 0
	for _, f := range fields {
		if f != "" {
			n++
		}
	}
	return n == 1
}

// splitLine parses one CSV line. Quoted fields may contain commas ("1,234").
func splitLine(line string) ([]string, bool) {
	if strings.TrimSpace(line) == "" {
		return nil, true
	}
	r := csv.NewReader(strings.NewReader(line))
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	fields, err := r.Read()
	if err != nil {
		return nil, false
	}
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields, true
}

func isBlank(fields []string) bool {
	for _, f := range fields {
		if f != "" {
			return false
		}
	}
	return true
}

func firstCell(fields []string) string {
	for _, f := range fields {
		if f != "" {
			return f
		}
	}
	return ""
}
