package fundtrend

import (
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/fundtrend/date"
)

// Snapshot is the aggregated content of one export file.
type Snapshot struct {
	Date    date.Date
	Source  string
	Records []Record
}

// Table is the tidy time series of records, sorted by date, name and account type.
// It has at most one record per (date, name, account type).
type Table struct {
	records []Record
}

// Assemble merges snapshots into a Table. When two snapshots share a date, the last
// one wins.
func Assemble(snapshots ...Snapshot) *Table {
	h := new(date.History[Snapshot])
	for _, s := range snapshots {
		h.Append(s.Date, s)
	}
	t := &Table{}
	for _, s := range h.Values() {
		t.records = append(t.records, s.Records...)
	}
	slices.SortStableFunc(t.records, compareRecords)
	return t
}

// Len returns the number of records.
func (t *Table) Len() int { return len(t.records) }

// Records returns a copy of the records.
func (t *Table) Records() []Record { return slices.Clone(t.records) }

// Currency returns the currency of the records, "" for an empty table.
func (t *Table) Currency() string {
	for _, r := range t.records {
		if c := r.Value.Currency(); c != "" {
			return c
		}
	}
	return ""
}

// Dates returns the distinct dates of the table in ascending order.
func (t *Table) Dates() []date.Date {
	var dates []date.Date
	for _, r := range t.records {
		if n := len(dates); n == 0 || dates[n-1] != r.Date {
			dates = append(dates, r.Date)
		}
	}
	return dates
}

// Filter returns a new Table with the records matching keep.
func (t *Table) Filter(keep func(Record) bool) *Table {
	f := &Table{}
	for _, r := range t.records {
		if keep(r) {
			f.records = append(f.records, r)
		}
	}
	return f
}

// Between returns the records dated within r.
func (t *Table) Between(r date.Range) *Table {
	return t.Filter(func(rec Record) bool { return r.Contains(rec.Date) })
}

// Total returns the sum of all records on a date.
func (t *Table) Total(on date.Date) Money {
	total := M(0, t.Currency())
	for _, r := range t.records {
		if r.Date == on {
			total = total.Add(r.Value)
		}
	}
	return total
}

// Dimension selects how a Pivot groups records into series.
type Dimension int

const (
	ByFund Dimension = iota
	ByAccount
)

func (d Dimension) String() string {
	if d == ByAccount {
		return "account"
	}
	return "fund"
}

// ParseDimension parses "fund" or "account".
func ParseDimension(s string) (Dimension, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fund", "":
		return ByFund, nil
	case "account":
		return ByAccount, nil
	}
	return ByFund, fmt.Errorf("unknown dimension %q, want fund or account", s)
}

// Pivot is the table reshaped as one series per fund (or account type) over dates,
// with zeros where a series has no record.
type Pivot struct {
	Dates  []date.Date
	Series []Series
}

// Series is a named list of values aligned with Pivot.Dates.
type Series struct {
	Name   string
	Values []Money
}

// Pivot reshapes the table. Fund series are sorted by name, account series follow
// AccountTypes order.
func (t *Table) Pivot(by Dimension) *Pivot {
	p := &Pivot{Dates: t.Dates()}
	column := make(map[date.Date]int, len(p.Dates))
	for i, on := range p.Dates {
		column[on] = i
	}

	var names []string
	values := make(map[string][]Money)
	zero := M(0, t.Currency())
	for _, r := range t.records {
		name := r.Name
		if by == ByAccount {
			name = r.Account.String()
		}
		v, ok := values[name]
		if !ok {
			names = append(names, name)
			v = make([]Money, len(p.Dates))
			for i := range v {
				v[i] = zero
			}
			values[name] = v
		}
		i := column[r.Date]
		v[i] = v[i].Add(r.Value)
	}

	if by == ByAccount {
		names = names[:0]
		for _, a := range AccountTypes() {
			if _, ok := values[a.String()]; ok {
				names = append(names, a.String())
			}
		}
	} else {
		slices.Sort(names)
	}
	for _, name := range names {
		p.Series = append(p.Series, Series{Name: name, Values: values[name]})
	}
	return p
}

// Totals returns the sum of all series for each date.
func (p *Pivot) Totals() []Money {
	totals := make([]Money, len(p.Dates))
	for _, s := range p.Series {
		for i, v := range s.Values {
			totals[i] = totals[i].Add(v)
		}
	}
	return totals
}
