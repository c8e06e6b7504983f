package fundtrend

import (
	"errors"
	"fmt"

	"github.com/etnz/fundtrend/date"
)

// ErrUnclassified is returned by Classify for sections that are neither a known asset
// class nor a known account type. Their rows are dropped.
var ErrUnclassified = errors.New("unclassified section")

// ClassifiedRow is one holding attributed to an account type.
type ClassifiedRow struct {
	Name    string
	Account AccountType
	Asset   AssetClass
	Value   Money
	Date    date.Date
	Line    int
}

// RowError records a row dropped by Classify.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }
func (e RowError) Unwrap() error { return e.Err }

// Classify maps the rows of a section to ClassifiedRows dated on.
//
// The account type and the asset class come from the section title. Total rows are
// ignored, and rows without a name or a readable value are returned as RowErrors.
func (p *Profile) Classify(s Section, on date.Date) ([]ClassifiedRow, []RowError, error) {
	asset, ok := p.AssetOf(s.Title)
	if !ok {
		return nil, nil, fmt.Errorf("%w %q: unknown asset class", ErrUnclassified, s.Title)
	}
	account, ok := p.AccountOf(s.Title)
	if !ok {
		return nil, nil, fmt.Errorf("%w %q: unknown account type", ErrUnclassified, s.Title)
	}

	nameCol := p.Columns.Name.find(s.Header)
	valueCol := p.Columns.Value.find(s.Header)

	var rows []ClassifiedRow
	var dropped []RowError
	for _, r := range s.Rows {
		if p.IsSummary(firstCell(r.Fields)) {
			continue
		}
		if nameCol >= len(r.Fields) || r.Fields[nameCol] == "" {
			dropped = append(dropped, RowError{r.Line, errors.New("missing name")})
			continue
		}
		if valueCol >= len(r.Fields) {
			dropped = append(dropped, RowError{r.Line, fmt.Errorf("missing value column %d", valueCol)})
			continue
		}
		value, err := ParseAmount(r.Fields[valueCol], p.Currency)
		if err != nil {
			dropped = append(dropped, RowError{r.Line, err})
			continue
		}
		rows = append(rows, ClassifiedRow{
			Name:    r.Fields[nameCol],
			Account: account,
			Asset:   asset,
			Value:   value,
			Date:    on,
			Line:    r.Line,
		})
	}
	return rows, dropped, nil
}
