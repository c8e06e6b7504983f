package fundtrend

import (
	"cmp"
	"slices"

	"github.com/etnz/fundtrend/date"
)

// Record is the valuation of one fund in one account type on one date.
type Record struct {
	Date    date.Date
	Name    string
	Account AccountType
	Asset   AssetClass
	Value   Money
}

// key identifies a record within a snapshot.
type key struct {
	name    string
	account AccountType
}

// Aggregate sums the rows of one file per (name, account type) and dates the result on.
// Records are sorted by name then account type.
func Aggregate(rows []ClassifiedRow, on date.Date) []Record {
	index := make(map[key]int)
	var records []Record
	for _, r := range rows {
		k := key{r.Name, r.Account}
		if i, ok := index[k]; ok {
			records[i].Value = records[i].Value.Add(r.Value)
			continue
		}
		index[k] = len(records)
		records = append(records, Record{
			Date:    on,
			Name:    r.Name,
			Account: r.Account,
			Asset:   r.Asset,
			Value:   r.Value,
		})
	}
	slices.SortFunc(records, compareRecords)
	return records
}

// compareRecords orders records by date, name and account type.
func compareRecords(a, b Record) int {
	return cmp.Or(
		a.Date.Compare(b.Date),
		cmp.Compare(a.Name, b.Name),
		cmp.Compare(a.Account, b.Account),
	)
}

func (r Record) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", r.Date)
	w.Append("fund", r.Name)
	w.Append("account", r.Account)
	w.Append("asset", r.Asset)
	w.Append("value", r.Value)
	w.Optional("currency", r.Value.Currency())
	return w.MarshalJSON()
}
