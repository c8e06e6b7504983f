// Package fundtrend turns the holdings CSV files exported by a Japanese brokerage into a
// time series of fund valuations.
//
// An export is one snapshot of the portfolio, dated by its file name
// (portfolio_YYYYMMDD.csv). Its content is a sequence of sections, one per asset class
// and account type, each with a title line, a column header line and one line per
// holding. Totals and boilerplate lines are interleaved with them.
//
// The pipeline reads each file independently:
//   - Split partitions the content into sections, dropping titles, footers and totals.
//   - Classify attributes every row of a section to an account type (Taxable,
//     NISA-Accumulation or NISA-Growth) and an asset class, and parses its valuation.
//     Sections that match no known account type are dropped.
//   - Aggregate sums the valuations per (fund, account type).
//   - Assemble merges the snapshots into a Table ordered by date.
//
// Load runs the whole pipeline over a directory. The layout knowledge (section titles,
// keywords, column titles) lives in a Profile, so that other exports can be described
// in YAML without code changes.
package fundtrend
