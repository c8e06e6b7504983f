package fundtrend

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"golang.org/x/text/width"
)

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns a Money of value in currency.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, like "¥1,000".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

func (m Money) Currency() string             { return m.cur }
func (m Money) Decimal() decimal.Decimal     { return m.value }
func (m Money) Equal(n Money) bool           { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                 { return m.value.IsZero() }
func (m Money) Add(n Money) Money            { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) InexactFloat64() float64      { return m.value.InexactFloat64() }
func (m Money) MarshalJSON() ([]byte, error) { return m.value.MarshalJSON() }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// Sum adds up all values. The sum of nothing is a zero without currency.
func Sum(values ...Money) Money {
	var total Money
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// ErrNoAmount is returned by ParseAmount for the placeholders brokerages print in empty cells.
var ErrNoAmount = errors.New("no amount")

// ParseAmount parses an amount as printed in brokerage exports: "1,234", "+1,234",
// "1,234円", "¥1,234" and their full-width variants.
func ParseAmount(s, currency string) (Money, error) {
	str := width.Narrow.String(strings.TrimSpace(s))
	str = strings.NewReplacer(",", "", "円", "", "¥", "", "\\", "", " ", "").Replace(str)
	str = strings.TrimPrefix(str, "+")
	switch str {
	case "", "-", "--", "---", "−":
		return Money{}, fmt.Errorf("%w in %q", ErrNoAmount, s)
	}
	value, err := decimal.NewFromString(str)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{value: value, cur: currency}, nil
}
