package fundtrend

import (
	"fmt"
	"strings"
)

// AccountType is the tax classification of the account holding a position.
type AccountType int

const (
	UnknownAccount AccountType = iota
	Taxable
	NISAAccumulation
	NISAGrowth
)

// AccountTypes returns the known account types in display order.
func AccountTypes() []AccountType { return []AccountType{Taxable, NISAAccumulation, NISAGrowth} }

func (a AccountType) String() string {
	switch a {
	case Taxable:
		return "Taxable"
	case NISAAccumulation:
		return "NISA-Accumulation"
	case NISAGrowth:
		return "NISA-Growth"
	default:
		return "Unknown"
	}
}

// Valid reports whether a is one of the known account types.
func (a AccountType) Valid() bool { return a >= Taxable && a <= NISAGrowth }

// ParseAccountType parses the String form of an account type, case-insensitively.
func ParseAccountType(s string) (AccountType, error) {
	for _, a := range AccountTypes() {
		if strings.EqualFold(a.String(), strings.TrimSpace(s)) {
			return a, nil
		}
	}
	return UnknownAccount, fmt.Errorf("unknown account type %q", s)
}

func (a AccountType) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("cannot marshal unknown account type %d", int(a))
	}
	return []byte(a.String()), nil
}

func (a *AccountType) UnmarshalText(text []byte) error {
	v, err := ParseAccountType(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// AssetClass tells funds and stocks apart.
type AssetClass int

const (
	UnknownAsset AssetClass = iota
	Fund
	Stock
)

func (c AssetClass) String() string {
	switch c {
	case Fund:
		return "fund"
	case Stock:
		return "stock"
	default:
		return "unknown"
	}
}

// ParseAssetClass parses "fund" or "stock".
func ParseAssetClass(s string) (AssetClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fund":
		return Fund, nil
	case "stock":
		return Stock, nil
	}
	return UnknownAsset, fmt.Errorf("unknown asset class %q", s)
}

func (c AssetClass) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *AssetClass) UnmarshalText(text []byte) error {
	v, err := ParseAssetClass(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
