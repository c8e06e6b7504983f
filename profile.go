package fundtrend

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/etnz/fundtrend/date"
	"gopkg.in/yaml.v3"
)

//go:embed profile.yaml
var defaultProfile []byte

// Profile describes the layout of one brokerage export: how sections are titled, which
// keywords select the account type, and where the name and value columns are.
type Profile struct {
	Currency string `yaml:"currency"`
	Filename struct {
		Pattern string `yaml:"pattern"`
		Layout  string `yaml:"layout"`
	} `yaml:"filename"`
	SummaryMarker string                  `yaml:"summary_marker"`
	Assets        map[AssetClass][]string `yaml:"assets"`
	Accounts      []AccountRule           `yaml:"accounts"`
	Columns       struct {
		Name  Column `yaml:"name"`
		Value Column `yaml:"value"`
	} `yaml:"columns"`

	filename *regexp.Regexp
}

// AccountRule maps section titles containing any of Keywords to Type.
type AccountRule struct {
	Type     AccountType `yaml:"type"`
	Keywords []string    `yaml:"keywords"`
}

// Column locates a column by its header title, or by Index when no title matches.
type Column struct {
	Titles []string `yaml:"titles"`
	Index  int      `yaml:"index"`
}

// find returns the column index in header.
func (c Column) find(header []string) int {
	for _, title := range c.Titles {
		for i, h := range header {
			if strings.TrimSpace(h) == title {
				return i
			}
		}
	}
	return c.Index
}

// DefaultProfile returns the built-in profile.
func DefaultProfile() *Profile {
	p, err := ParseProfile(defaultProfile)
	if err != nil {
		panic("invalid embedded profile: " + err.Error())
	}
	return p
}

// LoadProfile reads a YAML profile file.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	p, err := ParseProfile(data)
	if err != nil {
		return nil, fmt.Errorf("invalid profile %q: %w", path, err)
	}
	return p, nil
}

// ParseProfile decodes and validates a YAML profile.
func ParseProfile(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := p.init(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Profile) init() error {
	if p.Currency == "" {
		p.Currency = "JPY"
	}
	if p.Filename.Layout == "" {
		p.Filename.Layout = date.CompactFormat
	}
	if p.Filename.Pattern == "" {
		p.Filename.Pattern = `(\d{8})`
	}
	re, err := regexp.Compile(p.Filename.Pattern)
	if err != nil {
		return fmt.Errorf("invalid filename pattern: %w", err)
	}
	if re.NumSubexp() != 1 {
		return fmt.Errorf("filename pattern %q must have exactly one group", p.Filename.Pattern)
	}
	p.filename = re
	if len(p.Assets) == 0 {
		return fmt.Errorf("no asset section titles")
	}
	if len(p.Accounts) == 0 {
		return fmt.Errorf("no account rules")
	}
	for _, rule := range p.Accounts {
		if !rule.Type.Valid() {
			return fmt.Errorf("account rule with unknown type")
		}
		if len(rule.Keywords) == 0 {
			return fmt.Errorf("account rule %v has no keyword", rule.Type)
		}
	}
	return nil
}

// AssetOf returns the asset class of a section title.
func (p *Profile) AssetOf(title string) (AssetClass, bool) {
	for _, class := range []AssetClass{Fund, Stock} {
		for _, prefix := range p.Assets[class] {
			if strings.HasPrefix(title, prefix) {
				return class, true
			}
		}
	}
	return UnknownAsset, false
}

// AccountOf returns the account type of a section title.
func (p *Profile) AccountOf(title string) (AccountType, bool) {
	for _, rule := range p.Accounts {
		for _, k := range rule.Keywords {
			if strings.Contains(title, k) {
				return rule.Type, true
			}
		}
	}
	return UnknownAccount, false
}

// IsSummary reports whether text is a total line rather than a holding.
func (p *Profile) IsSummary(text string) bool {
	return p.SummaryMarker != "" && strings.HasSuffix(strings.TrimSpace(text), p.SummaryMarker)
}

// FileDate extracts the snapshot date embedded in a file name.
func (p *Profile) FileDate(name string) (date.Date, error) {
	m := p.filename.FindStringSubmatch(name)
	if m == nil {
		return date.Date{}, fmt.Errorf("%w: %q does not match %q", ErrNoDate, name, p.Filename.Pattern)
	}
	on, err := date.ParseLayout(p.Filename.Layout, m[1])
	if err != nil {
		return date.Date{}, fmt.Errorf("%w: %v", ErrNoDate, err)
	}
	return on, nil
}
