package mod

import "strings"

type CardType string

const (
	CardTypeCredit  CardType = "credit"
	CardTypeDebit   CardType = "debit"
	CardTypePrepaid CardType = "prepaid"
	CardTypeUnknown CardType = "unknown"
)

func (t CardType) Valid() bool {
	switch t {
	case CardTypeCredit, CardTypeDebit, CardTypePrepaid, CardTypeUnknown:
		return true
	}
	return false
}

type CardLevel string

const (
	LevelClassic   CardLevel = "classic"
	LevelGold      CardLevel = "gold"
	LevelPlatinum  CardLevel = "platinum"
	LevelSignature CardLevel = "signature"
	LevelInfinite  CardLevel = "infinite"
	LevelBlack     CardLevel = "black"
	LevelBusiness  CardLevel = "business"
	LevelCorporate CardLevel = "corporate"
	LevelUnknown   CardLevel = "unknown"
)

func (l CardLevel) Valid() bool {
	switch l {
	case LevelClassic, LevelGold, LevelPlatinum, LevelSignature, LevelInfinite,
		LevelBlack, LevelBusiness, LevelCorporate, LevelUnknown:
		return true
	}
	return false
}

type CardRegion string

const (
	RegionGlobal  CardRegion = "global"
	RegionLatam   CardRegion = "latam"
	RegionEurope  CardRegion = "europe"
	RegionAsia    CardRegion = "asia"
	RegionAfrica  CardRegion = "africa"
	RegionUnknown CardRegion = "unknown"
)

func (r CardRegion) Valid() bool {
	switch r {
	case RegionGlobal, RegionLatam, RegionEurope, RegionAsia, RegionAfrica, RegionUnknown:
		return true
	}
	return false
}

// ParseCardType, ParseCardLevel and ParseCardRegion accept the lower-case
// words used in overlay files. An empty word parses to the unset value.
func ParseCardType(s string) (CardType, bool) {
	t := CardType(strings.ToLower(strings.TrimSpace(s)))
	return t, t == "" || t.Valid()
}

func ParseCardLevel(s string) (CardLevel, bool) {
	l := CardLevel(strings.ToLower(strings.TrimSpace(s)))
	return l, l == "" || l.Valid()
}

func ParseCardRegion(s string) (CardRegion, bool) {
	r := CardRegion(strings.ToLower(strings.TrimSpace(s)))
	return r, r == "" || r.Valid()
}

type SecurityCode struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

// CardFormat describes how a brand's numbers are grouped, how long they may
// be and what its security code looks like.
type CardFormat struct {
	Gaps    []int        `json:"gaps"`
	Lengths []int        `json:"lengths"`
	Code    SecurityCode `json:"code"`
}

// HasLength reports whether n is one of the valid lengths.
func (f CardFormat) HasLength(n int) bool {
	for _, l := range f.Lengths {
		if l == n {
			return true
		}
	}
	return false
}

// DefaultFormat is used whenever the brand cannot be resolved.
func DefaultFormat() CardFormat {
	return CardFormat{
		Gaps:    []int{4, 8, 12},
		Lengths: []int{16},
		Code:    SecurityCode{Name: "CVV", Size: 3},
	}
}

// BinMetadata is the partial metadata a BIN prefix resolves to. Zero
// fields are unset.
type BinMetadata struct {
	Type    CardType   `json:"type,omitempty"`
	Level   CardLevel  `json:"level,omitempty"`
	Region  CardRegion `json:"region,omitempty"`
	Bank    string     `json:"bank,omitempty"`
	Country string     `json:"country,omitempty"`
}

func (m BinMetadata) IsZero() bool {
	return m == BinMetadata{}
}

type CardMetadata struct {
	Brand                Brand      `json:"brand"`
	Type                 CardType   `json:"type"`
	Level                CardLevel  `json:"level"`
	Country              string     `json:"country,omitempty"`
	Bank                 string     `json:"bank,omitempty"`
	Region               CardRegion `json:"region"`
	SupportsInstallments bool       `json:"supportsInstallments"`
	MaxInstallments      int        `json:"maxInstallments,omitempty"`
	IsRegional           bool       `json:"isRegional"`
}

// NewCardMetadata merges BIN metadata with the defaults of the brand. A BIN
// region takes precedence over the brand's region.
func NewCardMetadata(brand Brand, bin BinMetadata) CardMetadata {
	supported, max := brand.Installments()
	md := CardMetadata{
		Brand:                brand,
		Type:                 bin.Type,
		Level:                bin.Level,
		Country:              bin.Country,
		Bank:                 bin.Bank,
		Region:               bin.Region,
		SupportsInstallments: supported,
		MaxInstallments:      max,
	}
	if md.Type == "" {
		md.Type = CardTypeUnknown
	}
	if md.Level == "" {
		md.Level = LevelUnknown
	}
	if md.Region == "" {
		md.Region = brand.Region()
	}
	md.IsRegional = brand.IsLatam() || md.Region != RegionGlobal
	return md
}

type CardDetectionResult struct {
	Brand          Brand        `json:"brand"`
	PossibleBrands []Brand      `json:"possibleBrands"`
	Metadata       CardMetadata `json:"metadata"`
	Format         CardFormat   `json:"format"`
	IsComplete     bool         `json:"isComplete"`
	Normalized     string       `json:"normalized"`
	Formatted      string       `json:"formatted"`
	Masked         string       `json:"masked"`
}
