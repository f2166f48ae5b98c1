// Package detect identifies the network, format and metadata of a card
// number and renders its normalized, grouped and masked forms.
package detect

import (
	"git.thinkinpower.net/cardkit/bdata"
	"git.thinkinpower.net/cardkit/mod"
	"git.thinkinpower.net/cardkit/pattern"
)

// MetadataSource resolves a normalized number to partial BIN metadata.
type MetadataSource interface {
	Lookup(normalized string) mod.BinMetadata
}

// Engine detects cards against a metadata source. It holds no mutable state
// of its own and is safe for concurrent use when its source is.
type Engine struct {
	bins MetadataSource
}

func New(bins MetadataSource) *Engine {
	if bins == nil {
		bins = bdata.Static()
	}
	return &Engine{bins: bins}
}

// Default detects against the built-in BIN table.
var Default = New(bdata.Static())

func (e *Engine) DetectCard(input string) mod.CardDetectionResult {
	normalized := Clean(input)
	if normalized == "" {
		return mod.CardDetectionResult{
			Brand:          mod.BrandUnknown,
			PossibleBrands: []mod.Brand{},
			Metadata:       mod.NewCardMetadata(mod.BrandUnknown, mod.BinMetadata{}),
			Format:         mod.DefaultFormat(),
		}
	}

	candidates := pattern.Match(normalized)
	if len(candidates) == 0 {
		f := mod.DefaultFormat()
		return mod.CardDetectionResult{
			Brand:          mod.BrandUnknown,
			PossibleBrands: []mod.Brand{},
			Metadata:       mod.NewCardMetadata(mod.BrandUnknown, e.bins.Lookup(normalized)),
			Format:         f,
			Normalized:     normalized,
			Formatted:      formatDigits(normalized, f.Gaps, " "),
			Masked:         mask(normalized),
		}
	}

	primary := candidates[0]
	possible := make([]mod.Brand, 0, len(candidates))
	seen := make(map[mod.Brand]bool, len(candidates))
	for _, c := range candidates {
		if c.Brand == mod.BrandUnknown || seen[c.Brand] {
			continue
		}
		seen[c.Brand] = true
		possible = append(possible, c.Brand)
	}

	return mod.CardDetectionResult{
		Brand:          primary.Brand,
		PossibleBrands: possible,
		Metadata:       mod.NewCardMetadata(primary.Brand, e.bins.Lookup(normalized)),
		Format:         primary.Format,
		IsComplete:     primary.Format.HasLength(len(normalized)),
		Normalized:     normalized,
		Formatted:      formatDigits(normalized, primary.Format.Gaps, " "),
		Masked:         mask(normalized),
	}
}

func (e *Engine) DetectBrand(input string) mod.Brand {
	return e.DetectCard(input).Brand
}

func (e *Engine) DetectPossibleBrands(input string) []mod.Brand {
	return e.DetectCard(input).PossibleBrands
}

func (e *Engine) GetCardMetadata(input string) mod.CardMetadata {
	return e.DetectCard(input).Metadata
}

func (e *Engine) FormatCard(input string) string {
	return e.DetectCard(input).Formatted
}

func (e *Engine) MaskCard(input string) string {
	return e.DetectCard(input).Masked
}

func (e *Engine) IsLatamCard(input string) bool {
	md := e.GetCardMetadata(input)
	return md.Region == mod.RegionLatam || md.IsRegional
}

func (e *Engine) SupportsInstallments(input string) bool {
	return e.GetCardMetadata(input).SupportsInstallments
}

// GetMaxInstallments returns zero when the brand has no installment plans.
func (e *Engine) GetMaxInstallments(input string) int {
	return e.GetCardMetadata(input).MaxInstallments
}

func DetectCard(input string) mod.CardDetectionResult { return Default.DetectCard(input) }
func DetectBrand(input string) mod.Brand                 { return Default.DetectBrand(input) }
func DetectPossibleBrands(input string) []mod.Brand      { return Default.DetectPossibleBrands(input) }
func GetCardMetadata(input string) mod.CardMetadata      { return Default.GetCardMetadata(input) }
func FormatCard(input string) string                     { return Default.FormatCard(input) }
func FormatWithDashes(input string) string               { return Default.FormatWithDashes(input) }
func MaskCard(input string) string                       { return Default.MaskCard(input) }
func IsLatamCard(input string) bool                      { return Default.IsLatamCard(input) }
func SupportsInstallments(input string) bool             { return Default.SupportsInstallments(input) }
func GetMaxInstallments(input string) int                { return Default.GetMaxInstallments(input) }
