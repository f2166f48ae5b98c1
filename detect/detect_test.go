package detect

import (
	"strings"
	"testing"
	"unicode/utf8"

	"git.thinkinpower.net/cardkit/mod"
)

var sampleInputs = []string{
	"",
	"4",
	"4111",
	"4111 1111 1111 1111",
	"4111-1111-1111-1111",
	"378282246310005",
	"3056 930902 5904",
	"5555555555554444",
	"1234567890123456",
	"abc 12",
	"6011111111111117",
	"4111111111111111111",
	"62",
}

func TestDetectCardVisa(t *testing.T) {
	full := DetectCard("4111111111111111")
	if full.Brand != mod.BrandVisa || !full.IsComplete {
		t.Fatalf("full visa = %s complete=%v", full.Brand, full.IsComplete)
	}
	if full.Formatted != "4111 1111 1111 1111" {
		t.Errorf("formatted = %q", full.Formatted)
	}
	if full.Masked != "••••••••••••1111" {
		t.Errorf("masked = %q", full.Masked)
	}
	if full.Metadata.Level != mod.LevelClassic || full.Metadata.Region != mod.RegionGlobal {
		t.Errorf("metadata = %+v", full.Metadata)
	}
	if !full.Metadata.SupportsInstallments || full.Metadata.MaxInstallments != 48 {
		t.Errorf("installments = %+v", full.Metadata)
	}

	partial := DetectCard("4111")
	if partial.Brand != mod.BrandVisa || partial.IsComplete {
		t.Fatalf("partial visa = %s complete=%v", partial.Brand, partial.IsComplete)
	}
	if partial.Masked != "4111" {
		t.Errorf("short input should not be masked, got %q", partial.Masked)
	}
}

func TestDetectCardEmpty(t *testing.T) {
	d := DetectCard("  - ")
	if d.Brand != mod.BrandUnknown || d.IsComplete {
		t.Fatalf("empty detection = %+v", d)
	}
	if d.Formatted != "" || d.Masked != "" || d.Normalized != "" {
		t.Errorf("empty detection strings = %q %q %q", d.Normalized, d.Formatted, d.Masked)
	}
	if len(d.PossibleBrands) != 0 {
		t.Errorf("possible brands = %v", d.PossibleBrands)
	}
	if d.Format.Code.Size != 3 || len(d.Format.Lengths) != 1 || d.Format.Lengths[0] != 16 {
		t.Errorf("fallback format = %+v", d.Format)
	}
	if d.Metadata.Type != mod.CardTypeUnknown || d.Metadata.Level != mod.LevelUnknown {
		t.Errorf("metadata = %+v", d.Metadata)
	}
}

func TestDetectCardUnknownBrandStillResolvesMetadata(t *testing.T) {
	d := DetectCard("1234 5678 9012 3456")
	if d.Brand != mod.BrandUnknown {
		t.Fatalf("brand = %s", d.Brand)
	}
	if d.Formatted != "1234 5678 9012 3456" {
		t.Errorf("formatted = %q", d.Formatted)
	}
	if d.Masked != "••••••••••••3456" {
		t.Errorf("masked = %q", d.Masked)
	}
	if d.Metadata.Region != mod.RegionUnknown || !d.Metadata.IsRegional {
		t.Errorf("metadata = %+v", d.Metadata)
	}
}

func TestDetectCardAmexGrouping(t *testing.T) {
	d := DetectCard("378282246310005")
	if d.Brand != mod.BrandAmex || !d.IsComplete {
		t.Fatalf("amex = %s complete=%v", d.Brand, d.IsComplete)
	}
	if d.Formatted != "3782 822463 10005" {
		t.Errorf("formatted = %q", d.Formatted)
	}
	if d.Format.Code.Size != 4 {
		t.Errorf("code = %+v", d.Format.Code)
	}
	if d.Metadata.Level != mod.LevelPlatinum {
		t.Errorf("level = %s", d.Metadata.Level)
	}
}

func TestDetectCardLatam(t *testing.T) {
	d := DetectCard("6362970000457013")
	if d.Brand != mod.BrandElo {
		t.Fatalf("brand = %s", d.Brand)
	}
	if d.Metadata.Region != mod.RegionLatam || !d.Metadata.IsRegional {
		t.Errorf("metadata = %+v", d.Metadata)
	}
	if !IsLatamCard("6362970000457013") {
		t.Error("IsLatamCard = false")
	}
	if GetMaxInstallments("6362970000457013") != 12 {
		t.Errorf("max installments = %d", GetMaxInstallments("6362970000457013"))
	}
}

func TestDetectCardAmbiguousPrefix(t *testing.T) {
	d := DetectCard("5")
	if len(d.PossibleBrands) < 2 {
		t.Fatalf("possible brands = %v", d.PossibleBrands)
	}
	if d.Brand != d.PossibleBrands[0] {
		t.Errorf("primary %s is not first of %v", d.Brand, d.PossibleBrands)
	}
}

type fixedSource mod.BinMetadata

func (f fixedSource) Lookup(string) mod.BinMetadata { return mod.BinMetadata(f) }

func TestEngineUsesMetadataSource(t *testing.T) {
	e := New(fixedSource{Type: mod.CardTypeDebit, Level: mod.LevelInfinite, Region: mod.RegionEurope, Bank: "Test Bank"})
	md := e.GetCardMetadata("4111111111111111")
	if md.Type != mod.CardTypeDebit || md.Level != mod.LevelInfinite || md.Bank != "Test Bank" {
		t.Errorf("metadata = %+v", md)
	}
	if md.Region != mod.RegionEurope || !md.IsRegional {
		t.Errorf("bin region should win over brand region: %+v", md)
	}
}

func TestDetectIsIdempotent(t *testing.T) {
	for _, in := range sampleInputs {
		once := DetectCard(in).Normalized
		if twice := DetectCard(once).Normalized; twice != once {
			t.Errorf("normalize(%q) = %q, again = %q", in, once, twice)
		}
	}
}

func TestMaskKeepsLastFour(t *testing.T) {
	for _, in := range sampleInputs {
		normalized := Clean(in)
		masked := MaskCard(in)
		if len(normalized) <= 4 {
			if masked != normalized {
				t.Errorf("MaskCard(%q) = %q, want %q", in, masked, normalized)
			}
			continue
		}
		if !strings.HasSuffix(masked, normalized[len(normalized)-4:]) {
			t.Errorf("MaskCard(%q) = %q lost the last four digits", in, masked)
		}
		if n := utf8.RuneCountInString(masked); n != len(normalized) {
			t.Errorf("MaskCard(%q) has %d characters, want %d", in, n, len(normalized))
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, in := range sampleInputs {
		if got, want := Clean(FormatCard(in)), DetectCard(in).Normalized; got != want {
			t.Errorf("Clean(FormatCard(%q)) = %q, want %q", in, got, want)
		}
		if got, want := Clean(FormatWithDashes(in)), DetectCard(in).Normalized; got != want {
			t.Errorf("Clean(FormatWithDashes(%q)) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatHelpers(t *testing.T) {
	if got := FormatWithDashes("4111111111111111"); got != "4111 - 1111 - 1111 - 1111" {
		t.Errorf("FormatWithDashes = %q", got)
	}
	if got := FormatCard("41111"); got != "4111 1" {
		t.Errorf("FormatCard partial = %q", got)
	}
	if got := LastFour("4111 1111 1111 1234"); got != "1234" {
		t.Errorf("LastFour = %q", got)
	}
	if got := LastFour(""); got != "••••" {
		t.Errorf("LastFour empty = %q", got)
	}
	if got := Clean("4111-1111 abc"); got != "41111111" {
		t.Errorf("Clean = %q", got)
	}
}
