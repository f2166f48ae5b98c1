package detect

import (
	"strings"
	"unicode/utf8"
)

// MaskGlyph replaces every hidden digit.
const MaskGlyph = '•'

// Clean strips every character that is not an ASCII digit.
func Clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// group splits digits at the gap offsets. Offsets beyond the input are
// ignored and the last group runs to the end.
func group(digits string, gaps []int) []string {
	if digits == "" {
		return nil
	}
	parts := make([]string, 0, len(gaps)+1)
	start := 0
	for _, gap := range gaps {
		if gap >= len(digits) {
			break
		}
		parts = append(parts, digits[start:gap])
		start = gap
	}
	return append(parts, digits[start:])
}

func formatDigits(digits string, gaps []int, sep string) string {
	return strings.Join(group(digits, gaps), sep)
}

func mask(digits string) string {
	if len(digits) <= 4 {
		return digits
	}
	hidden := len(digits) - 4
	var b strings.Builder
	b.Grow(hidden*utf8.RuneLen(MaskGlyph) + 4)
	for i := 0; i < hidden; i++ {
		b.WriteRune(MaskGlyph)
	}
	b.WriteString(digits[hidden:])
	return b.String()
}

// FormatWithDashes groups the number like FormatCard but joins the groups
// with " - ", e.g. "4111 - 1111 - 1111 - 1111".
func (e *Engine) FormatWithDashes(input string) string {
	d := e.DetectCard(input)
	return formatDigits(d.Normalized, d.Format.Gaps, " - ")
}

// LastFour returns the last four digits, or four mask glyphs when the input
// has no digits.
func LastFour(input string) string {
	digits := Clean(input)
	if digits == "" {
		return strings.Repeat(string(MaskGlyph), 4)
	}
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}
