package validate

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"git.thinkinpower.net/cardkit/detect"
	"git.thinkinpower.net/cardkit/mod"
)

// minDigitsForBrand is how many digits are needed before an unresolved
// brand is reported.
const minDigitsForBrand = 6

func (v *Validator) ValidateCardNumber(number string, _ mod.ValidateOptions) mod.CardValidationResult {
	detection := v.engine.DetectCard(number)
	normalized := detection.Normalized
	errs := make([]mod.ValidationError, 0, 2)
	checks := mod.ValidationChecks{Expiry: true, Cvv: true}

	if normalized == "" {
		errs = append(errs, mod.ValidationError{
			Code:    mod.CodeEmpty,
			Message: "Enter your card number",
			Hint:    "You'll find it on the front of your card",
			Field:   mod.FieldCardNumber,
		})
		return mod.CardValidationResult{
			Errors:   errs,
			Brand:    mod.BrandUnknown,
			Metadata: detection.Metadata,
			Checks:   checks,
		}
	}

	if hasForeignCharacters(number) {
		errs = append(errs, mod.ValidationError{
			Code:    mod.CodeInvalidCharacters,
			Message: "Only numbers allowed",
			Hint:    "Remove any spaces, letters or symbols",
			Field:   mod.FieldCardNumber,
		})
	}

	lengths := detection.Format.Lengths
	checks.Length = detection.Format.HasLength(len(normalized))
	if !checks.Length {
		shortest := shortestLength(lengths)
		if remaining := shortest - len(normalized); remaining > 0 {
			errs = append(errs, mod.ValidationError{
				Code:    mod.CodeInvalidLengthForBrand,
				Message: fmt.Sprintf("%d more %s needed", remaining, plural(remaining, "digit")),
				Hint:    fmt.Sprintf("Enter all %d digits from your card", shortest),
				Field:   mod.FieldCardNumber,
			})
		} else {
			errs = append(errs, mod.ValidationError{
				Code:    mod.CodeInvalidLengthForBrand,
				Message: "Too many digits",
				Hint:    fmt.Sprintf("%s cards have %s digits", detection.Brand.Name(), joinLengths(lengths)),
				Field:   mod.FieldCardNumber,
			})
		}
	}

	checks.Luhn = detect.Luhn(normalized)
	if !checks.Luhn && checks.Length {
		errs = append(errs, mod.ValidationError{
			Code:    mod.CodeInvalidLuhn,
			Message: "This card number doesn't look right",
			Hint:    "Double-check the numbers on your card",
			Field:   mod.FieldCardNumber,
		})
	}

	checks.Prefix = detection.Brand != mod.BrandUnknown
	if !checks.Prefix && len(normalized) >= minDigitsForBrand {
		errs = append(errs, mod.ValidationError{
			Code:    mod.CodeUnknownBrand,
			Message: "Card not recognized",
			Hint:    "We accept Visa, Mastercard, Amex and more",
			Field:   mod.FieldCardNumber,
		})
	}

	return mod.CardValidationResult{
		IsValid:  len(errs) == 0 && checks.Length && checks.Luhn && checks.Prefix,
		Errors:   errs,
		Brand:    detection.Brand,
		Metadata: detection.Metadata,
		Checks:   checks,
	}
}

// hasForeignCharacters reports anything besides digits and the spaces or
// dashes people type between digit groups.
func hasForeignCharacters(s string) bool {
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '-' || unicode.IsSpace(r) {
			continue
		}
		return true
	}
	return false
}

// shortestLength returns the smallest valid length. Numbers between two
// valid lengths count as too long.
func shortestLength(lengths []int) int {
	shortest := 0
	for i, l := range lengths {
		if i == 0 || l < shortest {
			shortest = l
		}
	}
	return shortest
}

func joinLengths(lengths []int) string {
	parts := make([]string, len(lengths))
	for i, l := range lengths {
		parts[i] = strconv.Itoa(l)
	}
	return strings.Join(parts, " or ")
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
