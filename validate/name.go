package validate

import (
	"strings"

	"git.thinkinpower.net/cardkit/mod"
)

func (v *Validator) ValidateCardholderName(name string) mod.NameValidationResult {
	trimmed := strings.TrimSpace(name)
	errs := make([]mod.ValidationError, 0, 1)

	if trimmed == "" {
		errs = append(errs, mod.ValidationError{
			Code:    mod.CodeEmpty,
			Message: "Enter cardholder name",
			Hint:    "Name as shown on your card",
			Field:   mod.FieldCardholderName,
		})
		return mod.NameValidationResult{Errors: errs}
	}

	if len([]rune(trimmed)) < 2 {
		errs = append(errs, mod.ValidationError{
			Code:    mod.CodeInvalidLength,
			Message: "Name too short",
			Hint:    "Enter your full name",
			Field:   mod.FieldCardholderName,
		})
	}

	return mod.NameValidationResult{IsValid: len(errs) == 0, Errors: errs}
}
