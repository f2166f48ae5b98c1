package validate

import (
	"fmt"

	"git.thinkinpower.net/cardkit/detect"
	"git.thinkinpower.net/cardkit/mod"
)

func (v *Validator) ValidateCvv(cvv string, brand mod.Brand) mod.CvvValidationResult {
	cleaned := detect.Clean(cvv)
	expected := 3
	if brand == mod.BrandAmex {
		expected = 4
	}
	errs := make([]mod.ValidationError, 0, 1)

	if cleaned == "" {
		hint := "3 digits on the back of your card"
		if brand == mod.BrandAmex {
			hint = "4 digits on the front of your card"
		}
		errs = append(errs, mod.ValidationError{
			Code:    mod.CodeEmpty,
			Message: "Enter security code",
			Hint:    hint,
			Field:   mod.FieldCvv,
		})
		return mod.CvvValidationResult{Errors: errs, ExpectedLength: expected}
	}

	if len(cleaned) != expected {
		hint := "Find the 3-digit code on the back"
		if brand == mod.BrandAmex {
			hint = "Find the 4-digit code on the front"
		}
		errs = append(errs, mod.ValidationError{
			Code:    mod.CodeInvalidCvvLength,
			Message: fmt.Sprintf("Enter %d digits", expected),
			Hint:    hint,
			Field:   mod.FieldCvv,
		})
	}

	return mod.CvvValidationResult{IsValid: len(errs) == 0, Errors: errs, ExpectedLength: expected}
}
