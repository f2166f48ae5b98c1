package validate

import (
	"git.thinkinpower.net/cardkit/detect"
	"git.thinkinpower.net/cardkit/mod"
)

// ValidateExpiryDate accepts MMYY in any punctuation ("12/30", "12-30",
// "1230"). While the year is half typed, its single digit is read as a year
// of the current decade.
func (v *Validator) ValidateExpiryDate(expiry string) mod.ExpiryValidationResult {
	cleaned := detect.Clean(expiry)
	errs := make([]mod.ValidationError, 0, 1)

	if cleaned == "" {
		errs = append(errs, mod.ValidationError{
			Code:    mod.CodeEmpty,
			Message: "Enter expiry date",
			Hint:    "Find MM/YY on the front of your card",
			Field:   mod.FieldExpiryDate,
		})
		return mod.ExpiryValidationResult{Errors: errs}
	}

	now := v.now()
	currentYear, currentMonth := now.Year(), int(now.Month())

	var month, year *int
	if len(cleaned) >= 2 {
		m := atoi(cleaned[:2])
		month = &m
	}
	if len(cleaned) >= 4 {
		y := 2000 + atoi(cleaned[2:4])
		year = &y
	} else if len(cleaned) == 3 {
		y := currentYear - currentYear%10 + atoi(cleaned[2:3])
		year = &y
	}

	if month != nil && (*month < 1 || *month > 12) {
		errs = append(errs, mod.ValidationError{
			Code:    mod.CodeInvalidMonth,
			Message: "Invalid month",
			Hint:    "Enter a month between 01 and 12",
			Field:   mod.FieldExpiryDate,
		})
	}

	result := mod.ExpiryValidationResult{Month: month, Year: year}
	if month != nil && year != nil {
		if *year < currentYear || (*year == currentYear && *month < currentMonth) {
			result.IsExpired = true
			errs = append(errs, mod.ValidationError{
				Code:    mod.CodeExpired,
				Message: "This card has expired",
				Hint:    "Please use a different card",
				Field:   mod.FieldExpiryDate,
			})
		}
		result.ExpiresThisMonth = *year == currentYear && *month == currentMonth
	}

	result.Errors = errs
	result.IsValid = month != nil && year != nil && len(cleaned) >= 4 && len(errs) == 0
	return result
}

// atoi parses a short run of ASCII digits.
func atoi(digits string) int {
	n := 0
	for i := 0; i < len(digits); i++ {
		n = n*10 + int(digits[i]-'0')
	}
	return n
}
