package validate

import "git.thinkinpower.net/cardkit/mod"

// ValidateCard runs every field validator. The security code is checked
// against the brand found while validating the number.
func (v *Validator) ValidateCard(number, expiry, cvv, name string, opts mod.ValidateOptions) mod.FullCardValidation {
	cardResult := v.ValidateCardNumber(number, opts)
	expiryResult := v.ValidateExpiryDate(expiry)
	cvvResult := v.ValidateCvv(cvv, cardResult.Brand)
	nameResult := v.ValidateCardholderName(name)

	return mod.FullCardValidation{
		IsValid: cardResult.IsValid &&
			(expiryResult.IsValid || !opts.ExpiryRequired()) &&
			(cvvResult.IsValid || !opts.CvvRequired()) &&
			nameResult.IsValid,
		CardNumber:     cardResult,
		ExpiryDate:     expiryResult,
		Cvv:            cvvResult,
		CardholderName: nameResult,
		Metadata:       cardResult.Metadata,
	}
}
