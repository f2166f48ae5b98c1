// Package validate checks the fields of a card form and composes them into
// a single report. Invalid input is reported as data, never as an error.
package validate

import (
	"time"

	"git.thinkinpower.net/cardkit/detect"
	"git.thinkinpower.net/cardkit/mod"
)

type Validator struct {
	engine *detect.Engine
	now    func() time.Time
}

type Option func(*Validator)

// WithEngine makes the validator detect cards against engine.
func WithEngine(engine *detect.Engine) Option {
	return func(v *Validator) {
		v.engine = engine
	}
}

// WithClock replaces the clock used to decide whether a card has expired.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		v.now = now
	}
}

func New(opts ...Option) *Validator {
	v := &Validator{engine: detect.Default, now: time.Now}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

var std = New()

func ValidateCardNumber(number string, opts mod.ValidateOptions) mod.CardValidationResult {
	return std.ValidateCardNumber(number, opts)
}

func ValidateExpiryDate(expiry string) mod.ExpiryValidationResult {
	return std.ValidateExpiryDate(expiry)
}

func ValidateCvv(cvv string, brand mod.Brand) mod.CvvValidationResult {
	return std.ValidateCvv(cvv, brand)
}

func ValidateCardholderName(name string) mod.NameValidationResult {
	return std.ValidateCardholderName(name)
}

func ValidateCard(number, expiry, cvv, name string, opts mod.ValidateOptions) mod.FullCardValidation {
	return std.ValidateCard(number, expiry, cvv, name, opts)
}

func IsValidCardNumber(number string) bool {
	return std.ValidateCardNumber(number, mod.ValidateOptions{}).IsValid
}

func IsValidExpiry(expiry string) bool {
	return std.ValidateExpiryDate(expiry).IsValid
}

func IsValidCvv(cvv string, brand mod.Brand) bool {
	return std.ValidateCvv(cvv, brand).IsValid
}

// GetValidationErrors runs the full pipeline with default options and
// returns every error in field order.
func GetValidationErrors(number, expiry, cvv, name string) []mod.ValidationError {
	return std.ValidateCard(number, expiry, cvv, name, mod.ValidateOptions{}).Errors()
}
