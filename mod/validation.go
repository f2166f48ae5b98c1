package mod

type ValidationErrorCode string

const (
	CodeEmpty                 ValidationErrorCode = "empty"
	CodeInvalidCharacters     ValidationErrorCode = "invalid_characters"
	CodeInvalidLength         ValidationErrorCode = "invalid_length"
	CodeInvalidLengthForBrand ValidationErrorCode = "invalid_length_for_brand"
	CodeInvalidLuhn           ValidationErrorCode = "invalid_luhn"
	CodeInvalidPrefix         ValidationErrorCode = "invalid_prefix"
	CodeExpired               ValidationErrorCode = "expired"
	CodeInvalidMonth          ValidationErrorCode = "invalid_month"
	CodeInvalidCvvLength      ValidationErrorCode = "invalid_cvv_length"
	CodeUnknownBrand          ValidationErrorCode = "unknown_brand"
)

type Field string

const (
	FieldCardNumber     Field = "cardNumber"
	FieldExpiryDate     Field = "expiryDate"
	FieldCvv            Field = "cvv"
	FieldCardholderName Field = "cardholderName"
)

type ValidationError struct {
	Code    ValidationErrorCode `json:"code"`
	Message string              `json:"message"`
	Hint    string              `json:"hint,omitempty"`
	Field   Field               `json:"field"`
}

func (e ValidationError) Error() string {
	return string(e.Field) + ": " + e.Message
}

type ValidationChecks struct {
	Luhn   bool `json:"luhn"`
	Length bool `json:"length"`
	Prefix bool `json:"prefix"`
	Expiry bool `json:"expiry"`
	Cvv    bool `json:"cvv"`
}

type CardValidationResult struct {
	IsValid  bool              `json:"isValid"`
	Errors   []ValidationError `json:"errors"`
	Brand    Brand             `json:"brand"`
	Metadata CardMetadata      `json:"metadata"`
	Checks   ValidationChecks  `json:"checks"`
}

type ExpiryValidationResult struct {
	IsValid          bool              `json:"isValid"`
	Errors           []ValidationError `json:"errors"`
	Month            *int              `json:"month"`
	Year             *int              `json:"year"`
	IsExpired        bool              `json:"isExpired"`
	ExpiresThisMonth bool              `json:"expiresThisMonth"`
}

type CvvValidationResult struct {
	IsValid        bool              `json:"isValid"`
	Errors         []ValidationError `json:"errors"`
	ExpectedLength int               `json:"expectedLength"`
}

type NameValidationResult struct {
	IsValid bool              `json:"isValid"`
	Errors  []ValidationError `json:"errors"`
}

type FullCardValidation struct {
	IsValid        bool                   `json:"isValid"`
	CardNumber     CardValidationResult   `json:"cardNumber"`
	ExpiryDate     ExpiryValidationResult `json:"expiryDate"`
	Cvv            CvvValidationResult    `json:"cvv"`
	CardholderName NameValidationResult   `json:"cardholderName"`
	Metadata       CardMetadata           `json:"metadata"`
}

// Errors returns every field error, card number first and cardholder name last.
func (v FullCardValidation) Errors() []ValidationError {
	result := make([]ValidationError, 0,
		len(v.CardNumber.Errors)+len(v.ExpiryDate.Errors)+len(v.Cvv.Errors)+len(v.CardholderName.Errors))
	result = append(result, v.CardNumber.Errors...)
	result = append(result, v.ExpiryDate.Errors...)
	result = append(result, v.Cvv.Errors...)
	result = append(result, v.CardholderName.Errors...)
	return result
}

// ValidateOptions tunes ValidateCard. A nil RequireCvv or RequireExpiry
// means the field is required. Strict and AllowTestCards are reserved.
type ValidateOptions struct {
	Strict         bool  `json:"strict"`
	AllowTestCards bool  `json:"allowTestCards"`
	RequireCvv     *bool `json:"requireCvv,omitempty"`
	RequireExpiry  *bool `json:"requireExpiry,omitempty"`
}

func (o ValidateOptions) CvvRequired() bool {
	return o.RequireCvv == nil || *o.RequireCvv
}

func (o ValidateOptions) ExpiryRequired() bool {
	return o.RequireExpiry == nil || *o.RequireExpiry
}
