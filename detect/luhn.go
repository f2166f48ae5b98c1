package detect

// Luhn reports whether digits passes the mod 10 checksum. Starting from the
// rightmost digit every second digit is doubled, 9 is subtracted from
// doubles above 9 and the sum must be divisible by 10. Empty input and
// input with anything but ASCII digits fail.
func Luhn(digits string) bool {
	if digits == "" {
		return false
	}
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}
		digit := int(c - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum%10 == 0
}
