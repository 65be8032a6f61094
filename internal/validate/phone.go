package validate

import (
	"errors"
	"strings"
)

var ErrInvalidPhone = errors.New("phone number must be 9 or 10 digits")

// StripCountryCode removes a detected country-code prefix ("+254...",
// "254...", "00254...") and any separators, returning the local digits.
func StripCountryCode(phone string) string {
	digits := digitsOnly(phone)

	trimmedPlus := strings.HasPrefix(strings.TrimSpace(phone), "+")
	if strings.HasPrefix(digits, "00") {
		digits = digits[2:]
		trimmedPlus = true
	}

	// A leading country code leaves more digits than a local number has.
	if (trimmedPlus || len(digits) > 10) && len(digits) > 9 {
		if cut := len(digits) - 9; cut <= 3 {
			return digits[cut:]
		}
	}
	return digits
}

// CheckPhone validates the local-number length after stripping a detected
// country-code prefix, matching the profile form's client-side rule.
func CheckPhone(phone string) error {
	local := StripCountryCode(phone)
	if len(local) != 9 && len(local) != 10 {
		return ErrInvalidPhone
	}
	return nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
