package validate

import (
	"errors"
	"unicode"
)

// MinPasswordLength is enforced locally before any network call.
const MinPasswordLength = 8

var (
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrPasswordTooWeak  = errors.New("password must mix upper/lower case, digits and symbols")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// PasswordScore rates a candidate password 0-4: one point each for length,
// case mixing, a digit, and a symbol. This mirrors the reset form's local
// strength meter and is independent of any server-side validation.
func PasswordScore(pw string) int {
	var upper, lower, digit, symbol bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}

	score := 0
	if len(pw) >= MinPasswordLength {
		score++
	}
	if upper && lower {
		score++
	}
	if digit {
		score++
	}
	if symbol {
		score++
	}
	return score
}

// CheckNewPassword applies the full local policy for the reset form: minimum
// length, a strength score of at least 3, and confirmation match. It blocks
// submission before any backend call.
func CheckNewPassword(newPassword, confirmPassword string) error {
	if len(newPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if PasswordScore(newPassword) < 3 {
		return ErrPasswordTooWeak
	}
	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}
	return nil
}
