package validation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrValidation is returned for any value failing a format check.
var ErrValidation = errors.New("validation: invalid value")

// IBAN checks the structural shape of an account number: 15 to 34
// alphanumeric characters opening with an alphabetic country code. No
// checksum arithmetic happens here; the ASPSP validates that on its side.
func IBAN(iban string) error {
	if len(iban) < 15 || len(iban) > 34 {
		return fmt.Errorf("%w: IBAN length must be between 15 and 34 characters", ErrValidation)
	}
	for _, r := range iban {
		if !isAlphanumeric(r) {
			return fmt.Errorf("%w: IBAN must contain only alphanumeric characters", ErrValidation)
		}
	}
	if !isLetter(rune(iban[0])) || !isLetter(rune(iban[1])) {
		return fmt.Errorf("%w: IBAN country code must be alphabetic", ErrValidation)
	}
	return nil
}

// CurrencyCode checks for a three-letter uppercase ISO 4217 code.
func CurrencyCode(currency string) error {
	if len(currency) != 3 {
		return fmt.Errorf("%w: currency code must be exactly 3 characters", ErrValidation)
	}
	for _, r := range currency {
		if r < 'A' || r > 'Z' {
			return fmt.Errorf("%w: currency code must be uppercase alphabetic characters", ErrValidation)
		}
	}
	return nil
}

// Amount checks that amount is a positive decimal number in string form.
func Amount(amount string) error {
	if amount == "" {
		return fmt.Errorf("%w: amount cannot be empty", ErrValidation)
	}
	value, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return fmt.Errorf("%w: amount must be a valid decimal number", ErrValidation)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: amount must be a finite number", ErrValidation)
	}
	if value < 0 {
		return fmt.Errorf("%w: amount cannot be negative", ErrValidation)
	}
	if value == 0 {
		return fmt.Errorf("%w: amount cannot be zero", ErrValidation)
	}
	return nil
}

// BIC checks for an 8 or 11 character uppercase alphanumeric SWIFT code.
func BIC(bic string) error {
	if len(bic) != 8 && len(bic) != 11 {
		return fmt.Errorf("%w: BIC code must be 8 or 11 characters long", ErrValidation)
	}
	for _, r := range bic {
		if !isUppercaseAlphanumeric(r) {
			return fmt.Errorf("%w: BIC code must be uppercase alphanumeric characters", ErrValidation)
		}
	}
	return nil
}

// Email checks the minimal shape local@domain with both parts non-empty.
func Email(email string) error {
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: email must contain @ symbol", ErrValidation)
	}
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return fmt.Errorf("%w: email must have exactly one @ symbol", ErrValidation)
	}
	if parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("%w: email local and domain parts cannot be empty", ErrValidation)
	}
	return nil
}

func isLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func isAlphanumeric(r rune) bool {
	return isLetter(r) || (r >= '0' && r <= '9')
}

func isUppercaseAlphanumeric(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
