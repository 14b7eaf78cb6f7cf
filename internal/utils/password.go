package utils

import (
	"fmt"
	"strings"

	"github.com/SscSPs/ads_resale_dashboard/internal/apperrors"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 20
	passwordSpecials  = "@$!%*?&"
)

// CheckPasswordRule enforces the backend's password policy: 8 to 20
// characters drawn from letters, digits and @$!%*?&, with at least one
// lowercase letter, one uppercase letter, one digit and one special.
func CheckPasswordRule(password string) error {
	if n := len(password); n < minPasswordLength || n > maxPasswordLength {
		return fmt.Errorf("%w: password must be %d to %d characters", apperrors.ErrValidation, minPasswordLength, maxPasswordLength)
	}

	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		default:
			return fmt.Errorf("%w: password may only contain letters, digits and %s", apperrors.ErrValidation, passwordSpecials)
		}
	}

	if !lower || !upper || !digit || !special {
		return fmt.Errorf("%w: password needs a lowercase letter, an uppercase letter, a digit and one of %s", apperrors.ErrValidation, passwordSpecials)
	}
	return nil
}

// ValidPassword reports whether password satisfies CheckPasswordRule.
func ValidPassword(password string) bool {
	return CheckPasswordRule(password) == nil
}
