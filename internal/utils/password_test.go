package utils

import (
	"testing"

	"github.com/SscSPs/ads_resale_dashboard/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestCheckPasswordRule(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "valid", password: "Secret1!", valid: true},
		{name: "valid max length", password: "Abcdefghij123456789@", valid: true},
		{name: "too short", password: "Se1!", valid: false},
		{name: "too long", password: "Abcdefghij123456789@x", valid: false},
		{name: "no uppercase", password: "secret12!", valid: false},
		{name: "no lowercase", password: "SECRET12!", valid: false},
		{name: "no digit", password: "Secrets!!", valid: false},
		{name: "no special", password: "Secret123", valid: false},
		{name: "disallowed character", password: "Secret 12!", valid: false},
		{name: "non ascii", password: "Sécret12!", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPasswordRule(tt.password)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			}
			assert.Equal(t, tt.valid, ValidPassword(tt.password))
		})
	}
}
