package utils

import (
	"testing"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatVND(t *testing.T) {
	tests := []struct {
		in   domain.Money
		want string
	}{
		{domain.ZeroMoney, "0 ₫"},
		{domain.MoneyFromInt(999), "999 ₫"},
		{domain.MoneyFromInt(1000), "1.000 ₫"},
		{domain.ParseMoney("1234567.6"), "1.234.568 ₫"},
		{domain.MoneyFromInt(-250000), "-250.000 ₫"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatVND(tt.in))
	}
}
