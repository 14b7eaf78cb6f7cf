package utils

import (
	"strings"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
)

// FormatVND formats an amount the way the dashboard shows it: rounded to the
// dong, thousands grouped with dots, followed by the currency sign.
// Example: 1234567.6 returns "1.234.568 ₫"
func FormatVND(amount domain.Money) string {
	digits := amount.Round().Decimal().Abs().String()

	var b strings.Builder
	if amount.Round().IsNegative() {
		b.WriteByte('-')
	}
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte('.')
		b.WriteString(digits[i : i+3])
	}
	b.WriteString(" ₫")
	return b.String()
}
