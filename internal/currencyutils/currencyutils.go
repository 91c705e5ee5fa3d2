// Package currencyutils converts between the planner's integer-cents values
// and human-readable decimal amounts. Plan arithmetic never leaves integer
// cents; decimals exist purely at the display and input boundary.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CentsToDecimal converts an integer cents value to a decimal amount in major
// currency units (e.g. 837423 -> 8374.23).
func CentsToDecimal(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// FormatCents renders a cents value as a fixed two-decimal string.
func FormatCents(cents int64) string {
	return CentsToDecimal(cents).StringFixed(2)
}

// FormatCentsWithCurrency renders a cents value with a trailing currency code,
// e.g. "8374.23 GBP".
func FormatCentsWithCurrency(cents int64, currency string) string {
	return fmt.Sprintf("%s %s", FormatCents(cents), currency)
}

// ParseAmountToCents parses a decimal amount string ("83.74", "1'234.50",
// "1,234.50") into integer cents. Fractions beyond two decimal places are
// rejected rather than silently rounded.
func ParseAmountToCents(amountStr string) (int64, error) {
	cleaned := strings.TrimSpace(amountStr)
	cleaned = strings.ReplaceAll(cleaned, "'", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	scaled := amount.Shift(2)
	if !scaled.Equal(scaled.Truncate(0)) {
		return 0, fmt.Errorf("amount '%s' has sub-cent precision", amountStr)
	}
	return scaled.IntPart(), nil
}

// BpsToPercentString renders a basis-point rate as a percentage string,
// e.g. 2499 -> "24.99%".
func BpsToPercentString(bps int64) string {
	return decimal.New(bps, -2).StringFixed(2) + "%"
}
