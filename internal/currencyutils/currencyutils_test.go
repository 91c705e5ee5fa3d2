package currencyutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCents(t *testing.T) {
	tests := []struct {
		name     string
		cents    int64
		expected string
	}{
		{name: "Zero", cents: 0, expected: "0.00"},
		{name: "WholeUnits", cents: 10000, expected: "100.00"},
		{name: "WithFraction", cents: 837423, expected: "8374.23"},
		{name: "SingleCent", cents: 1, expected: "0.01"},
		{name: "Negative", cents: -2550, expected: "-25.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCents(tt.cents))
		})
	}
}

func TestFormatCentsWithCurrency(t *testing.T) {
	assert.Equal(t, "500.00 GBP", FormatCentsWithCurrency(50000, "GBP"))
}

func TestParseAmountToCents(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    int64
		expectError bool
	}{
		{name: "Plain", input: "83.74", expected: 8374},
		{name: "WholeNumber", input: "100", expected: 10000},
		{name: "ThousandsComma", input: "1,234.50", expected: 123450},
		{name: "SwissApostrophe", input: "1'234.50", expected: 123450},
		{name: "SubCentPrecision", input: "1.005", expectError: true},
		{name: "Garbage", input: "abc", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cents, err := ParseAmountToCents(tt.input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, cents)
			}
		})
	}
}

func TestBpsToPercentString(t *testing.T) {
	assert.Equal(t, "24.99%", BpsToPercentString(2499))
	assert.Equal(t, "0.00%", BpsToPercentString(0))
	assert.Equal(t, "2.00%", BpsToPercentString(200))
}
