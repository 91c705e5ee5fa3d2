package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fjacquet/paydown/internal/models"
)

func TestMulDivRoundHalfEven(t *testing.T) {
	tests := []struct {
		name     string
		value    int64
		num      int64
		den      int64
		expected int64
	}{
		{name: "Exact", value: 100000, num: 1200, den: 120000, expected: 1000},
		{name: "RoundsDown", value: 837423, num: 200, den: 10000, expected: 16748}, // 16748.46
		{name: "RoundsUp", value: 100, num: 76, den: 100, expected: 76},
		{name: "HalfToEvenDown", value: 25, num: 1, den: 10, expected: 2}, // 2.5 -> 2
		{name: "HalfToEvenUp", value: 35, num: 1, den: 10, expected: 4},   // 3.5 -> 4
		{name: "HalfToEvenZero", value: 5, num: 1, den: 10, expected: 0},  // 0.5 -> 0
		{name: "ZeroValue", value: 0, num: 2499, den: 120000, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mulDivRoundHalfEven(tt.value, tt.num, tt.den))
		})
	}
}

func TestCeilDiv(t *testing.T) {
	assert.Equal(t, int64(300), ceilDiv(900, 3))
	assert.Equal(t, int64(334), ceilDiv(1001, 3))
	assert.Equal(t, int64(0), ceilDiv(0, 3))
	assert.Equal(t, int64(1), ceilDiv(1, 6))
}

func TestMonthlyInterest(t *testing.T) {
	tests := []struct {
		name     string
		balance  int64
		aprBps   int64
		expected int64
	}{
		// 8374.23 at 24.99% -> 8374.23 * 0.2499 / 12 = 174.39 (17439.37 cents/100)
		{name: "StandardRate", balance: 837423, aprBps: 2499, expected: 17439},
		{name: "PromoRate", balance: 837423, aprBps: 0, expected: 0},
		{name: "ZeroBalance", balance: 0, aprBps: 2499, expected: 0},
		{name: "SmallBalance", balance: 100, aprBps: 1200, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, monthlyInterest(tt.balance, tt.aprBps))
		})
	}
}

func TestMinimumPayment(t *testing.T) {
	tests := []struct {
		name     string
		balance  int64
		interest int64
		rule     models.MinPaymentRule
		expected int64
	}{
		{
			name:    "FixedWins",
			balance: 100000,
			rule:    models.MinPaymentRule{FixedCents: 10000, PercentageBps: 200},
			// 2% of 1000.00 = 20.00; fixed 100.00 wins
			expected: 10000,
		},
		{
			name:    "PercentageWins",
			balance: 837423,
			rule:    models.MinPaymentRule{FixedCents: 10000, PercentageBps: 200},
			// 2% of 8374.23 = 167.48
			expected: 16748,
		},
		{
			name:     "ZeroRuleYieldsZeroFloor",
			balance:  100000,
			rule:     models.MinPaymentRule{},
			expected: 0,
		},
		{
			name:     "InterestIncluded",
			balance:  100000,
			interest: 2000,
			rule:     models.MinPaymentRule{FixedCents: 5000, IncludesInterest: true},
			expected: 7000,
		},
		{
			name:     "ClampedToTotalOwed",
			balance:  3000,
			interest: 50,
			rule:     models.MinPaymentRule{FixedCents: 10000},
			expected: 3050,
		},
		{
			name:     "ZeroBalance",
			balance:  0,
			rule:     models.MinPaymentRule{FixedCents: 10000},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, minimumPayment(tt.balance, tt.interest, tt.rule))
		})
	}
}
