package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBudgetActiveMonthlyAmount(t *testing.T) {
	budget := Budget{
		MonthlyBudgetCents: 50000,
		FutureChanges: []BudgetChange{
			{EffectiveMonth: 4, AmountCents: 60000},
			{EffectiveMonth: 10, AmountCents: 45000},
		},
	}

	tests := []struct {
		name     string
		month    int
		expected int64
	}{
		{name: "BeforeAnyChange", month: 1, expected: 50000},
		{name: "MonthBeforeFirstChange", month: 3, expected: 50000},
		{name: "FirstChangeEffective", month: 4, expected: 60000},
		{name: "BetweenChanges", month: 9, expected: 60000},
		{name: "SecondChangeEffective", month: 10, expected: 45000},
		{name: "LongAfterLastChange", month: 240, expected: 45000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, budget.ActiveMonthlyAmount(tt.month))
		})
	}
}

func TestBudgetActiveMonthlyAmountUnsortedChanges(t *testing.T) {
	// The schedule is not required to be pre-sorted; the latest effective
	// month that has passed still wins.
	budget := Budget{
		MonthlyBudgetCents: 20000,
		FutureChanges: []BudgetChange{
			{EffectiveMonth: 6, AmountCents: 30000},
			{EffectiveMonth: 2, AmountCents: 25000},
		},
	}

	assert.Equal(t, int64(20000), budget.ActiveMonthlyAmount(1))
	assert.Equal(t, int64(25000), budget.ActiveMonthlyAmount(3))
	assert.Equal(t, int64(30000), budget.ActiveMonthlyAmount(7))
}

func TestBudgetLumpSumsForMonth(t *testing.T) {
	budget := Budget{
		MonthlyBudgetCents: 10000,
		LumpSums: []LumpSum{
			{Month: 2, AmountCents: 50000},
			{Month: 2, AmountCents: 20000, LenderName: "Big Bank"},
			{Month: 5, AmountCents: 15000},
		},
	}

	general, earmarked := budget.LumpSumsForMonth(2)
	assert.Equal(t, int64(50000), general)
	assert.Equal(t, int64(20000), earmarked["Big Bank"])
	assert.Equal(t, int64(70000), budget.TotalLumpSumForMonth(2))

	general, earmarked = budget.LumpSumsForMonth(3)
	assert.Zero(t, general)
	assert.Empty(t, earmarked)
	assert.Zero(t, budget.TotalLumpSumForMonth(3))

	general, _ = budget.LumpSumsForMonth(5)
	assert.Equal(t, int64(15000), general)
}
