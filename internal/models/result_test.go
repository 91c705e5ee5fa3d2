package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanResultBreakdowns(t *testing.T) {
	plan := PlanResult{
		Status: PlanStatusComplete,
		Results: []MonthlyResult{
			{Month: 1, LenderName: "Card A", PaymentCents: 10000, InterestChargedCents: 500},
			{Month: 1, LenderName: "Card B", PaymentCents: 5000, InterestChargedCents: 200},
			{Month: 2, LenderName: "Card A", PaymentCents: 10000, InterestChargedCents: 450},
			{Month: 13, LenderName: "Card A", PaymentCents: 8000, InterestChargedCents: 100},
		},
		PayoffMonths: 13,
	}

	byAccount := plan.InterestByAccount()
	assert.Equal(t, int64(1050), byAccount["Card A"])
	assert.Equal(t, int64(200), byAccount["Card B"])

	byYear := plan.InterestByYear()
	assert.Equal(t, int64(1150), byYear[1])
	assert.Equal(t, int64(100), byYear[2])

	assert.Equal(t, int64(33000), plan.TotalPaidCents())
}

func TestPortfolioTotalBalance(t *testing.T) {
	portfolio := DebtPortfolio{
		Accounts: []Account{
			{LenderName: "Card A", CurrentBalanceCents: 500000},
			{LenderName: "Card B", CurrentBalanceCents: 200000},
		},
	}
	assert.Equal(t, int64(700000), portfolio.TotalBalanceCents())
}

func TestPortfolioStartDateDefault(t *testing.T) {
	portfolio := DebtPortfolio{}
	start := portfolio.StartDate()
	assert.False(t, start.IsZero())
	// Midnight boundary, so month arithmetic is stable
	assert.Zero(t, start.Hour())
	assert.Zero(t, start.Minute())
}
