package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fjacquet/paydown/internal/models"
	"fjacquet/paydown/internal/plannererror"
)

func validPortfolio() *models.DebtPortfolio {
	return &models.DebtPortfolio{
		Accounts: []models.Account{
			{
				LenderName:          "Card A",
				Type:                models.AccountTypeCreditCard,
				CurrentBalanceCents: 100000,
				APRStandardBps:      2499,
				PaymentDueDay:       15,
				MinPaymentRule:      models.MinPaymentRule{FixedCents: 1000, PercentageBps: 100},
			},
		},
		Budget: models.Budget{MonthlyBudgetCents: 50000},
		Preferences: models.UserPreferences{
			Strategy:     models.StrategyMinimizeTotalInterest,
			PaymentShape: models.ShapeOptimizedMonthToMonth,
		},
		PlanStartDate: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestValidatePortfolioAccepted(t *testing.T) {
	assert.NoError(t, ValidatePortfolio(validPortfolio()))
}

func TestValidatePortfolioZeroMinimumRuleIsLegal(t *testing.T) {
	// A zero-valued minimum payment rule is a caller policy choice, not an
	// input fault. The planner must not reject it.
	portfolio := validPortfolio()
	portfolio.Accounts[0].MinPaymentRule = models.MinPaymentRule{}
	assert.NoError(t, ValidatePortfolio(portfolio))
}

func TestValidatePortfolioRejections(t *testing.T) {
	promoEnd := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	six := 6
	zero := 0

	tests := []struct {
		name   string
		mutate func(*models.DebtPortfolio)
		field  string
	}{
		{
			name:   "NoAccounts",
			mutate: func(p *models.DebtPortfolio) { p.Accounts = nil },
			field:  "accounts",
		},
		{
			name:   "EmptyLenderName",
			mutate: func(p *models.DebtPortfolio) { p.Accounts[0].LenderName = "" },
			field:  "accounts[0].lender_name",
		},
		{
			name: "DuplicateLenderName",
			mutate: func(p *models.DebtPortfolio) {
				p.Accounts = append(p.Accounts, p.Accounts[0])
			},
			field: "accounts[1].lender_name",
		},
		{
			name:   "UnknownAccountType",
			mutate: func(p *models.DebtPortfolio) { p.Accounts[0].Type = "mortgage" },
			field:  "accounts[0].account_type",
		},
		{
			name:   "NegativeBalance",
			mutate: func(p *models.DebtPortfolio) { p.Accounts[0].CurrentBalanceCents = -1 },
			field:  "accounts[0].current_balance_cents",
		},
		{
			name:   "NegativeAPR",
			mutate: func(p *models.DebtPortfolio) { p.Accounts[0].APRStandardBps = -100 },
			field:  "accounts[0].apr_standard_bps",
		},
		{
			name:   "DueDayTooLow",
			mutate: func(p *models.DebtPortfolio) { p.Accounts[0].PaymentDueDay = 0 },
			field:  "accounts[0].payment_due_day",
		},
		{
			name:   "DueDayTooHigh",
			mutate: func(p *models.DebtPortfolio) { p.Accounts[0].PaymentDueDay = 32 },
			field:  "accounts[0].payment_due_day",
		},
		{
			name:   "NegativeFixedMinimum",
			mutate: func(p *models.DebtPortfolio) { p.Accounts[0].MinPaymentRule.FixedCents = -1 },
			field:  "accounts[0].min_payment_rule.fixed_cents",
		},
		{
			name: "BothPromoFields",
			mutate: func(p *models.DebtPortfolio) {
				p.Accounts[0].PromoEndDate = &promoEnd
				p.Accounts[0].PromoDurationMonths = &six
			},
			field: "accounts[0].promo_end_date",
		},
		{
			name: "ZeroPromoDuration",
			mutate: func(p *models.DebtPortfolio) {
				p.Accounts[0].PromoDurationMonths = &zero
			},
			field: "accounts[0].promo_duration_months",
		},
		{
			name:   "NegativeBudget",
			mutate: func(p *models.DebtPortfolio) { p.Budget.MonthlyBudgetCents = -1 },
			field:  "budget.monthly_budget_cents",
		},
		{
			name: "BudgetChangeMonthZero",
			mutate: func(p *models.DebtPortfolio) {
				p.Budget.FutureChanges = []models.BudgetChange{{EffectiveMonth: 0, AmountCents: 1000}}
			},
			field: "budget.future_changes[0].effective_month",
		},
		{
			name: "NegativeLumpSum",
			mutate: func(p *models.DebtPortfolio) {
				p.Budget.LumpSums = []models.LumpSum{{Month: 1, AmountCents: -5}}
			},
			field: "budget.lump_sums[0].amount_cents",
		},
		{
			name: "EarmarkForUnknownAccount",
			mutate: func(p *models.DebtPortfolio) {
				p.Budget.LumpSums = []models.LumpSum{{Month: 1, AmountCents: 5000, LenderName: "Nobody"}}
			},
			field: "budget.lump_sums[0].lender_name",
		},
		{
			name:   "UnknownStrategy",
			mutate: func(p *models.DebtPortfolio) { p.Preferences.Strategy = "snowball" },
			field:  "preferences.strategy",
		},
		{
			name:   "UnknownShape",
			mutate: func(p *models.DebtPortfolio) { p.Preferences.PaymentShape = "balloon" },
			field:  "preferences.payment_shape",
		},
		{
			name: "LinearShapeWithWrongStrategy",
			mutate: func(p *models.DebtPortfolio) {
				p.Preferences.PaymentShape = models.ShapeLinearPerAccount
			},
			field: "preferences.payment_shape",
		},
		{
			name: "ClearPromosRequiresPromoEverywhere",
			mutate: func(p *models.DebtPortfolio) {
				p.Preferences.Strategy = models.StrategyMinimizeSpendToClearPromos
			},
			field: "accounts[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			portfolio := validPortfolio()
			tt.mutate(portfolio)

			err := ValidatePortfolio(portfolio)
			assert.Error(t, err)

			var verr *plannererror.ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestValidatePortfolioClearPromosAllPromo(t *testing.T) {
	six := 6
	portfolio := validPortfolio()
	portfolio.Accounts[0].PromoDurationMonths = &six
	portfolio.Preferences.Strategy = models.StrategyMinimizeSpendToClearPromos
	portfolio.Preferences.PaymentShape = models.ShapeLinearPerAccount
	assert.NoError(t, ValidatePortfolio(portfolio))
}
