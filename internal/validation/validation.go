// Package validation checks portfolio input before any simulation work starts.
// It enforces structural sanity only; policy questions such as "is a zero
// minimum payment sensible" are deliberately left to the caller.
package validation

import (
	"fmt"

	"fjacquet/paydown/internal/models"
	"fjacquet/paydown/internal/plannererror"
)

// ValidatePortfolio verifies a complete portfolio. It returns a
// *plannererror.ValidationError describing the first problem found, or nil.
func ValidatePortfolio(portfolio *models.DebtPortfolio) error {
	if portfolio == nil {
		return &plannererror.ValidationError{Reason: "portfolio is nil"}
	}
	if len(portfolio.Accounts) == 0 {
		return &plannererror.ValidationError{Field: "accounts", Reason: "at least one account is required"}
	}

	seen := make(map[string]bool, len(portfolio.Accounts))
	for i := range portfolio.Accounts {
		if err := validateAccount(&portfolio.Accounts[i], i); err != nil {
			return err
		}
		name := portfolio.Accounts[i].LenderName
		if seen[name] {
			return &plannererror.ValidationError{
				Field:  fmt.Sprintf("accounts[%d].lender_name", i),
				Reason: fmt.Sprintf("duplicate lender name: %q", name),
			}
		}
		seen[name] = true
	}

	if err := validateBudget(&portfolio.Budget, seen); err != nil {
		return err
	}

	return validatePreferences(portfolio)
}

func validateAccount(acc *models.Account, index int) error {
	field := func(name string) string { return fmt.Sprintf("accounts[%d].%s", index, name) }

	if acc.LenderName == "" {
		return &plannererror.ValidationError{Field: field("lender_name"), Reason: "must not be empty"}
	}
	if !acc.Type.Valid() {
		return &plannererror.ValidationError{
			Field:  field("account_type"),
			Reason: fmt.Sprintf("unknown account type: %q", acc.Type),
		}
	}
	if acc.CurrentBalanceCents < 0 {
		return &plannererror.ValidationError{Field: field("current_balance_cents"), Reason: "must not be negative"}
	}
	if acc.APRStandardBps < 0 {
		return &plannererror.ValidationError{Field: field("apr_standard_bps"), Reason: "must not be negative"}
	}
	if acc.PaymentDueDay < 1 || acc.PaymentDueDay > 31 {
		return &plannererror.ValidationError{Field: field("payment_due_day"), Reason: "must be between 1 and 31"}
	}
	if acc.MinPaymentRule.FixedCents < 0 {
		return &plannererror.ValidationError{Field: field("min_payment_rule.fixed_cents"), Reason: "must not be negative"}
	}
	if acc.MinPaymentRule.PercentageBps < 0 {
		return &plannererror.ValidationError{Field: field("min_payment_rule.percentage_bps"), Reason: "must not be negative"}
	}
	if acc.PromoEndDate != nil && acc.PromoDurationMonths != nil {
		return &plannererror.ValidationError{
			Field:  field("promo_end_date"),
			Reason: "provide either promo_end_date or promo_duration_months, not both",
		}
	}
	if acc.PromoDurationMonths != nil && *acc.PromoDurationMonths < 1 {
		return &plannererror.ValidationError{Field: field("promo_duration_months"), Reason: "must be at least 1"}
	}
	return nil
}

func validateBudget(budget *models.Budget, lenders map[string]bool) error {
	if budget.MonthlyBudgetCents < 0 {
		return &plannererror.ValidationError{Field: "budget.monthly_budget_cents", Reason: "must not be negative"}
	}
	for i, change := range budget.FutureChanges {
		if change.EffectiveMonth < 1 {
			return &plannererror.ValidationError{
				Field:  fmt.Sprintf("budget.future_changes[%d].effective_month", i),
				Reason: "must be at least 1",
			}
		}
		if change.AmountCents < 0 {
			return &plannererror.ValidationError{
				Field:  fmt.Sprintf("budget.future_changes[%d].amount_cents", i),
				Reason: "must not be negative",
			}
		}
	}
	for i, ls := range budget.LumpSums {
		if ls.Month < 1 {
			return &plannererror.ValidationError{
				Field:  fmt.Sprintf("budget.lump_sums[%d].month", i),
				Reason: "must be at least 1",
			}
		}
		if ls.AmountCents < 0 {
			return &plannererror.ValidationError{
				Field:  fmt.Sprintf("budget.lump_sums[%d].amount_cents", i),
				Reason: "must not be negative",
			}
		}
		if ls.LenderName != "" && !lenders[ls.LenderName] {
			return &plannererror.ValidationError{
				Field:  fmt.Sprintf("budget.lump_sums[%d].lender_name", i),
				Reason: fmt.Sprintf("earmarked account %q is not in the portfolio", ls.LenderName),
			}
		}
	}
	return nil
}

func validatePreferences(portfolio *models.DebtPortfolio) error {
	prefs := portfolio.Preferences
	if !prefs.Strategy.Valid() {
		return &plannererror.ValidationError{
			Field:  "preferences.strategy",
			Reason: fmt.Sprintf("unknown optimization strategy: %q", prefs.Strategy),
		}
	}
	if !prefs.PaymentShape.Valid() {
		return &plannererror.ValidationError{
			Field:  "preferences.payment_shape",
			Reason: fmt.Sprintf("unknown payment shape: %q", prefs.PaymentShape),
		}
	}

	// The linear shape is produced only by the clear-promos strategy; every
	// other strategy varies payments month to month.
	if prefs.PaymentShape == models.ShapeLinearPerAccount &&
		prefs.Strategy != models.StrategyMinimizeSpendToClearPromos {
		return &plannererror.ValidationError{
			Field:  "preferences.payment_shape",
			Reason: "linear_per_account is only supported with the minimize_spend_to_clear_promos strategy",
		}
	}

	if prefs.Strategy == models.StrategyMinimizeSpendToClearPromos {
		for i := range portfolio.Accounts {
			if !portfolio.Accounts[i].HasPromo() {
				return &plannererror.ValidationError{
					Field: fmt.Sprintf("accounts[%d]", i),
					Reason: fmt.Sprintf("strategy %q requires a promotional period on every account, but %q has none",
						models.StrategyMinimizeSpendToClearPromos, portfolio.Accounts[i].LenderName),
				}
			}
		}
	}
	return nil
}
