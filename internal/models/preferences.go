package models

import "fmt"

// OptimizationStrategy selects the allocation algorithm used to distribute
// budget surplus beyond the mandatory minimum payments.
type OptimizationStrategy string

const (
	// StrategyMinimizeTotalInterest directs surplus at the highest
	// effective-APR account first (avalanche).
	StrategyMinimizeTotalInterest OptimizationStrategy = "minimize_total_interest"

	// StrategyMinimizeMonthlySpend pays exactly the minimums and nothing
	// more, favouring the smallest possible monthly outflow.
	StrategyMinimizeMonthlySpend OptimizationStrategy = "minimize_monthly_spend"

	// StrategyTargetMaxBudget spends the whole budget every month,
	// retiring the smallest balances first to shorten time in debt.
	StrategyTargetMaxBudget OptimizationStrategy = "target_max_budget"

	// StrategyPayOffInPromo directs surplus at promotional accounts in
	// order of soonest promo expiry, so balances are cleared before
	// standard rates kick in.
	StrategyPayOffInPromo OptimizationStrategy = "pay_off_in_promo"

	// StrategyMinimizeSpendToClearPromos sizes a level payment per account
	// that clears its balance exactly within its promotional window. The
	// budget ceiling is not enforced for this strategy; every account must
	// have a promotional period.
	StrategyMinimizeSpendToClearPromos OptimizationStrategy = "minimize_spend_to_clear_promos"
)

// Valid reports whether the strategy is one of the known values.
func (s OptimizationStrategy) Valid() bool {
	switch s {
	case StrategyMinimizeTotalInterest, StrategyMinimizeMonthlySpend,
		StrategyTargetMaxBudget, StrategyPayOffInPromo, StrategyMinimizeSpendToClearPromos:
		return true
	}
	return false
}

// ParseStrategy converts a string into an OptimizationStrategy.
func ParseStrategy(s string) (OptimizationStrategy, error) {
	strategy := OptimizationStrategy(s)
	if !strategy.Valid() {
		return "", fmt.Errorf("unknown optimization strategy: %q", s)
	}
	return strategy, nil
}

// PaymentShape governs how payment amounts may vary from month to month.
type PaymentShape string

const (
	// ShapeOptimizedMonthToMonth lets payment amounts vary freely each month.
	ShapeOptimizedMonthToMonth PaymentShape = "optimized_month_to_month"

	// ShapeLinearPerAccount holds each account's payment level while it has
	// a balance. Only the clear-promos strategy produces this shape.
	ShapeLinearPerAccount PaymentShape = "linear_per_account"
)

// Valid reports whether the payment shape is one of the known values.
func (p PaymentShape) Valid() bool {
	switch p {
	case ShapeOptimizedMonthToMonth, ShapeLinearPerAccount:
		return true
	}
	return false
}

// ParseShape converts a string into a PaymentShape.
func ParseShape(s string) (PaymentShape, error) {
	shape := PaymentShape(s)
	if !shape.Valid() {
		return "", fmt.Errorf("unknown payment shape: %q", s)
	}
	return shape, nil
}

// UserPreferences captures the payer's optimization choices.
type UserPreferences struct {
	Strategy     OptimizationStrategy `json:"strategy" yaml:"strategy"`
	PaymentShape PaymentShape         `json:"payment_shape" yaml:"payment_shape"`
}
