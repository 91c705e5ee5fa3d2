package models

// BudgetChange is a planned future change to the recurring monthly budget.
// EffectiveMonth is a 1-based plan month index; from that month onward the
// monthly budget becomes AmountCents (until a later change supersedes it).
type BudgetChange struct {
	EffectiveMonth int   `json:"effective_month" yaml:"effective_month"`
	AmountCents    int64 `json:"amount_cents" yaml:"amount_cents"`
}

// LumpSum is a one-off injection of extra funds in a single plan month.
// If LenderName is set, the amount is earmarked for that account and is
// applied to it directly before any strategy-driven allocation; whatever the
// account cannot absorb falls back into the general surplus for the month.
type LumpSum struct {
	Month       int    `json:"month" yaml:"month"`
	AmountCents int64  `json:"amount_cents" yaml:"amount_cents"`
	LenderName  string `json:"lender_name,omitempty" yaml:"lender_name,omitempty"`
}

// Budget is the payer's monthly repayment capacity. It is read-only during
// simulation; the planner derives the active amount for each month from the
// base amount and the ordered change schedule.
type Budget struct {
	MonthlyBudgetCents int64          `json:"monthly_budget_cents" yaml:"monthly_budget_cents"`
	FutureChanges      []BudgetChange `json:"future_changes,omitempty" yaml:"future_changes,omitempty"`
	LumpSums           []LumpSum      `json:"lump_sums,omitempty" yaml:"lump_sums,omitempty"`
}

// ActiveMonthlyAmount returns the recurring budget in force for the given
// 1-based plan month: the base amount overridden by every scheduled change
// whose effective month is <= month. Changes need not be pre-sorted; the
// latest effective month wins, with equal months resolved by list order.
func (b *Budget) ActiveMonthlyAmount(month int) int64 {
	amount := b.MonthlyBudgetCents
	best := 0
	for _, change := range b.FutureChanges {
		if change.EffectiveMonth <= month && change.EffectiveMonth >= best {
			best = change.EffectiveMonth
			amount = change.AmountCents
		}
	}
	return amount
}

// LumpSumsForMonth returns the total unearmarked lump-sum amount due in the
// given month plus the earmarked amounts keyed by lender name.
func (b *Budget) LumpSumsForMonth(month int) (general int64, earmarked map[string]int64) {
	earmarked = make(map[string]int64)
	for _, ls := range b.LumpSums {
		if ls.Month != month {
			continue
		}
		if ls.LenderName == "" {
			general += ls.AmountCents
		} else {
			earmarked[ls.LenderName] += ls.AmountCents
		}
	}
	return general, earmarked
}

// TotalLumpSumForMonth returns the combined earmarked and unearmarked lump-sum
// amount due in the given month. This is the figure that counts toward the
// month's available funds for the feasibility check.
func (b *Budget) TotalLumpSumForMonth(month int) int64 {
	var total int64
	for _, ls := range b.LumpSums {
		if ls.Month == month {
			total += ls.AmountCents
		}
	}
	return total
}
