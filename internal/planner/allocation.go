package planner

import (
	"sort"

	"fjacquet/paydown/internal/models"
)

// accountState is the planner-owned simulation state for one account. The
// caller's Account value is never mutated; the evolving balance lives here.
type accountState struct {
	account     *models.Account
	balance     int64
	promoMonths int

	// levelPayment is the fixed monthly amount used by the clear-promos
	// strategy; zero for every other strategy.
	levelPayment int64

	// per-month scratch values, recomputed by the simulation loop
	interest int64
	floor    int64
	paid     int64
}

// effectiveAPRBps returns the rate used for ranking and interest in the given
// month: zero while the promotional window is active.
func (s *accountState) effectiveAPRBps(month int) int64 {
	if promoActive(s.promoMonths, month) {
		return 0
	}
	return s.account.APRStandardBps
}

// owed returns the most the account can absorb this month beyond what it has
// already been paid.
func (s *accountState) owed() int64 {
	return s.balance + s.interest - s.paid
}

// surplusOrder returns the active accounts sorted into the order in which the
// strategy directs surplus, highest priority first. Ties always fall through
// to the lender name so identical inputs produce identical plans.
func surplusOrder(states []*accountState, month int, strategy models.OptimizationStrategy) []*accountState {
	active := make([]*accountState, 0, len(states))
	for _, s := range states {
		if s.owed() > 0 {
			active = append(active, s)
		}
	}

	switch strategy {
	case models.StrategyTargetMaxBudget:
		// Retire the smallest balances first to shorten time in debt.
		sort.Slice(active, func(i, j int) bool {
			bi, bj := active[i].balance+active[i].interest, active[j].balance+active[j].interest
			if bi != bj {
				return bi < bj
			}
			ri, rj := active[i].effectiveAPRBps(month), active[j].effectiveAPRBps(month)
			if ri != rj {
				return ri > rj
			}
			return active[i].account.LenderName < active[j].account.LenderName
		})

	case models.StrategyPayOffInPromo:
		// Promotional accounts first, soonest expiry first; the rest by
		// effective rate as in the avalanche ordering.
		sort.Slice(active, func(i, j int) bool {
			pi := promoMonthsRemaining(active[i], month)
			pj := promoMonthsRemaining(active[j], month)
			if (pi > 0) != (pj > 0) {
				return pi > 0
			}
			if pi > 0 && pi != pj {
				return pi < pj
			}
			ri, rj := active[i].effectiveAPRBps(month), active[j].effectiveAPRBps(month)
			if ri != rj {
				return ri > rj
			}
			if active[i].balance != active[j].balance {
				return active[i].balance > active[j].balance
			}
			return active[i].account.LenderName < active[j].account.LenderName
		})

	default:
		// Avalanche: highest effective APR first. Accounts inside a promo
		// window rank at 0% since extra principal earns no interest saving
		// this month.
		sort.Slice(active, func(i, j int) bool {
			ri, rj := active[i].effectiveAPRBps(month), active[j].effectiveAPRBps(month)
			if ri != rj {
				return ri > rj
			}
			if active[i].balance != active[j].balance {
				return active[i].balance > active[j].balance
			}
			return active[i].account.LenderName < active[j].account.LenderName
		})
	}

	return active
}

// promoMonthsRemaining returns how many promotional months (including the
// current one) the account has left in the given month.
func promoMonthsRemaining(s *accountState, month int) int {
	if !promoActive(s.promoMonths, month) {
		return 0
	}
	return s.promoMonths - month + 1
}

// distributeSurplus cascades surplus across accounts in strategy order: each
// account is paid up to its post-interest balance, the remainder flows to the
// next account, until the surplus is exhausted or every balance is retired.
// The minimize-monthly-spend strategy passes no surplus here at all.
func distributeSurplus(states []*accountState, month int, strategy models.OptimizationStrategy, surplus int64) int64 {
	for surplus > 0 {
		order := surplusOrder(states, month, strategy)
		if len(order) == 0 {
			break
		}
		target := order[0]
		pay := minInt64(surplus, target.owed())
		target.paid += pay
		surplus -= pay
	}
	return surplus
}
