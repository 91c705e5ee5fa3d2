package planner

import (
	"fjacquet/paydown/internal/logging"
	"fjacquet/paydown/internal/models"
	"fjacquet/paydown/internal/plannererror"
)

// simulate drives the month-by-month state transition: resolve the month's
// budget, accrue interest and compute floors, check feasibility, allocate
// payments, update balances, and emit results, until every balance is zero
// or the horizon is reached.
func (p *Planner) simulate(portfolio *models.DebtPortfolio) (*models.PlanResult, error) {
	planStart := portfolio.StartDate()
	strategy := portfolio.Preferences.Strategy
	clearPromos := strategy == models.StrategyMinimizeSpendToClearPromos

	states := make([]*accountState, len(portfolio.Accounts))
	for i := range portfolio.Accounts {
		acc := &portfolio.Accounts[i]
		states[i] = &accountState{
			account:     acc,
			balance:     acc.CurrentBalanceCents,
			promoMonths: promoMonthsFor(acc, planStart),
		}
	}

	if clearPromos {
		if err := sizeLevelPayments(states); err != nil {
			return nil, err
		}
	}

	result := &models.PlanResult{Status: models.PlanStatusHorizonExceeded}

	for month := 1; month <= p.horizonMonths; month++ {
		if allRetired(states) {
			result.Status = models.PlanStatusComplete
			result.PayoffMonths = month - 1
			return result, nil
		}

		if err := p.simulateMonth(portfolio, states, month, clearPromos, result); err != nil {
			// Infeasibility discards everything; no partial plan.
			return nil, err
		}
	}

	if allRetired(states) {
		result.Status = models.PlanStatusComplete
		result.PayoffMonths = p.horizonMonths
		return result, nil
	}

	p.logger.WithField(logging.FieldMonth, p.horizonMonths).Warn("Plan horizon exceeded before full payoff")
	result.PayoffMonths = p.horizonMonths
	return result, nil
}

// simulateMonth runs one month of the state machine, appending results for
// every account that started the month with a balance.
func (p *Planner) simulateMonth(
	portfolio *models.DebtPortfolio,
	states []*accountState,
	month int,
	clearPromos bool,
	result *models.PlanResult,
) error {
	activeBudget := portfolio.Budget.ActiveMonthlyAmount(month)
	_, earmarked := portfolio.Budget.LumpSumsForMonth(month)
	available := activeBudget + portfolio.Budget.TotalLumpSumForMonth(month)

	// Interest accrual and floors for accounts that still carry a balance.
	var floorSum int64
	for _, s := range states {
		s.paid = 0
		if s.balance <= 0 {
			s.interest = 0
			s.floor = 0
			continue
		}
		s.interest = monthlyInterest(s.balance, s.effectiveAPRBps(month))
		s.floor = minimumPayment(s.balance, s.interest, s.account.MinPaymentRule)
		floorSum += s.floor
	}

	// Feasibility: the budget must cover every mandatory floor. The
	// clear-promos strategy deliberately ignores the budget ceiling.
	if !clearPromos && floorSum > available {
		return &plannererror.InfeasibleBudgetError{
			Month:          month,
			RequiredCents:  floorSum,
			AvailableCents: available,
		}
	}

	if clearPromos {
		for _, s := range states {
			if s.balance <= 0 {
				continue
			}
			s.paid = minInt64(maxInt64(s.floor, s.levelPayment), s.balance+s.interest)
		}
	} else {
		// Every active account receives exactly its floor first, zero
		// floors included.
		for _, s := range states {
			s.paid = s.floor
		}

		// Earmarked lump sums are directed payments: they go to their
		// account ahead of any strategy choice. Floors, earmarks and
		// strategy surplus all draw on the same pool, so an earmark whose
		// funds were partly consumed by floors is applied only up to what
		// remains. Whatever an account cannot absorb stays in the pool.
		surplus := available - floorSum
		for _, s := range states {
			extra, ok := earmarked[s.account.LenderName]
			if !ok || extra == 0 {
				continue
			}
			applied := minInt64(minInt64(extra, s.owed()), surplus)
			s.paid += applied
			surplus -= applied
		}

		if portfolio.Preferences.Strategy != models.StrategyMinimizeMonthlySpend {
			distributeSurplus(states, month, portfolio.Preferences.Strategy, surplus)
		}
	}

	// Balance update and result emission, in portfolio order for
	// deterministic output.
	for _, s := range states {
		if s.balance <= 0 && s.paid == 0 {
			continue
		}
		ending := s.balance + s.interest - s.paid
		if ending < 0 {
			ending = 0
		}
		result.Results = append(result.Results, models.MonthlyResult{
			Month:                month,
			LenderName:           s.account.LenderName,
			PaymentCents:         s.paid,
			InterestChargedCents: s.interest,
			EndingBalanceCents:   ending,
		})
		result.TotalInterestCents += s.interest
		s.balance = ending
	}

	return nil
}

// sizeLevelPayments computes the fixed monthly amount that clears each
// account exactly within its remaining promotional window.
func sizeLevelPayments(states []*accountState) error {
	for _, s := range states {
		if s.balance <= 0 {
			continue
		}
		if s.promoMonths < 1 {
			return &plannererror.ValidationError{
				Field:  "accounts",
				Reason: "promotional period for " + s.account.LenderName + " has already ended at plan start",
			}
		}
		s.levelPayment = ceilDiv(s.balance, int64(s.promoMonths))
	}
	return nil
}

func allRetired(states []*accountState) bool {
	for _, s := range states {
		if s.balance > 0 {
			return false
		}
	}
	return true
}
