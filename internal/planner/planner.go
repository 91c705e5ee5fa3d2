// Package planner generates multi-month debt repayment plans. Given a
// portfolio of accounts, a monthly budget, and an optimization strategy, it
// simulates the repayment month by month until every balance reaches zero or
// the horizon is hit, enforcing minimum-payment floors, promotional-rate
// windows, and the budget ceiling throughout.
//
// The planner is a pure computation over one immutable input snapshot. It
// performs no I/O and shares no state between invocations, so independent
// runs are safe to execute concurrently.
package planner

import (
	"fjacquet/paydown/internal/logging"
	"fjacquet/paydown/internal/models"
	"fjacquet/paydown/internal/validation"
)

// DefaultHorizonMonths is the month cap applied when no explicit horizon is
// configured. Plans that have not fully paid off by this point are returned
// flagged as horizon-exceeded.
const DefaultHorizonMonths = 600

// Planner generates payment plans from debt portfolios.
type Planner struct {
	logger        logging.Logger
	horizonMonths int
}

// New creates a Planner with the default horizon.
func New(logger logging.Logger) *Planner {
	return NewWithHorizon(logger, DefaultHorizonMonths)
}

// NewWithHorizon creates a Planner with an explicit month cap. Non-positive
// values fall back to the default.
func NewWithHorizon(logger logging.Logger, horizonMonths int) *Planner {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if horizonMonths <= 0 {
		horizonMonths = DefaultHorizonMonths
	}
	return &Planner{
		logger:        logger,
		horizonMonths: horizonMonths,
	}
}

// GeneratePlan validates the portfolio and simulates the repayment plan.
//
// The returned error is a *plannererror.ValidationError for malformed input
// or a *plannererror.InfeasibleBudgetError when some month's budget cannot
// cover the mandatory minimum payments; in both cases no partial plan is
// produced. A plan that runs into the horizon cap is not an error: it is
// returned with PlanStatusHorizonExceeded so callers can still inspect the
// trajectory.
func (p *Planner) GeneratePlan(portfolio *models.DebtPortfolio) (*models.PlanResult, error) {
	if err := validation.ValidatePortfolio(portfolio); err != nil {
		p.logger.WithError(err).Error("Portfolio validation failed")
		return nil, err
	}

	p.logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(portfolio.Accounts)},
		logging.Field{Key: logging.FieldStrategy, Value: string(portfolio.Preferences.Strategy)},
		logging.Field{Key: logging.FieldBudget, Value: portfolio.Budget.MonthlyBudgetCents},
	).Info("Generating payment plan")

	result, err := p.simulate(portfolio)
	if err != nil {
		p.logger.WithError(err).Error("Plan generation failed")
		return nil, err
	}

	p.logger.WithFields(
		logging.Field{Key: logging.FieldStatus, Value: string(result.Status)},
		logging.Field{Key: logging.FieldCount, Value: len(result.Results)},
		logging.Field{Key: logging.FieldInterest, Value: result.TotalInterestCents},
	).Info("Payment plan generated")

	return result, nil
}
