// Package common contains shared functionality for command handlers
package common

import (
	"errors"
	"fmt"

	"fjacquet/paydown/internal/currencyutils"
	"fjacquet/paydown/internal/loader"
	"fjacquet/paydown/internal/logging"
	"fjacquet/paydown/internal/models"
	"fjacquet/paydown/internal/planner"
	"fjacquet/paydown/internal/plannererror"
)

// LoadPortfolio reads a portfolio file and applies an optional strategy
// override from the command line.
func LoadPortfolio(inputFile, strategyOverride string, log logging.Logger) (*models.DebtPortfolio, error) {
	if inputFile == "" {
		return nil, fmt.Errorf("no input file specified, use --input")
	}

	portfolio, err := loader.New(log).LoadPortfolio(inputFile)
	if err != nil {
		return nil, err
	}

	if strategyOverride != "" {
		strategy, err := models.ParseStrategy(strategyOverride)
		if err != nil {
			return nil, err
		}
		portfolio.Preferences.Strategy = strategy
	}

	return portfolio, nil
}

// GeneratePlan runs the planner over a portfolio with the given horizon.
func GeneratePlan(portfolio *models.DebtPortfolio, horizonMonths int, log logging.Logger) (*models.PlanResult, error) {
	p := planner.New(log)
	if horizonMonths > 0 {
		p = planner.NewWithHorizon(log, horizonMonths)
	}
	return p.GeneratePlan(portfolio)
}

// ExplainPlanError renders planner errors as actionable messages: what is
// wrong with the portfolio, or which month the budget cannot cover.
func ExplainPlanError(err error) string {
	var verr *plannererror.ValidationError
	if errors.As(err, &verr) {
		return fmt.Sprintf("portfolio is invalid: %s", verr.Error())
	}

	var infeasible *plannererror.InfeasibleBudgetError
	if errors.As(err, &infeasible) {
		return fmt.Sprintf(
			"plan is infeasible: month %d requires %s in minimum payments but only %s is available",
			infeasible.Month,
			currencyutils.FormatCents(infeasible.RequiredCents),
			currencyutils.FormatCents(infeasible.AvailableCents),
		)
	}

	var loadErr *plannererror.LoadError
	if errors.As(err, &loadErr) {
		return fmt.Sprintf("could not load portfolio: %s", loadErr.Error())
	}

	return err.Error()
}
