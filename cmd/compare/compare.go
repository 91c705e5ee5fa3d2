// Package compare handles the strategy comparison command
package compare

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"fjacquet/paydown/cmd/common"
	"fjacquet/paydown/cmd/root"
	"fjacquet/paydown/internal/currencyutils"
	"fjacquet/paydown/internal/logging"
	"fjacquet/paydown/internal/models"
)

// Cmd represents the compare command
var Cmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare repayment strategies for a portfolio",
	Long: `Run every applicable optimization strategy against the same portfolio
and compare total interest, total paid and payoff time side by side.
Strategies whose preconditions the portfolio does not meet are skipped.`,
	Run: compareFunc,
}

// StrategyOutcome is one row of the comparison output.
type StrategyOutcome struct {
	Strategy      models.OptimizationStrategy `json:"strategy"`
	Status        models.PlanStatus           `json:"status,omitempty"`
	PayoffMonths  int                         `json:"payoff_months,omitempty"`
	TotalInterest string                      `json:"total_interest,omitempty"`
	TotalPaid     string                      `json:"total_paid,omitempty"`
	Skipped       string                      `json:"skipped,omitempty"`

	interestCents int64
}

func compareFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	root.Log.Info("Compare command called")

	outcomes := runAllStrategies(logger)

	if root.SharedFlags.Format == "json" {
		data, err := json.MarshalIndent(outcomes, "", "  ")
		if err != nil {
			logger.Fatalf("Error generating comparison report: %v", err)
		}
		fmt.Println(string(data))
	} else {
		printTable(outcomes)
	}

	root.Log.Info("Strategy comparison completed successfully!")
}

func runAllStrategies(logger logging.Logger) []StrategyOutcome {
	strategies := []models.OptimizationStrategy{
		models.StrategyMinimizeTotalInterest,
		models.StrategyMinimizeMonthlySpend,
		models.StrategyTargetMaxBudget,
		models.StrategyPayOffInPromo,
		models.StrategyMinimizeSpendToClearPromos,
	}

	var outcomes []StrategyOutcome
	for _, strategy := range strategies {
		// Each run gets a fresh load so strategy runs cannot affect each other.
		portfolio, err := common.LoadPortfolio(root.SharedFlags.Input, "", logger)
		if err != nil {
			logger.Fatalf("%s", common.ExplainPlanError(err))
		}

		portfolio.Preferences.Strategy = strategy
		if strategy == models.StrategyMinimizeSpendToClearPromos {
			portfolio.Preferences.PaymentShape = models.ShapeLinearPerAccount
		} else {
			portfolio.Preferences.PaymentShape = models.ShapeOptimizedMonthToMonth
		}

		result, err := common.GeneratePlan(portfolio, root.SharedFlags.Horizon, logger)
		if err != nil {
			logger.WithField(logging.FieldStrategy, string(strategy)).
				Warn("Strategy not applicable to this portfolio")
			outcomes = append(outcomes, StrategyOutcome{
				Strategy: strategy,
				Skipped:  common.ExplainPlanError(err),
			})
			continue
		}

		outcomes = append(outcomes, StrategyOutcome{
			Strategy:      strategy,
			Status:        result.Status,
			PayoffMonths:  result.PayoffMonths,
			TotalInterest: currencyutils.FormatCents(result.TotalInterestCents),
			TotalPaid:     currencyutils.FormatCents(result.TotalPaidCents()),
			interestCents: result.TotalInterestCents,
		})
	}

	sortOutcomes(outcomes)
	return outcomes
}

// sortOutcomes orders cheapest completed plans first, skipped strategies last.
func sortOutcomes(outcomes []StrategyOutcome) {
	sort.SliceStable(outcomes, func(i, j int) bool {
		if (outcomes[i].Skipped == "") != (outcomes[j].Skipped == "") {
			return outcomes[i].Skipped == ""
		}
		return outcomes[i].interestCents < outcomes[j].interestCents
	})
}

func printTable(outcomes []StrategyOutcome) {
	fmt.Printf("%-35s %-18s %-8s %-14s %s\n", "Strategy", "Status", "Months", "Interest", "Total Paid")
	for _, o := range outcomes {
		if o.Skipped != "" {
			fmt.Printf("%-35s skipped: %s\n", o.Strategy, o.Skipped)
			continue
		}
		fmt.Printf("%-35s %-18s %-8d %-14s %s\n", o.Strategy, o.Status, o.PayoffMonths, o.TotalInterest, o.TotalPaid)
	}
}
