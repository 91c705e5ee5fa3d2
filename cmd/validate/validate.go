// Package validate handles the portfolio validation command
package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/paydown/cmd/common"
	"fjacquet/paydown/cmd/root"
	"fjacquet/paydown/internal/currencyutils"
	"fjacquet/paydown/internal/validation"
)

// Cmd represents the validate command
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a portfolio file without generating a plan",
	Long: `Load a portfolio file and check its structure and invariants:
account fields, promotional period definitions, budget schedule and
strategy preferences. Exits non-zero when the portfolio is invalid.`,
	Run: validateFunc,
}

func validateFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	root.Log.Info("Validate command called")

	portfolio, err := common.LoadPortfolio(root.SharedFlags.Input, root.SharedFlags.Strategy, logger)
	if err != nil {
		logger.Fatalf("%s", common.ExplainPlanError(err))
	}

	if err := validation.ValidatePortfolio(portfolio); err != nil {
		logger.Fatalf("%s", common.ExplainPlanError(err))
	}

	fmt.Printf("Portfolio is valid: %d account(s), total balance %s\n",
		len(portfolio.Accounts),
		currencyutils.FormatCents(portfolio.TotalBalanceCents()))
	for _, acc := range portfolio.Accounts {
		fmt.Printf("  %-30s %s balance %s, APR %s\n",
			acc.LenderName,
			acc.Type,
			currencyutils.FormatCents(acc.CurrentBalanceCents),
			currencyutils.BpsToPercentString(acc.APRStandardBps))
	}

	root.Log.Info("Validation successful.")
}
