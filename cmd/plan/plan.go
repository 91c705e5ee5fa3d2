// Package plan handles the plan generation command
package plan

import (
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/paydown/cmd/common"
	"fjacquet/paydown/cmd/root"
	"fjacquet/paydown/internal/export"
	"fjacquet/paydown/internal/report"
)

// Cmd represents the plan command
var Cmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a repayment plan from a portfolio file",
	Long: `Generate a month-by-month repayment plan from a portfolio file.
The plan schedule can be written to CSV with --output; a summary report is
printed to stdout in the configured format (text or json).`,
	Run: planFunc,
}

func planFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	root.Log.Info("Plan command called")

	portfolio, err := common.LoadPortfolio(root.SharedFlags.Input, root.SharedFlags.Strategy, logger)
	if err != nil {
		logger.Fatalf("%s", common.ExplainPlanError(err))
	}

	result, err := common.GeneratePlan(portfolio, root.SharedFlags.Horizon, logger)
	if err != nil {
		logger.Fatalf("%s", common.ExplainPlanError(err))
	}

	if root.SharedFlags.Output != "" {
		delimiter := []rune(root.AppConfig.CSV.Delimiter)[0]
		exporter := export.NewWithDelimiter(logger, delimiter)
		if err := exporter.WritePlanToCSV(result, root.SharedFlags.Output); err != nil {
			logger.Fatalf("Error writing plan to CSV: %v", err)
		}
	}

	generator := report.NewGenerator(logger, root.AppConfig.Output.Currency)
	summary := generator.Summarize(result, portfolio.Preferences.Strategy)

	output, err := generator.GenerateReport(summary, root.SharedFlags.Format)
	if err != nil {
		logger.Fatalf("Error generating report: %v", err)
	}
	fmt.Println(string(output))

	root.Log.Info("Plan generation completed successfully!")
}
