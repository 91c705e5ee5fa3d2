// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fjacquet/paydown/internal/config"
	"fjacquet/paydown/internal/logging"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Format   string
	Strategy string
	Horizon  int
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// AppConfig holds the resolved application configuration. It is populated
	// by the root command's PersistentPreRun before any subcommand runs.
	AppConfig *config.Config

	// SharedFlags holds flag values common to multiple commands
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "paydown",
		Short: "A CLI tool to generate multi-month debt repayment plans.",
		Long: `paydown reads a debt portfolio (accounts, budget, preferences) from a
YAML or JSON file and generates a month-by-month repayment plan using exact
integer-cents arithmetic. Plans can be exported to CSV and summarized as
JSON or text reports.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to paydown!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.WithError(err).Fatal("Failed to initialize configuration")
			}
			AppConfig = cfg

			if SharedFlags.Horizon == 0 {
				SharedFlags.Horizon = cfg.Planner.HorizonMonths
			}
			if SharedFlags.Format == "" {
				SharedFlags.Format = cfg.Output.Format
			}
		},
	}
)

// GetLogger returns the shared logger wrapped in the logging abstraction.
func GetLogger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input portfolio file (.yaml, .yml or .json)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file for the generated plan")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "", "Report format: json or text")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Strategy, "strategy", "s", "", "Override the portfolio's optimization strategy")
	Cmd.PersistentFlags().IntVar(&SharedFlags.Horizon, "horizon", 0, "Plan horizon in months (default from configuration)")
}
