// Package report turns generated plans into human- and machine-readable
// summaries: total cost, payoff timeline, and interest breakdowns by account
// and by plan year.
package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"fjacquet/paydown/internal/currencyutils"
	"fjacquet/paydown/internal/logging"
	"fjacquet/paydown/internal/models"
)

// AccountInterest is one line of the per-account interest breakdown.
type AccountInterest struct {
	LenderName    string `json:"lender_name"`
	InterestCents int64  `json:"interest_cents"`
	Interest      string `json:"interest"`
}

// YearInterest is one line of the per-year interest breakdown. Years are
// plan-relative, starting at 1.
type YearInterest struct {
	Year          int    `json:"year"`
	InterestCents int64  `json:"interest_cents"`
	Interest      string `json:"interest"`
}

// PlanSummary is the aggregated view of a plan used for reporting.
type PlanSummary struct {
	Strategy           models.OptimizationStrategy `json:"strategy"`
	Status             models.PlanStatus           `json:"status"`
	PayoffMonths       int                         `json:"payoff_months"`
	TotalPaidCents     int64                       `json:"total_paid_cents"`
	TotalPaid          string                      `json:"total_paid"`
	TotalInterestCents int64                       `json:"total_interest_cents"`
	TotalInterest      string                      `json:"total_interest"`
	InterestByAccount  []AccountInterest           `json:"interest_by_account"`
	InterestByYear     []YearInterest              `json:"interest_by_year"`
}

// Generator builds plan summaries and renders them as JSON or text.
type Generator struct {
	logger   logging.Logger
	currency string
}

// NewGenerator creates a Generator. The currency code is used for display
// amounts only; plan arithmetic is currency-agnostic.
func NewGenerator(logger logging.Logger, currency string) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if currency == "" {
		currency = "GBP"
	}
	return &Generator{logger: logger, currency: currency}
}

// Summarize aggregates a plan into a PlanSummary with deterministic ordering:
// accounts alphabetically, years ascending.
func (g *Generator) Summarize(plan *models.PlanResult, strategy models.OptimizationStrategy) *PlanSummary {
	summary := &PlanSummary{
		Strategy:           strategy,
		Status:             plan.Status,
		PayoffMonths:       plan.PayoffMonths,
		TotalPaidCents:     plan.TotalPaidCents(),
		TotalInterestCents: plan.TotalInterestCents,
	}
	summary.TotalPaid = currencyutils.FormatCentsWithCurrency(summary.TotalPaidCents, g.currency)
	summary.TotalInterest = currencyutils.FormatCentsWithCurrency(summary.TotalInterestCents, g.currency)

	byAccount := plan.InterestByAccount()
	lenders := make([]string, 0, len(byAccount))
	for lender := range byAccount {
		lenders = append(lenders, lender)
	}
	sort.Strings(lenders)
	for _, lender := range lenders {
		summary.InterestByAccount = append(summary.InterestByAccount, AccountInterest{
			LenderName:    lender,
			InterestCents: byAccount[lender],
			Interest:      currencyutils.FormatCentsWithCurrency(byAccount[lender], g.currency),
		})
	}

	byYear := plan.InterestByYear()
	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Ints(years)
	for _, year := range years {
		summary.InterestByYear = append(summary.InterestByYear, YearInterest{
			Year:          year,
			InterestCents: byYear[year],
			Interest:      currencyutils.FormatCentsWithCurrency(byYear[year], g.currency),
		})
	}

	return summary
}

// GenerateReport renders a summary in the requested format (json or text).
func (g *Generator) GenerateReport(summary *PlanSummary, format string) ([]byte, error) {
	switch format {
	case "json":
		return g.generateJSONReport(summary)
	case "text":
		return g.generateTextReport(summary), nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) generateJSONReport(summary *PlanSummary) ([]byte, error) {
	jsonReport, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return jsonReport, nil
}

func (g *Generator) generateTextReport(summary *PlanSummary) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "Repayment Plan Summary\n")
	fmt.Fprintf(&b, "======================\n")
	fmt.Fprintf(&b, "Strategy:       %s\n", summary.Strategy)
	fmt.Fprintf(&b, "Status:         %s\n", summary.Status)
	fmt.Fprintf(&b, "Payoff months:  %d\n", summary.PayoffMonths)
	fmt.Fprintf(&b, "Total paid:     %s\n", summary.TotalPaid)
	fmt.Fprintf(&b, "Total interest: %s\n", summary.TotalInterest)

	if len(summary.InterestByAccount) > 0 {
		fmt.Fprintf(&b, "\nInterest by account:\n")
		for _, line := range summary.InterestByAccount {
			fmt.Fprintf(&b, "  %-30s %s\n", line.LenderName, line.Interest)
		}
	}

	if len(summary.InterestByYear) > 0 {
		fmt.Fprintf(&b, "\nInterest by year:\n")
		for _, line := range summary.InterestByYear {
			fmt.Fprintf(&b, "  Year %-3d %s\n", line.Year, line.Interest)
		}
	}

	return []byte(b.String())
}
