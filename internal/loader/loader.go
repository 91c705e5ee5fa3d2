// Package loader reads debt portfolio files from disk. Portfolios are
// authored in YAML or JSON with human-readable decimal amounts and ISO
// dates; the loader converts everything to the integer-cents model the
// planner works with.
package loader

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"fjacquet/paydown/internal/currencyutils"
	"fjacquet/paydown/internal/dateutils"
	"fjacquet/paydown/internal/fileutils"
	"fjacquet/paydown/internal/logging"
	"fjacquet/paydown/internal/models"
	"fjacquet/paydown/internal/plannererror"
)

// portfolioFile is the on-disk document shape. Amounts stay strings until
// conversion so sub-cent precision can be rejected instead of rounded.
type portfolioFile struct {
	Accounts      []accountFile   `yaml:"accounts" json:"accounts"`
	Budget        budgetFile      `yaml:"budget" json:"budget"`
	Preferences   preferencesFile `yaml:"preferences" json:"preferences"`
	PlanStartDate string          `yaml:"plan_start_date,omitempty" json:"plan_start_date,omitempty"`
}

type accountFile struct {
	LenderName          string      `yaml:"lender_name" json:"lender_name"`
	AccountType         string      `yaml:"account_type" json:"account_type"`
	CurrentBalance      string      `yaml:"current_balance" json:"current_balance"`
	APRStandardBps      int64       `yaml:"apr_standard_bps" json:"apr_standard_bps"`
	PaymentDueDay       int         `yaml:"payment_due_day" json:"payment_due_day"`
	MinPaymentRule      minRuleFile `yaml:"min_payment_rule" json:"min_payment_rule"`
	PromoEndDate        string      `yaml:"promo_end_date,omitempty" json:"promo_end_date,omitempty"`
	PromoDurationMonths *int        `yaml:"promo_duration_months,omitempty" json:"promo_duration_months,omitempty"`
	AccountOpenDate     string      `yaml:"account_open_date,omitempty" json:"account_open_date,omitempty"`
	Notes               string      `yaml:"notes,omitempty" json:"notes,omitempty"`
}

type minRuleFile struct {
	FixedAmount      string `yaml:"fixed_amount,omitempty" json:"fixed_amount,omitempty"`
	PercentageBps    int64  `yaml:"percentage_bps,omitempty" json:"percentage_bps,omitempty"`
	IncludesInterest bool   `yaml:"includes_interest,omitempty" json:"includes_interest,omitempty"`
}

type budgetFile struct {
	MonthlyAmount string             `yaml:"monthly_amount" json:"monthly_amount"`
	FutureChanges []budgetChangeFile `yaml:"future_changes,omitempty" json:"future_changes,omitempty"`
	LumpSums      []lumpSumFile      `yaml:"lump_sums,omitempty" json:"lump_sums,omitempty"`
}

type budgetChangeFile struct {
	EffectiveMonth int    `yaml:"effective_month" json:"effective_month"`
	Amount         string `yaml:"amount" json:"amount"`
}

type lumpSumFile struct {
	Month      int    `yaml:"month" json:"month"`
	Amount     string `yaml:"amount" json:"amount"`
	LenderName string `yaml:"lender_name,omitempty" json:"lender_name,omitempty"`
}

type preferencesFile struct {
	Strategy     string `yaml:"strategy" json:"strategy"`
	PaymentShape string `yaml:"payment_shape,omitempty" json:"payment_shape,omitempty"`
}

// Loader reads and converts portfolio documents.
type Loader struct {
	logger logging.Logger
}

// New creates a Loader with the given logger.
func New(logger logging.Logger) *Loader {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Loader{logger: logger}
}

// LoadPortfolio reads a portfolio file, choosing the decoder from the file
// extension (.yaml/.yml or .json).
func (l *Loader) LoadPortfolio(filePath string) (*models.DebtPortfolio, error) {
	format, err := detectFormat(filePath)
	if err != nil {
		return nil, &plannererror.LoadError{FilePath: filePath, Format: format, Err: err}
	}

	l.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: "format", Value: format},
	).Info("Loading portfolio file")

	data, err := fileutils.ReadFile(filePath)
	if err != nil {
		l.logger.WithError(err).Error("Failed to read portfolio file")
		return nil, &plannererror.LoadError{FilePath: filePath, Format: format, Err: err}
	}

	var doc portfolioFile
	switch format {
	case "yaml":
		err = yaml.Unmarshal(data, &doc)
	case "json":
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		l.logger.WithError(err).Error("Failed to parse portfolio file")
		return nil, &plannererror.LoadError{FilePath: filePath, Format: format, Err: err}
	}

	portfolio, err := doc.toModel()
	if err != nil {
		return nil, &plannererror.LoadError{FilePath: filePath, Format: format, Err: err}
	}

	l.logger.WithField(logging.FieldCount, len(portfolio.Accounts)).Info("Successfully loaded portfolio")
	return portfolio, nil
}

func detectFormat(filePath string) (string, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return "yaml", nil
	case ".json":
		return "json", nil
	default:
		return "", fmt.Errorf("unsupported portfolio format %q (expected .yaml, .yml or .json)", filepath.Ext(filePath))
	}
}

func (f *portfolioFile) toModel() (*models.DebtPortfolio, error) {
	portfolio := &models.DebtPortfolio{}

	for i := range f.Accounts {
		acc, err := f.Accounts[i].toModel()
		if err != nil {
			return nil, fmt.Errorf("account %d (%s): %w", i+1, f.Accounts[i].LenderName, err)
		}
		portfolio.Accounts = append(portfolio.Accounts, acc)
	}

	budget, err := f.Budget.toModel()
	if err != nil {
		return nil, fmt.Errorf("budget: %w", err)
	}
	portfolio.Budget = budget

	portfolio.Preferences = models.UserPreferences{
		Strategy:     models.OptimizationStrategy(f.Preferences.Strategy),
		PaymentShape: models.PaymentShape(f.Preferences.PaymentShape),
	}
	if portfolio.Preferences.PaymentShape == "" {
		portfolio.Preferences.PaymentShape = models.ShapeOptimizedMonthToMonth
	}

	if f.PlanStartDate != "" {
		start, err := parseDateField("plan_start_date", f.PlanStartDate)
		if err != nil {
			return nil, err
		}
		portfolio.PlanStartDate = start
	}

	return portfolio, nil
}

func (a *accountFile) toModel() (models.Account, error) {
	balance, err := amountToCents("current_balance", a.CurrentBalance)
	if err != nil {
		return models.Account{}, err
	}
	fixed, err := amountToCents("min_payment_rule.fixed_amount", a.MinPaymentRule.FixedAmount)
	if err != nil {
		return models.Account{}, err
	}

	acc := models.Account{
		LenderName:          a.LenderName,
		Type:                models.AccountType(a.AccountType),
		CurrentBalanceCents: balance,
		APRStandardBps:      a.APRStandardBps,
		PaymentDueDay:       a.PaymentDueDay,
		MinPaymentRule: models.MinPaymentRule{
			FixedCents:       fixed,
			PercentageBps:    a.MinPaymentRule.PercentageBps,
			IncludesInterest: a.MinPaymentRule.IncludesInterest,
		},
		PromoDurationMonths: a.PromoDurationMonths,
		Notes:               a.Notes,
	}

	if a.PromoEndDate != "" {
		end, err := parseDateField("promo_end_date", a.PromoEndDate)
		if err != nil {
			return models.Account{}, err
		}
		acc.PromoEndDate = &end
	}
	if a.AccountOpenDate != "" {
		opened, err := parseDateField("account_open_date", a.AccountOpenDate)
		if err != nil {
			return models.Account{}, err
		}
		acc.AccountOpenDate = &opened
	}

	return acc, nil
}

func (b *budgetFile) toModel() (models.Budget, error) {
	monthly, err := amountToCents("monthly_amount", b.MonthlyAmount)
	if err != nil {
		return models.Budget{}, err
	}
	budget := models.Budget{MonthlyBudgetCents: monthly}

	for i := range b.FutureChanges {
		amount, err := amountToCents(fmt.Sprintf("future_changes[%d].amount", i), b.FutureChanges[i].Amount)
		if err != nil {
			return models.Budget{}, err
		}
		budget.FutureChanges = append(budget.FutureChanges, models.BudgetChange{
			EffectiveMonth: b.FutureChanges[i].EffectiveMonth,
			AmountCents:    amount,
		})
	}

	for i := range b.LumpSums {
		amount, err := amountToCents(fmt.Sprintf("lump_sums[%d].amount", i), b.LumpSums[i].Amount)
		if err != nil {
			return models.Budget{}, err
		}
		budget.LumpSums = append(budget.LumpSums, models.LumpSum{
			Month:       b.LumpSums[i].Month,
			AmountCents: amount,
			LenderName:  b.LumpSums[i].LenderName,
		})
	}

	return budget, nil
}

// amountToCents converts an optional decimal amount string to integer cents.
// Empty strings mean zero so optional fields can be omitted.
func amountToCents(field, value string) (int64, error) {
	if strings.TrimSpace(value) == "" {
		return 0, nil
	}
	cents, err := currencyutils.ParseAmountToCents(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return cents, nil
}

func parseDateField(field, value string) (time.Time, error) {
	parsed, _, err := dateutils.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", field, err)
	}
	return parsed, nil
}
