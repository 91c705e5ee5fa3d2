// Package models defines the core data types for debt repayment planning.
// All monetary values are integer minor-currency units (cents) and all rates
// are integer basis points, so plan arithmetic is exact and reproducible.
package models

import "time"

// AccountType represents the kind of credit account.
// The type is informational: it affects display and reporting, not the
// planning algorithm itself.
type AccountType string

const (
	AccountTypeCreditCard   AccountType = "credit_card"
	AccountTypeBNPL         AccountType = "bnpl"
	AccountTypeLoan         AccountType = "loan"
	AccountTypeLineOfCredit AccountType = "line_of_credit"
)

// Valid reports whether the account type is one of the known values.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeCreditCard, AccountTypeBNPL, AccountTypeLoan, AccountTypeLineOfCredit:
		return true
	}
	return false
}

// MinPaymentRule describes how the required minimum payment for an account is
// computed each month: the greater of a fixed amount and a percentage of the
// balance, optionally with the month's accrued interest added on top.
//
// Both components may legitimately be zero. A zero component means "no floor
// from that component", not an invalid rule; whether a zero overall minimum is
// a sane policy is the caller's concern, not the planner's.
type MinPaymentRule struct {
	FixedCents       int64 `json:"fixed_cents" yaml:"fixed_cents"`
	PercentageBps    int64 `json:"percentage_bps" yaml:"percentage_bps"`
	IncludesInterest bool  `json:"includes_interest" yaml:"includes_interest"`
}

// Account represents a single debt obligation such as a credit card, BNPL
// balance, or loan.
//
// At most one of PromoEndDate and PromoDurationMonths may be set. The promo
// window is the span of months, counted from the account's activation in the
// plan, during which the effective APR is zero regardless of APRStandardBps.
type Account struct {
	LenderName          string         `json:"lender_name" yaml:"lender_name"`
	Type                AccountType    `json:"account_type" yaml:"account_type"`
	CurrentBalanceCents int64          `json:"current_balance_cents" yaml:"current_balance_cents"`
	APRStandardBps      int64          `json:"apr_standard_bps" yaml:"apr_standard_bps"`
	PaymentDueDay       int            `json:"payment_due_day" yaml:"payment_due_day"`
	MinPaymentRule      MinPaymentRule `json:"min_payment_rule" yaml:"min_payment_rule"`

	PromoEndDate        *time.Time `json:"promo_end_date,omitempty" yaml:"promo_end_date,omitempty"`
	PromoDurationMonths *int       `json:"promo_duration_months,omitempty" yaml:"promo_duration_months,omitempty"`
	AccountOpenDate     *time.Time `json:"account_open_date,omitempty" yaml:"account_open_date,omitempty"`

	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// HasPromo reports whether the account declares any promotional period.
func (a *Account) HasPromo() bool {
	return a.PromoEndDate != nil || a.PromoDurationMonths != nil
}
