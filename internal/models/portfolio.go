package models

import "time"

// DebtPortfolio is the root input to the planner: the full problem definition
// of accounts, budget, preferences, and the plan start date. The planner never
// mutates it; evolving balances live in planner-owned simulation state.
type DebtPortfolio struct {
	Accounts      []Account       `json:"accounts" yaml:"accounts"`
	Budget        Budget          `json:"budget" yaml:"budget"`
	Preferences   UserPreferences `json:"preferences" yaml:"preferences"`
	PlanStartDate time.Time       `json:"plan_start_date" yaml:"plan_start_date"`
}

// StartDate returns the plan start date, defaulting to today when unset.
func (p *DebtPortfolio) StartDate() time.Time {
	if p.PlanStartDate.IsZero() {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	return p.PlanStartDate
}

// TotalBalanceCents returns the combined starting balance of all accounts.
func (p *DebtPortfolio) TotalBalanceCents() int64 {
	var total int64
	for i := range p.Accounts {
		total += p.Accounts[i].CurrentBalanceCents
	}
	return total
}
