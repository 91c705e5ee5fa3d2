package models

// MonthlyResult is one line of the generated plan: what a single account pays
// in a single month, the interest charged, and the balance left afterwards.
// Results are emitted by the simulation loop and never mutated afterwards.
type MonthlyResult struct {
	Month                int    `json:"month" yaml:"month"`
	LenderName           string `json:"lender_name" yaml:"lender_name"`
	PaymentCents         int64  `json:"payment_cents" yaml:"payment_cents"`
	InterestChargedCents int64  `json:"interest_charged_cents" yaml:"interest_charged_cents"`
	EndingBalanceCents   int64  `json:"ending_balance_cents" yaml:"ending_balance_cents"`
}

// PlanStatus describes the terminal state of a plan run.
type PlanStatus string

const (
	// PlanStatusComplete means every balance reached zero within the horizon.
	PlanStatusComplete PlanStatus = "complete"

	// PlanStatusHorizonExceeded means the simulation hit the month cap with
	// balances outstanding. The plan up to the horizon is still returned,
	// flagged incomplete.
	PlanStatusHorizonExceeded PlanStatus = "horizon_exceeded"
)

// PlanResult is the aggregated output of a successful planner run. Infeasible
// runs produce an error instead, never a partial PlanResult.
type PlanResult struct {
	Status             PlanStatus      `json:"status" yaml:"status"`
	Results            []MonthlyResult `json:"results" yaml:"results"`
	TotalInterestCents int64           `json:"total_interest_cents" yaml:"total_interest_cents"`
	PayoffMonths       int             `json:"payoff_months" yaml:"payoff_months"`
}

// InterestByAccount returns the total interest charged per lender across the
// whole plan.
func (r *PlanResult) InterestByAccount() map[string]int64 {
	totals := make(map[string]int64)
	for _, res := range r.Results {
		totals[res.LenderName] += res.InterestChargedCents
	}
	return totals
}

// InterestByYear returns the total interest charged per plan year (1-based).
func (r *PlanResult) InterestByYear() map[int]int64 {
	totals := make(map[int]int64)
	for _, res := range r.Results {
		year := (res.Month-1)/12 + 1
		totals[year] += res.InterestChargedCents
	}
	return totals
}

// TotalPaidCents returns the sum of all payments across the plan.
func (r *PlanResult) TotalPaidCents() int64 {
	var total int64
	for _, res := range r.Results {
		total += res.PaymentCents
	}
	return total
}
