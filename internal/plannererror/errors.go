// Package plannererror defines the error types returned by the planner and its
// supporting packages.
package plannererror

import "fmt"

// ValidationError represents malformed portfolio input. It is surfaced before
// any simulation work is performed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid portfolio: %s", e.Reason)
	}
	return fmt.Sprintf("invalid portfolio: field '%s': %s", e.Field, e.Reason)
}

// InfeasibleBudgetError indicates that the monthly available funds cannot cover
// the mandatory minimum payments for some month. The plan fails as a whole;
// no partial plan is produced.
type InfeasibleBudgetError struct {
	Month          int
	RequiredCents  int64
	AvailableCents int64
}

func (e *InfeasibleBudgetError) Error() string {
	return fmt.Sprintf("infeasible budget in month %d: minimum payments require %d cents but only %d cents are available",
		e.Month, e.RequiredCents, e.AvailableCents)
}

// LoadError represents a failure to read or decode a portfolio file.
type LoadError struct {
	FilePath string
	Format   string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load portfolio from '%s' (%s): %v", e.FilePath, e.Format, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ExportError represents a failure to write plan output.
type ExportError struct {
	FilePath string
	Err      error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("failed to export plan to '%s': %v", e.FilePath, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
