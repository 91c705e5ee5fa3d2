package plannererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "accounts[0].current_balance_cents", Reason: "must not be negative"}
	assert.Contains(t, err.Error(), "accounts[0].current_balance_cents")
	assert.Contains(t, err.Error(), "must not be negative")

	// Field is optional
	err = &ValidationError{Reason: "at least one account is required"}
	assert.Equal(t, "invalid portfolio: at least one account is required", err.Error())
}

func TestInfeasibleBudgetError(t *testing.T) {
	err := &InfeasibleBudgetError{Month: 3, RequiredCents: 15000, AvailableCents: 10000}
	assert.Contains(t, err.Error(), "month 3")
	assert.Contains(t, err.Error(), "15000")
	assert.Contains(t, err.Error(), "10000")

	// Callers must be able to pick the error out of a wrapped chain.
	wrapped := fmt.Errorf("plan generation failed: %w", err)
	var infeasible *InfeasibleBudgetError
	assert.True(t, errors.As(wrapped, &infeasible))
	assert.Equal(t, 3, infeasible.Month)
}

func TestLoadErrorUnwrap(t *testing.T) {
	cause := errors.New("yaml: line 7: mapping values are not allowed")
	err := &LoadError{FilePath: "portfolio.yaml", Format: "yaml", Err: cause}
	assert.Contains(t, err.Error(), "portfolio.yaml")
	assert.ErrorIs(t, err, cause)
}

func TestExportErrorUnwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := &ExportError{FilePath: "plan.csv", Err: cause}
	assert.Contains(t, err.Error(), "plan.csv")
	assert.ErrorIs(t, err, cause)
}
