package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fjacquet/paydown/cmd/validate"
)

func TestValidateCommand_Metadata(t *testing.T) {
	assert.Equal(t, "validate", validate.Cmd.Use)
	assert.Contains(t, validate.Cmd.Short, "Validate")
	assert.Contains(t, validate.Cmd.Long, "invariants")
	assert.NotNil(t, validate.Cmd.Run)
}
