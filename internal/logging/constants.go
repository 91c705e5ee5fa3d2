package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile       = "file_path"
	FieldLender     = "lender"
	FieldMonth      = "month"
	FieldStrategy   = "strategy"
	FieldShape      = "payment_shape"
	FieldStatus     = "status"
	FieldError      = "error"
	FieldCount      = "count"
	FieldBalance    = "balance_cents"
	FieldPayment    = "payment_cents"
	FieldInterest   = "interest_cents"
	FieldBudget     = "budget_cents"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
