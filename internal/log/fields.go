package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldExpenseID   = "id"
	FieldAmountCents = "amount_cents"
	FieldDate        = "date"
	FieldCategory    = "category"
	FieldMonth       = "month"
	FieldDBPath      = "db_path"
)

// Components defines standard component names
const (
	ComponentCLI     = "cli"
	ComponentStorage = "storage"
	ComponentService = "service"
)

// Operations defines standard operation names
const (
	OpAdd     = "add"
	OpView    = "view"
	OpUpdate  = "update"
	OpDelete  = "delete"
	OpSummary = "summary"
)
