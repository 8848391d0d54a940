package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldMonth     = "month"
	FieldItemID    = "item_id"
	FieldItemName  = "item_name"
	FieldPrice     = "price"
	FieldBudget    = "max_budget"
	FieldKey       = "key"
	FieldBackend   = "backend"
	FieldPath      = "path"
	FieldMonths    = "months"
)

// Components defines standard component names
const (
	ComponentApp        = "app"
	ComponentLedger     = "ledger"
	ComponentRepository = "repository"
	ComponentStorage    = "storage"
	ComponentImport     = "import"
	ComponentBackend    = "backend"
	ComponentCLI        = "cli"
)

// Operations defines standard operation names
const (
	OpLoad   = "load"
	OpSave   = "save"
	OpEnsure = "ensure_month"
	OpAdd    = "add_item"
	OpRemove = "remove_item"
	OpUpdate = "update_item"
	OpBudget = "set_budget"
	OpReset  = "reset_month"
	OpImport = "import"
	OpExport = "export"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithMonth adds the month key field
func (f LogFields) WithMonth(month string) LogFields {
	f[FieldMonth] = month
	return f
}

// WithItem adds item-related fields
func (f LogFields) WithItem(id, name, price string) LogFields {
	f[FieldItemID] = id
	if name != "" {
		f[FieldItemName] = name
	}
	if price != "" {
		f[FieldPrice] = price
	}
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
