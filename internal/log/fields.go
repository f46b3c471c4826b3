package log

// Common field names for structured logging.
const (
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldClientIP  = "client_ip"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldDuration  = "duration_ms"
	FieldError     = "error"
	FieldYear      = "year"
	FieldMonth     = "month"
	FieldEndpoint  = "endpoint"
	FieldExpenseID = "expense_id"
	FieldCategory  = "category_id"
	FieldMode      = "mode_of_payment"
	FieldAmount    = "amount"
)

// Standard component names.
const (
	ComponentApp       = "app"
	ComponentHTTP      = "http"
	ComponentGateway   = "gateway"
	ComponentStore     = "store"
	ComponentAnalytics = "analytics"
	ComponentForm      = "expense_form"
	ComponentSession   = "session"
	ComponentAuth      = "auth"
	ComponentNotify    = "notify"
)
