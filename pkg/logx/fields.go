package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldStack           = "stack"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
	FieldSessionID       = "session-id"
	FieldSolveMode       = "solve-mode"
	FieldIterations      = "iterations"
	FieldConverged       = "converged"
	FieldPrice           = "price"
	FieldMortgage        = "mortgage"
	FieldOutcomes        = "outcomes"
	FieldWizardStep      = "wizard-step"
	FieldWizardEvent     = "wizard-event"
)
