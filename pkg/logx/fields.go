package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldChatID          = "chat-id"
	FieldCommand         = "command"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldInputState      = "input-state"
	FieldIP              = "ip"
	FieldPrice           = "price"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldRows            = "rows"
	FieldStack           = "stack"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
)
