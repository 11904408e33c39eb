package logx

const (
	FieldAddress         = "address"
	FieldCells           = "cells"
	FieldChatID          = "chat-id"
	FieldDealID          = "deal-id"
	FieldDealKind        = "deal-kind"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldMetric          = "metric"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldRoute           = "route"
	FieldStack           = "stack"
	FieldTaskID          = "task-id"
	FieldTaskType        = "task-type"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
	FieldUserID          = "user-id"
	FieldVariableA       = "variable-a"
	FieldVariableB       = "variable-b"
)
