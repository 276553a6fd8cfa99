package errors

import (
	"fmt"
	"net/http"
	"slices"
)

// ErrorResponse is the envelope every failed request is answered with.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption adjusts a response after the code defaults are applied.
type ErrorOption func(*ErrorResponse)

// WithDetails replaces the detail list. Repeated use keeps only the last call.
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) { er.Error.Details = details }
}

func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) { er.Error.Message = message }
}

func build(code ErrorCode, traceID string, opts []ErrorOption) *ErrorResponse {
	er := &ErrorResponse{Error: ErrorDetail{
		Code:    string(code),
		Message: GetErrorMessage(code),
		TraceID: traceID,
	}}
	for _, opt := range opts {
		opt(er)
	}
	return er
}

func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	return build(code, traceID, opts)
}

// NewValidationError renders field errors as sorted "field: message" details.
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	details := make([]string, 0, len(fieldErrors))
	for field, msg := range fieldErrors {
		details = append(details, fmt.Sprintf("%s: %s", field, msg))
	}
	slices.Sort(details)
	return build(ValidationGeneral, traceID, []ErrorOption{WithDetails(details...)})
}

// WrapSystemError answers with a bare SYSTEM_001 and hands err back for
// server-side logging. Nothing from err reaches the client.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return build(SystemInternalError, traceID, nil), err
}

// NewSearchError keeps the failing step's message in details.
func NewSearchError(code ErrorCode, err error, traceID string) *ErrorResponse {
	if err == nil {
		return build(code, traceID, nil)
	}
	return build(code, traceID, []ErrorOption{WithDetails(err.Error())})
}

var statusByCode = map[ErrorCode]int{
	ValidationGeneral:        http.StatusBadRequest,
	ValidationRequiredField:  http.StatusBadRequest,
	ValidationInvalidFormat:  http.StatusBadRequest,
	ValidationOutOfRange:     http.StatusBadRequest,
	SeedInvalid:              http.StatusBadRequest,
	AuthMissingToken:         http.StatusUnauthorized,
	AuthExpiredToken:         http.StatusUnauthorized,
	AuthInvalidTokenFormat:   http.StatusUnauthorized,
	AuthAccountMismatch:      http.StatusForbidden,
	SystemNotFound:           http.StatusNotFound,
	SystemRateLimitExceeded:  http.StatusTooManyRequests,
	LLMUnavailable:           http.StatusServiceUnavailable,
	SystemServiceUnavailable: http.StatusServiceUnavailable,
}

// GetHTTPStatus maps a code to its HTTP status. Search, seed and system
// codes fall through to 500.
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}
