package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// AppError is the unified error type of the client.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the status code returned by the API, 0 when no response was received.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Retryable:  IsRetryableCode(code),
	}
}

// --- Record errors ---

// InvalidRecord reports a record that failed local validation. fields maps
// each offending attribute to its messages.
func InvalidRecord(resource string, fields map[string][]string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidRecord,
		Message: fmt.Sprintf("%s is invalid: %s", resource, fieldNames(fields)),
		Details: map[string]any{"resource": resource, "fields": fields},
	}
}

// RecordRejected reports a record the API refused after it was sent.
func RecordRejected(resource string, fields map[string][]string) *AppError {
	return &AppError{
		Code:    ErrCodeRecordRejected,
		Message: fmt.Sprintf("%s was rejected by the API: %s", resource, fieldNames(fields)),
		Details: map[string]any{"resource": resource, "fields": fields},
	}
}

func fieldNames(fields map[string][]string) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		Details: details,
	}
}

// InvalidConfig creates a new AppError for a configuration problem.
func InvalidConfig(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidConfig, Message: message}
}

// --- Transport errors ---

// Transport wraps an infrastructure failure that has no finer classification.
func Transport(cause error) *AppError {
	return &AppError{
		Code: ErrCodeTransport, Message: "The request to the banking API failed.",
		Cause: cause,
	}
}

// ConnectionFailed creates a new AppError for an unreachable API.
func ConnectionFailed(cause error) *AppError {
	return &AppError{
		Code: ErrCodeConnectionFailed, Message: "Unable to connect to the banking API.",
		Retryable: true, Cause: cause,
	}
}

// Timeout creates a new AppError for a request that timed out.
func Timeout(operation string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeTimeout, Message: "The request took too long.",
		Retryable: true, Cause: cause,
		Details: map[string]any{"operation": operation},
	}
}

// RateLimited creates a new AppError for too many requests.
func RateLimited() *AppError {
	return &AppError{
		Code: ErrCodeRateLimited, Message: "Too many requests.",
		HTTPStatus: http.StatusTooManyRequests, Retryable: true,
	}
}

// MalformedResponse reports a response body that could not be decoded.
func MalformedResponse(status int, cause error) *AppError {
	return &AppError{
		Code: ErrCodeMalformedResponse, Message: "The banking API returned an unreadable response.",
		HTTPStatus: status, Cause: cause,
	}
}

// UnexpectedStatus reports a status code that has no mapping.
func UnexpectedStatus(status int) *AppError {
	return &AppError{
		Code: ErrCodeUnexpectedStatus, Message: fmt.Sprintf("Unexpected HTTP status %d.", status),
		HTTPStatus: status,
	}
}

// --- Remote resource errors ---

// NotFound creates a new AppError for a record that was not found.
func NotFound(resource, id string) *AppError {
	details := map[string]any{"resource": resource}
	if id != "" {
		details["id"] = id
	}
	return &AppError{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("The requested %s was not found.", resource),
		HTTPStatus: http.StatusNotFound, Details: details,
	}
}

// Unauthorized creates a new AppError for a rejected access token.
func Unauthorized(reason string) *AppError {
	if reason == "" {
		reason = "Authentication required."
	}
	return &AppError{
		Code: ErrCodeUnauthorized, Message: reason,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Forbidden creates a new AppError for forbidden access.
func Forbidden(reason string) *AppError {
	if reason == "" {
		reason = "The access token does not grant this operation."
	}
	return &AppError{
		Code: ErrCodeForbidden, Message: reason,
		HTTPStatus: http.StatusForbidden,
	}
}

// --- Inspection ---

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is an AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// IsInvalidRecord reports whether err is a local validation failure.
func IsInvalidRecord(err error) bool {
	return HasCode(err, ErrCodeInvalidRecord)
}

// IsRecordRejected reports whether err is a remote rejection of a record.
func IsRecordRejected(err error) bool {
	return HasCode(err, ErrCodeRecordRejected)
}

// IsNotFound reports whether err is a missing remote record.
func IsNotFound(err error) bool {
	return HasCode(err, ErrCodeNotFound)
}

// IsTransport reports whether err describes an infrastructure or protocol
// fault, as opposed to a problem with the record itself.
func IsTransport(err error) bool {
	appErr, ok := AsAppError(err)
	return ok && transportCodes[appErr.Code]
}
