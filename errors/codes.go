package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Local record errors
const (
	// ErrCodeInvalidRecord indicates a record failed local validation and was
	// never sent to the API.
	ErrCodeInvalidRecord ErrorCode = "INVALID_RECORD"
	// ErrCodeRecordRejected indicates the API refused a record's content and
	// returned per-attribute messages.
	ErrCodeRecordRejected ErrorCode = "RECORD_REJECTED"
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInvalidConfig indicates the client configuration is invalid.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// Transport/protocol errors
const (
	// ErrCodeTransport indicates the request could not be completed.
	ErrCodeTransport ErrorCode = "TRANSPORT"
	// ErrCodeConnectionFailed indicates the API could not be reached.
	ErrCodeConnectionFailed ErrorCode = "CONNECTION_FAILED"
	// ErrCodeTimeout indicates the request timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeRateLimited indicates the API rejected the request with 429.
	ErrCodeRateLimited ErrorCode = "RATE_LIMITED"
	// ErrCodeMalformedResponse indicates the response body could not be decoded.
	ErrCodeMalformedResponse ErrorCode = "MALFORMED_RESPONSE"
	// ErrCodeUnexpectedStatus indicates a status code the client has no mapping for.
	ErrCodeUnexpectedStatus ErrorCode = "UNEXPECTED_STATUS"
)

// Remote resource errors
const (
	// ErrCodeNotFound indicates the requested record does not exist.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeUnauthorized indicates the access token was rejected.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrCodeForbidden indicates the token lacks permission for the resource.
	ErrCodeForbidden ErrorCode = "FORBIDDEN"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeConnectionFailed: true,
	ErrCodeTimeout:          true,
	ErrCodeRateLimited:      true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
// The client itself never retries; this is advisory for callers.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}

// transportCodes are the codes that describe infrastructure faults rather
// than problems with a record.
var transportCodes = map[ErrorCode]bool{
	ErrCodeTransport:         true,
	ErrCodeConnectionFailed:  true,
	ErrCodeTimeout:           true,
	ErrCodeRateLimited:       true,
	ErrCodeMalformedResponse: true,
	ErrCodeUnexpectedStatus:  true,
	ErrCodeUnauthorized:      true,
	ErrCodeForbidden:         true,
	ErrCodeNotFound:          true,
}
