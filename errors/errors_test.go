package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeNotFound, "not found", http.StatusNotFound)
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "not found" {
		t.Errorf("expected message 'not found', got %q", err.Message)
	}
	if err.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, err.HTTPStatus)
	}
	if err.Retryable {
		t.Error("NOT_FOUND should not be retryable")
	}
}

func TestAppError_New_Retryable(t *testing.T) {
	err := New(ErrCodeTimeout, "timed out", 0)
	if !err.Retryable {
		t.Error("TIMEOUT should be retryable")
	}
}

func TestInvalidRecord(t *testing.T) {
	err := InvalidRecord("internal_transfer", map[string][]string{
		"subject":    {"can't be blank"},
		"account_id": {"can't be blank"},
	})
	if err.Code != ErrCodeInvalidRecord {
		t.Errorf("expected INVALID_RECORD, got %s", err.Code)
	}
	if !strings.Contains(err.Message, "account_id, subject") {
		t.Errorf("expected sorted field list in message, got %q", err.Message)
	}
	if err.Details["resource"] != "internal_transfer" {
		t.Errorf("expected resource=internal_transfer, got %v", err.Details["resource"])
	}
	if !IsInvalidRecord(err) {
		t.Error("IsInvalidRecord should be true")
	}
	if IsTransport(err) {
		t.Error("an invalid record must not be classified as a transport error")
	}
}

func TestRecordRejected(t *testing.T) {
	err := RecordRejected("sepa_transfer", map[string][]string{
		"remote_iban": {"is invalid"},
	})
	if err.Code != ErrCodeRecordRejected {
		t.Errorf("expected RECORD_REJECTED, got %s", err.Code)
	}
	if !strings.Contains(err.Message, "remote_iban") {
		t.Errorf("expected field in message, got %q", err.Message)
	}
	if !IsRecordRejected(err) {
		t.Error("IsRecordRejected should be true")
	}
	if IsInvalidRecord(err) {
		t.Error("a remote rejection must not be reported as a local validation failure")
	}
	if IsTransport(err) {
		t.Error("a remote rejection must not be classified as a transport error")
	}
	if IsRecordRejected(InvalidRecord("sepa_transfer", nil)) {
		t.Error("a local validation failure must not be reported as a remote rejection")
	}
}

func TestNotFound_EmptyID(t *testing.T) {
	err := NotFound("card", "")
	if _, ok := err.Details["id"]; ok {
		t.Error("expected no 'id' key in details when id is empty")
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound should be true")
	}
}

func TestTransportKinds(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	tests := []struct {
		name      string
		err       *AppError
		retryable bool
	}{
		{"transport", Transport(cause), false},
		{"connection", ConnectionFailed(cause), true},
		{"timeout", Timeout("GET /cards", cause), true},
		{"rate limited", RateLimited(), true},
		{"malformed", MalformedResponse(200, cause), false},
		{"unexpected status", UnexpectedStatus(302), false},
		{"unauthorized", Unauthorized(""), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !IsTransport(tc.err) {
				t.Errorf("expected %s to be a transport error", tc.err.Code)
			}
			if tc.err.Retryable != tc.retryable {
				t.Errorf("expected retryable=%v, got %v", tc.retryable, tc.err.Retryable)
			}
		})
	}
}

func TestAppError_ErrorString(t *testing.T) {
	err := Transport(fmt.Errorf("boom"))
	if !strings.Contains(err.Error(), "TRANSPORT") || !strings.Contains(err.Error(), "boom") {
		t.Errorf("unexpected error string %q", err.Error())
	}
	plain := UnexpectedStatus(302)
	if plain.Error() != "UNEXPECTED_STATUS: Unexpected HTTP status 302." {
		t.Errorf("unexpected error string %q", plain.Error())
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Transport(cause)
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}
}

func TestAsAppError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("save: %w", NotFound("transfer", "42"))
	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to unwrap")
	}
	if appErr.Details["id"] != "42" {
		t.Errorf("expected id=42, got %v", appErr.Details["id"])
	}
	if IsAppError(fmt.Errorf("plain")) {
		t.Error("plain errors are not AppErrors")
	}
}

func TestAppError_WithDetails(t *testing.T) {
	err := InvalidInput("amount", "must be positive").
		WithDetail("value", "-1").
		WithDetails(map[string]any{"currency": "EUR"})
	if err.Details["field"] != "amount" || err.Details["value"] != "-1" || err.Details["currency"] != "EUR" {
		t.Errorf("unexpected details %v", err.Details)
	}
}
