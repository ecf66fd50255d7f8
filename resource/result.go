package resource

import (
	apperrors "github.com/kbukum/fidor/errors"
)

// Outcome classifies a save attempt.
type Outcome int

const (
	// OutcomeSuccess means the API accepted the write and the record was
	// refreshed from the response.
	OutcomeSuccess Outcome = iota
	// OutcomeValidationRejected means local rules failed; no request was sent.
	OutcomeValidationRejected
	// OutcomeRemoteRejected means the API refused the content and returned
	// per-attribute messages.
	OutcomeRemoteRejected
	// OutcomeTransportFailure means the request failed for reasons unrelated
	// to the record content.
	OutcomeTransportFailure
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeValidationRejected:
		return "validation_rejected"
	case OutcomeRemoteRejected:
		return "remote_rejected"
	case OutcomeTransportFailure:
		return "transport_failure"
	default:
		return "unknown"
	}
}

// Result reports the outcome of Service.Save.
type Result struct {
	// Resource is the ResourceName of the saved record.
	Resource string
	Outcome  Outcome
	// Errors is a snapshot of the record's errors for the two rejection
	// outcomes.
	Errors Errors
	// Cause is set for OutcomeTransportFailure.
	Cause *apperrors.AppError
}

// OK reports whether the save succeeded.
func (r Result) OK() bool {
	return r.Outcome == OutcomeSuccess
}

// Err converts the result into an error, nil on success.
func (r Result) Err() error {
	switch r.Outcome {
	case OutcomeSuccess:
		return nil
	case OutcomeTransportFailure:
		if r.Cause == nil {
			return apperrors.Transport(nil)
		}
		return r.Cause
	case OutcomeRemoteRejected:
		return apperrors.RecordRejected(r.Resource, r.Errors)
	default:
		return apperrors.InvalidRecord(r.Resource, r.Errors)
	}
}
