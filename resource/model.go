package resource

import "github.com/kbukum/fidor/validation"

// Model is implemented by every record type.
type Model interface {
	// Record returns the embedded bookkeeping.
	Record() *Meta
	// ResourceName is the singular snake_case name used in logs and errors.
	ResourceName() string
	// Endpoint is the collection path, e.g. "/sepa_transfers".
	Endpoint() string
	// Rules are checked before any write.
	Rules() validation.Rules
	// Lookup returns the current value of an attribute for validation. Absent
	// values must be returned as nil or a blank value.
	Lookup(field string) any
	// AsJSON returns the writable attributes in wire form.
	AsJSON() Wire
	// ApplyWire copies the attributes present in a response object onto the
	// record. Attributes missing from data are left untouched.
	ApplyWire(data []byte) error
}

// ReadOnly is implemented by records the API only serves. Service.Save
// refuses them without sending a request.
type ReadOnly interface {
	ReadOnly() bool
}

// MsgReadOnly is the base error of a refused read-only save.
const MsgReadOnly = "can't be written through the API"

// Validate evaluates m's rules, stores the complete violation set as m's
// errors and reports whether m is valid.
func Validate(m Model) bool {
	errs := errorsFromFields(m.Rules().Evaluate(m.Lookup))
	m.Record().replaceErrors(errs)
	return errs.Empty()
}
