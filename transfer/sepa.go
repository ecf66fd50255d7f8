package transfer

import (
	"encoding/json"

	"github.com/kbukum/fidor/resource"
	"github.com/kbukum/fidor/validation"
)

var _ resource.Model = (*SEPA)(nil)

// SEPA attribute names.
const (
	FieldRemoteIBAN = "remote_iban"
	FieldRemoteBIC  = "remote_bic"
	FieldRemoteName = "remote_name"
)

// ibanPattern is a structural check only: country, check digits, BBAN.
const ibanPattern = `^[A-Z]{2}[0-9]{2}[A-Z0-9]{11,30}$`

// SEPA is a euro transfer to an IBAN. The BIC is optional.
type SEPA struct {
	resource.Meta
	Base

	RemoteIBAN string
	RemoteBIC  string
	RemoteName string
}

// ResourceName implements resource.Model.
func (t *SEPA) ResourceName() string { return "sepa_transfer" }

// Endpoint implements resource.Model.
func (t *SEPA) Endpoint() string { return "/sepa_transfers" }

// Rules implements resource.Model.
func (t *SEPA) Rules() validation.Rules {
	rules := append(baseRules(), validation.PresenceOf(FieldRemoteIBAN, FieldRemoteName)...)
	return append(rules,
		validation.Pattern(FieldRemoteIBAN, ibanPattern),
		validation.Tag(FieldRemoteBIC, "bic"),
	)
}

// Lookup implements resource.Model.
func (t *SEPA) Lookup(field string) any {
	switch field {
	case FieldRemoteIBAN:
		return t.RemoteIBAN
	case FieldRemoteBIC:
		return t.RemoteBIC
	case FieldRemoteName:
		return t.RemoteName
	}
	v, _ := t.lookup(field)
	return v
}

// Validate checks the transfer and stores any violations as its errors.
func (t *SEPA) Validate() bool { return resource.Validate(t) }

// AsJSON implements resource.Model.
func (t *SEPA) AsJSON() resource.Wire {
	return t.wire().
		Text(FieldRemoteIBAN, t.RemoteIBAN).
		Text(FieldRemoteBIC, t.RemoteBIC).
		Text(FieldRemoteName, t.RemoteName)
}

// ApplyWire implements resource.Model.
func (t *SEPA) ApplyWire(data []byte) error {
	if err := t.apply(data); err != nil {
		return err
	}
	var w struct {
		RemoteIBAN *resource.Text `json:"remote_iban"`
		RemoteBIC  *resource.Text `json:"remote_bic"`
		RemoteName *resource.Text `json:"remote_name"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	w.RemoteIBAN.AssignTo(&t.RemoteIBAN)
	w.RemoteBIC.AssignTo(&t.RemoteBIC)
	w.RemoteName.AssignTo(&t.RemoteName)
	return nil
}
