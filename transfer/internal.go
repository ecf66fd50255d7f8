package transfer

import (
	"encoding/json"

	"github.com/kbukum/fidor/resource"
	"github.com/kbukum/fidor/validation"
)

var _ resource.Model = (*Internal)(nil)

// FieldReceiver is the Internal transfer recipient: an email address, phone
// number or account id of another customer.
const FieldReceiver = "receiver"

// Internal is a transfer between two customers of the bank.
type Internal struct {
	resource.Meta
	Base

	Receiver string
}

// ResourceName implements resource.Model.
func (t *Internal) ResourceName() string { return "internal_transfer" }

// Endpoint implements resource.Model.
func (t *Internal) Endpoint() string { return "/internal_transfers" }

// Rules implements resource.Model.
func (t *Internal) Rules() validation.Rules {
	return append(baseRules(), validation.Presence(FieldReceiver))
}

// Lookup implements resource.Model.
func (t *Internal) Lookup(field string) any {
	if field == FieldReceiver {
		return t.Receiver
	}
	v, _ := t.lookup(field)
	return v
}

// Validate checks the transfer and stores any violations as its errors.
func (t *Internal) Validate() bool { return resource.Validate(t) }

// AsJSON implements resource.Model.
func (t *Internal) AsJSON() resource.Wire {
	return t.wire().Text(FieldReceiver, t.Receiver)
}

// ApplyWire implements resource.Model.
func (t *Internal) ApplyWire(data []byte) error {
	if err := t.apply(data); err != nil {
		return err
	}
	var w struct {
		Receiver *resource.Text `json:"receiver"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	w.Receiver.AssignTo(&t.Receiver)
	return nil
}
