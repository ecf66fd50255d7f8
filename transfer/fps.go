package transfer

import (
	"encoding/json"

	"github.com/kbukum/fidor/resource"
	"github.com/kbukum/fidor/validation"
)

var _ resource.Model = (*FPS)(nil)

// FPS attribute names.
const (
	FieldRemoteAccount  = "remote_account"
	FieldRemoteSortCode = "remote_sort_code"
)

// FPS is a UK Faster Payments transfer.
type FPS struct {
	resource.Meta
	Base

	// RemoteAccount is the 8-digit UK account number.
	RemoteAccount string
	// RemoteSortCode is the 6-digit sort code, without dashes.
	RemoteSortCode string
	RemoteName     string
}

// ResourceName implements resource.Model.
func (t *FPS) ResourceName() string { return "fps_transfer" }

// Endpoint implements resource.Model.
func (t *FPS) Endpoint() string { return "/fps_transfers" }

// Rules implements resource.Model.
func (t *FPS) Rules() validation.Rules {
	rules := append(baseRules(), validation.PresenceOf(FieldRemoteAccount, FieldRemoteSortCode, FieldRemoteName)...)
	return append(rules,
		validation.Pattern(FieldRemoteAccount, `^[0-9]{8}$`),
		validation.Pattern(FieldRemoteSortCode, `^[0-9]{6}$`),
	)
}

// Lookup implements resource.Model.
func (t *FPS) Lookup(field string) any {
	switch field {
	case FieldRemoteAccount:
		return t.RemoteAccount
	case FieldRemoteSortCode:
		return t.RemoteSortCode
	case FieldRemoteName:
		return t.RemoteName
	}
	v, _ := t.lookup(field)
	return v
}

// Validate checks the transfer and stores any violations as its errors.
func (t *FPS) Validate() bool { return resource.Validate(t) }

// AsJSON implements resource.Model.
func (t *FPS) AsJSON() resource.Wire {
	return t.wire().
		Text(FieldRemoteAccount, t.RemoteAccount).
		Text(FieldRemoteSortCode, t.RemoteSortCode).
		Text(FieldRemoteName, t.RemoteName)
}

// ApplyWire implements resource.Model.
func (t *FPS) ApplyWire(data []byte) error {
	if err := t.apply(data); err != nil {
		return err
	}
	var w struct {
		RemoteAccount  *resource.Text `json:"remote_account"`
		RemoteSortCode *resource.Text `json:"remote_sort_code"`
		RemoteName     *resource.Text `json:"remote_name"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	w.RemoteAccount.AssignTo(&t.RemoteAccount)
	w.RemoteSortCode.AssignTo(&t.RemoteSortCode)
	w.RemoteName.AssignTo(&t.RemoteName)
	return nil
}
