// Package card models payment cards issued on an account. Cards are read
// through the API; this package does not create or modify them.
package card

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kbukum/fidor/resource"
	"github.com/kbukum/fidor/validation"
)

var _ resource.Model = (*Card)(nil)

// Card is a debit or prepaid card.
type Card struct {
	resource.Meta

	AccountID   string
	Inscription string
	// Type is the product, e.g. "fidor_debit_master_card".
	Type     string
	Design   string
	Currency string
	// Physical is nil when the API did not report it.
	Physical *bool

	// Amounts are invalid (Valid false) when absent from the response.
	Balance                decimal.NullDecimal
	ATMLimit               decimal.NullDecimal
	TransactionSingleLimit decimal.NullDecimal
	TransactionVolumeLimit decimal.NullDecimal

	EmailNotification *bool
	SMSNotification   *bool
	Payed             *bool
	State             string
	LockReason        *string
	Disabled          *bool

	CreatedAt *time.Time
	UpdatedAt *time.Time
}

type cardWire struct {
	AccountID              *resource.Text       `json:"account_id"`
	Inscription            *resource.Text       `json:"inscription"`
	Type                   *resource.Text       `json:"type"`
	Design                 *resource.Text       `json:"design"`
	Currency               *resource.Text       `json:"currency"`
	Physical               *resource.Flag       `json:"physical"`
	Balance                *resource.MinorUnits `json:"balance"`
	ATMLimit               *resource.MinorUnits `json:"atm_limit"`
	TransactionSingleLimit *resource.MinorUnits `json:"transaction_single_limit"`
	TransactionVolumeLimit *resource.MinorUnits `json:"transaction_volume_limit"`
	EmailNotification      *resource.Flag       `json:"email_notification"`
	SMSNotification        *resource.Flag       `json:"sms_notification"`
	Payed                  *resource.Flag       `json:"payed"`
	State                  *resource.Text       `json:"state"`
	LockReason             *resource.Text       `json:"lock_reason"`
	Disabled               *resource.Flag       `json:"disabled"`
	CreatedAt              *resource.Time       `json:"created_at"`
	UpdatedAt              *resource.Time       `json:"updated_at"`
}

// ResourceName implements resource.Model.
func (c *Card) ResourceName() string { return "card" }

// Endpoint implements resource.Model.
func (c *Card) Endpoint() string { return "/cards" }

// Rules implements resource.Model. Cards carry no client-side rules.
func (c *Card) Rules() validation.Rules { return nil }

// Lookup implements resource.Model.
func (c *Card) Lookup(field string) any {
	switch field {
	case "account_id":
		return c.AccountID
	case "inscription":
		return c.Inscription
	case "type":
		return c.Type
	case "state":
		return c.State
	}
	return nil
}

// AsJSON implements resource.Model.
func (c *Card) AsJSON() resource.Wire {
	return resource.Wire{}.
		Text("account_id", c.AccountID).
		Text("inscription", c.Inscription).
		Text("type", c.Type).
		Text("design", c.Design)
}

// ReadOnly implements resource.ReadOnly.
func (c *Card) ReadOnly() bool { return true }

// Locked reports whether the card carries a lock reason.
func (c *Card) Locked() bool {
	return c.LockReason != nil && *c.LockReason != ""
}

// ApplyWire implements resource.Model.
func (c *Card) ApplyWire(data []byte) error {
	var w cardWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	w.AccountID.AssignTo(&c.AccountID)
	w.Inscription.AssignTo(&c.Inscription)
	w.Type.AssignTo(&c.Type)
	w.Design.AssignTo(&c.Design)
	w.Currency.AssignTo(&c.Currency)
	w.State.AssignTo(&c.State)
	w.Physical.AssignPtr(&c.Physical)
	w.EmailNotification.AssignPtr(&c.EmailNotification)
	w.SMSNotification.AssignPtr(&c.SMSNotification)
	w.Payed.AssignPtr(&c.Payed)
	w.Disabled.AssignPtr(&c.Disabled)
	w.Balance.AssignTo(&c.Balance)
	w.ATMLimit.AssignTo(&c.ATMLimit)
	w.TransactionSingleLimit.AssignTo(&c.TransactionSingleLimit)
	w.TransactionVolumeLimit.AssignTo(&c.TransactionVolumeLimit)
	w.CreatedAt.AssignTo(&c.CreatedAt)
	w.UpdatedAt.AssignTo(&c.UpdatedAt)
	w.LockReason.AssignPtr(&c.LockReason)
	return nil
}
