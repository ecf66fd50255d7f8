package transfer

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kbukum/fidor/money"
	"github.com/kbukum/fidor/resource"
	"github.com/kbukum/fidor/validation"
)

// Attribute names shared by every variant.
const (
	FieldAccountID     = "account_id"
	FieldExternalUID   = "external_uid"
	FieldAmount        = "amount"
	FieldSubject       = "subject"
	FieldCurrency      = "currency"
	FieldUserID        = "user_id"
	FieldTransactionID = "transaction_id"
	FieldState         = "state"
	FieldCreatedAt     = "created_at"
	FieldUpdatedAt     = "updated_at"
)

// Base holds the attributes common to every transfer.
type Base struct {
	// AccountID is the sending account.
	AccountID string
	// ExternalUID is a caller-chosen idempotency key.
	ExternalUID string
	Amount      decimal.NullDecimal
	Subject     string
	// Currency is echoed by the API when it sends one; it is not interpreted.
	Currency *string

	// Server-assigned, read-only.
	UserID        *string
	TransactionID *string
	State         *string
	CreatedAt     *time.Time
	UpdatedAt     *time.Time
}

// NewExternalUID returns a fresh idempotency key.
func NewExternalUID() string {
	return uuid.NewString()
}

// SetAmount sets the amount.
func (b *Base) SetAmount(d decimal.Decimal) {
	b.Amount = decimal.NewNullDecimal(d)
}

// ClearAmount marks the amount absent.
func (b *Base) ClearAmount() {
	b.Amount = decimal.NullDecimal{}
}

// StateValue returns the server state, "" while unknown.
func (b *Base) StateValue() string {
	if b.State == nil {
		return ""
	}
	return *b.State
}

func baseRules() validation.Rules {
	rules := validation.PresenceOf(FieldAccountID, FieldExternalUID, FieldAmount, FieldSubject)
	return append(rules,
		validation.Positive(FieldAmount),
		validation.Scale(FieldAmount, money.MinorUnitExponent),
	)
}

func (b *Base) lookup(field string) (any, bool) {
	switch field {
	case FieldAccountID:
		return b.AccountID, true
	case FieldExternalUID:
		return b.ExternalUID, true
	case FieldAmount:
		if !b.Amount.Valid {
			return nil, true
		}
		return b.Amount.Decimal, true
	case FieldSubject:
		return b.Subject, true
	case FieldCurrency:
		return b.Currency, true
	case FieldUserID:
		return b.UserID, true
	case FieldTransactionID:
		return b.TransactionID, true
	case FieldState:
		return b.State, true
	}
	return nil, false
}

func (b *Base) wire() resource.Wire {
	return resource.Wire{}.
		Text(FieldAccountID, b.AccountID).
		Text(FieldExternalUID, b.ExternalUID).
		Amount(FieldAmount, b.Amount).
		Text(FieldSubject, b.Subject).
		OptText(FieldCurrency, b.Currency)
}

type baseWire struct {
	AccountID     *resource.Text       `json:"account_id"`
	ExternalUID   *resource.Text       `json:"external_uid"`
	Amount        *resource.MinorUnits `json:"amount"`
	Subject       *resource.Text       `json:"subject"`
	Currency      *resource.Text       `json:"currency"`
	UserID        *resource.Text       `json:"user_id"`
	TransactionID *resource.Text       `json:"transaction_id"`
	State         *resource.Text       `json:"state"`
	CreatedAt     *resource.Time       `json:"created_at"`
	UpdatedAt     *resource.Time       `json:"updated_at"`
}

func (b *Base) apply(data []byte) error {
	var w baseWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	w.AccountID.AssignTo(&b.AccountID)
	w.ExternalUID.AssignTo(&b.ExternalUID)
	w.Subject.AssignTo(&b.Subject)
	w.CreatedAt.AssignTo(&b.CreatedAt)
	w.UpdatedAt.AssignTo(&b.UpdatedAt)
	w.Amount.AssignTo(&b.Amount)
	w.Currency.AssignPtr(&b.Currency)
	w.UserID.AssignPtr(&b.UserID)
	w.TransactionID.AssignPtr(&b.TransactionID)
	w.State.AssignPtr(&b.State)
	return nil
}
