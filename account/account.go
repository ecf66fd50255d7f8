// Package account models the customer's bank accounts. Accounts are read-only
// through the API.
package account

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kbukum/fidor/resource"
	"github.com/kbukum/fidor/validation"
)

var _ resource.Model = (*Account)(nil)

// Account is a current account with its balances in the account currency.
type Account struct {
	resource.Meta

	AccountNumber string
	IBAN          string
	BIC           string
	Currency      string

	// Amounts and flags stay unset when the response omits them.
	Balance          decimal.NullDecimal
	BalanceAvailable decimal.NullDecimal
	PreauthAmount    decimal.NullDecimal
	CashFlowPerYear  decimal.NullDecimal
	Overdraft        decimal.NullDecimal

	DebitNoteEnabled *bool
	Trusted          *bool
	Locked           *bool

	CreatedAt *time.Time
	UpdatedAt *time.Time
}

type accountWire struct {
	AccountNumber      *resource.Text       `json:"account_number"`
	IBAN               *resource.Text       `json:"iban"`
	BIC                *resource.Text       `json:"bic"`
	Currency           *resource.Text       `json:"currency"`
	Balance            *resource.MinorUnits `json:"balance"`
	BalanceAvailable   *resource.MinorUnits `json:"balance_available"`
	PreauthAmount      *resource.MinorUnits `json:"preauth_amount"`
	CashFlowPerYear    *resource.MinorUnits `json:"cash_flow_per_year"`
	Overdraft          *resource.MinorUnits `json:"overdraft"`
	IsDebitNoteEnabled *resource.Flag       `json:"is_debit_note_enabled"`
	IsTrusted          *resource.Flag       `json:"is_trusted"`
	IsLocked           *resource.Flag       `json:"is_locked"`
	CreatedAt          *resource.Time       `json:"created_at"`
	UpdatedAt          *resource.Time       `json:"updated_at"`
}

// ResourceName implements resource.Model.
func (a *Account) ResourceName() string { return "account" }

// Endpoint implements resource.Model.
func (a *Account) Endpoint() string { return "/accounts" }

// Rules implements resource.Model.
func (a *Account) Rules() validation.Rules { return nil }

// Lookup implements resource.Model.
func (a *Account) Lookup(field string) any {
	switch field {
	case "account_number":
		return a.AccountNumber
	case "iban":
		return a.IBAN
	case "bic":
		return a.BIC
	case "currency":
		return a.Currency
	}
	return nil
}

// ReadOnly implements resource.ReadOnly.
func (a *Account) ReadOnly() bool { return true }

// AsJSON implements resource.Model. Accounts expose no writable attributes.
func (a *Account) AsJSON() resource.Wire { return resource.Wire{} }

// ApplyWire implements resource.Model.
func (a *Account) ApplyWire(data []byte) error {
	var w accountWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	w.AccountNumber.AssignTo(&a.AccountNumber)
	w.IBAN.AssignTo(&a.IBAN)
	w.BIC.AssignTo(&a.BIC)
	w.Currency.AssignTo(&a.Currency)
	w.Balance.AssignTo(&a.Balance)
	w.BalanceAvailable.AssignTo(&a.BalanceAvailable)
	w.PreauthAmount.AssignTo(&a.PreauthAmount)
	w.CashFlowPerYear.AssignTo(&a.CashFlowPerYear)
	w.Overdraft.AssignTo(&a.Overdraft)
	w.IsDebitNoteEnabled.AssignPtr(&a.DebitNoteEnabled)
	w.IsTrusted.AssignPtr(&a.Trusted)
	w.IsLocked.AssignPtr(&a.Locked)
	w.CreatedAt.AssignTo(&a.CreatedAt)
	w.UpdatedAt.AssignTo(&a.UpdatedAt)
	return nil
}
