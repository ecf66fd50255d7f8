package transfer

import "github.com/shopspring/decimal"

// Attrs are the writable attributes shared by every variant. Zero values are
// treated as absent.
type Attrs struct {
	AccountID   string
	ExternalUID string
	Amount      decimal.NullDecimal
	Subject     string
	Currency    *string
}

func (a Attrs) base() Base {
	return Base{
		AccountID:   a.AccountID,
		ExternalUID: a.ExternalUID,
		Amount:      a.Amount,
		Subject:     a.Subject,
		Currency:    a.Currency,
	}
}

// InternalAttrs build an Internal transfer.
type InternalAttrs struct {
	Attrs
	Receiver string
}

// NewInternal builds an unsaved Internal transfer.
func NewInternal(a InternalAttrs) *Internal {
	return &Internal{Base: a.base(), Receiver: a.Receiver}
}

// SEPAAttrs build a SEPA transfer.
type SEPAAttrs struct {
	Attrs
	RemoteIBAN string
	RemoteBIC  string
	RemoteName string
}

// NewSEPA builds an unsaved SEPA transfer.
func NewSEPA(a SEPAAttrs) *SEPA {
	return &SEPA{
		Base:       a.base(),
		RemoteIBAN: a.RemoteIBAN,
		RemoteBIC:  a.RemoteBIC,
		RemoteName: a.RemoteName,
	}
}

// FPSAttrs build an FPS transfer.
type FPSAttrs struct {
	Attrs
	RemoteAccount  string
	RemoteSortCode string
	RemoteName     string
}

// NewFPS builds an unsaved FPS transfer.
func NewFPS(a FPSAttrs) *FPS {
	return &FPS{
		Base:           a.base(),
		RemoteAccount:  a.RemoteAccount,
		RemoteSortCode: a.RemoteSortCode,
		RemoteName:     a.RemoteName,
	}
}
