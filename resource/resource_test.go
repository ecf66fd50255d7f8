package resource_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/fidor/httpclient"
	"github.com/kbukum/fidor/httpclient/rest"
	"github.com/kbukum/fidor/resource"
	"github.com/kbukum/fidor/validation"
)

// note is a minimal record used to exercise the mapping machinery.
type note struct {
	resource.Meta

	AccountID string
	Title     string
	Amount    decimal.NullDecimal
	Status    *string
}

type noteWire struct {
	AccountID *resource.Text       `json:"account_id"`
	Title     *resource.Text       `json:"title"`
	Amount    *resource.MinorUnits `json:"amount"`
	Status    *resource.Text       `json:"state"`
}

func (n *note) ResourceName() string { return "note" }
func (n *note) Endpoint() string     { return "/notes" }

func (n *note) Rules() validation.Rules {
	return append(validation.PresenceOf("account_id", "title", "amount"), validation.Positive("amount"))
}

func (n *note) Lookup(field string) any {
	switch field {
	case "account_id":
		return n.AccountID
	case "title":
		return n.Title
	case "amount":
		if !n.Amount.Valid {
			return nil
		}
		return n.Amount.Decimal
	}
	return nil
}

func (n *note) AsJSON() resource.Wire {
	return resource.Wire{}.
		Text("account_id", n.AccountID).
		Text("title", n.Title).
		Amount("amount", n.Amount)
}

func (n *note) ApplyWire(data []byte) error {
	var w noteWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.AccountID != nil {
		n.AccountID = w.AccountID.String()
	}
	if w.Title != nil {
		n.Title = w.Title.String()
	}
	if w.Amount != nil {
		n.Amount = w.Amount.Decimal()
	}
	if w.Status != nil {
		n.Status = w.Status.Ptr()
	}
	return nil
}

func validNote() *note {
	return &note{
		AccountID: "875",
		Title:     "hello",
		Amount:    decimal.NewNullDecimal(decimal.RequireFromString("10.00")),
	}
}

func newService(t *testing.T, baseURL string) *resource.Service {
	t.Helper()
	client, err := rest.New(httpclient.Config{
		BaseURL: baseURL,
		Auth:    httpclient.BearerAuth("f859032a6ca0a4abb2be0583b8347937"),
	})
	require.NoError(t, err)
	return resource.NewService(client, nil)
}
