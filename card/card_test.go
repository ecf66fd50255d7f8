package card_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/fidor/card"
	apperrors "github.com/kbukum/fidor/errors"
	"github.com/kbukum/fidor/httpclient"
	"github.com/kbukum/fidor/httpclient/rest"
	"github.com/kbukum/fidor/resource"
	"github.com/kbukum/fidor/testutil"
)

func service(t *testing.T, c *testutil.Cassette) *resource.Service {
	t.Helper()
	client, err := rest.New(httpclient.Config{
		BaseURL: c.URL(),
		Auth:    httpclient.BearerAuth("f859032a6ca0a4abb2be0583b8347937"),
	})
	require.NoError(t, err)
	return resource.NewService(client, nil)
}

func assertFlag(t *testing.T, want bool, got *bool) {
	t.Helper()
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}

func assertAmount(t *testing.T, want string, got decimal.NullDecimal) {
	t.Helper()
	require.True(t, got.Valid)
	assert.True(t, got.Decimal.Equal(decimal.RequireFromString(want)), "expected %s, got %s", want, got.Decimal)
}

func expectCard(t *testing.T, c *card.Card) {
	t.Helper()
	assert.Equal(t, int64(42), c.ID())
	assert.Equal(t, "875", c.AccountID)
	assert.Equal(t, "Philipp Müller", c.Inscription)
	assert.Equal(t, "fidor_debit_master_card", c.Type)
	assert.Equal(t, "debit-card", c.Design)
	assert.Equal(t, "EUR", c.Currency)
	assertFlag(t, true, c.Physical)
	assertAmount(t, "0", c.Balance)
	assertAmount(t, "1000.0", c.ATMLimit)
	assertAmount(t, "2000.0", c.TransactionSingleLimit)
	assertAmount(t, "3000.0", c.TransactionVolumeLimit)
	assertFlag(t, true, c.EmailNotification)
	assertFlag(t, false, c.SMSNotification)
	assertFlag(t, true, c.Payed)
	assert.Equal(t, "card_registration_completed", c.State)
	assert.Nil(t, c.LockReason)
	assert.False(t, c.Locked())
	assertFlag(t, true, c.Disabled)
	require.NotNil(t, c.CreatedAt)
	require.NotNil(t, c.UpdatedAt)
	assert.True(t, time.Date(2015, 11, 3, 11, 7, 25, 0, time.UTC).Equal(*c.CreatedAt))
	assert.True(t, time.Date(2015, 11, 9, 10, 55, 6, 0, time.UTC).Equal(*c.UpdatedAt))
	assert.True(t, c.Persisted())
}

func TestAll(t *testing.T) {
	c := testutil.T(t).Cassette("card/all")

	cards, err := resource.All[card.Card](context.Background(), service(t, c))
	require.NoError(t, err)
	first, ok := cards.First()
	require.True(t, ok)
	expectCard(t, first)
}

func TestFind(t *testing.T) {
	c := testutil.T(t).Cassette("card/find")

	got, err := resource.Find[card.Card](context.Background(), service(t, c), 42)
	require.NoError(t, err)
	expectCard(t, got)
}

func TestAll_Unauthorized(t *testing.T) {
	c := testutil.T(t).Cassette("transport/unauthorized")

	_, err := resource.All[card.Card](context.Background(), service(t, c))
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeUnauthorized))
	assert.True(t, apperrors.IsTransport(err))
}

func TestLocked(t *testing.T) {
	c := &card.Card{}
	require.NoError(t, c.ApplyWire([]byte(`{"lock_reason":"lost"}`)))
	assert.True(t, c.Locked())
}

func TestApplyWire_OmittedFieldsStayAbsent(t *testing.T) {
	absent := &card.Card{}
	require.NoError(t, absent.ApplyWire([]byte(`{"id":7,"inscription":"A B","balance":null}`)))
	assert.Nil(t, absent.Physical)
	assert.Nil(t, absent.Disabled)
	assert.False(t, absent.Balance.Valid)
	assert.False(t, absent.ATMLimit.Valid)

	explicit := &card.Card{}
	require.NoError(t, explicit.ApplyWire([]byte(`{"id":7,"physical":false,"disabled":"0","balance":0}`)))
	assertFlag(t, false, explicit.Physical)
	assertFlag(t, false, explicit.Disabled)
	assertAmount(t, "0", explicit.Balance)
}

func TestSave_ReadOnly(t *testing.T) {
	c := testutil.T(t).Cassette("card/find")
	svc := service(t, c)

	got, err := resource.Find[card.Card](context.Background(), svc, 42)
	require.NoError(t, err)
	calls := c.Calls()

	res := svc.Save(context.Background(), got)
	assert.Equal(t, resource.OutcomeValidationRejected, res.Outcome)
	assert.Equal(t, []string{resource.MsgReadOnly}, res.Errors.Base())
	assert.True(t, apperrors.IsInvalidRecord(res.Err()))
	assert.Equal(t, calls, c.Calls())
}
