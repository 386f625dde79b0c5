package payment

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Get(t *testing.T) {
	reg := NewRegistry(
		NewStripe("sk", "http://localhost", "usd", "ok", "ng", time.Second),
		NewYooKassa("shop", "secret", "http://localhost", decimal.NewFromInt(90), "ok", time.Second),
	)

	s, err := reg.Get(MethodStripe)
	require.NoError(t, err)
	assert.Equal(t, MethodStripe, s.Name())

	y, err := reg.Get(MethodYooKassa)
	require.NoError(t, err)
	assert.Equal(t, MethodYooKassa, y.Name())

	_, err = reg.Get("paypal")
	assert.Error(t, err)
}

func TestParseEvent(t *testing.T) {
	payload := []byte(`{
		"type": "checkout.session.completed",
		"data": {"object": {"id": "cs_1", "mode": "payment", "payment_status": "paid", "client_reference_id": "42"}}
	}`)

	ev, err := ParseEvent(payload)
	require.NoError(t, err)
	assert.Equal(t, EventCheckoutCompleted, ev.Type)
	assert.Equal(t, "payment", ev.Data.Object.Mode)
	assert.Equal(t, "paid", ev.Data.Object.PaymentStatus)
	assert.Equal(t, "42", ev.Data.Object.ClientReferenceID)

	_, err = ParseEvent([]byte(`not json`))
	assert.Error(t, err)
}
