package square_test

import (
	"encoding/json"
	"testing"

	"spa/infras/square"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifySignature(t *testing.T) {
	payload := []byte(`{"type":"booking.created"}`)

	signature := square.Sign("hook-key", payload)
	assert.Len(t, signature, 64)

	assert.True(t, square.VerifySignature("hook-key", payload, signature))
	assert.False(t, square.VerifySignature("other-key", payload, signature))
	assert.False(t, square.VerifySignature("hook-key", []byte(`{"type":"booking.updated"}`), signature))
	assert.False(t, square.VerifySignature("hook-key", payload, ""))
}

func TestWebhookEvent(t *testing.T) {
	body := `{"merchant_id":"M1","type":"booking.updated","event_id":"ev-9","data":{"type":"booking","id":"bk-1",` +
		`"object":{"booking":{"id":"bk-1","status":"CANCELLED_BY_CUSTOMER","start_at":"2025-03-01T10:00:00Z"}}}}`

	event := square.WebhookEvent{}
	require.NoError(t, json.Unmarshal([]byte(body), &event))

	assert.True(t, event.IsBooking())
	assert.Equal(t, "bk-1", event.Data.Object.Booking.ID)
	assert.Equal(t, "CANCELLED_BY_CUSTOMER", event.Data.Object.Booking.Status)

	assert.False(t, square.WebhookEvent{Type: "customer.created"}.IsBooking())
}
