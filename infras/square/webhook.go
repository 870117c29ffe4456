package square

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

const (
	EventBookingCreated = "booking.created"
	EventBookingUpdated = "booking.updated"
)

// WebhookEvent is the envelope of a booking notification.
type WebhookEvent struct {
	MerchantID string `json:"merchant_id"`
	Type       string `json:"type"`
	EventID    string `json:"event_id"`
	CreatedAt  string `json:"created_at"`
	Data       struct {
		Type   string `json:"type"`
		ID     string `json:"id"`
		Object struct {
			Booking Booking `json:"booking"`
		} `json:"object"`
	} `json:"data"`
}

func (e WebhookEvent) IsBooking() bool {
	return e.Type == EventBookingCreated || e.Type == EventBookingUpdated
}

// Sign returns the hex encoded HMAC-SHA256 of payload.
func Sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)

	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature compares signature with the payload's HMAC in constant time.
func VerifySignature(secret string, payload []byte, signature string) bool {
	return hmac.Equal([]byte(Sign(secret, payload)), []byte(signature))
}
