package model

import (
	"time"

	"github.com/google/uuid"
)

// Payment statuses reported by the processor.
const (
	PaymentPending   = "pending"
	PaymentSucceeded = "succeeded"
	PaymentFailed    = "failed"
)

// Payment records a payment intent created with the external processor for
// an order.
type Payment struct {
	ID        uuid.UUID `json:"id" db:"id"`
	OrderID   uuid.UUID `json:"orderId" db:"order_id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	Amount    float64   `json:"amount" db:"amount"`
	IntentID  string    `json:"intentId" db:"intent_id"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// PaymentIntentRequest represents the payload for creating a payment intent.
type PaymentIntentRequest struct {
	OrderID  uuid.UUID `json:"orderId"`
	UserID   uuid.UUID `json:"userId"`
	Amount   float64   `json:"amount"`
	Currency string    `json:"currency"`
}

// PaymentIntentResponse is returned to the client so it can hand the intent
// to the processor's client-side SDK.
type PaymentIntentResponse struct {
	Payment      Payment `json:"payment"`
	ClientSecret string  `json:"clientSecret"`
}
