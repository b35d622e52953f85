package model

import (
	"time"

	"github.com/google/uuid"
)

// Order statuses. New orders start in StatusToShip.
const (
	StatusToPay     = "to-pay"
	StatusToShip    = "to-ship"
	StatusShipping  = "shipping"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// allowedTransitions is the explicit order status graph. Completed and
// cancelled are terminal; any non-terminal status may be cancelled.
var allowedTransitions = map[string][]string{
	StatusToPay:    {StatusToShip, StatusCancelled},
	StatusToShip:   {StatusShipping, StatusCancelled},
	StatusShipping: {StatusCompleted, StatusCancelled},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to string) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ValidStatus reports whether s is a known order status.
func ValidStatus(s string) bool {
	switch s {
	case StatusToPay, StatusToShip, StatusShipping, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Order represents a customer order.
type Order struct {
	ID            uuid.UUID `json:"id" db:"id"`
	UserID        uuid.UUID `json:"userId" db:"user_id"`
	AddressID     uuid.UUID `json:"addressId" db:"address_id"`
	Total         float64   `json:"total" db:"total"`
	PaymentMethod string    `json:"paymentMethod" db:"payment_method"`
	Status        string    `json:"status" db:"status"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// OrderItem is a line item in an order. Name, price and image are snapshots
// captured at order time and stay fixed if the product record later changes
// or is deleted.
type OrderItem struct {
	ID        uuid.UUID `json:"-" db:"id"`
	OrderID   uuid.UUID `json:"-" db:"order_id"`
	ProductID uuid.UUID `json:"productId" db:"product_id"`
	Name      string    `json:"name" db:"name"`
	Price     float64   `json:"price" db:"price"`
	Image     string    `json:"image" db:"image"`
	Quantity  int       `json:"quantity" db:"quantity"`
}

// OrderRequest represents the request payload for placing an order.
type OrderRequest struct {
	CustomerID    uuid.UUID          `json:"customerId"`
	Total         float64            `json:"total"`
	PaymentMethod string             `json:"paymentMethod"`
	AddressID     uuid.UUID          `json:"addressId"`
	Items         []OrderItemRequest `json:"items"`
}

// OrderItemRequest is a single line item in an order request. Name, price and
// image come from the caller as the snapshot to persist; they are not
// re-derived from the live product record.
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
}

// OrderResponse represents the response payload for an order.
type OrderResponse struct {
	ID            uuid.UUID   `json:"id"`
	UserID        uuid.UUID   `json:"userId"`
	AddressID     uuid.UUID   `json:"addressId"`
	Total         float64     `json:"total"`
	PaymentMethod string      `json:"paymentMethod"`
	Status        string      `json:"status"`
	Items         []OrderItem `json:"items"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// StatusUpdateRequest represents the payload for an order status change.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}
