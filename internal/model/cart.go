package model

import (
	"time"

	"github.com/google/uuid"
)

// CartItem represents a product a user has staged for checkout. A user holds
// at most one cart row per product; adding again bumps the quantity.
type CartItem struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	ProductID uuid.UUID `json:"productId" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// CartRequest represents the payload for adding a product to the cart.
type CartRequest struct {
	UserID    uuid.UUID `json:"userId"`
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

// CartResponse pairs cart rows with the live product records so clients can
// render current prices and availability.
type CartResponse struct {
	Items    []CartItem `json:"items"`
	Products []Product  `json:"products"`
}
