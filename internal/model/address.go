package model

import (
	"time"

	"github.com/google/uuid"
)

// Address represents a stored shipping address.
type Address struct {
	ID         uuid.UUID `json:"id" db:"id"`
	UserID     uuid.UUID `json:"userId" db:"user_id"`
	Recipient  string    `json:"recipient" db:"recipient"`
	Phone      string    `json:"phone" db:"phone"`
	Line1      string    `json:"line1" db:"line1"`
	Line2      string    `json:"line2,omitempty" db:"line2"`
	City       string    `json:"city" db:"city"`
	Region     string    `json:"region" db:"region"`
	PostalCode string    `json:"postalCode" db:"postal_code"`
	IsDefault  bool      `json:"isDefault" db:"is_default"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// AddressRequest represents the payload for creating or updating an address.
type AddressRequest struct {
	UserID     uuid.UUID `json:"userId"`
	Recipient  string    `json:"recipient"`
	Phone      string    `json:"phone"`
	Line1      string    `json:"line1"`
	Line2      string    `json:"line2"`
	City       string    `json:"city"`
	Region     string    `json:"region"`
	PostalCode string    `json:"postalCode"`
	IsDefault  bool      `json:"isDefault"`
}
