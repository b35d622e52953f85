package model

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a catalogue listing owned by a shop.
//
// Stock counts available units and sold is a cumulative counter; the order
// placement path moves quantity from one to the other inside a single
// transaction and never lets stock go negative.
type Product struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	ShopID      uuid.UUID   `json:"shopId" db:"shop_id"`
	Name        string      `json:"name" db:"name"`
	Description string      `json:"description" db:"description"`
	Price       float64     `json:"price" db:"price"`
	Stock       int         `json:"stock" db:"stock"`
	Sold        int         `json:"sold" db:"sold"`
	Category    string      `json:"category" db:"category"`
	Image       string      `json:"image" db:"image"`
	Images      []string    `json:"images" db:"images"`
	Variations  []Variation `json:"variations" db:"variations"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time   `json:"updatedAt" db:"updated_at"`
}

// Variation is a free-form descriptor for a product option (size, colour...).
type Variation struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// ProductRequest represents the payload for creating or updating a product.
type ProductRequest struct {
	ShopID      uuid.UUID   `json:"shopId"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	Stock       int         `json:"stock"`
	Category    string      `json:"category"`
	Image       string      `json:"image"`
	Images      []string    `json:"images"`
	Variations  []Variation `json:"variations"`
}

// ProductFilter narrows catalogue listings.
type ProductFilter struct {
	Category string
	ShopID   *uuid.UUID
	Limit    int
	Offset   int
}
