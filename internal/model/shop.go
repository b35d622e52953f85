package model

import (
	"time"

	"github.com/google/uuid"
)

// Shop represents a seller storefront owned by a user.
type Shop struct {
	ID          uuid.UUID `json:"id" db:"id"`
	OwnerID     uuid.UUID `json:"ownerId" db:"owner_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// ShopRequest represents the payload for registering a shop.
type ShopRequest struct {
	OwnerID     uuid.UUID `json:"ownerId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// ProductSales is a per-product aggregate row for seller analytics.
type ProductSales struct {
	ProductID  uuid.UUID `json:"productId"`
	Name       string    `json:"name"`
	UnitsSold  int       `json:"unitsSold"`
	Revenue    float64   `json:"revenue"`
	OrderCount int       `json:"orderCount"`
}

// ShopAnalytics aggregates sales figures across a shop's catalogue.
type ShopAnalytics struct {
	ShopID       uuid.UUID      `json:"shopId"`
	TotalRevenue float64        `json:"totalRevenue"`
	TotalUnits   int            `json:"totalUnits"`
	Products     []ProductSales `json:"products"`
}
