package model

import (
	"time"

	"github.com/google/uuid"
)

// Favorite marks a product a user has saved. The (user, product) pair is
// unique; re-adding is a no-op.
type Favorite struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	ProductID uuid.UUID `json:"productId" db:"product_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// FavoriteRequest represents the payload for saving a product.
type FavoriteRequest struct {
	UserID    uuid.UUID `json:"userId"`
	ProductID uuid.UUID `json:"productId"`
}
