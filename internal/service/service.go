package service

import (
	"context"

	"marketsquare/internal/model"

	"github.com/google/uuid"
)

// UserService defines operations for account management.
type UserService interface {
	// Register creates a new user account.
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)

	// Login checks credentials and returns the matching user.
	Login(ctx context.Context, req *model.LoginRequest) (*model.User, error)
}

// ShopService defines operations for seller storefronts.
type ShopService interface {
	// Register creates a new shop for a user.
	Register(ctx context.Context, req *model.ShopRequest) (*model.Shop, error)

	// GetByID retrieves a shop by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Shop, error)

	// Analytics aggregates the shop's sales figures.
	Analytics(ctx context.Context, shopID uuid.UUID) (*model.ShopAnalytics, error)
}

// ProductService defines operations for catalogue management.
type ProductService interface {
	// GetAll retrieves catalogue listings matching the filter.
	GetAll(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// Create adds a new listing to a shop's catalogue.
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// Update edits an existing listing.
	Update(ctx context.Context, id uuid.UUID, req *model.ProductRequest) (*model.Product, error)

	// Delete removes a listing. Historical orders keep their snapshots.
	Delete(ctx context.Context, id uuid.UUID) error
}

// OrderService defines operations for order placement and tracking.
type OrderService interface {
	// PlaceOrder atomically creates an order with its line items and moves
	// the ordered quantities from stock to sold on every referenced product.
	PlaceOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error)

	// GetByID retrieves an order with its items.
	GetByID(ctx context.Context, id uuid.UUID) (*model.OrderResponse, error)

	// ListByUser retrieves a user's orders.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error)

	// UpdateStatus transitions an order along the allowed status graph.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.OrderResponse, error)
}

// CartService defines operations for the shopping cart.
type CartService interface {
	// Add puts a product in the user's cart, accumulating quantity.
	Add(ctx context.Context, req *model.CartRequest) error

	// Get retrieves the user's cart with live product records.
	Get(ctx context.Context, userID uuid.UUID) (*model.CartResponse, error)

	// Remove takes one product out of the user's cart.
	Remove(ctx context.Context, userID, productID uuid.UUID) error

	// Clear empties the user's cart.
	Clear(ctx context.Context, userID uuid.UUID) error
}

// AddressService defines operations for shipping addresses.
type AddressService interface {
	// Create stores a new address.
	Create(ctx context.Context, req *model.AddressRequest) (*model.Address, error)

	// ListByUser retrieves a user's stored addresses.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Address, error)

	// Update edits a stored address.
	Update(ctx context.Context, id uuid.UUID, req *model.AddressRequest) (*model.Address, error)

	// Delete removes a stored address.
	Delete(ctx context.Context, id uuid.UUID) error
}

// FavoriteService defines operations for saved products.
type FavoriteService interface {
	// Add saves a product.
	Add(ctx context.Context, req *model.FavoriteRequest) error

	// Remove unsaves a product.
	Remove(ctx context.Context, userID, productID uuid.UUID) error

	// ListByUser retrieves everything a user has saved.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Favorite, error)
}

// PaymentService defines operations for payment intents.
type PaymentService interface {
	// CreateIntent creates an intent with the processor and records it
	// against the order.
	CreateIntent(ctx context.Context, req *model.PaymentIntentRequest) (*model.PaymentIntentResponse, error)
}
