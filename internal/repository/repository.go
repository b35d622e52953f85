package repository

import (
	"context"

	"marketsquare/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	// Create inserts a new user account.
	Create(ctx context.Context, user *model.User) error

	// GetByID retrieves a user by ID. Returns nil when not found.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// GetByEmail retrieves a user by email. Returns nil when not found.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// ShopRepository defines the interface for shop data access operations.
type ShopRepository interface {
	// Create inserts a new shop.
	Create(ctx context.Context, shop *model.Shop) error

	// GetByID retrieves a shop by ID. Returns nil when not found.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Shop, error)

	// Analytics aggregates units sold, revenue and order counts per product
	// for every product the shop owns, from the order line-item snapshots.
	Analytics(ctx context.Context, shopID uuid.UUID) (*model.ShopAnalytics, error)
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetAll retrieves catalogue listings matching the filter, with pagination.
	GetAll(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil when not found.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// GetByIDs retrieves multiple products by their IDs.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Product, error)

	// Create inserts a new product.
	Create(ctx context.Context, product *model.Product) error

	// Update overwrites the mutable catalogue fields of a product.
	Update(ctx context.Context, product *model.Product) error

	// Delete removes a product. Historical order items keep their snapshots.
	Delete(ctx context.Context, id uuid.UUID) error

	// DecrementStock atomically moves quantity units from stock to sold for a
	// product within the provided transaction. It refuses to drive stock
	// negative: model.ErrInsufficientStock is returned when fewer than
	// quantity units are available, model.ErrProductNotFound when the product
	// does not exist.
	DecrementStock(ctx context.Context, tx pgx.Tx, id uuid.UUID, quantity int) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts multiple order items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order by its ID along with its items.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error)

	// ListByUser retrieves a user's orders, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error)

	// UpdateStatus moves an order from one status to another. The update only
	// applies while the order is still in the expected current status, so
	// concurrent transitions cannot clobber each other. Returns false when no
	// row matched.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to string) (bool, error)
}

// CartRepository defines the interface for cart data access operations.
type CartRepository interface {
	// Upsert adds a product to a user's cart, accumulating quantity when the
	// product is already present.
	Upsert(ctx context.Context, item *model.CartItem) error

	// ListByUser retrieves all cart rows for a user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.CartItem, error)

	// Remove deletes one product from a user's cart.
	Remove(ctx context.Context, userID, productID uuid.UUID) error

	// Clear empties a user's cart.
	Clear(ctx context.Context, userID uuid.UUID) error
}

// AddressRepository defines the interface for address data access operations.
type AddressRepository interface {
	// Create inserts a new address.
	Create(ctx context.Context, address *model.Address) error

	// GetByID retrieves an address by ID. Returns nil when not found.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Address, error)

	// ListByUser retrieves all addresses stored by a user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Address, error)

	// Update overwrites an address.
	Update(ctx context.Context, address *model.Address) error

	// Delete removes an address.
	Delete(ctx context.Context, id uuid.UUID) error
}

// FavoriteRepository defines the interface for favorites data access operations.
type FavoriteRepository interface {
	// Add saves a product for a user. Adding twice is a no-op.
	Add(ctx context.Context, fav *model.Favorite) error

	// Remove deletes a saved product.
	Remove(ctx context.Context, userID, productID uuid.UUID) error

	// ListByUser retrieves all products a user has saved.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Favorite, error)
}

// PaymentRepository defines the interface for payment data access operations.
type PaymentRepository interface {
	// Create inserts a payment record.
	Create(ctx context.Context, payment *model.Payment) error

	// GetByOrder retrieves the payment for an order. Returns nil when not found.
	GetByOrder(ctx context.Context, orderID uuid.UUID) (*model.Payment, error)
}
