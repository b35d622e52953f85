package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"marketsquare/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container, applies the schema and
// returns a connection pool. The container is torn down via t.Cleanup.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema creates the database schema for testing.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS shops (
			id UUID PRIMARY KEY,
			owner_id UUID NOT NULL REFERENCES users(id),
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS addresses (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			recipient TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			line1 TEXT NOT NULL,
			line2 TEXT NOT NULL DEFAULT '',
			city TEXT NOT NULL,
			region TEXT NOT NULL DEFAULT '',
			postal_code TEXT NOT NULL DEFAULT '',
			is_default BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS products (
			id UUID PRIMARY KEY,
			shop_id UUID NOT NULL REFERENCES shops(id),
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price DOUBLE PRECISION NOT NULL,
			stock INTEGER NOT NULL CHECK (stock >= 0),
			sold INTEGER NOT NULL DEFAULT 0,
			category TEXT NOT NULL DEFAULT '',
			image TEXT NOT NULL DEFAULT '',
			images JSONB NOT NULL DEFAULT '[]',
			variations JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			address_id UUID NOT NULL REFERENCES addresses(id),
			total DOUBLE PRECISION NOT NULL,
			payment_method TEXT NOT NULL,
			status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS order_items (
			id UUID PRIMARY KEY,
			order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			product_id UUID NOT NULL,
			shop_id UUID,
			name TEXT NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			image TEXT NOT NULL DEFAULT '',
			quantity INTEGER NOT NULL CHECK (quantity > 0)
		);

		CREATE TABLE IF NOT EXISTS cart_items (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			product_id UUID NOT NULL REFERENCES products(id),
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, product_id)
		);

		CREATE TABLE IF NOT EXISTS favorites (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			product_id UUID NOT NULL REFERENCES products(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, product_id)
		);

		CREATE TABLE IF NOT EXISTS payments (
			id UUID PRIMARY KEY,
			order_id UUID NOT NULL REFERENCES orders(id),
			user_id UUID NOT NULL REFERENCES users(id),
			amount DOUBLE PRECISION NOT NULL,
			intent_id TEXT NOT NULL,
			status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id);
		CREATE INDEX IF NOT EXISTS idx_order_items_shop_id ON order_items(shop_id);
		CREATE INDEX IF NOT EXISTS idx_orders_user_id ON orders(user_id);
		CREATE INDEX IF NOT EXISTS idx_products_shop_id ON products(shop_id);
	`

	_, err := pool.Exec(ctx, schema)
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// Fixture holds the IDs of a seeded marketplace: a seller with a shop and
// catalogue, and a buyer with a shipping address.
type Fixture struct {
	SellerID  uuid.UUID
	ShopID    uuid.UUID
	BuyerID   uuid.UUID
	AddressID uuid.UUID
	Products  []model.Product
}

// SeedMarketplace inserts a seller, shop, buyer, address and catalogue.
func SeedMarketplace(t *testing.T, pool *pgxpool.Pool) *Fixture {
	t.Helper()

	ctx := context.Background()
	f := &Fixture{
		SellerID:  uuid.New(),
		ShopID:    uuid.New(),
		BuyerID:   uuid.New(),
		AddressID: uuid.New(),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, name, email, password) VALUES
		 ($1, 'Seller', $2, 'secret'),
		 ($3, 'Buyer', $4, 'secret')`,
		f.SellerID, f.SellerID.String()+"@example.com",
		f.BuyerID, f.BuyerID.String()+"@example.com",
	)
	if err != nil {
		t.Fatalf("failed to seed users: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO shops (id, owner_id, name) VALUES ($1, $2, 'Integration Shop')`,
		f.ShopID, f.SellerID,
	)
	if err != nil {
		t.Fatalf("failed to seed shop: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO addresses (id, user_id, recipient, line1, city) VALUES ($1, $2, 'Buyer', '1 Market St', 'Springfield')`,
		f.AddressID, f.BuyerID,
	)
	if err != nil {
		t.Fatalf("failed to seed address: %v", err)
	}

	catalogue := []struct {
		name     string
		price    float64
		stock    int
		category string
	}{
		{"Ceramic Mug", 14.50, 5, "Homeware"},
		{"Canvas Tote", 24.00, 10, "Accessories"},
		{"Walnut Board", 49.00, 2, "Homeware"},
	}

	for _, p := range catalogue {
		product := model.Product{ID: uuid.New(), ShopID: f.ShopID, Name: p.name, Price: p.price, Stock: p.stock, Category: p.category}
		_, err := pool.Exec(ctx,
			`INSERT INTO products (id, shop_id, name, price, stock, category) VALUES ($1, $2, $3, $4, $5, $6)`,
			product.ID, product.ShopID, product.Name, product.Price, product.Stock, product.Category,
		)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.name, err)
		}
		f.Products = append(f.Products, product)
	}

	return f
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"payments", "order_items", "orders", "cart_items", "favorites", "products", "addresses", "shops", "users"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
