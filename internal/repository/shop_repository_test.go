package repository

import (
	"context"
	"testing"

	"marketsquare/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShopRepository_Analytics(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	shopRepo := NewShopRepository(pool, zerolog.Nop())
	orderRepo := NewOrderRepository(pool, zerolog.Nop())

	shopID := seedShop(t, pool)
	otherShopID := seedShop(t, pool)
	userID, addressID := seedCustomer(t, pool)

	mugID := seedProduct(t, pool, shopID, 100)
	toteID := seedProduct(t, pool, shopID, 100)
	otherID := seedProduct(t, pool, otherShopID, 100)

	placeOrder := func(items []model.OrderItem) {
		order := newTestOrder(userID, addressID)
		for i := range items {
			items[i].ID = uuid.New()
			items[i].OrderID = order.ID
		}
		tx, err := orderRepo.BeginTx(ctx)
		require.NoError(t, err)
		require.NoError(t, orderRepo.CreateOrder(ctx, tx, order))
		require.NoError(t, orderRepo.CreateOrderItems(ctx, tx, items))
		require.NoError(t, tx.Commit(ctx))
	}

	placeOrder([]model.OrderItem{
		{ProductID: mugID, Name: "Ceramic Mug", Price: 14.50, Quantity: 2},
		{ProductID: toteID, Name: "Canvas Tote", Price: 24.00, Quantity: 1},
	})
	placeOrder([]model.OrderItem{
		{ProductID: mugID, Name: "Ceramic Mug", Price: 14.50, Quantity: 1},
	})
	// An order against a different shop must not leak into the figures.
	placeOrder([]model.OrderItem{
		{ProductID: otherID, Name: "Pillow", Price: 32.00, Quantity: 4},
	})

	analytics, err := shopRepo.Analytics(ctx, shopID)
	require.NoError(t, err)
	require.NotNil(t, analytics)

	assert.Equal(t, shopID, analytics.ShopID)
	require.Len(t, analytics.Products, 2)
	assert.Equal(t, 4, analytics.TotalUnits)
	assert.InDelta(t, 3*14.50+24.00, analytics.TotalRevenue, 0.001)

	byProduct := map[uuid.UUID]model.ProductSales{}
	for _, ps := range analytics.Products {
		byProduct[ps.ProductID] = ps
	}

	mug := byProduct[mugID]
	assert.Equal(t, 3, mug.UnitsSold)
	assert.Equal(t, 2, mug.OrderCount)
	assert.InDelta(t, 43.50, mug.Revenue, 0.001)

	tote := byProduct[toteID]
	assert.Equal(t, 1, tote.UnitsSold)
	assert.Equal(t, 1, tote.OrderCount)
}

func TestShopRepository_Analytics_SurvivesProductDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	shopRepo := NewShopRepository(pool, zerolog.Nop())
	orderRepo := NewOrderRepository(pool, zerolog.Nop())
	productRepo := NewProductRepository(pool, zerolog.Nop())

	shopID := seedShop(t, pool)
	userID, addressID := seedCustomer(t, pool)
	mugID := seedProduct(t, pool, shopID, 100)

	order := newTestOrder(userID, addressID)
	items := []model.OrderItem{
		{ID: uuid.New(), OrderID: order.ID, ProductID: mugID, Name: "Ceramic Mug", Price: 14.50, Quantity: 3},
	}
	tx, err := orderRepo.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, orderRepo.CreateOrder(ctx, tx, order))
	require.NoError(t, orderRepo.CreateOrderItems(ctx, tx, items))
	require.NoError(t, tx.Commit(ctx))

	before, err := shopRepo.Analytics(ctx, shopID)
	require.NoError(t, err)
	require.Len(t, before.Products, 1)

	// Retiring the product must not erase its sales history.
	require.NoError(t, productRepo.Delete(ctx, mugID))

	after, err := shopRepo.Analytics(ctx, shopID)
	require.NoError(t, err)
	require.Len(t, after.Products, 1)

	assert.Equal(t, before.TotalUnits, after.TotalUnits)
	assert.InDelta(t, before.TotalRevenue, after.TotalRevenue, 0.001)
	assert.Equal(t, mugID, after.Products[0].ProductID)
	assert.Equal(t, "Ceramic Mug", after.Products[0].Name)
	assert.Equal(t, 3, after.Products[0].UnitsSold)
	assert.InDelta(t, 43.50, after.Products[0].Revenue, 0.001)
}

func TestShopRepository_Analytics_EmptyShop(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewShopRepository(pool, zerolog.Nop())
	shopID := seedShop(t, pool)

	analytics, err := repo.Analytics(ctx, shopID)
	require.NoError(t, err)
	require.NotNil(t, analytics)
	assert.Empty(t, analytics.Products)
	assert.Zero(t, analytics.TotalRevenue)
	assert.Zero(t, analytics.TotalUnits)
}
