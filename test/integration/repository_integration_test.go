package integration

import (
	"context"
	"sync"
	"testing"

	"marketsquare/internal/model"
	"marketsquare/internal/repository"
	"marketsquare/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOrderService_PlaceOrder_ConcurrentBuyers drives the whole placement
// path (service, repositories, real transactions) with more buyers than
// stock and checks that exactly the available units are sold.
func TestOrderService_PlaceOrder_ConcurrentBuyers(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	f := SeedMarketplace(t, testDB.Pool)

	logger := zerolog.Nop()
	productRepo := repository.NewProductRepository(testDB.Pool, logger)
	orderRepo := repository.NewOrderRepository(testDB.Pool, logger)
	addressRepo := repository.NewAddressRepository(testDB.Pool, logger)
	orderService := service.NewOrderService(orderRepo, productRepo, addressRepo, logger)

	ctx := context.Background()
	mug := f.Products[0] // stock 5

	const buyers = 8

	var wg sync.WaitGroup
	errs := make(chan error, buyers)

	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := orderService.PlaceOrder(ctx, &model.OrderRequest{
				CustomerID:    f.BuyerID,
				Total:         mug.Price,
				PaymentMethod: "card",
				AddressID:     f.AddressID,
				Items: []model.OrderItemRequest{
					{ProductID: mug.ID, Name: mug.Name, Quantity: 1, Price: mug.Price},
				},
			})
			errs <- err
		}()
	}

	wg.Wait()
	close(errs)

	var placed, rejected int
	for err := range errs {
		if err == nil {
			placed++
			continue
		}
		assert.ErrorIs(t, err, model.ErrInsufficientStock)
		rejected++
	}

	assert.Equal(t, 5, placed)
	assert.Equal(t, buyers-5, rejected)

	var stock, sold int
	err := testDB.Pool.QueryRow(ctx, `SELECT stock, sold FROM products WHERE id = $1`, mug.ID).Scan(&stock, &sold)
	require.NoError(t, err)
	assert.Equal(t, 0, stock)
	assert.Equal(t, 5, sold)

	// One order row per successful placement and nothing for the rejected.
	var orderCount int
	err = testDB.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&orderCount)
	require.NoError(t, err)
	assert.Equal(t, 5, orderCount)
}

// TestOrderService_SnapshotsSurviveProductChanges verifies that line items
// keep their captured name and price after the catalogue moves on.
func TestOrderService_SnapshotsSurviveProductChanges(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	f := SeedMarketplace(t, testDB.Pool)

	logger := zerolog.Nop()
	productRepo := repository.NewProductRepository(testDB.Pool, logger)
	orderRepo := repository.NewOrderRepository(testDB.Pool, logger)
	addressRepo := repository.NewAddressRepository(testDB.Pool, logger)
	orderService := service.NewOrderService(orderRepo, productRepo, addressRepo, logger)

	ctx := context.Background()
	mug := f.Products[0]

	placed, err := orderService.PlaceOrder(ctx, &model.OrderRequest{
		CustomerID:    f.BuyerID,
		Total:         mug.Price,
		PaymentMethod: "card",
		AddressID:     f.AddressID,
		Items: []model.OrderItemRequest{
			{ProductID: mug.ID, Name: mug.Name, Quantity: 1, Price: mug.Price, Image: "https://img.example/mug.jpg"},
		},
	})
	require.NoError(t, err)

	// Delete the product outright; the order must still read back intact.
	require.NoError(t, productRepo.Delete(ctx, mug.ID))

	got, err := orderService.GetByID(ctx, placed.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Items, 1)

	assert.Equal(t, mug.Name, got.Items[0].Name)
	assert.Equal(t, mug.Price, got.Items[0].Price)
	assert.Equal(t, "https://img.example/mug.jpg", got.Items[0].Image)
}
