package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketsquare/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if tx, ok := args.Get(0).(pgx.Tx); ok {
		return tx, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	args := m.Called(ctx, tx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error {
	args := m.Called(ctx, tx, items)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*model.Order), args.Get(1).([]model.OrderItem), args.Error(2)
}

func (m *MockOrderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to string) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) DecrementStock(ctx context.Context, tx pgx.Tx, id uuid.UUID, quantity int) error {
	args := m.Called(ctx, tx, id, quantity)
	return args.Error(0)
}

// MockAddressRepository is a mock implementation of AddressRepository.
type MockAddressRepository struct {
	mock.Mock
}

func (m *MockAddressRepository) Create(ctx context.Context, address *model.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *MockAddressRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Address), args.Error(1)
}

func (m *MockAddressRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Address, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Address), args.Error(1)
}

func (m *MockAddressRepository) Update(ctx context.Context, address *model.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *MockAddressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTx is a minimal mock implementation of pgx.Tx for testing.
type MockTx struct {
	mock.Mock
	committed  bool
	rolledBack bool
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	m.committed = true
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	m.rolledBack = true
	return args.Error(0)
}

// Stub methods to satisfy pgx.Tx interface - these are not used in our tests
func (m *MockTx) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (m *MockTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (m *MockTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (m *MockTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (m *MockTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (m *MockTx) Exec(ctx context.Context, sql string, arguments ...any) (commandTag pgconn.CommandTag, err error) {
	return
}
func (m *MockTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (m *MockTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (m *MockTx) Conn() *pgx.Conn                                               { return nil }

func validOrderRequest() *model.OrderRequest {
	return &model.OrderRequest{
		CustomerID:    uuid.New(),
		Total:         30.00,
		PaymentMethod: "card",
		AddressID:     uuid.New(),
		Items: []model.OrderItemRequest{
			{ProductID: uuid.New(), Name: "Canvas Tote Bag", Quantity: 2, Price: 10.00, Image: "https://img.example/tote.jpg"},
			{ProductID: uuid.New(), Name: "Ceramic Mug", Quantity: 1, Price: 10.00, Image: "https://img.example/mug.jpg"},
		},
	}
}

func testAddress(id uuid.UUID) *model.Address {
	return &model.Address{ID: id, UserID: uuid.New(), Recipient: "R", Line1: "1 Market St", City: "Springfield", CreatedAt: time.Now()}
}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	req := validOrderRequest()

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	mockAddressRepo := new(MockAddressRepository)
	mockTx := new(MockTx)

	svc := NewOrderService(mockOrderRepo, mockProductRepo, mockAddressRepo, logger)

	mockAddressRepo.On("GetByID", ctx, req.AddressID).Return(testAddress(req.AddressID), nil)
	// PlaceOrder derives a bounded-timeout context, so match any context.
	mockOrderRepo.On("BeginTx", mock.Anything).Return(mockTx, nil)
	mockOrderRepo.On("CreateOrder", mock.Anything, mockTx, mock.AnythingOfType("*model.Order")).Return(nil)
	mockOrderRepo.On("CreateOrderItems", mock.Anything, mockTx, mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	mockProductRepo.On("DecrementStock", mock.Anything, mockTx, req.Items[0].ProductID, 2).Return(nil)
	mockProductRepo.On("DecrementStock", mock.Anything, mockTx, req.Items[1].ProductID, 1).Return(nil)
	mockTx.On("Commit", mock.Anything).Return(nil)

	resp, err := svc.PlaceOrder(ctx, req)

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, model.StatusToShip, resp.Status)
	assert.Equal(t, req.Total, resp.Total)
	require.Len(t, resp.Items, 2)

	// Persisted line items carry the caller-supplied snapshots untouched.
	for i, item := range resp.Items {
		assert.Equal(t, req.Items[i].ProductID, item.ProductID)
		assert.Equal(t, req.Items[i].Name, item.Name)
		assert.Equal(t, req.Items[i].Price, item.Price)
		assert.Equal(t, req.Items[i].Image, item.Image)
		assert.Equal(t, req.Items[i].Quantity, item.Quantity)
	}

	assert.True(t, mockTx.committed)
	assert.False(t, mockTx.rolledBack)

	mockAddressRepo.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
	mockProductRepo.AssertExpectations(t)
	mockTx.AssertExpectations(t)
}

func TestOrderService_PlaceOrder_NotIdempotent(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	req := validOrderRequest()

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	mockAddressRepo := new(MockAddressRepository)
	mockTx := new(MockTx)

	svc := NewOrderService(mockOrderRepo, mockProductRepo, mockAddressRepo, logger)

	mockAddressRepo.On("GetByID", ctx, req.AddressID).Return(testAddress(req.AddressID), nil)
	mockOrderRepo.On("BeginTx", mock.Anything).Return(mockTx, nil)
	mockOrderRepo.On("CreateOrder", mock.Anything, mockTx, mock.AnythingOfType("*model.Order")).Return(nil)
	mockOrderRepo.On("CreateOrderItems", mock.Anything, mockTx, mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	mockProductRepo.On("DecrementStock", mock.Anything, mockTx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("int")).Return(nil)
	mockTx.On("Commit", mock.Anything).Return(nil)

	first, err := svc.PlaceOrder(ctx, req)
	require.NoError(t, err)
	second, err := svc.PlaceOrder(ctx, req)
	require.NoError(t, err)

	// Same payload twice means two distinct orders; dedup is deliberately absent.
	assert.NotEqual(t, first.ID, second.ID)
	mockProductRepo.AssertNumberOfCalls(t, "DecrementStock", 4)
}

func TestOrderService_PlaceOrder_ValidationFailures(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	base := validOrderRequest()

	tests := []struct {
		name    string
		mutate  func(r *model.OrderRequest)
		wantErr error
	}{
		{
			name:   "Empty items",
			mutate: func(r *model.OrderRequest) { r.Items = nil },
			wantErr: model.ErrEmptyOrder,
		},
		{
			name:   "Zero quantity",
			mutate: func(r *model.OrderRequest) { r.Items[0].Quantity = 0 },
			wantErr: model.ErrInvalidQuantity,
		},
		{
			name:   "Negative quantity",
			mutate: func(r *model.OrderRequest) { r.Items[0].Quantity = -3 },
			wantErr: model.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := *base
			req.Items = append([]model.OrderItemRequest{}, base.Items...)
			tt.mutate(&req)

			mockOrderRepo := new(MockOrderRepository)
			mockProductRepo := new(MockProductRepository)
			mockAddressRepo := new(MockAddressRepository)

			svc := NewOrderService(mockOrderRepo, mockProductRepo, mockAddressRepo, logger)

			resp, err := svc.PlaceOrder(ctx, &req)

			require.Error(t, err)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)

			// Validation failures never reach a store.
			mockAddressRepo.AssertNotCalled(t, "GetByID")
			mockOrderRepo.AssertNotCalled(t, "BeginTx")
		})
	}
}

func TestOrderService_PlaceOrder_MissingRequiredFields(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(r *model.OrderRequest)
	}{
		{"Missing customer", func(r *model.OrderRequest) { r.CustomerID = uuid.Nil }},
		{"Missing address", func(r *model.OrderRequest) { r.AddressID = uuid.Nil }},
		{"Missing payment method", func(r *model.OrderRequest) { r.PaymentMethod = "" }},
		{"Missing item product ID", func(r *model.OrderRequest) { r.Items[0].ProductID = uuid.Nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validOrderRequest()
			tt.mutate(req)

			svc := NewOrderService(new(MockOrderRepository), new(MockProductRepository), new(MockAddressRepository), logger)

			resp, err := svc.PlaceOrder(ctx, req)

			require.Error(t, err)
			assert.Nil(t, resp)

			var domainErr *model.DomainError
			require.ErrorAs(t, err, &domainErr)
		})
	}
}

func TestOrderService_PlaceOrder_AddressNotFound(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	req := validOrderRequest()

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	mockAddressRepo := new(MockAddressRepository)

	svc := NewOrderService(mockOrderRepo, mockProductRepo, mockAddressRepo, logger)

	mockAddressRepo.On("GetByID", ctx, req.AddressID).Return(nil, nil)

	resp, err := svc.PlaceOrder(ctx, req)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrAddressNotFound)
	mockOrderRepo.AssertNotCalled(t, "BeginTx")
}

func TestOrderService_PlaceOrder_ProductNotFound_RollsBack(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	req := validOrderRequest()

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	mockAddressRepo := new(MockAddressRepository)
	mockTx := new(MockTx)

	svc := NewOrderService(mockOrderRepo, mockProductRepo, mockAddressRepo, logger)

	mockAddressRepo.On("GetByID", ctx, req.AddressID).Return(testAddress(req.AddressID), nil)
	mockOrderRepo.On("BeginTx", mock.Anything).Return(mockTx, nil)
	mockOrderRepo.On("CreateOrder", mock.Anything, mockTx, mock.AnythingOfType("*model.Order")).Return(nil)
	mockOrderRepo.On("CreateOrderItems", mock.Anything, mockTx, mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	mockProductRepo.On("DecrementStock", mock.Anything, mockTx, req.Items[0].ProductID, 2).Return(model.ErrProductNotFound)
	mockTx.On("Rollback", mock.Anything).Return(nil)

	resp, err := svc.PlaceOrder(ctx, req)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrProductNotFound)

	assert.True(t, mockTx.rolledBack)
	assert.False(t, mockTx.committed)
	mockTx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestOrderService_PlaceOrder_InsufficientStock_RollsBack(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	req := validOrderRequest()

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	mockAddressRepo := new(MockAddressRepository)
	mockTx := new(MockTx)

	svc := NewOrderService(mockOrderRepo, mockProductRepo, mockAddressRepo, logger)

	mockAddressRepo.On("GetByID", ctx, req.AddressID).Return(testAddress(req.AddressID), nil)
	mockOrderRepo.On("BeginTx", mock.Anything).Return(mockTx, nil)
	mockOrderRepo.On("CreateOrder", mock.Anything, mockTx, mock.AnythingOfType("*model.Order")).Return(nil)
	mockOrderRepo.On("CreateOrderItems", mock.Anything, mockTx, mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	// First item decrements fine, second runs dry; the whole unit aborts.
	mockProductRepo.On("DecrementStock", mock.Anything, mockTx, req.Items[0].ProductID, 2).Return(nil)
	mockProductRepo.On("DecrementStock", mock.Anything, mockTx, req.Items[1].ProductID, 1).Return(model.ErrInsufficientStock)
	mockTx.On("Rollback", mock.Anything).Return(nil)

	resp, err := svc.PlaceOrder(ctx, req)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrInsufficientStock)
	assert.True(t, mockTx.rolledBack)
	mockTx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestOrderService_PlaceOrder_CommitError(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	req := validOrderRequest()

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	mockAddressRepo := new(MockAddressRepository)
	mockTx := new(MockTx)

	svc := NewOrderService(mockOrderRepo, mockProductRepo, mockAddressRepo, logger)

	mockAddressRepo.On("GetByID", ctx, req.AddressID).Return(testAddress(req.AddressID), nil)
	mockOrderRepo.On("BeginTx", mock.Anything).Return(mockTx, nil)
	mockOrderRepo.On("CreateOrder", mock.Anything, mockTx, mock.AnythingOfType("*model.Order")).Return(nil)
	mockOrderRepo.On("CreateOrderItems", mock.Anything, mockTx, mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	mockProductRepo.On("DecrementStock", mock.Anything, mockTx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("int")).Return(nil)
	mockTx.On("Commit", mock.Anything).Return(errors.New("connection reset"))
	mockTx.On("Rollback", mock.Anything).Return(nil)

	resp, err := svc.PlaceOrder(ctx, req)

	require.Error(t, err)
	assert.Nil(t, resp)
}

func TestOrderService_PlaceOrder_ExpiredContext(t *testing.T) {
	logger := zerolog.Nop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := validOrderRequest()

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	mockAddressRepo := new(MockAddressRepository)

	svc := NewOrderService(mockOrderRepo, mockProductRepo, mockAddressRepo, logger)

	mockAddressRepo.On("GetByID", ctx, req.AddressID).Return(testAddress(req.AddressID), nil)
	// The bounded placement context inherits the cancellation, so the pool
	// refuses to start a transaction.
	mockOrderRepo.On("BeginTx", mock.MatchedBy(func(c context.Context) bool {
		return c.Err() != nil
	})).Return(nil, context.Canceled)

	resp, err := svc.PlaceOrder(ctx, req)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, resp)

	// No transaction means no writes of any kind.
	mockOrderRepo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
	mockOrderRepo.AssertNotCalled(t, "CreateOrderItems", mock.Anything, mock.Anything, mock.Anything)
	mockProductRepo.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_DeadlineMidTransaction_RollsBack(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	req := validOrderRequest()

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	mockAddressRepo := new(MockAddressRepository)
	mockTx := new(MockTx)

	svc := NewOrderService(mockOrderRepo, mockProductRepo, mockAddressRepo, logger)

	mockAddressRepo.On("GetByID", ctx, req.AddressID).Return(testAddress(req.AddressID), nil)
	mockOrderRepo.On("BeginTx", mock.Anything).Return(mockTx, nil)
	mockOrderRepo.On("CreateOrder", mock.Anything, mockTx, mock.AnythingOfType("*model.Order")).Return(nil)
	mockOrderRepo.On("CreateOrderItems", mock.Anything, mockTx, mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	// The placement deadline expires while stock is being decremented.
	mockProductRepo.On("DecrementStock", mock.Anything, mockTx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("int")).
		Return(context.DeadlineExceeded)
	mockTx.On("Rollback", mock.Anything).Return(nil)

	resp, err := svc.PlaceOrder(ctx, req)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, resp)
	assert.True(t, mockTx.rolledBack)
	assert.False(t, mockTx.committed)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	orderID := uuid.New()

	tests := []struct {
		name       string
		current    string
		target     string
		updateOK   bool
		wantErr    error
		expectRepo bool
	}{
		{"To-ship to shipping", model.StatusToShip, model.StatusShipping, true, nil, true},
		{"Shipping to completed", model.StatusShipping, model.StatusCompleted, true, nil, true},
		{"To-ship to cancelled", model.StatusToShip, model.StatusCancelled, true, nil, true},
		{"To-pay to to-ship", model.StatusToPay, model.StatusToShip, true, nil, true},
		{"Completed is terminal", model.StatusCompleted, model.StatusShipping, false, model.ErrInvalidTransition, false},
		{"Cancelled is terminal", model.StatusCancelled, model.StatusToShip, false, model.ErrInvalidTransition, false},
		{"Skipping shipping not allowed", model.StatusToShip, model.StatusCompleted, false, model.ErrInvalidTransition, false},
		{"Lost race surfaces as invalid transition", model.StatusToShip, model.StatusShipping, false, model.ErrInvalidTransition, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOrderRepo := new(MockOrderRepository)
			mockProductRepo := new(MockProductRepository)
			mockAddressRepo := new(MockAddressRepository)

			svc := NewOrderService(mockOrderRepo, mockProductRepo, mockAddressRepo, logger)

			order := &model.Order{ID: orderID, Status: tt.current, CreatedAt: time.Now()}
			mockOrderRepo.On("GetByID", ctx, orderID).Return(order, []model.OrderItem{}, nil)
			if tt.expectRepo {
				mockOrderRepo.On("UpdateStatus", ctx, orderID, tt.current, tt.target).Return(tt.updateOK, nil)
			}

			resp, err := svc.UpdateStatus(ctx, orderID, tt.target)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				require.NotNil(t, resp)
				assert.Equal(t, tt.target, resp.Status)
			}

			mockOrderRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_UpdateStatus_UnknownStatus(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	svc := NewOrderService(new(MockOrderRepository), new(MockProductRepository), new(MockAddressRepository), logger)

	resp, err := svc.UpdateStatus(ctx, uuid.New(), "teleported")

	require.Error(t, err)
	assert.Nil(t, resp)

	var domainErr *model.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, model.ErrCodeInvalidStatus, domainErr.Code)
}

func TestOrderService_UpdateStatus_OrderNotFound(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	orderID := uuid.New()

	mockOrderRepo := new(MockOrderRepository)
	mockOrderRepo.On("GetByID", ctx, orderID).Return(nil, nil, nil)

	svc := NewOrderService(mockOrderRepo, new(MockProductRepository), new(MockAddressRepository), logger)

	resp, err := svc.UpdateStatus(ctx, orderID, model.StatusShipping)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrOrderNotFound)
}

func TestOrderService_GetByID_NotFound(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	orderID := uuid.New()

	mockOrderRepo := new(MockOrderRepository)
	mockOrderRepo.On("GetByID", ctx, orderID).Return(nil, nil, nil)

	svc := NewOrderService(mockOrderRepo, new(MockProductRepository), new(MockAddressRepository), logger)

	resp, err := svc.GetByID(ctx, orderID)

	require.NoError(t, err)
	assert.Nil(t, resp)
}
