package service

import (
	"context"
	"fmt"
	"time"

	"marketsquare/internal/model"
	"marketsquare/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// placementTimeout bounds the checkout transaction. A timeout aborts the
// whole unit the same way any other failure does.
const placementTimeout = 10 * time.Second

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	addressRepo repository.AddressRepository
	logger      zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	addressRepo repository.AddressRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		addressRepo: addressRepo,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// PlaceOrder creates an order with its line items and decrements stock for
// every referenced product inside a single database transaction. Either every
// effect is durably applied or none is: a missing product or insufficient
// stock rolls back the order, the items and every prior decrement.
//
// Line-item name, price and image are persisted exactly as supplied by the
// caller; they are snapshots, not lookups against the live product record.
// The call is intentionally not idempotent: identical payloads create
// distinct orders and decrement stock twice.
func (s *orderService) PlaceOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error) {
	if err := s.validateOrderRequest(req); err != nil {
		return nil, err
	}

	// The shipping address must exist before any write happens.
	address, err := s.addressRepo.GetByID(ctx, req.AddressID)
	if err != nil {
		return nil, fmt.Errorf("failed to check shipping address: %w", err)
	}
	if address == nil {
		s.logger.Warn().Str("address_id", req.AddressID.String()).Msg("shipping address not found")
		return nil, model.ErrAddressNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, placementTimeout)
	defer cancel()

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	// Roll back on every error exit path.
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	now := time.Now()
	order := &model.Order{
		ID:            uuid.New(),
		UserID:        req.CustomerID,
		AddressID:     req.AddressID,
		Total:         req.Total,
		PaymentMethod: req.PaymentMethod,
		Status:        model.StatusToShip,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	orderItems := make([]model.OrderItem, len(req.Items))
	for i, item := range req.Items {
		orderItems[i] = model.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Image:     item.Image,
			Quantity:  item.Quantity,
		}
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("item_count", len(orderItems)).
			Msg("failed to create order items")
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	for _, item := range orderItems {
		if err = s.productRepo.DecrementStock(ctx, tx, item.ProductID, item.Quantity); err != nil {
			s.logger.Warn().
				Err(err).
				Str("order_id", order.ID.String()).
				Str("product_id", item.ProductID.String()).
				Int("quantity", item.Quantity).
				Msg("stock decrement failed, aborting order")
			return nil, err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("user_id", order.UserID.String()).
		Int("item_count", len(orderItems)).
		Float64("total", order.Total).
		Msg("order placed successfully")

	return orderResponse(order, orderItems), nil
}

// GetByID retrieves an order by its ID with all items.
func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*model.OrderResponse, error) {
	order, items, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		s.logger.Debug().Str("order_id", id.String()).Msg("order not found")
		return nil, nil
	}

	return orderResponse(order, items), nil
}

// ListByUser retrieves a user's orders, newest first.
func (s *orderService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus transitions an order along the allowed status graph. The
// repository update is conditional on the status the transition was validated
// against, so a concurrent transition loses cleanly instead of overwriting.
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.OrderResponse, error) {
	if !model.ValidStatus(status) {
		return nil, model.NewDomainError(model.ErrCodeInvalidStatus, fmt.Sprintf("unknown order status %q", status))
	}

	order, items, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order for status update")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	if !model.CanTransition(order.Status, status) {
		s.logger.Warn().
			Str("order_id", id.String()).
			Str("from", order.Status).
			Str("to", status).
			Msg("status transition not allowed")
		return nil, model.ErrInvalidTransition
	}

	ok, err := s.orderRepo.UpdateStatus(ctx, id, order.Status, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	if !ok {
		// The order moved under us between the read and the update.
		return nil, model.ErrInvalidTransition
	}

	order.Status = status
	s.logger.Info().
		Str("order_id", id.String()).
		Str("status", status).
		Msg("order status updated")

	return orderResponse(order, items), nil
}

// validateOrderRequest validates the order request before any store access.
func (s *orderService) validateOrderRequest(req *model.OrderRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeValidation, "order request is nil")
	}

	if req.CustomerID == uuid.Nil {
		return model.NewDomainError(model.ErrCodeValidation, "customer ID is required")
	}

	if req.AddressID == uuid.Nil {
		return model.NewDomainError(model.ErrCodeValidation, "address ID is required")
	}

	if req.PaymentMethod == "" {
		return model.NewDomainError(model.ErrCodeValidation, "payment method is required")
	}

	if len(req.Items) == 0 {
		return model.ErrEmptyOrder
	}

	for i, item := range req.Items {
		if item.ProductID == uuid.Nil {
			return model.NewDomainError(model.ErrCodeValidation, fmt.Sprintf("item %d: product ID is required", i))
		}

		if item.Quantity <= 0 {
			s.logger.Warn().
				Int("item_index", i).
				Str("product_id", item.ProductID.String()).
				Int("quantity", item.Quantity).
				Msg("invalid quantity")
			return model.ErrInvalidQuantity
		}
	}

	return nil
}

func orderResponse(order *model.Order, items []model.OrderItem) *model.OrderResponse {
	return &model.OrderResponse{
		ID:            order.ID,
		UserID:        order.UserID,
		AddressID:     order.AddressID,
		Total:         order.Total,
		PaymentMethod: order.PaymentMethod,
		Status:        order.Status,
		Items:         items,
		CreatedAt:     order.CreatedAt,
	}
}
