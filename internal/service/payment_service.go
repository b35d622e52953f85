package service

import (
	"context"
	"fmt"
	"time"

	"marketsquare/internal/model"
	"marketsquare/internal/payment"
	"marketsquare/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// paymentService implements PaymentService.
type paymentService struct {
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
	client      payment.IntentClient
	logger      zerolog.Logger
}

// NewPaymentService creates a new payment service.
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	orderRepo repository.OrderRepository,
	client payment.IntentClient,
	logger zerolog.Logger,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		client:      client,
		logger:      logger.With().Str("service", "payment").Logger(),
	}
}

// CreateIntent creates an intent with the processor and records it against
// the order. The intent is created first; recording it locally after a
// processor success keeps the processor as the source of truth.
func (s *paymentService) CreateIntent(ctx context.Context, req *model.PaymentIntentRequest) (*model.PaymentIntentResponse, error) {
	if req == nil {
		return nil, model.NewDomainError(model.ErrCodeValidation, "payment request is nil")
	}
	if req.OrderID == uuid.Nil {
		return nil, model.NewDomainError(model.ErrCodeValidation, "order ID is required")
	}
	if req.Amount <= 0 {
		return nil, model.NewDomainError(model.ErrCodeValidation, "amount must be greater than zero")
	}

	currency := req.Currency
	if currency == "" {
		currency = "usd"
	}

	order, _, err := s.orderRepo.GetByID(ctx, req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	intent, err := s.client.CreateIntent(ctx, req.Amount, currency)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", req.OrderID.String()).Msg("failed to create payment intent")
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	pay := &model.Payment{
		ID:        uuid.New(),
		OrderID:   req.OrderID,
		UserID:    req.UserID,
		Amount:    req.Amount,
		IntentID:  intent.ID,
		Status:    model.PaymentPending,
		CreatedAt: time.Now(),
	}

	if err := s.paymentRepo.Create(ctx, pay); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", req.OrderID.String()).
			Str("intent_id", intent.ID).
			Msg("failed to record payment")
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	s.logger.Info().
		Str("order_id", req.OrderID.String()).
		Str("intent_id", intent.ID).
		Msg("payment intent recorded")

	return &model.PaymentIntentResponse{
		Payment:      *pay,
		ClientSecret: intent.ClientSecret,
	}, nil
}
