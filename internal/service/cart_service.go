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

// cartService implements CartService.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, logger zerolog.Logger) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

// Add puts a product in the user's cart, accumulating quantity when the
// product is already there.
func (s *cartService) Add(ctx context.Context, req *model.CartRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeValidation, "cart request is nil")
	}
	if req.UserID == uuid.Nil {
		return model.NewDomainError(model.ErrCodeValidation, "user ID is required")
	}
	if req.ProductID == uuid.Nil {
		return model.NewDomainError(model.ErrCodeValidation, "product ID is required")
	}
	if req.Quantity <= 0 {
		return model.ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return fmt.Errorf("failed to check product: %w", err)
	}
	if product == nil {
		return model.ErrProductNotFound
	}

	item := &model.CartItem{
		ID:        uuid.New(),
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		CreatedAt: time.Now(),
	}

	if err := s.cartRepo.Upsert(ctx, item); err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", req.UserID.String()).
			Str("product_id", req.ProductID.String()).
			Msg("failed to add to cart")
		return fmt.Errorf("failed to add to cart: %w", err)
	}

	s.logger.Debug().
		Str("user_id", req.UserID.String()).
		Str("product_id", req.ProductID.String()).
		Int("quantity", req.Quantity).
		Msg("product added to cart")

	return nil
}

// Get retrieves the user's cart paired with live product records.
func (s *cartService) Get(ctx context.Context, userID uuid.UUID) (*model.CartResponse, error) {
	items, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to get cart")
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	productIDs := make([]uuid.UUID, len(items))
	for i, item := range items {
		productIDs[i] = item.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to get cart products")
		return nil, fmt.Errorf("failed to get cart products: %w", err)
	}

	if items == nil {
		items = []model.CartItem{}
	}

	return &model.CartResponse{Items: items, Products: products}, nil
}

// Remove takes one product out of the user's cart.
func (s *cartService) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	if err := s.cartRepo.Remove(ctx, userID, productID); err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", userID.String()).
			Str("product_id", productID.String()).
			Msg("failed to remove cart item")
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}

// Clear empties the user's cart.
func (s *cartService) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.cartRepo.Clear(ctx, userID); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to clear cart")
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
