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

// shopService implements ShopService.
type shopService struct {
	shopRepo repository.ShopRepository
	userRepo repository.UserRepository
	logger   zerolog.Logger
}

// NewShopService creates a new shop service.
func NewShopService(shopRepo repository.ShopRepository, userRepo repository.UserRepository, logger zerolog.Logger) ShopService {
	return &shopService{
		shopRepo: shopRepo,
		userRepo: userRepo,
		logger:   logger.With().Str("service", "shop").Logger(),
	}
}

// Register creates a new shop for a user.
func (s *shopService) Register(ctx context.Context, req *model.ShopRequest) (*model.Shop, error) {
	if req == nil {
		return nil, model.NewDomainError(model.ErrCodeValidation, "shop request is nil")
	}
	if req.OwnerID == uuid.Nil {
		return nil, model.NewDomainError(model.ErrCodeValidation, "owner ID is required")
	}
	if req.Name == "" {
		return nil, model.NewDomainError(model.ErrCodeValidation, "shop name is required")
	}

	owner, err := s.userRepo.GetByID(ctx, req.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check shop owner: %w", err)
	}
	if owner == nil {
		return nil, model.NewDomainError(model.ErrCodeValidation, "shop owner does not exist")
	}

	shop := &model.Shop{
		ID:          uuid.New(),
		OwnerID:     req.OwnerID,
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}

	if err := s.shopRepo.Create(ctx, shop); err != nil {
		s.logger.Error().Err(err).Str("shop_id", shop.ID.String()).Msg("failed to register shop")
		return nil, fmt.Errorf("failed to register shop: %w", err)
	}

	s.logger.Info().
		Str("shop_id", shop.ID.String()).
		Str("owner_id", shop.OwnerID.String()).
		Msg("shop registered")

	return shop, nil
}

// GetByID retrieves a shop by ID.
func (s *shopService) GetByID(ctx context.Context, id uuid.UUID) (*model.Shop, error) {
	shop, err := s.shopRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("shop_id", id.String()).Msg("failed to get shop")
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}
	return shop, nil
}

// Analytics aggregates the shop's sales figures.
func (s *shopService) Analytics(ctx context.Context, shopID uuid.UUID) (*model.ShopAnalytics, error) {
	shop, err := s.shopRepo.GetByID(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}
	if shop == nil {
		return nil, model.ErrShopNotFound
	}

	analytics, err := s.shopRepo.Analytics(ctx, shopID)
	if err != nil {
		s.logger.Error().Err(err).Str("shop_id", shopID.String()).Msg("failed to aggregate analytics")
		return nil, fmt.Errorf("failed to aggregate analytics: %w", err)
	}

	return analytics, nil
}
