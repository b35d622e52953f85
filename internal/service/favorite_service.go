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

// favoriteService implements FavoriteService.
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	productRepo  repository.ProductRepository
	logger       zerolog.Logger
}

// NewFavoriteService creates a new favorites service.
func NewFavoriteService(favoriteRepo repository.FavoriteRepository, productRepo repository.ProductRepository, logger zerolog.Logger) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		productRepo:  productRepo,
		logger:       logger.With().Str("service", "favorite").Logger(),
	}
}

// Add saves a product. Re-adding is a no-op.
func (s *favoriteService) Add(ctx context.Context, req *model.FavoriteRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeValidation, "favorite request is nil")
	}
	if req.UserID == uuid.Nil || req.ProductID == uuid.Nil {
		return model.NewDomainError(model.ErrCodeValidation, "user ID and product ID are required")
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return fmt.Errorf("failed to check product: %w", err)
	}
	if product == nil {
		return model.ErrProductNotFound
	}

	fav := &model.Favorite{
		ID:        uuid.New(),
		UserID:    req.UserID,
		ProductID: req.ProductID,
		CreatedAt: time.Now(),
	}

	if err := s.favoriteRepo.Add(ctx, fav); err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", req.UserID.String()).
			Str("product_id", req.ProductID.String()).
			Msg("failed to add favorite")
		return fmt.Errorf("failed to add favorite: %w", err)
	}

	return nil
}

// Remove unsaves a product.
func (s *favoriteService) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	if err := s.favoriteRepo.Remove(ctx, userID, productID); err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", userID.String()).
			Str("product_id", productID.String()).
			Msg("failed to remove favorite")
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// ListByUser retrieves everything a user has saved.
func (s *favoriteService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Favorite, error) {
	favorites, err := s.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to list favorites")
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	if favorites == nil {
		favorites = []model.Favorite{}
	}

	return favorites, nil
}
