package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketsquare/internal/model"
	"marketsquare/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	shopRepo    repository.ShopRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, shopRepo repository.ShopRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		shopRepo:    shopRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// GetAll retrieves catalogue listings matching the filter.
func (s *productService) GetAll(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	products, err := s.productRepo.GetAll(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	if products == nil {
		products = []model.Product{}
	}

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to get product")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

// Create adds a new listing to a shop's catalogue.
func (s *productService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	if err := validateProductRequest(req); err != nil {
		return nil, err
	}

	shop, err := s.shopRepo.GetByID(ctx, req.ShopID)
	if err != nil {
		return nil, fmt.Errorf("failed to check shop: %w", err)
	}
	if shop == nil {
		s.logger.Warn().Str("shop_id", req.ShopID.String()).Msg("shop not found")
		return nil, model.ErrShopNotFound
	}

	now := time.Now()
	product := &model.Product{
		ID:          uuid.New(),
		ShopID:      req.ShopID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Sold:        0,
		Category:    req.Category,
		Image:       req.Image,
		Images:      req.Images,
		Variations:  req.Variations,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("product_id", product.ID.String()).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Str("product_id", product.ID.String()).
		Str("shop_id", product.ShopID.String()).
		Msg("product created")

	return product, nil
}

// Update edits an existing listing. Sold is never touched by catalogue edits.
func (s *productService) Update(ctx context.Context, id uuid.UUID, req *model.ProductRequest) (*model.Product, error) {
	if err := validateProductRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if existing == nil {
		return nil, model.ErrProductNotFound
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Price = req.Price
	existing.Stock = req.Stock
	existing.Category = req.Category
	existing.Image = req.Image
	existing.Images = req.Images
	existing.Variations = req.Variations
	existing.UpdatedAt = time.Now()

	if err := s.productRepo.Update(ctx, existing); err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to update product")
		return nil, err
	}

	return existing, nil
}

// Delete removes a listing. Order history keeps its snapshots.
func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			return err
		}
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.Info().Str("product_id", id.String()).Msg("product deleted")

	return nil
}

func validateProductRequest(req *model.ProductRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeValidation, "product request is nil")
	}
	if req.ShopID == uuid.Nil {
		return model.NewDomainError(model.ErrCodeValidation, "shop ID is required")
	}
	if req.Name == "" {
		return model.NewDomainError(model.ErrCodeValidation, "product name is required")
	}
	if req.Price < 0 {
		return model.NewDomainError(model.ErrCodeValidation, "product price cannot be negative")
	}
	if req.Stock < 0 {
		return model.NewDomainError(model.ErrCodeValidation, "product stock cannot be negative")
	}
	return nil
}
