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

// addressService implements AddressService.
type addressService struct {
	addressRepo repository.AddressRepository
	logger      zerolog.Logger
}

// NewAddressService creates a new address service.
func NewAddressService(addressRepo repository.AddressRepository, logger zerolog.Logger) AddressService {
	return &addressService{
		addressRepo: addressRepo,
		logger:      logger.With().Str("service", "address").Logger(),
	}
}

// Create stores a new address.
func (s *addressService) Create(ctx context.Context, req *model.AddressRequest) (*model.Address, error) {
	if err := validateAddressRequest(req); err != nil {
		return nil, err
	}

	address := &model.Address{
		ID:         uuid.New(),
		UserID:     req.UserID,
		Recipient:  req.Recipient,
		Phone:      req.Phone,
		Line1:      req.Line1,
		Line2:      req.Line2,
		City:       req.City,
		Region:     req.Region,
		PostalCode: req.PostalCode,
		IsDefault:  req.IsDefault,
		CreatedAt:  time.Now(),
	}

	if err := s.addressRepo.Create(ctx, address); err != nil {
		s.logger.Error().Err(err).Str("user_id", req.UserID.String()).Msg("failed to create address")
		return nil, fmt.Errorf("failed to create address: %w", err)
	}

	return address, nil
}

// ListByUser retrieves a user's stored addresses.
func (s *addressService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Address, error) {
	addresses, err := s.addressRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to list addresses")
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	if addresses == nil {
		addresses = []model.Address{}
	}

	return addresses, nil
}

// Update edits a stored address.
func (s *addressService) Update(ctx context.Context, id uuid.UUID, req *model.AddressRequest) (*model.Address, error) {
	if err := validateAddressRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.addressRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get address: %w", err)
	}
	if existing == nil {
		return nil, model.ErrAddressNotFound
	}

	existing.Recipient = req.Recipient
	existing.Phone = req.Phone
	existing.Line1 = req.Line1
	existing.Line2 = req.Line2
	existing.City = req.City
	existing.Region = req.Region
	existing.PostalCode = req.PostalCode
	existing.IsDefault = req.IsDefault

	if err := s.addressRepo.Update(ctx, existing); err != nil {
		s.logger.Error().Err(err).Str("address_id", id.String()).Msg("failed to update address")
		return nil, err
	}

	return existing, nil
}

// Delete removes a stored address.
func (s *addressService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.addressRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrAddressNotFound) {
			return err
		}
		s.logger.Error().Err(err).Str("address_id", id.String()).Msg("failed to delete address")
		return fmt.Errorf("failed to delete address: %w", err)
	}
	return nil
}

func validateAddressRequest(req *model.AddressRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeValidation, "address request is nil")
	}
	if req.UserID == uuid.Nil {
		return model.NewDomainError(model.ErrCodeValidation, "user ID is required")
	}
	if req.Recipient == "" {
		return model.NewDomainError(model.ErrCodeValidation, "recipient is required")
	}
	if req.Line1 == "" {
		return model.NewDomainError(model.ErrCodeValidation, "address line 1 is required")
	}
	if req.City == "" {
		return model.NewDomainError(model.ErrCodeValidation, "city is required")
	}
	return nil
}
