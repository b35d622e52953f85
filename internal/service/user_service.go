package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"marketsquare/internal/model"
	"marketsquare/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// userService implements UserService.
type userService struct {
	userRepo repository.UserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, logger zerolog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger.With().Str("service", "user").Logger(),
	}
}

// Register creates a new user account.
func (s *userService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	if req == nil {
		return nil, model.NewDomainError(model.ErrCodeValidation, "register request is nil")
	}
	if req.Name == "" {
		return nil, model.NewDomainError(model.ErrCodeValidation, "name is required")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, model.NewDomainError(model.ErrCodeValidation, "a valid email is required")
	}
	if req.Password == "" {
		return nil, model.NewDomainError(model.ErrCodeValidation, "password is required")
	}

	user := &model.User{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     email,
		Password:  req.Password,
		CreatedAt: time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, model.ErrEmailAlreadyRegistered) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("email", email).Msg("failed to register user")
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID.String()).Msg("user registered")

	return user, nil
}

// Login checks credentials and returns the matching user. Credentials are
// compared in plaintext, matching the stored representation; there is no
// session or token issuance.
func (s *userService) Login(ctx context.Context, req *model.LoginRequest) (*model.User, error) {
	if req == nil || req.Email == "" || req.Password == "" {
		return nil, model.NewDomainError(model.ErrCodeValidation, "email and password are required")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to look up user")
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user == nil || user.Password != req.Password {
		s.logger.Warn().Str("email", email).Msg("login failed")
		return nil, model.ErrInvalidCredentials
	}

	s.logger.Info().Str("user_id", user.ID.String()).Msg("user logged in")

	return user, nil
}
