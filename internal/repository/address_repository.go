package repository

import (
	"context"
	"errors"
	"fmt"

	"marketsquare/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// addressRepository implements the AddressRepository interface using PostgreSQL.
type addressRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewAddressRepository creates a new PostgreSQL-backed address repository.
func NewAddressRepository(pool *pgxpool.Pool, logger zerolog.Logger) AddressRepository {
	return &addressRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "address").Logger(),
	}
}

const addressColumns = `id, user_id, recipient, phone, line1, line2, city, region, postal_code, is_default, created_at`

// Create inserts a new address.
func (r *addressRepository) Create(ctx context.Context, address *model.Address) error {
	query := `
		INSERT INTO addresses (id, user_id, recipient, phone, line1, line2, city, region, postal_code, is_default, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		address.ID, address.UserID, address.Recipient, address.Phone, address.Line1,
		address.Line2, address.City, address.Region, address.PostalCode, address.IsDefault,
		address.CreatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("address_id", address.ID.String()).Msg("failed to create address")
		return fmt.Errorf("failed to create address: %w", err)
	}

	return nil
}

// GetByID retrieves an address by ID.
func (r *addressRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE id = $1`

	var a model.Address
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.UserID, &a.Recipient, &a.Phone, &a.Line1, &a.Line2,
		&a.City, &a.Region, &a.PostalCode, &a.IsDefault, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("address_id", id.String()).Msg("address not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("address_id", id.String()).Msg("failed to query address")
		return nil, fmt.Errorf("failed to query address: %w", err)
	}

	return &a, nil
}

// ListByUser retrieves all addresses stored by a user.
func (r *addressRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE user_id = $1 ORDER BY is_default DESC, created_at`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to query addresses")
		return nil, fmt.Errorf("failed to query addresses: %w", err)
	}
	defer rows.Close()

	var addresses []model.Address
	for rows.Next() {
		var a model.Address
		err := rows.Scan(
			&a.ID, &a.UserID, &a.Recipient, &a.Phone, &a.Line1, &a.Line2,
			&a.City, &a.Region, &a.PostalCode, &a.IsDefault, &a.CreatedAt,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan address row")
			return nil, fmt.Errorf("failed to scan address: %w", err)
		}
		addresses = append(addresses, a)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating address rows")
		return nil, fmt.Errorf("error iterating addresses: %w", err)
	}

	return addresses, nil
}

// Update overwrites an address.
func (r *addressRepository) Update(ctx context.Context, address *model.Address) error {
	query := `
		UPDATE addresses
		SET recipient = $2, phone = $3, line1 = $4, line2 = $5, city = $6,
		    region = $7, postal_code = $8, is_default = $9
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		address.ID, address.Recipient, address.Phone, address.Line1, address.Line2,
		address.City, address.Region, address.PostalCode, address.IsDefault,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("address_id", address.ID.String()).Msg("failed to update address")
		return fmt.Errorf("failed to update address: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrAddressNotFound
	}

	return nil
}

// Delete removes an address.
func (r *addressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("address_id", id.String()).Msg("failed to delete address")
		return fmt.Errorf("failed to delete address: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrAddressNotFound
	}

	return nil
}
