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

// shopRepository implements the ShopRepository interface using PostgreSQL.
type shopRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewShopRepository creates a new PostgreSQL-backed shop repository.
func NewShopRepository(pool *pgxpool.Pool, logger zerolog.Logger) ShopRepository {
	return &shopRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "shop").Logger(),
	}
}

// Create inserts a new shop.
func (r *shopRepository) Create(ctx context.Context, shop *model.Shop) error {
	query := `
		INSERT INTO shops (id, owner_id, name, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query, shop.ID, shop.OwnerID, shop.Name, shop.Description, shop.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("shop_id", shop.ID.String()).Msg("failed to create shop")
		return fmt.Errorf("failed to create shop: %w", err)
	}

	r.logger.Debug().Str("shop_id", shop.ID.String()).Msg("shop created successfully")

	return nil
}

// GetByID retrieves a shop by ID.
func (r *shopRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Shop, error) {
	query := `SELECT id, owner_id, name, description, created_at FROM shops WHERE id = $1`

	var s model.Shop
	err := r.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.OwnerID, &s.Name, &s.Description, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("shop_id", id.String()).Msg("shop not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("shop_id", id.String()).Msg("failed to query shop")
		return nil, fmt.Errorf("failed to query shop: %w", err)
	}

	return &s, nil
}

// Analytics aggregates sales per product for a shop. Figures come entirely
// from the order line-item rows, whose shop attribution was captured at order
// time, so sales of since-deleted products still count.
func (r *shopRepository) Analytics(ctx context.Context, shopID uuid.UUID) (*model.ShopAnalytics, error) {
	query := `
		SELECT oi.product_id,
		       MAX(oi.name) AS name,
		       COALESCE(SUM(oi.quantity), 0) AS units_sold,
		       COALESCE(SUM(oi.quantity * oi.price), 0) AS revenue,
		       COUNT(DISTINCT oi.order_id) AS order_count
		FROM order_items oi
		WHERE oi.shop_id = $1
		GROUP BY oi.product_id
		ORDER BY revenue DESC
	`

	rows, err := r.pool.Query(ctx, query, shopID)
	if err != nil {
		r.logger.Error().Err(err).Str("shop_id", shopID.String()).Msg("failed to query shop analytics")
		return nil, fmt.Errorf("failed to query shop analytics: %w", err)
	}
	defer rows.Close()

	analytics := &model.ShopAnalytics{ShopID: shopID, Products: []model.ProductSales{}}
	for rows.Next() {
		var ps model.ProductSales
		err := rows.Scan(&ps.ProductID, &ps.Name, &ps.UnitsSold, &ps.Revenue, &ps.OrderCount)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan analytics row")
			return nil, fmt.Errorf("failed to scan analytics row: %w", err)
		}
		analytics.Products = append(analytics.Products, ps)
		analytics.TotalRevenue += ps.Revenue
		analytics.TotalUnits += ps.UnitsSold
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating analytics rows")
		return nil, fmt.Errorf("error iterating analytics rows: %w", err)
	}

	return analytics, nil
}
