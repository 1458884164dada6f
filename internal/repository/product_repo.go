package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/GTDGit/print_api/internal/models"
)

// ProductRepository handles data access for product pricing configuration.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// GetByID returns an active product, or nil when none exists.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	const q = `
        SELECT id, code, name, product_type, page_price, binding_fee, guide_price, design_fee,
               free_design_min_qty, rounding_unit, rounding_mode, is_active, created_at, updated_at
        FROM products WHERE id = $1 AND is_active = true LIMIT 1`

	stmt, err := r.db.PreparexContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	var p models.Product
	if err := stmt.GetContext(ctx, &p, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// GetDiscountTiers returns the active quantity discount tiers of a product.
func (r *ProductRepository) GetDiscountTiers(ctx context.Context, productID int64) ([]models.QuantityDiscountTier, error) {
	const q = `
        SELECT id, product_id, min_qty, percent, is_active
        FROM quantity_discount_tiers
        WHERE product_id = $1 AND is_active = true
        ORDER BY min_qty, id`

	var tiers []models.QuantityDiscountTier
	if err := r.db.SelectContext(ctx, &tiers, q, productID); err != nil {
		return nil, err
	}
	return tiers, nil
}
