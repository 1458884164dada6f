package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/GTDGit/print_api/internal/models"
	"github.com/GTDGit/print_api/internal/pricing"
)

// CatalogRepository reads the admin-managed catalog tables.
type CatalogRepository struct {
	db *sqlx.DB
}

// NewCatalogRepository creates a new CatalogRepository.
func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

const (
	sizesQuery = `
        SELECT id, code, name, width_mm, height_mm, base_sheet_size, up_count, sort_order, is_active, updated_at
        FROM sizes WHERE is_active = true ORDER BY sort_order, code`

	paperTypesQuery = `
        SELECT id, code, name, family, sort_order, is_active, created_at, updated_at
        FROM paper_types WHERE is_active = true ORDER BY sort_order, code`

	paperCostsQuery = `
        SELECT pc.id, pc.paper_type_id, pt.code AS paper_code, pt.family AS paper_family,
               pc.weight, pc.base_sheet_size, pc.cost_per_sheet, pc.margin_rate, pc.is_active, pc.updated_at
        FROM paper_costs pc
        JOIN paper_types pt ON pt.id = pc.paper_type_id
        WHERE pc.is_active = true AND pt.is_active = true
        ORDER BY pt.code, pc.weight, pc.base_sheet_size`

	printTiersQuery = `
        SELECT id, min_faces, max_faces, cost_per_face, is_active
        FROM print_cost_tiers WHERE is_active = true ORDER BY min_faces`

	bindingTypesQuery = `
        SELECT id, code, name, max_thickness_mm, is_active
        FROM binding_types WHERE is_active = true ORDER BY code`

	bindingCostsQuery = `
        SELECT id, binding_type_id, setup_cost, min_qty, max_qty, cost_per_copy, is_active
        FROM binding_costs WHERE is_active = true ORDER BY binding_type_id, min_qty`

	finishingTypesQuery = `
        SELECT id, code, name, is_active
        FROM finishing_types WHERE is_active = true ORDER BY code`

	finishingCostsQuery = `
        SELECT id, finishing_type_id, flat_cost, cost_per_copy, is_active
        FROM finishing_costs WHERE is_active = true ORDER BY finishing_type_id`
)

// readTx opens a read-only snapshot so multi-table reads see one consistent
// state of the catalog.
func (r *CatalogRepository) readTx(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
}

// LoadCatalog returns every active row a price calculation may touch.
func (r *CatalogRepository) LoadCatalog(ctx context.Context) (pricing.CatalogRows, error) {
	var rows pricing.CatalogRows

	tx, err := r.readTx(ctx)
	if err != nil {
		return rows, fmt.Errorf("begin catalog read: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	loads := []struct {
		name string
		dest any
		q    string
	}{
		{"sizes", &rows.Sizes, sizesQuery},
		{"paper_types", &rows.PaperTypes, paperTypesQuery},
		{"print_cost_tiers", &rows.PrintTiers, printTiersQuery},
		{"binding_types", &rows.BindingTypes, bindingTypesQuery},
		{"binding_costs", &rows.BindingCosts, bindingCostsQuery},
		{"finishing_types", &rows.FinishingTypes, finishingTypesQuery},
		{"finishing_costs", &rows.FinishingCosts, finishingCostsQuery},
	}
	for _, l := range loads {
		if err := tx.SelectContext(ctx, l.dest, l.q); err != nil {
			return rows, fmt.Errorf("load %s: %w", l.name, err)
		}
	}
	return rows, tx.Commit()
}

// LoadPriceSources returns the active sizes and paper costs the precomputed
// price table is derived from.
func (r *CatalogRepository) LoadPriceSources(ctx context.Context) ([]models.Size, []models.PaperCost, error) {
	tx, err := r.readTx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("begin price source read: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var sizes []models.Size
	if err := tx.SelectContext(ctx, &sizes, sizesQuery); err != nil {
		return nil, nil, fmt.Errorf("load sizes: %w", err)
	}
	var papers []models.PaperCost
	if err := tx.SelectContext(ctx, &papers, paperCostsQuery); err != nil {
		return nil, nil, fmt.Errorf("load paper_costs: %w", err)
	}
	return sizes, papers, tx.Commit()
}
