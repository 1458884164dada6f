package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/GTDGit/print_api/internal/models"
)

// PrecomputedPriceRepository persists the derived price table and its version.
type PrecomputedPriceRepository struct {
	db *sqlx.DB
}

// NewPrecomputedPriceRepository creates a new PrecomputedPriceRepository.
func NewPrecomputedPriceRepository(db *sqlx.DB) *PrecomputedPriceRepository {
	return &PrecomputedPriceRepository{db: db}
}

// ReplaceAll swaps the whole table for entries in one transaction and bumps
// the cache version. Readers of the table see either the old or the new set.
func (r *PrecomputedPriceRepository) ReplaceAll(ctx context.Context, entries []models.PrecomputedPriceEntry, builtAt time.Time) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin replace: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	// Serializes concurrent rebuilds across instances.
	if _, err := tx.ExecContext(ctx, `SELECT version FROM price_cache_meta WHERE id = 1 FOR UPDATE`); err != nil {
		return 0, fmt.Errorf("lock cache meta: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM precomputed_prices`); err != nil {
		return 0, fmt.Errorf("clear precomputed_prices: %w", err)
	}

	const ins = `
        INSERT INTO precomputed_prices (
            size_id, size_code, paper_cost_id, paper_code, paper_weight, base_sheet_size,
            up_count, cost_per_sheet, margin_rate, sell_price_per_sheet, sell_price_per_copy
        ) VALUES (
            :size_id, :size_code, :paper_cost_id, :paper_code, :paper_weight, :base_sheet_size,
            :up_count, :cost_per_sheet, :margin_rate, :sell_price_per_sheet, :sell_price_per_copy
        )`
	stmt, err := tx.PrepareNamedContext(ctx, ins)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for i := range entries {
		if _, err := stmt.ExecContext(ctx, &entries[i]); err != nil {
			return 0, fmt.Errorf("insert %s/%s/%d: %w", entries[i].SizeCode, entries[i].PaperCode, entries[i].PaperWeight, err)
		}
	}

	const bump = `
        UPDATE price_cache_meta
        SET version = version + 1, built_at = $1, entry_count = $2
        WHERE id = 1
        RETURNING version`
	var version int64
	if err := tx.GetContext(ctx, &version, bump, builtAt, len(entries)); err != nil {
		return 0, fmt.Errorf("bump cache version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit replace: %w", err)
	}
	return version, nil
}

// LoadAll reads the persisted table together with its meta row.
func (r *PrecomputedPriceRepository) LoadAll(ctx context.Context) (models.PriceCacheMeta, []models.PrecomputedPriceEntry, error) {
	var meta models.PriceCacheMeta

	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return meta, nil, err
	}
	defer tx.Rollback() //nolint:errcheck

	if err := tx.GetContext(ctx, &meta, `SELECT version, built_at, entry_count FROM price_cache_meta WHERE id = 1`); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return meta, nil, nil
		}
		return meta, nil, fmt.Errorf("load cache meta: %w", err)
	}

	const q = `
        SELECT size_id, size_code, paper_cost_id, paper_code, paper_weight, base_sheet_size,
               up_count, cost_per_sheet, margin_rate, sell_price_per_sheet, sell_price_per_copy
        FROM precomputed_prices
        ORDER BY size_code, paper_code, paper_weight`
	var entries []models.PrecomputedPriceEntry
	if err := tx.SelectContext(ctx, &entries, q); err != nil {
		return meta, nil, fmt.Errorf("load precomputed_prices: %w", err)
	}
	return meta, entries, tx.Commit()
}
