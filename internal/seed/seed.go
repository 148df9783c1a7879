package seed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Simplici0/printquote/internal/catalog"
	"github.com/Simplici0/printquote/internal/session"
)

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
}

// Run fills a fresh session database with the stock materials, the default blueprint
// prices and an empty form. It is idempotent.
func Run(ctx context.Context, db *sql.DB) (Stats, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	if err := ensureMaterials(ctx, tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := ensureBlueprintPrices(ctx, tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := ensureFormState(ctx, tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func ensureMaterials(ctx context.Context, tx *sql.Tx, stats *Stats) error {
	for i, m := range catalog.Defaults() {
		var exists bool
		if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM materials WHERE id = ? LIMIT 1)`, m.ID).Scan(&exists); err != nil {
			return fmt.Errorf("check material %s existence: %w", m.ID, err)
		}
		if exists {
			continue
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO materials (id, name, price, sort_order)
			VALUES (?, ?, ?, ?)
		`, m.ID, m.Name, m.Price, i+1); err != nil {
			return fmt.Errorf("insert material %s: %w", m.ID, err)
		}
		stats.Inserts++
	}
	return nil
}

func ensureBlueprintPrices(ctx context.Context, tx *sql.Tx, stats *Stats) error {
	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM blueprint_prices WHERE id = 1)`).Scan(&exists); err != nil {
		return fmt.Errorf("check blueprint prices existence: %w", err)
	}
	if exists {
		return nil
	}

	p := session.DefaultPrices()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO blueprint_prices (id, page_price, binding_price)
		VALUES (1, ?, ?)
	`, p.PagePrice, p.BindingPrice); err != nil {
		return fmt.Errorf("insert blueprint prices singleton: %w", err)
	}
	stats.Inserts++
	return nil
}

func ensureFormState(ctx context.Context, tx *sql.Tx, stats *Stats) error {
	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM form_state WHERE id = 1)`).Scan(&exists); err != nil {
		return fmt.Errorf("check form state existence: %w", err)
	}
	if exists {
		return nil
	}

	var materialID string
	err := tx.QueryRowContext(ctx, `SELECT id FROM materials ORDER BY sort_order, id LIMIT 1`).Scan(&materialID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("query first material: %w", err)
	}

	f := session.DefaultForm(materialID)
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO form_state (id, material_id, pages_per_set, number_of_sets, bindings_per_set)
		VALUES (1, ?, ?, ?, ?)
	`, f.MaterialID, f.PagesPerSet, f.NumberOfSets, f.BindingsPerSet); err != nil {
		return fmt.Errorf("insert form state singleton: %w", err)
	}
	stats.Inserts++
	return nil
}
