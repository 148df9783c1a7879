// Package store keeps the session's editable state in the in-memory SQLite database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Simplici0/printquote/internal/catalog"
	"github.com/Simplici0/printquote/internal/session"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListMaterials(ctx context.Context) ([]catalog.Material, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, price
		FROM materials
		ORDER BY sort_order, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query materials: %w", err)
	}
	defer rows.Close()

	materials := make([]catalog.Material, 0)
	for rows.Next() {
		var m catalog.Material
		if err := rows.Scan(&m.ID, &m.Name, &m.Price); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		materials = append(materials, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate materials: %w", err)
	}

	return materials, nil
}

// Catalog loads the materials as a catalog.Catalog.
func (s *Store) Catalog(ctx context.Context) (catalog.Catalog, error) {
	materials, err := s.ListMaterials(ctx)
	if err != nil {
		return catalog.Catalog{}, err
	}
	return catalog.New(materials), nil
}

// SaveMaterial inserts m or updates the material with the same id, keeping its position.
func (s *Store) SaveMaterial(ctx context.Context, m catalog.Material) error {
	if err := m.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO materials (id, name, price, sort_order)
		VALUES (?, ?, ?, (SELECT COALESCE(MAX(sort_order), 0) + 1 FROM materials))
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			price = excluded.price,
			updated_at = CURRENT_TIMESTAMP
	`, m.ID, m.Name, m.Price)
	if err != nil {
		return fmt.Errorf("save material %s: %w", m.ID, err)
	}
	return nil
}

func (s *Store) DeleteMaterial(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM materials WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete material %s: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete material %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", catalog.ErrNotFound, id)
	}
	return nil
}

// ReplaceMaterials swaps the whole catalog for materials. Invalid entries are skipped,
// the way the material editor drops rows without a name or price. It returns the number
// of materials kept.
func (s *Store) ReplaceMaterials(ctx context.Context, materials []catalog.Material) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin replace materials: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM materials`); err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("clear materials: %w", err)
	}

	kept := 0
	for _, m := range catalog.New(materials).Materials() {
		if m.Validate() != nil {
			continue
		}
		kept++
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO materials (id, name, price, sort_order)
			VALUES (?, ?, ?, ?)
		`, m.ID, m.Name, m.Price, kept); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("insert material %s: %w", m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit replace materials: %w", err)
	}
	return kept, nil
}

func (s *Store) GetBlueprintPrices(ctx context.Context) (session.Prices, error) {
	var p session.Prices
	err := s.db.QueryRowContext(ctx, `
		SELECT page_price, binding_price
		FROM blueprint_prices
		WHERE id = 1
	`).Scan(&p.PagePrice, &p.BindingPrice)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return session.DefaultPrices(), nil
		}
		return session.Prices{}, fmt.Errorf("query blueprint_prices: %w", err)
	}
	return p, nil
}

// SetBlueprintPrices stores p after coercing invalid amounts to 0.
func (s *Store) SetBlueprintPrices(ctx context.Context, p session.Prices) error {
	p = p.Normalized()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO blueprint_prices (id, page_price, binding_price)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			page_price = excluded.page_price,
			binding_price = excluded.binding_price,
			updated_at = CURRENT_TIMESTAMP
	`, p.PagePrice, p.BindingPrice)
	if err != nil {
		return fmt.Errorf("update blueprint_prices: %w", err)
	}
	return nil
}
