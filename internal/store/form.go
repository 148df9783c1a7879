package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Simplici0/printquote/internal/session"
)

// GetForm returns the session form, or the default form when none was saved yet.
func (s *Store) GetForm(ctx context.Context) (session.Form, error) {
	var f session.Form
	err := s.db.QueryRowContext(ctx, `
		SELECT
			contact_name, contact_phone, contact_email,
			width, height, material_id,
			rush, grommets, grommet_quantity, mounting,
			blueprint_enabled, pages_per_set, number_of_sets, bindings_per_set
		FROM form_state
		WHERE id = 1
	`).Scan(
		&f.Contact.Name, &f.Contact.Phone, &f.Contact.Email,
		&f.Dimensions.Width, &f.Dimensions.Height, &f.MaterialID,
		&f.Options.Rush, &f.Options.Grommets, &f.Options.GrommetQuantity, &f.Options.Mounting,
		&f.BlueprintEnabled, &f.PagesPerSet, &f.NumberOfSets, &f.BindingsPerSet,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return s.defaultForm(ctx)
		}
		return session.Form{}, fmt.Errorf("query form_state: %w", err)
	}
	return f, nil
}

// SaveForm stores f after normalization.
func (s *Store) SaveForm(ctx context.Context, f session.Form) error {
	f = f.Normalized()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO form_state (
			id,
			contact_name, contact_phone, contact_email,
			width, height, material_id,
			rush, grommets, grommet_quantity, mounting,
			blueprint_enabled, pages_per_set, number_of_sets, bindings_per_set
		) VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			contact_name = excluded.contact_name,
			contact_phone = excluded.contact_phone,
			contact_email = excluded.contact_email,
			width = excluded.width,
			height = excluded.height,
			material_id = excluded.material_id,
			rush = excluded.rush,
			grommets = excluded.grommets,
			grommet_quantity = excluded.grommet_quantity,
			mounting = excluded.mounting,
			blueprint_enabled = excluded.blueprint_enabled,
			pages_per_set = excluded.pages_per_set,
			number_of_sets = excluded.number_of_sets,
			bindings_per_set = excluded.bindings_per_set,
			updated_at = CURRENT_TIMESTAMP
	`,
		f.Contact.Name, f.Contact.Phone, f.Contact.Email,
		f.Dimensions.Width, f.Dimensions.Height, f.MaterialID,
		f.Options.Rush, f.Options.Grommets, f.Options.GrommetQuantity, f.Options.Mounting,
		f.BlueprintEnabled, f.PagesPerSet, f.NumberOfSets, f.BindingsPerSet,
	)
	if err != nil {
		return fmt.Errorf("save form_state: %w", err)
	}
	return nil
}

// ResetForm clears every input and restores the default blueprint prices. The material
// catalog is left as is; the first material becomes the selection.
func (s *Store) ResetForm(ctx context.Context) (session.Form, error) {
	f, err := s.defaultForm(ctx)
	if err != nil {
		return session.Form{}, err
	}
	if err := s.SaveForm(ctx, f); err != nil {
		return session.Form{}, err
	}
	if err := s.SetBlueprintPrices(ctx, session.DefaultPrices()); err != nil {
		return session.Form{}, err
	}
	return f, nil
}

func (s *Store) defaultForm(ctx context.Context) (session.Form, error) {
	cat, err := s.Catalog(ctx)
	if err != nil {
		return session.Form{}, err
	}
	first, _ := cat.First()
	return session.DefaultForm(first.ID), nil
}
