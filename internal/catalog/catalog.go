// Package catalog holds the caller-owned list of print materials and their rates.
// The pricing engine never reads a catalog; callers resolve a rate and pass it in.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/Simplici0/printquote/internal/pricing"
)

var (
	ErrNotFound        = errors.New("material not found")
	ErrInvalidMaterial = errors.New("invalid material")
)

// Material is a printable substrate priced per square foot.
type Material struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Validate reports whether m can be offered for pricing.
func (m Material) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidMaterial)
	}
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidMaterial)
	}
	if math.IsNaN(m.Price) || math.IsInf(m.Price, 0) || m.Price <= 0 {
		return fmt.Errorf("%w: price must be greater than 0", ErrInvalidMaterial)
	}
	if m.Price > pricing.MaxAmount {
		return fmt.Errorf("%w: price must not exceed %v", ErrInvalidMaterial, pricing.MaxAmount)
	}
	return nil
}

// Catalog is an ordered material list. The zero value is an empty catalog.
type Catalog struct {
	materials []Material
}

// New builds a catalog from materials, keeping the first entry for duplicate ids.
func New(materials []Material) Catalog {
	c := Catalog{materials: make([]Material, 0, len(materials))}
	for _, m := range materials {
		if _, ok := c.Find(m.ID); ok {
			continue
		}
		c.materials = append(c.materials, m)
	}
	return c
}

// Defaults returns the stock materials offered to a fresh session.
func Defaults() []Material {
	return []Material{
		{ID: "vinyl", Name: "Vinyl Banner", Price: 3.5},
		{ID: "canvas", Name: "Canvas", Price: 5.0},
		{ID: "paper", Name: "Photo Paper", Price: 2.5},
		{ID: "fabric", Name: "Fabric", Price: 4.5},
	}
}

// Materials returns a copy of the catalog entries in order.
func (c Catalog) Materials() []Material {
	out := make([]Material, len(c.materials))
	copy(out, c.materials)
	return out
}

// First returns the first material, used as the default selection.
func (c Catalog) First() (Material, bool) {
	if len(c.materials) == 0 {
		return Material{}, false
	}
	return c.materials[0], true
}

func (c Catalog) Find(id string) (Material, bool) {
	for _, m := range c.materials {
		if m.ID == id {
			return m, true
		}
	}
	return Material{}, false
}

// Rate returns the per-square-foot price for id, or 0 when id is unknown.
func (c Catalog) Rate(id string) float64 {
	m, ok := c.Find(id)
	if !ok {
		return 0
	}
	return m.Price
}

// Upsert replaces the material with the same id or appends it.
func (c Catalog) Upsert(m Material) (Catalog, error) {
	if err := m.Validate(); err != nil {
		return c, err
	}
	out := c.Materials()
	for i := range out {
		if out[i].ID == m.ID {
			out[i] = m
			return Catalog{materials: out}, nil
		}
	}
	return Catalog{materials: append(out, m)}, nil
}

// Remove drops the material with id.
func (c Catalog) Remove(id string) (Catalog, error) {
	out := make([]Material, 0, len(c.materials))
	found := false
	for _, m := range c.materials {
		if m.ID == id {
			found = true
			continue
		}
		out = append(out, m)
	}
	if !found {
		return c, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return Catalog{materials: out}, nil
}

// NewID derives a slug id from a display name, e.g. "Photo Paper" -> "photo-paper".
func NewID(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
