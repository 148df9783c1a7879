// Package session describes the state a single user edits while building an estimate:
// contact details, the linear job inputs, and the blueprint job inputs. Exactly one of
// the two jobs is priced, chosen by BlueprintEnabled.
package session

import (
	"github.com/Simplici0/printquote/internal/catalog"
	"github.com/Simplici0/printquote/internal/pricing"
)

const (
	DefaultPagePrice    = 0.75
	DefaultBindingPrice = 2.00
)

type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (c Contact) IsEmpty() bool {
	return c.Name == "" && c.Phone == "" && c.Email == ""
}

// Prices are the editable blueprint unit prices.
type Prices struct {
	PagePrice    float64 `json:"pagePrice"`
	BindingPrice float64 `json:"bindingPrice"`
}

func DefaultPrices() Prices {
	return Prices{PagePrice: DefaultPagePrice, BindingPrice: DefaultBindingPrice}
}

// Form is the full set of user inputs for one session.
type Form struct {
	Contact          Contact              `json:"contact"`
	Dimensions       pricing.Dimensions   `json:"dimensions"`
	MaterialID       string               `json:"materialId"`
	Options          pricing.PrintOptions `json:"options"`
	BlueprintEnabled bool                 `json:"blueprintEnabled"`
	PagesPerSet      int                  `json:"pagesPerSet"`
	NumberOfSets     int                  `json:"numberOfSets"`
	BindingsPerSet   int                  `json:"bindingsPerSet"`
}

// DefaultForm is the state after "clear all": zero dimensions, no options, one page in
// one set, and the given material selected.
func DefaultForm(materialID string) Form {
	return Form{
		MaterialID:   materialID,
		PagesPerSet:  1,
		NumberOfSets: 1,
	}
}

// Mode reports which pricing path the form selects.
func (f Form) Mode() pricing.Mode {
	if f.BlueprintEnabled {
		return pricing.ModeBlueprint
	}
	return pricing.ModeLinear
}

// BlueprintOptions combines the form's counts with the session's unit prices.
func (f Form) BlueprintOptions(p Prices) pricing.BlueprintOptions {
	return pricing.BlueprintOptions{
		PagesPerSet:    f.PagesPerSet,
		NumberOfSets:   f.NumberOfSets,
		BindingsPerSet: f.BindingsPerSet,
		PagePrice:      p.PagePrice,
		BindingPrice:   p.BindingPrice,
	}
}

// Job resolves the form into the pricing job for its active mode. The material rate is
// looked up in cat; an unknown material prices at 0.
func (f Form) Job(cat catalog.Catalog, p Prices) pricing.Job {
	if f.BlueprintEnabled {
		return pricing.Blueprint{Options: f.BlueprintOptions(p)}
	}
	return pricing.Linear{
		Dimensions: f.Dimensions,
		Rate:       cat.Rate(f.MaterialID),
		Options:    f.Options,
	}
}

// Normalized returns a copy with every numeric field coerced to a non-negative value.
func (f Form) Normalized() Form {
	f.Dimensions = f.Dimensions.Normalized()
	f.Options = f.Options.Normalized()
	f.PagesPerSet = pricing.NormalizeCount(f.PagesPerSet)
	f.NumberOfSets = pricing.NormalizeCount(f.NumberOfSets)
	f.BindingsPerSet = pricing.NormalizeCount(f.BindingsPerSet)
	return f
}

func (p Prices) Normalized() Prices {
	return Prices{
		PagePrice:    pricing.NormalizeAmount(p.PagePrice),
		BindingPrice: pricing.NormalizeAmount(p.BindingPrice),
	}
}
