// Package quote turns a priced session form into a customer-facing quote document.
package quote

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/Simplici0/printquote/internal/catalog"
	"github.com/Simplici0/printquote/internal/pricing"
	"github.com/Simplici0/printquote/internal/session"
)

// ErrIncompleteJob blocks quote generation for a form with nothing to price.
var ErrIncompleteJob = errors.New("please enter dimensions or blueprint details to generate a quote")

const DateLayout = "01/02/2006"

// Terms are printed at the bottom of every quote.
var Terms = []string{
	"Quote valid for 30 days",
	"50% deposit required to begin production",
	"Final payment due upon completion",
	"Rush orders subject to availability",
}

type Quote struct {
	Number       string
	Date         time.Time
	Contact      session.Contact
	Mode         pricing.Mode
	Dimensions   pricing.Dimensions
	MaterialName string
	Options      pricing.PrintOptions
	Blueprint    pricing.BlueprintOptions
	Result       pricing.Result
	Terms        []string
}

// Total is the amount due.
func (q Quote) Total() float64 {
	return q.Result.Totals.Total
}

func (q Quote) IsBlueprint() bool {
	return q.Mode == pricing.ModeBlueprint
}

// Validate applies the generation gate: a linear job needs both dimensions, a blueprint
// job needs pages and sets.
func Validate(f session.Form) error {
	f = f.Normalized()
	if f.BlueprintEnabled {
		if f.PagesPerSet > 0 && f.NumberOfSets > 0 {
			return nil
		}
		return ErrIncompleteJob
	}
	if f.Dimensions.Width > 0 && f.Dimensions.Height > 0 {
		return nil
	}
	return ErrIncompleteJob
}

// NewNumber returns a quote number of the form QYYYYMMNNN.
func NewNumber(now time.Time, rng *rand.Rand) string {
	return fmt.Sprintf("Q%04d%02d%03d", now.Year(), int(now.Month()), rng.IntN(1000))
}

// Build prices f and assembles the quote. It fails only when Validate does.
func Build(f session.Form, cat catalog.Catalog, prices session.Prices, number string, now time.Time) (Quote, error) {
	if err := Validate(f); err != nil {
		return Quote{}, err
	}
	f = f.Normalized()
	prices = prices.Normalized()

	q := Quote{
		Number:  number,
		Date:    now,
		Contact: f.Contact,
		Mode:    f.Mode(),
		Result:  pricing.Estimate(f.Job(cat, prices)),
		Terms:   Terms,
	}

	if q.IsBlueprint() {
		q.Blueprint = f.BlueprintOptions(prices)
		return q, nil
	}

	q.Dimensions = f.Dimensions
	q.Options = f.Options
	if m, ok := cat.Find(f.MaterialID); ok {
		q.MaterialName = m.Name
	}
	return q, nil
}
