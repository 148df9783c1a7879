package session

import (
	"math"
	"testing"

	"github.com/Simplici0/printquote/internal/catalog"
	"github.com/Simplici0/printquote/internal/pricing"
)

func TestJobLinearResolvesMaterialRate(t *testing.T) {
	f := DefaultForm("vinyl")
	f.Dimensions = pricing.Dimensions{Width: 48, Height: 96}

	job := f.Job(catalog.New(catalog.Defaults()), DefaultPrices())
	linear, ok := job.(pricing.Linear)
	if !ok {
		t.Fatalf("expected linear job, got %T", job)
	}
	if linear.Rate != 3.5 {
		t.Fatalf("rate = %v, want 3.5", linear.Rate)
	}
	if got := pricing.Estimate(job).Totals.Total; got != 112 {
		t.Fatalf("total = %v, want 112", got)
	}
}

func TestJobUnknownMaterialPricesAtZero(t *testing.T) {
	f := DefaultForm("gone")
	f.Dimensions = pricing.Dimensions{Width: 48, Height: 96}

	if got := pricing.Estimate(f.Job(catalog.New(catalog.Defaults()), DefaultPrices())).Totals.Total; got != 0 {
		t.Fatalf("total = %v, want 0", got)
	}
}

func TestJobBlueprintSupersedesLinear(t *testing.T) {
	f := DefaultForm("vinyl")
	f.Dimensions = pricing.Dimensions{Width: 48, Height: 96}
	f.Options = pricing.PrintOptions{Rush: true, Mounting: true}
	f.BlueprintEnabled = true
	f.PagesPerSet = 10
	f.NumberOfSets = 3
	f.BindingsPerSet = 1

	job := f.Job(catalog.New(catalog.Defaults()), DefaultPrices())
	if job.Mode() != pricing.ModeBlueprint || f.Mode() != pricing.ModeBlueprint {
		t.Fatalf("expected blueprint mode, got %q", job.Mode())
	}
	if got := pricing.Estimate(job).Totals.Total; math.Abs(got-28.5) > 1e-9 {
		t.Fatalf("total = %v, want 28.5", got)
	}
}

func TestNormalized(t *testing.T) {
	f := Form{
		Dimensions:     pricing.Dimensions{Width: -1, Height: math.NaN()},
		Options:        pricing.PrintOptions{GrommetQuantity: 5},
		PagesPerSet:    -2,
		NumberOfSets:   3,
		BindingsPerSet: -1,
	}.Normalized()

	if f.Dimensions != (pricing.Dimensions{}) || f.Options.GrommetQuantity != 0 || f.PagesPerSet != 0 || f.NumberOfSets != 3 || f.BindingsPerSet != 0 {
		t.Fatalf("unexpected normalized form: %+v", f)
	}

	p := Prices{PagePrice: -1, BindingPrice: math.Inf(1)}.Normalized()
	if p != (Prices{}) {
		t.Fatalf("unexpected normalized prices: %+v", p)
	}
}
