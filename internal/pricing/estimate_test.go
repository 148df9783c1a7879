package pricing

import (
	"math"
	"testing"
)

func TestEstimate_LinearBreakdown(t *testing.T) {
	result := Estimate(Linear{
		Dimensions: banner,
		Rate:       3.5,
		Options:    PrintOptions{Rush: true, Mounting: true, Grommets: true, GrommetQuantity: 4},
	})

	if result.Mode != ModeLinear {
		t.Fatalf("mode = %q, want %q", result.Mode, ModeLinear)
	}
	nearlyEqual(t, "area", result.Breakdown.Area, 32)
	nearlyEqual(t, "basePrice", result.Breakdown.BasePrice, 112)
	nearlyEqual(t, "rushFee", result.Breakdown.RushFee, 28)
	nearlyEqual(t, "grommetsCost", result.Breakdown.GrommetsCost, 4)
	nearlyEqual(t, "mountingCost", result.Breakdown.MountingCost, 96)
	nearlyEqual(t, "subtotal", result.Totals.Subtotal, 212)
	nearlyEqual(t, "fees", result.Totals.Fees, 28)
	nearlyEqual(t, "total", result.Totals.Total, 240)
}

func TestEstimate_BlueprintIgnoresLinearPath(t *testing.T) {
	result := Estimate(Blueprint{Options: BlueprintOptions{
		PagesPerSet: 10, NumberOfSets: 3, BindingsPerSet: 1, PagePrice: 0.75, BindingPrice: 2,
	}})

	if result.Mode != ModeBlueprint {
		t.Fatalf("mode = %q, want %q", result.Mode, ModeBlueprint)
	}
	if result.Breakdown.TotalPages != 30 || result.Breakdown.TotalBindings != 3 {
		t.Fatalf("unexpected counts: %+v", result.Breakdown)
	}
	nearlyEqual(t, "pagesCost", result.Breakdown.PagesCost, 22.5)
	nearlyEqual(t, "bindingsCost", result.Breakdown.BindingsCost, 6)
	nearlyEqual(t, "area", result.Breakdown.Area, 0)
	nearlyEqual(t, "basePrice", result.Breakdown.BasePrice, 0)
	nearlyEqual(t, "fees", result.Totals.Fees, 0)
	nearlyEqual(t, "total", result.Totals.Total, 28.5)
}

func TestEstimate_InvalidInputsCoerceToZero(t *testing.T) {
	tests := []struct {
		name string
		job  Job
	}{
		{name: "negative width", job: Linear{Dimensions: Dimensions{Width: -48, Height: 96}, Rate: 3.5}},
		{name: "nan height", job: Linear{Dimensions: Dimensions{Width: 48, Height: math.NaN()}, Rate: 3.5}},
		{name: "negative rate", job: Linear{Dimensions: banner, Rate: -3.5}},
		{name: "infinite rate", job: Linear{Dimensions: banner, Rate: math.Inf(1)}},
		{name: "nan rate with rush", job: Linear{Dimensions: banner, Rate: math.NaN(), Options: PrintOptions{Rush: true}}},
		{name: "negative grommets", job: Linear{Options: PrintOptions{Grommets: true, GrommetQuantity: -4}}},
		{name: "negative sets", job: Blueprint{Options: BlueprintOptions{PagesPerSet: 10, NumberOfSets: -3, PagePrice: 0.75}}},
		{name: "nan page price", job: Blueprint{Options: BlueprintOptions{PagesPerSet: 10, NumberOfSets: 3, PagePrice: math.NaN()}}},
		{name: "nil job", job: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Estimate(tt.job)
			if math.IsNaN(result.Totals.Total) || result.Totals.Total != 0 {
				t.Fatalf("total = %v, want 0", result.Totals.Total)
			}
		})
	}
}

func TestEstimate_TotalIsSubtotalPlusFees(t *testing.T) {
	jobs := []Job{
		Linear{Dimensions: Dimensions{Width: 24, Height: 36}, Rate: 5, Options: PrintOptions{Rush: true}},
		Linear{Dimensions: Dimensions{Width: 18.5, Height: 27}, Rate: 2.5, Options: PrintOptions{Rush: true, Mounting: true, Grommets: true, GrommetQuantity: 6}},
		&Linear{Dimensions: Dimensions{Width: 60, Height: 40}, Rate: 4.5},
		&Blueprint{Options: BlueprintOptions{PagesPerSet: 4, NumberOfSets: 5, BindingsPerSet: 1, PagePrice: 0.75, BindingPrice: 2}},
	}

	for _, job := range jobs {
		r := Estimate(job)
		nearlyEqual(t, string(job.Mode())+" total", r.Totals.Total, r.Totals.Subtotal+r.Totals.Fees)
	}
}

func TestEstimate_GrommetQuantityDroppedWhenDisabled(t *testing.T) {
	r := Estimate(Linear{Dimensions: banner, Rate: 1, Options: PrintOptions{GrommetQuantity: 10}})
	nearlyEqual(t, "grommetsCost", r.Breakdown.GrommetsCost, 0)
	nearlyEqual(t, "total", r.Totals.Total, 32)
}

func TestFeetToInches(t *testing.T) {
	if got, ok := FeetToInches(4); !ok || got != 48 {
		t.Fatalf("FeetToInches(4) = %v, %v; want 48, true", got, ok)
	}
	if got, ok := FeetToInches(2.5); !ok || got != 30 {
		t.Fatalf("FeetToInches(2.5) = %v, %v; want 30, true", got, ok)
	}
	for _, bad := range []float64{-1, math.NaN(), math.Inf(1)} {
		if _, ok := FeetToInches(bad); ok {
			t.Fatalf("FeetToInches(%v) reported ok", bad)
		}
	}
}

func TestNormalizedOptions(t *testing.T) {
	o := PrintOptions{Grommets: false, GrommetQuantity: 7}.Normalized()
	if o.GrommetQuantity != 0 {
		t.Fatalf("GrommetQuantity = %d, want 0", o.GrommetQuantity)
	}

	b := BlueprintOptions{PagesPerSet: -1, NumberOfSets: 2, BindingsPerSet: -5, PagePrice: -1, BindingPrice: math.NaN()}.Normalized()
	if b != (BlueprintOptions{NumberOfSets: 2}) {
		t.Fatalf("unexpected normalized blueprint options: %+v", b)
	}
}

func TestEstimate_HugeCountsStayFiniteAndNonNegative(t *testing.T) {
	r := Estimate(Blueprint{Options: BlueprintOptions{PagesPerSet: 4e9, NumberOfSets: 4e9, BindingsPerSet: 4e9, PagePrice: 0.75, BindingPrice: 2}})

	if r.Breakdown.TotalPages != MaxCount*MaxCount || r.Breakdown.TotalBindings != MaxCount*MaxCount {
		t.Fatalf("counts = %d pages, %d bindings; want both %d", r.Breakdown.TotalPages, r.Breakdown.TotalBindings, MaxCount*MaxCount)
	}
	if r.Totals.Total <= 0 || math.IsInf(r.Totals.Total, 0) {
		t.Fatalf("total = %v, want finite and positive", r.Totals.Total)
	}
	nearlyEqual(t, "total", r.Totals.Total, float64(MaxCount*MaxCount)*2.75)
}

func TestTotalPages_ClampsRawOptions(t *testing.T) {
	o := BlueprintOptions{PagesPerSet: math.MaxInt, NumberOfSets: math.MaxInt, BindingsPerSet: -3}
	if got := o.TotalPages(); got != MaxCount*MaxCount {
		t.Fatalf("TotalPages = %d, want %d", got, MaxCount*MaxCount)
	}
	if got := o.TotalBindings(); got != 0 {
		t.Fatalf("TotalBindings = %d, want 0", got)
	}
}

func TestEstimate_ExtremeDimensions(t *testing.T) {
	tests := []struct {
		name string
		job  Linear
		want float64
	}{
		{name: "huge dimensions zero rate", job: Linear{Dimensions: Dimensions{Width: 1e300, Height: 1e300}, Rate: 0}, want: 0},
		{name: "huge dimensions with mounting", job: Linear{Dimensions: Dimensions{Width: 1e300, Height: 1e300}, Rate: 0, Options: PrintOptions{Mounting: true}}, want: MaxAmount * MaxAmount / 144 * MountingPricePerSqFt},
		{name: "huge rate", job: Linear{Dimensions: banner, Rate: 1e300, Options: PrintOptions{Rush: true}}, want: 32 * MaxAmount * 1.25},
		{name: "max float everywhere", job: Linear{Dimensions: Dimensions{Width: math.MaxFloat64, Height: math.MaxFloat64}, Rate: math.MaxFloat64}, want: MaxAmount * MaxAmount / 144 * MaxAmount},
		{name: "subnormal dimensions", job: Linear{Dimensions: Dimensions{Width: 5e-324, Height: 5e-324}, Rate: 3.5}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Estimate(tt.job)
			for name, v := range map[string]float64{
				"area":     r.Breakdown.Area,
				"subtotal": r.Totals.Subtotal,
				"fees":     r.Totals.Fees,
				"total":    r.Totals.Total,
			} {
				if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
					t.Fatalf("%s = %v, want finite and non-negative", name, v)
				}
			}
			if math.Abs(r.Totals.Total-tt.want) > tt.want*1e-12 {
				t.Fatalf("total = %v, want %v", r.Totals.Total, tt.want)
			}
		})
	}
}

func TestNormalizeAmount_ClampsLargeValues(t *testing.T) {
	for in, want := range map[float64]float64{
		1e300:            MaxAmount,
		MaxAmount + 1:    MaxAmount,
		MaxAmount:        MaxAmount,
		42.5:             42.5,
		5e-324:           5e-324,
		math.Inf(1):      0,
		-math.MaxFloat64: 0,
	} {
		if got := NormalizeAmount(in); got != want {
			t.Fatalf("NormalizeAmount(%v) = %v, want %v", in, got, want)
		}
	}
	if got := NormalizeCount(math.MaxInt); got != MaxCount {
		t.Fatalf("NormalizeCount(MaxInt) = %d, want %d", got, MaxCount)
	}
}
