package pricing

import "math"

const (
	// MaxAmount bounds every dimension (inches) and unit price so that products of
	// two or three inputs stay finite.
	MaxAmount = 1e6
	// MaxCount bounds every count so that count products fit in a 32-bit int.
	MaxCount = 40000
)

// NormalizeAmount maps NaN, infinities and negative values to 0 and clamps large values
// to MaxAmount.
func NormalizeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return math.Min(v, MaxAmount)
}

// NormalizeCount maps negative counts to 0 and clamps large ones to MaxCount.
func NormalizeCount(n int) int {
	if n < 0 {
		return 0
	}
	return min(n, MaxCount)
}

// finiteOrZero guards computed totals.
func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func (d Dimensions) Normalized() Dimensions {
	return Dimensions{
		Width:  NormalizeAmount(d.Width),
		Height: NormalizeAmount(d.Height),
	}
}

// Normalized clamps the grommet count and drops it entirely when grommets are off.
func (o PrintOptions) Normalized() PrintOptions {
	o.GrommetQuantity = NormalizeCount(o.GrommetQuantity)
	if !o.Grommets {
		o.GrommetQuantity = 0
	}
	return o
}

func (o BlueprintOptions) Normalized() BlueprintOptions {
	return BlueprintOptions{
		PagesPerSet:    NormalizeCount(o.PagesPerSet),
		NumberOfSets:   NormalizeCount(o.NumberOfSets),
		BindingsPerSet: NormalizeCount(o.BindingsPerSet),
		PagePrice:      NormalizeAmount(o.PagePrice),
		BindingPrice:   NormalizeAmount(o.BindingPrice),
	}
}

// FeetToInches converts a length in feet. It reports false for NaN, infinite or
// negative input, leaving the caller's current value untouched.
func FeetToInches(feet float64) (float64, bool) {
	if math.IsNaN(feet) || math.IsInf(feet, 0) || feet < 0 {
		return 0, false
	}
	return feet * InchesPerFoot, true
}
