package pricing

const (
	SquareInchesPerSquareFoot = 144.0
	InchesPerFoot             = 12.0

	RushSurchargeRate    = 0.25
	GrommetPrice         = 1.00
	MountingPricePerSqFt = 3.00
)

// Dimensions is a print size in inches. Zero means unset.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PrintOptions are the add-ons available for a linear (area-priced) job.
type PrintOptions struct {
	Rush            bool `json:"rush"`
	Grommets        bool `json:"grommets"`
	GrommetQuantity int  `json:"grommetQuantity"`
	Mounting        bool `json:"mounting"`
}

// BlueprintOptions holds flat per-page and per-binding pricing across a number of sets.
type BlueprintOptions struct {
	PagesPerSet    int     `json:"pagesPerSet"`
	NumberOfSets   int     `json:"numberOfSets"`
	BindingsPerSet int     `json:"bindingsPerSet"`
	PagePrice      float64 `json:"pagePrice"`
	BindingPrice   float64 `json:"bindingPrice"`
}

// Area converts the dimensions to square feet. No rounding is applied.
func Area(d Dimensions) float64 {
	return d.Width * d.Height / SquareInchesPerSquareFoot
}

// Price computes the total for a standard print job. The rush surcharge applies to the
// material cost only; grommets and mounting are added after it.
//
// Inputs are expected to be normalized already; see Dimensions.Normalized and friends.
func Price(d Dimensions, materialRate float64, opts PrintOptions) float64 {
	area := Area(d)
	basePrice := area * materialRate

	total := basePrice
	if opts.Rush {
		total = total * (1 + RushSurchargeRate)
	}

	grommetsCost := 0.0
	if opts.Grommets {
		grommetsCost = float64(opts.GrommetQuantity) * GrommetPrice
	}

	mountingCost := 0.0
	if opts.Mounting {
		mountingCost = area * MountingPricePerSqFt
	}

	return total + grommetsCost + mountingCost
}

// TotalPages is pagesPerSet * numberOfSets. Both counts are clamped to [0, MaxCount]
// first, so the product never overflows.
func (o BlueprintOptions) TotalPages() int {
	return NormalizeCount(o.PagesPerSet) * NormalizeCount(o.NumberOfSets)
}

// TotalBindings is bindingsPerSet * numberOfSets, clamped like TotalPages.
func (o BlueprintOptions) TotalBindings() int {
	return NormalizeCount(o.BindingsPerSet) * NormalizeCount(o.NumberOfSets)
}

// BlueprintCost computes the blueprint-mode total. Bindings are always counted per set.
func BlueprintCost(o BlueprintOptions) float64 {
	pagesCost := float64(o.TotalPages()) * o.PagePrice
	bindingsCost := float64(o.TotalBindings()) * o.BindingPrice
	return pagesCost + bindingsCost
}
