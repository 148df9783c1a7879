package pricing

// Mode names the active pricing path.
type Mode string

const (
	ModeLinear    Mode = "linear"
	ModeBlueprint Mode = "blueprint"
)

// Job is a priced unit of work. Exactly one of Linear or Blueprint.
type Job interface {
	Mode() Mode
	sealed()
}

// Linear is an area-priced job with a resolved material rate (cost per sq ft).
type Linear struct {
	Dimensions Dimensions
	Rate       float64
	Options    PrintOptions
}

// Blueprint is a page/binding priced job.
type Blueprint struct {
	Options BlueprintOptions
}

func (Linear) Mode() Mode    { return ModeLinear }
func (Blueprint) Mode() Mode { return ModeBlueprint }

func (Linear) sealed()    {}
func (Blueprint) sealed() {}

// Breakdown contains the line items of an estimate. Fields that do not apply to the
// job's mode stay zero.
type Breakdown struct {
	Area          float64 `json:"area"`
	BasePrice     float64 `json:"basePrice"`
	RushFee       float64 `json:"rushFee"`
	GrommetsCost  float64 `json:"grommetsCost"`
	MountingCost  float64 `json:"mountingCost"`
	TotalPages    int     `json:"totalPages"`
	TotalBindings int     `json:"totalBindings"`
	PagesCost     float64 `json:"pagesCost"`
	BindingsCost  float64 `json:"bindingsCost"`
}

// Totals contains roll-up values. Total is always Subtotal + Fees.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Fees     float64 `json:"fees"`
	Total    float64 `json:"total"`
}

// Result groups the full pricing output.
type Result struct {
	Mode      Mode      `json:"mode"`
	Breakdown Breakdown `json:"breakdown"`
	Totals    Totals    `json:"totals"`
}

// Estimate normalizes the job's inputs and prices it. A nil job prices to zero.
func Estimate(job Job) Result {
	switch j := job.(type) {
	case Linear:
		return estimateLinear(j)
	case *Linear:
		if j != nil {
			return estimateLinear(*j)
		}
	case Blueprint:
		return estimateBlueprint(j)
	case *Blueprint:
		if j != nil {
			return estimateBlueprint(*j)
		}
	}
	return Result{}
}

func estimateLinear(j Linear) Result {
	d := j.Dimensions.Normalized()
	rate := NormalizeAmount(j.Rate)
	opts := j.Options.Normalized()

	area := Area(d)
	base := area * rate

	var b Breakdown
	b.Area = area
	b.BasePrice = base
	if opts.Rush {
		b.RushFee = base * RushSurchargeRate
	}
	if opts.Grommets {
		b.GrommetsCost = float64(opts.GrommetQuantity) * GrommetPrice
	}
	if opts.Mounting {
		b.MountingCost = area * MountingPricePerSqFt
	}

	total := finiteOrZero(Price(d, rate, opts))
	return Result{
		Mode:      ModeLinear,
		Breakdown: b,
		Totals: Totals{
			Subtotal: base + b.GrommetsCost + b.MountingCost,
			Fees:     b.RushFee,
			Total:    total,
		},
	}
}

func estimateBlueprint(j Blueprint) Result {
	o := j.Options.Normalized()

	b := Breakdown{
		TotalPages:    o.TotalPages(),
		TotalBindings: o.TotalBindings(),
	}
	b.PagesCost = float64(b.TotalPages) * o.PagePrice
	b.BindingsCost = float64(b.TotalBindings) * o.BindingPrice

	total := finiteOrZero(BlueprintCost(o))
	return Result{
		Mode:      ModeBlueprint,
		Breakdown: b,
		Totals: Totals{
			Subtotal: total,
			Total:    total,
		},
	}
}
