package quote

import (
	"fmt"
	"strconv"
)

// Line is one label/value row of a quote section.
type Line struct {
	Label string
	Value string
}

// Section is a titled group of lines shared by every renderer.
type Section struct {
	Title string
	Lines []Line
}

// Sections lists the job details and price breakdown for q's mode.
func Sections(q Quote) []Section {
	b := q.Result.Breakdown

	if q.IsBlueprint() {
		return []Section{
			{
				Title: "Blueprint Details",
				Lines: []Line{
					{Label: "Pages per Set", Value: strconv.Itoa(q.Blueprint.PagesPerSet)},
					{Label: "Number of Sets", Value: strconv.Itoa(q.Blueprint.NumberOfSets)},
					{Label: "Total Pages", Value: strconv.Itoa(b.TotalPages)},
					{Label: "Total Bindings", Value: strconv.Itoa(b.TotalBindings)},
				},
			},
			{
				Title: "Price Breakdown",
				Lines: []Line{
					{Label: fmt.Sprintf("Pages (%d × %s)", b.TotalPages, FormatUSD(q.Blueprint.PagePrice)), Value: FormatUSD(b.PagesCost)},
					{Label: fmt.Sprintf("Bindings (%d × %s)", b.TotalBindings, FormatUSD(q.Blueprint.BindingPrice)), Value: FormatUSD(b.BindingsCost)},
				},
			},
		}
	}

	details := []Line{
		{Label: "Dimensions", Value: FormatInches(q.Dimensions.Width) + " × " + FormatInches(q.Dimensions.Height)},
		{Label: "Total Area", Value: FormatArea(b.Area)},
		{Label: "Material", Value: q.MaterialName},
	}
	if q.Options.Mounting {
		details = append(details, Line{Label: "Mounting", Value: "Included"})
	}
	if q.Options.Grommets {
		details = append(details, Line{Label: "Grommets", Value: fmt.Sprintf("%d pieces", q.Options.GrommetQuantity)})
	}

	breakdown := []Line{{Label: "Print", Value: FormatUSD(b.BasePrice)}}
	if q.Options.Rush {
		breakdown = append(breakdown, Line{Label: "Rush Order (25%)", Value: "+" + FormatUSD(b.RushFee)})
	}
	if q.Options.Mounting {
		breakdown = append(breakdown, Line{Label: "Mounting", Value: "+" + FormatUSD(b.MountingCost)})
	}
	if q.Options.Grommets {
		breakdown = append(breakdown, Line{Label: "Grommets", Value: "+" + FormatUSD(b.GrommetsCost)})
	}

	return []Section{
		{Title: "Print Details", Lines: details},
		{Title: "Price Breakdown", Lines: breakdown},
	}
}
