package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Simplici0/printquote/internal/catalog"
	"github.com/Simplici0/printquote/internal/pricing"
	"github.com/Simplici0/printquote/internal/quote"
	"github.com/Simplici0/printquote/internal/session"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "printquote",
		Short:        "Price wide-format and blueprint print jobs",
		SilenceUsage: true,
	}
	root.AddCommand(
		newPriceCmd(),
		newBlueprintCmd(),
		newMaterialsCmd(),
		newQuoteCmd(),
	)
	return root
}

// linearFlags are the inputs of a linear job. Numbers are read as strings so that
// malformed values price at 0 instead of failing flag parsing.
type linearFlags struct {
	width, height string
	rate          string
	material      string
	rush          bool
	grommets      string
	mounting      bool
}

func (f *linearFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.width, "width", "0", "width in inches")
	fs.StringVar(&f.height, "height", "0", "height in inches")
	fs.StringVar(&f.rate, "rate", "", "price per square foot (overrides --material)")
	fs.StringVar(&f.material, "material", "vinyl", "material id (see the materials command)")
	fs.BoolVar(&f.rush, "rush", false, "rush order (+25%)")
	fs.StringVar(&f.grommets, "grommets", "0", "number of grommets")
	fs.BoolVar(&f.mounting, "mounting", false, "add mounting")
}

func (f *linearFlags) dimensions() pricing.Dimensions {
	return pricing.Dimensions{Width: floatOrZero(f.width), Height: floatOrZero(f.height)}
}

func (f *linearFlags) options() pricing.PrintOptions {
	n := intOrZero(f.grommets)
	return pricing.PrintOptions{Rush: f.rush, Grommets: n > 0, GrommetQuantity: n, Mounting: f.mounting}
}

func (f *linearFlags) job(cat catalog.Catalog) pricing.Linear {
	rate := cat.Rate(f.material)
	if f.rate != "" {
		rate = floatOrZero(f.rate)
	}
	return pricing.Linear{Dimensions: f.dimensions(), Rate: rate, Options: f.options()}
}

type blueprintFlags struct {
	pages, sets, bindings   string
	pagePrice, bindingPrice string
}

func (f *blueprintFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.pages, "pages", "1", "pages per set")
	fs.StringVar(&f.sets, "sets", "1", "number of sets")
	fs.StringVar(&f.bindings, "bindings", "0", "bindings per set")
	fs.StringVar(&f.pagePrice, "page-price", strconv.FormatFloat(session.DefaultPagePrice, 'f', -1, 64), "price per page")
	fs.StringVar(&f.bindingPrice, "binding-price", strconv.FormatFloat(session.DefaultBindingPrice, 'f', -1, 64), "price per binding")
}

func (f *blueprintFlags) prices() session.Prices {
	return session.Prices{PagePrice: floatOrZero(f.pagePrice), BindingPrice: floatOrZero(f.bindingPrice)}
}

func (f *blueprintFlags) options() pricing.BlueprintOptions {
	p := f.prices()
	return pricing.BlueprintOptions{
		PagesPerSet:    intOrZero(f.pages),
		NumberOfSets:   intOrZero(f.sets),
		BindingsPerSet: intOrZero(f.bindings),
		PagePrice:      p.PagePrice,
		BindingPrice:   p.BindingPrice,
	}
}

func newPriceCmd() *cobra.Command {
	var flags linearFlags
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Price a banner or poster by size, material and options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := pricing.Estimate(flags.job(catalog.New(catalog.Defaults())))
			writeResult(cmd.OutOrStdout(), result)
			return nil
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func newBlueprintCmd() *cobra.Command {
	var flags blueprintFlags
	cmd := &cobra.Command{
		Use:   "blueprint",
		Short: "Price blueprint sets by pages and bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := pricing.Estimate(pricing.Blueprint{Options: flags.options()})
			writeResult(cmd.OutOrStdout(), result)
			return nil
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func newMaterialsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "materials",
		Short: "List the stock materials and their rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, m := range catalog.Defaults() {
				fmt.Fprintf(out, "%-8s %-14s %s/sq ft\n", m.ID, m.Name, quote.FormatUSD(m.Price))
			}
			return nil
		},
	}
}

func writeResult(w io.Writer, r pricing.Result) {
	b := r.Breakdown
	line := func(label, value string) { fmt.Fprintf(w, "%-10s %s\n", label+":", value) }

	if r.Mode == pricing.ModeBlueprint {
		line("Pages", strconv.Itoa(b.TotalPages))
		line("Bindings", strconv.Itoa(b.TotalBindings))
		line("Pages", quote.FormatUSD(b.PagesCost))
		line("Bindings", quote.FormatUSD(b.BindingsCost))
	} else {
		line("Area", quote.FormatArea(b.Area))
		line("Print", quote.FormatUSD(b.BasePrice))
		if b.RushFee > 0 {
			line("Rush", "+"+quote.FormatUSD(b.RushFee))
		}
		if b.MountingCost > 0 {
			line("Mounting", "+"+quote.FormatUSD(b.MountingCost))
		}
		if b.GrommetsCost > 0 {
			line("Grommets", "+"+quote.FormatUSD(b.GrommetsCost))
		}
	}
	line("Total", quote.FormatUSD(r.Totals.Total))
}

func floatOrZero(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

// intOrZero parses a count clamped to [0, pricing.MaxCount]. Out-of-range input clamps
// instead of failing.
func intOrZero(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return pricing.NormalizeCount(v)
}
