package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Simplici0/printquote/internal/catalog"
	"github.com/Simplici0/printquote/internal/quote"
	"github.com/Simplici0/printquote/internal/session"
)

type quoteFlags struct {
	linear    linearFlags
	blueprint blueprintFlags

	useBlueprint bool
	name         string
	phone        string
	email        string
	out          string
}

func (f *quoteFlags) form() session.Form {
	form := session.Form{
		Contact:          session.Contact{Name: f.name, Phone: f.phone, Email: f.email},
		Dimensions:       f.linear.dimensions(),
		MaterialID:       f.linear.material,
		Options:          f.linear.options(),
		BlueprintEnabled: f.useBlueprint,
		PagesPerSet:      intOrZero(f.blueprint.pages),
		NumberOfSets:     intOrZero(f.blueprint.sets),
		BindingsPerSet:   intOrZero(f.blueprint.bindings),
	}
	return form
}

// catalog returns the stock catalog, or a one-off material when --rate is set.
func (f *quoteFlags) catalog() (catalog.Catalog, session.Form) {
	form := f.form()
	if f.linear.rate == "" {
		return catalog.New(catalog.Defaults()), form
	}
	form.MaterialID = "custom"
	return catalog.New([]catalog.Material{{ID: "custom", Name: "Custom", Price: floatOrZero(f.linear.rate)}}), form
}

func newQuoteCmd() *cobra.Command {
	var flags quoteFlags
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Write a customer quote as text, PDF or Excel",
		Long: `Write a customer quote. The format follows the --out extension:
.pdf, .xlsx, or .txt. Without --out the text quote is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, form := flags.catalog()
			now := time.Now()
			number := quote.NewNumber(now, rand.New(rand.NewPCG(uint64(now.UnixNano()), 0)))

			q, err := quote.Build(form, cat, flags.blueprint.prices(), number, now)
			if err != nil {
				return err
			}

			if flags.out == "" || flags.out == "-" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), quote.Text(q))
				return err
			}

			body, err := render(q, flags.out)
			if err != nil {
				return err
			}
			if err := os.WriteFile(flags.out, body, 0o644); err != nil {
				return fmt.Errorf("write quote: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Quote %s written to %s (total %s)\n", q.Number, flags.out, quote.FormatUSD(q.Total()))
			return nil
		},
	}

	fs := cmd.Flags()
	flags.linear.register(fs)
	flags.blueprint.register(fs)
	fs.BoolVar(&flags.useBlueprint, "blueprint", false, "quote a blueprint job instead of a print")
	fs.StringVar(&flags.name, "name", "", "customer name")
	fs.StringVar(&flags.phone, "phone", "", "customer phone")
	fs.StringVar(&flags.email, "email", "", "customer email")
	fs.StringVarP(&flags.out, "out", "o", "", "output file (.pdf, .xlsx or .txt)")
	return cmd
}

func render(q quote.Quote, path string) ([]byte, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		return quote.PDF(q)
	case ".xlsx":
		return quote.Excel(q)
	case ".txt":
		return []byte(quote.Text(q)), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q: use .pdf, .xlsx or .txt", ext)
	}
}
