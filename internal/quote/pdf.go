package quote

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	primaryColor = &props.Color{Red: 31, Green: 64, Blue: 104}
	mutedColor   = &props.Color{Red: 110, Green: 110, Blue: 110}
	panelColor   = &props.Color{Red: 240, Green: 242, Blue: 245}
)

// The built-in PDF fonts are cp1252; keep generated text within it.
var pdfText = strings.NewReplacer("″", "\"", "×", "x")

// PDF renders q as a printable single-page Letter document.
func PDF(q Quote) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(20).
		WithTopMargin(20).
		WithRightMargin(20).
		Build()

	m := maroto.New(cfg)

	addPDFHeader(m, q)
	addPDFContact(m, q)
	for _, section := range Sections(q) {
		addPDFSection(m, section)
	}
	if q.Options.Rush && !q.IsBlueprint() {
		addPDFRushNotice(m)
	}
	addPDFTotal(m, q)
	addPDFTerms(m, q)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate quote pdf: %w", err)
	}

	return doc.GetBytes(), nil
}

func addPDFHeader(m core.Maroto, q Quote) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New("Print Quote", props.Text{Size: 18, Style: fontstyle.Bold, Color: primaryColor}),
			),
			col.New(6).Add(
				text.New("Wide Format Printing", props.Text{Size: 13, Style: fontstyle.Bold, Align: align.Right, Color: primaryColor}),
			),
		),
		row.New(6).Add(
			col.New(6).Add(
				text.New("Quote #: "+q.Number, props.Text{Size: 9, Color: mutedColor}),
			),
			col.New(6).Add(
				text.New("Professional Print Services", props.Text{Size: 9, Align: align.Right, Color: mutedColor}),
			),
		),
		row.New(6).Add(
			col.New(12).Add(
				text.New("Date: "+q.Date.Format(DateLayout), props.Text{Size: 9, Color: mutedColor}),
			),
		),
		row.New(6),
	)
}

func addPDFContact(m core.Maroto, q Quote) {
	if q.Contact.IsEmpty() {
		return
	}

	addPDFTitle(m, "Customer Information")
	for _, line := range []Line{
		{Label: "Name", Value: q.Contact.Name},
		{Label: "Phone", Value: q.Contact.Phone},
		{Label: "Email", Value: q.Contact.Email},
	} {
		if line.Value != "" {
			addPDFLine(m, line)
		}
	}
	m.AddRows(row.New(4))
}

func addPDFSection(m core.Maroto, s Section) {
	addPDFTitle(m, s.Title)
	for _, line := range s.Lines {
		addPDFLine(m, line)
	}
	m.AddRows(row.New(4))
}

func addPDFTitle(m core.Maroto, title string) {
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(title, props.Text{Size: 12, Style: fontstyle.Bold, Color: primaryColor}),
			),
		),
	)
}

func addPDFLine(m core.Maroto, line Line) {
	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(
				text.New(pdfText.Replace(line.Label), props.Text{Size: 10, Color: mutedColor}),
			),
			col.New(6).Add(
				text.New(pdfText.Replace(line.Value), props.Text{Size: 10, Align: align.Right}),
			),
		),
	)
}

func addPDFRushNotice(m core.Maroto) {
	panel := &props.Cell{BackgroundColor: panelColor}
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(
				text.New("Rush Order Requested", props.Text{Size: 10, Style: fontstyle.Bold, Left: 2, Top: 1}),
			).WithStyle(panel),
		),
		row.New(7).Add(
			col.New(12).Add(
				text.New("This order will be processed with priority (+25% fee applied)", props.Text{Size: 9, Left: 2, Top: 1}),
			).WithStyle(panel),
		),
		row.New(4),
	)
}

func addPDFTotal(m core.Maroto, q Quote) {
	m.AddRows(
		row.New(12).Add(
			col.New(6).Add(
				text.New("Total Amount", props.Text{Size: 14, Style: fontstyle.Bold, Top: 3}),
			),
			col.New(6).Add(
				text.New(FormatUSD(q.Total()), props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Right, Color: primaryColor, Top: 2}),
			),
		),
		row.New(6),
	)
}

func addPDFTerms(m core.Maroto, q Quote) {
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(text.New("Terms & Conditions:", props.Text{Size: 9, Color: mutedColor})),
		),
	)
	for _, term := range q.Terms {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(text.New("- "+term, props.Text{Size: 9, Color: mutedColor, Left: 3})),
			),
		)
	}
}
