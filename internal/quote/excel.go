package quote

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Quote"

// Excel renders q as a single-sheet workbook. Amounts are written as rounded numbers
// with a currency format so the sheet stays usable for further math.
func Excel(q Quote) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	if err := f.SetColWidth(sheetName, "A", "A", 32); err != nil {
		return nil, fmt.Errorf("set col width A: %w", err)
	}
	if err := f.SetColWidth(sheetName, "B", "B", 24); err != nil {
		return nil, fmt.Errorf("set col width B: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}
	headingStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}})
	if err != nil {
		return nil, fmt.Errorf("create heading style: %w", err)
	}
	// Built-in number format 8: $#,##0.00 with negatives in red.
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 8, Font: &excelize.Font{Bold: true, Size: 12}})
	if err != nil {
		return nil, fmt.Errorf("create money style: %w", err)
	}

	// Customer-entered text is the only input that could smuggle a formula.
	q.Contact.Name = sanitizeExcelCell(q.Contact.Name)
	q.Contact.Phone = sanitizeExcelCell(q.Contact.Phone)
	q.Contact.Email = sanitizeExcelCell(q.Contact.Email)
	q.MaterialName = sanitizeExcelCell(q.MaterialName)

	w := &sheetWriter{f: f, row: 1}

	w.set("Print Quote", "")
	w.style(titleStyle)
	w.set("Quote #", q.Number)
	w.set("Date", q.Date.Format(DateLayout))
	w.row++

	if !q.Contact.IsEmpty() {
		w.set("Customer Information", "")
		w.style(headingStyle)
		for _, line := range []Line{
			{Label: "Name", Value: q.Contact.Name},
			{Label: "Phone", Value: q.Contact.Phone},
			{Label: "Email", Value: q.Contact.Email},
		} {
			if line.Value != "" {
				w.set(line.Label, line.Value)
			}
		}
		w.row++
	}

	for _, section := range Sections(q) {
		w.set(section.Title, "")
		w.style(headingStyle)
		for _, line := range section.Lines {
			w.set(line.Label, line.Value)
		}
		w.row++
	}

	total, _ := RoundCents(q.Total()).Float64()
	w.setValue("Total Amount", total)
	w.style(moneyStyle)
	w.row++

	w.set("Terms & Conditions", "")
	w.style(headingStyle)
	for _, term := range q.Terms {
		w.set(term, "")
	}

	if w.err != nil {
		return nil, w.err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sheetWriter appends label/value rows in columns A and B, keeping the first error.
type sheetWriter struct {
	f   *excelize.File
	row int
	err error
}

func (w *sheetWriter) set(label, value string) {
	w.setValue(label, value)
}

func (w *sheetWriter) setValue(label string, value any) {
	if w.err != nil {
		return
	}
	if err := w.f.SetCellValue(sheetName, fmt.Sprintf("A%d", w.row), label); err != nil {
		w.err = fmt.Errorf("set label row %d: %w", w.row, err)
		return
	}
	if value != "" {
		if err := w.f.SetCellValue(sheetName, fmt.Sprintf("B%d", w.row), value); err != nil {
			w.err = fmt.Errorf("set value row %d: %w", w.row, err)
			return
		}
	}
	w.row++
}

// style applies styleID to the row written last.
func (w *sheetWriter) style(styleID int) {
	if w.err != nil {
		return
	}
	r := w.row - 1
	if err := w.f.SetCellStyle(sheetName, fmt.Sprintf("A%d", r), fmt.Sprintf("B%d", r), styleID); err != nil {
		w.err = fmt.Errorf("set style row %d: %w", r, err)
	}
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}
