package quote

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestPDFLinearAndBlueprint(t *testing.T) {
	for name, q := range map[string]Quote{
		"linear":    buildQuote(t, linearForm()),
		"blueprint": buildQuote(t, blueprintForm()),
	} {
		result, err := PDF(q)
		if err != nil {
			t.Fatalf("%s: PDF() error = %v", name, err)
		}
		if len(result) < 5 || string(result[:5]) != "%PDF-" {
			t.Fatalf("%s: result does not start with PDF header", name)
		}
	}
}

func TestExcelContainsTotal(t *testing.T) {
	q := buildQuote(t, linearForm())
	q.Contact.Name = "=HYPERLINK(\"x\")"

	result, err := Excel(q)
	if err != nil {
		t.Fatalf("Excel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Quote" {
		t.Fatalf("unexpected sheets: %v", sheets)
	}

	rows, err := f.GetRows("Quote", excelize.Options{RawCellValue: true})
	if err != nil {
		t.Fatalf("GetRows error: %v", err)
	}

	var total, name string
	for _, r := range rows {
		if len(r) < 2 {
			continue
		}
		switch r[0] {
		case "Total Amount":
			total = r[1]
		case "Name":
			name = r[1]
		}
	}
	if total != "240" {
		t.Fatalf("total cell = %q, want 240", total)
	}
	if name != "'=HYPERLINK(\"x\")" {
		t.Fatalf("name cell not sanitized: %q", name)
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	for in, want := range map[string]string{
		"":          "",
		"Ada":       "Ada",
		"=1+1":      "'=1+1",
		"+15550100": "'+15550100",
		"@cmd":      "'@cmd",
	} {
		if got := sanitizeExcelCell(in); got != want {
			t.Errorf("sanitizeExcelCell(%q) = %q, want %q", in, got, want)
		}
	}
}
