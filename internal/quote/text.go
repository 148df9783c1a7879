package quote

import (
	"fmt"
	"strings"
)

// Text renders q as a plain-text document.
func Text(q Quote) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Print Quote\n")
	fmt.Fprintf(&b, "Quote #: %s\n", q.Number)
	fmt.Fprintf(&b, "Date: %s\n", q.Date.Format(DateLayout))
	b.WriteString("\n")

	if !q.Contact.IsEmpty() {
		b.WriteString("Customer Information:\n")
		writeField(&b, "Name", q.Contact.Name)
		writeField(&b, "Phone", q.Contact.Phone)
		writeField(&b, "Email", q.Contact.Email)
		b.WriteString("\n")
	}

	for _, section := range Sections(q) {
		fmt.Fprintf(&b, "%s:\n", section.Title)
		for _, line := range section.Lines {
			fmt.Fprintf(&b, "- %s: %s\n", line.Label, line.Value)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Total: %s\n", FormatUSD(q.Total()))
	b.WriteString("\n")

	b.WriteString("Terms & Conditions:\n")
	for _, term := range q.Terms {
		fmt.Fprintf(&b, "- %s\n", term)
	}

	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "- %s: %s\n", label, value)
}
