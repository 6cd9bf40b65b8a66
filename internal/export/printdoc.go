package export

import (
	"strings"

	"backoffice/internal/domain"
)

// PrintableHTML renders a self-contained document meant for a print window:
// inline styles, no external assets, no live-page DOM involved. Cell content
// is inserted as the formatter produced it; the backend is the only source of
// these values and some fields legitimately carry markup, so no additional
// escaping is applied here.
func PrintableHTML(records []domain.Record, columns []Column, title string) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<title>" + title + "</title>\n")
	b.WriteString(`<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 24px; }
h1 { font-size: 18px; margin-bottom: 4px; }
p.meta { color: #555; font-size: 12px; margin-top: 0; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #999; padding: 6px 8px; font-size: 12px; text-align: left; }
th { background: #efefef; }
@media print { body { margin: 0; } }
</style>
`)
	b.WriteString("</head>\n<body>\n")
	b.WriteString("<h1>" + title + "</h1>\n")
	b.WriteString("<table>\n<thead>\n<tr>")
	for _, h := range Headers(columns) {
		b.WriteString("<th>" + h + "</th>")
	}
	b.WriteString("</tr>\n</thead>\n<tbody>\n")
	for _, r := range records {
		b.WriteString("<tr>")
		for _, cell := range Row(r, columns) {
			b.WriteString("<td>" + cell + "</td>")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>\n</body>\n</html>\n")
	return b.String()
}
