package export

import (
	"strings"

	"backoffice/internal/domain"
)

// ClipboardTSV renders records as tab-separated text with a header row, the
// shape spreadsheet apps accept on paste. Tabs and newlines inside cells are
// flattened to spaces so every line keeps exactly len(columns) fields.
func ClipboardTSV(records []domain.Record, columns []Column) string {
	var b strings.Builder

	writeLine := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				b.WriteByte('\t')
			}
			b.WriteString(flattenCell(cell))
		}
		b.WriteByte('\n')
	}

	writeLine(Headers(columns))
	for _, r := range records {
		writeLine(Row(r, columns))
	}
	return b.String()
}

var cellFlattener = strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ", "\r", " ")

func flattenCell(s string) string {
	return cellFlattener.Replace(s)
}
