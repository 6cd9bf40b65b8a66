package export

import (
	"backoffice/internal/domain"
	"backoffice/internal/utils"
)

// Placeholder is rendered for missing or empty values so every row keeps the
// same cell count as the header.
const Placeholder = "N/A"

// Column maps one record field to an output column. Format is optional; the
// default renders the raw value, Placeholder when absent.
type Column struct {
	Field  string
	Header string
	Format func(v any) string
}

// Cell renders one cell. Formatting happens here, before any serialization,
// so all three output formats agree on content.
func Cell(r domain.Record, c Column) string {
	v := r.Field(c.Field)
	if c.Format != nil {
		return c.Format(v)
	}
	s := domain.Stringify(v)
	if s == "" {
		return Placeholder
	}
	return s
}

// Row renders a full row in declared column order.
func Row(r domain.Record, columns []Column) []string {
	out := make([]string, 0, len(columns))
	for _, c := range columns {
		out = append(out, Cell(r, c))
	}
	return out
}

// Headers returns the header row in declared column order.
func Headers(columns []Column) []string {
	out := make([]string, 0, len(columns))
	for _, c := range columns {
		out = append(out, c.Header)
	}
	return out
}

// DateCell formats a date-like value as a display date.
func DateCell(v any) string {
	t, ok := utils.ParseAnyTime(v)
	if !ok {
		return Placeholder
	}
	return utils.FormatDisplayDate(t)
}

// MoneyCell formats a currency-like value with thousands separators; missing
// values render as 0, not an empty cell.
func MoneyCell(v any) string {
	switch n := v.(type) {
	case float64:
		return utils.FormatAmount(n)
	case int64:
		return utils.FormatAmount(float64(n))
	case int:
		return utils.FormatAmount(float64(n))
	case string:
		if parsed, err := utils.ParseAmount(n); err == nil {
			return utils.FormatAmount(parsed)
		}
	}
	return "0"
}
