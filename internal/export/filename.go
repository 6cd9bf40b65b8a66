package export

import (
	"fmt"
	"time"
)

// Format identifies one export output format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
	FormatHTML Format = "html"
	FormatTSV  Format = "tsv"
)

// ParseFormat validates a requested format string.
func ParseFormat(s string) (Format, bool) {
	switch Format(s) {
	case FormatXLSX, FormatPDF, FormatHTML, FormatTSV:
		return Format(s), true
	}
	return "", false
}

// ContentType returns the MIME type artifacts of this format download as.
func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	case FormatHTML:
		return "text/html; charset=utf-8"
	default:
		return "text/tab-separated-values; charset=utf-8"
	}
}

// Filename builds the download name: {entity}_export_{date}_{time}.{ext}.
func Filename(entity string, f Format, now time.Time) string {
	return fmt.Sprintf("%s_export_%s_%s.%s",
		entity,
		now.Format("2006-01-02"),
		now.Format("15-04-05"),
		string(f),
	)
}
