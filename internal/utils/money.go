package utils

import (
	"strconv"
	"strings"
)

// FormatAmount renders a currency-like number with thousands separators, the
// fixed convention used by tables and exports ("12,500" / "12,500.50").
func FormatAmount(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.SplitN(s, ".", 2)
	out := groupThousands(parts[0])
	if len(parts) == 2 && parts[1] != "00" {
		out += "." + parts[1]
	}
	if neg {
		out = "-" + out
	}
	return out
}

// ParseAmount parses "12,500.50" (or a plain number string) into a float.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	return strconv.ParseFloat(s, 64)
}

func groupThousands(digits string) string {
	var out strings.Builder
	for i, c := range digits {
		if i != 0 && (len(digits)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	if out.Len() == 0 {
		return "0"
	}
	return out.String()
}
