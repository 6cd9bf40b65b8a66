package utils

import (
	"strings"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02 15:04:05"
)

// FormatDisplayDate renders a date the way back-office tables and exports
// show it.
func FormatDisplayDate(t time.Time) string {
	return t.In(time.Local).Format("02 Jan 2006")
}

// ParseAnyTime parses a record field into a time. The backend mixes RFC3339
// timestamps, plain dates and already-decoded times depending on entity.
func ParseAnyTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range []string{
			time.RFC3339Nano,
			time.RFC3339,
			layoutDateTime,
			layoutDate,
			"02/01/2006",
		} {
			if parsed, err := time.ParseInLocation(layout, s, time.Local); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}
