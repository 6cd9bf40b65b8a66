package domain

import (
	"fmt"
	"strconv"
)

// Record is one opaque row fetched from the hotel backend. Field names and
// value types are whatever the backend returned; only the identifier field is
// interpreted locally.
type Record map[string]any

// ID renders the record identifier stored under the given field name.
// JSON numbers decode as float64, so integral values are rendered without a
// decimal part to keep "5" and 5 addressing the same record.
func (r Record) ID(field string) string {
	v, ok := r[field]
	if !ok {
		return ""
	}
	return Stringify(v)
}

// Field returns the raw value for name, nil when absent.
func (r Record) Field(name string) any {
	return r[name]
}

// Stringify converts a decoded JSON value to its display string.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
