package listview

import (
	"strings"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/utils"
)

// Rule is one filter predicate. Rules combine with logical AND; a record with
// a missing or malformed field simply fails the rule, it never panics.
type Rule interface {
	Match(r domain.Record) bool
}

// Apply filters records through every rule. Pure: the input slice is never
// mutated and the same inputs always yield the same output.
func Apply(records []domain.Record, rules []Rule) []domain.Record {
	if len(rules) == 0 {
		return records
	}
	out := make([]domain.Record, 0, len(records))
	for _, r := range records {
		ok := true
		for _, rule := range rules {
			if !rule.Match(r) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, r)
		}
	}
	return out
}

// DateRange keeps records whose date field lies within [From, To] inclusive.
// An unset bound is no constraint on that side; with both bounds unset the
// rule always passes.
type DateRange struct {
	Field string
	From  *time.Time
	To    *time.Time
}

func (d DateRange) Match(r domain.Record) bool {
	if d.From == nil && d.To == nil {
		return true
	}
	value, ok := utils.ParseAnyTime(r.Field(d.Field))
	if !ok {
		return false
	}
	if d.From != nil && value.Before(*d.From) {
		return false
	}
	if d.To != nil && value.After(*d.To) {
		return false
	}
	return true
}

// TextMatch keeps records where ANY of the configured fields contains the
// query, case-insensitively. An empty query passes everything.
type TextMatch struct {
	Fields []string
	Query  string
}

func (t TextMatch) Match(r domain.Record) bool {
	query := strings.ToLower(strings.TrimSpace(t.Query))
	if query == "" {
		return true
	}
	for _, f := range t.Fields {
		value := strings.ToLower(domain.Stringify(r.Field(f)))
		if value != "" && strings.Contains(value, query) {
			return true
		}
	}
	return false
}

// StatusIs keeps records whose field equals Allow exactly. The "All" sentinel
// (or an empty allow value) always passes.
type StatusIs struct {
	Field string
	Allow string
}

func (s StatusIs) Match(r domain.Record) bool {
	allow := strings.TrimSpace(s.Allow)
	if allow == "" || strings.EqualFold(allow, "all") {
		return true
	}
	return domain.Stringify(r.Field(s.Field)) == allow
}
