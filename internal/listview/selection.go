package listview

import "backoffice/internal/domain"

// Tracker remembers which record ids are marked selected. Selection survives
// page navigation: operations scoped to a visible page never touch ids
// outside it.
type Tracker struct {
	ids map[string]bool
}

func NewTracker() *Tracker {
	return &Tracker{ids: map[string]bool{}}
}

// Toggle flips one id.
func (t *Tracker) Toggle(id string) {
	if id == "" {
		return
	}
	if t.ids[id] {
		delete(t.ids, id)
		return
	}
	t.ids[id] = true
}

// SetAll marks every given visible id selected or not. Ids outside the set
// are left alone, so selections on other pages are preserved.
func (t *Tracker) SetAll(visibleIDs []string, value bool) {
	for _, id := range visibleIDs {
		if id == "" {
			continue
		}
		if value {
			t.ids[id] = true
		} else {
			delete(t.ids, id)
		}
	}
}

// Selected reports one id.
func (t *Tracker) Selected(id string) bool {
	return t.ids[id]
}

// AllSelected derives the select-all checkbox state for a visible page. It is
// computed, never stored, so it cannot desync from the membership.
func (t *Tracker) AllSelected(visibleIDs []string) bool {
	if len(visibleIDs) == 0 {
		return false
	}
	for _, id := range visibleIDs {
		if !t.ids[id] {
			return false
		}
	}
	return true
}

// SelectedOf returns the subset of records currently selected, in input order.
func (t *Tracker) SelectedOf(records []domain.Record, idField string) []domain.Record {
	out := []domain.Record{}
	for _, r := range records {
		if t.ids[r.ID(idField)] {
			out = append(out, r)
		}
	}
	return out
}

// Count returns how many ids are selected.
func (t *Tracker) Count() int {
	return len(t.ids)
}

// Prune drops ids no longer present in the collection; run it on every filter
// or page change so stale selections cannot linger.
func (t *Tracker) Prune(validIDs []string) {
	valid := make(map[string]bool, len(validIDs))
	for _, id := range validIDs {
		valid[id] = true
	}
	for id := range t.ids {
		if !valid[id] {
			delete(t.ids, id)
		}
	}
}

// Clear empties the selection.
func (t *Tracker) Clear() {
	t.ids = map[string]bool{}
}
