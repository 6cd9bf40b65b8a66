package listview

import (
	"testing"

	"backoffice/internal/domain"
)

func TestSelectAllOnOtherPagePreservesSelections(t *testing.T) {
	records := makeRecords(10)
	w := Window{PageSize: 5, Page: 1}
	page1 := w.Slice(records)
	w.Page = 2
	page2 := w.Slice(records)

	tr := NewTracker()
	tr.Toggle(page1[0].ID("_id"))
	tr.Toggle(page1[2].ID("_id"))

	page2IDs := make([]string, 0, len(page2))
	for _, r := range page2 {
		page2IDs = append(page2IDs, r.ID("_id"))
	}
	tr.SetAll(page2IDs, true)

	selected := tr.SelectedOf(page1, "_id")
	if len(selected) != 2 {
		t.Fatalf("page-1 selections changed, got %d", len(selected))
	}
	if tr.Count() != 7 {
		t.Fatalf("count = %d, want 7", tr.Count())
	}

	tr.SetAll(page2IDs, false)
	if tr.Count() != 2 {
		t.Fatalf("deselecting page 2 touched other pages, count = %d", tr.Count())
	}
}

func TestAllSelectedIsDerived(t *testing.T) {
	tr := NewTracker()
	ids := []string{"a", "b", "c"}

	if tr.AllSelected(ids) {
		t.Fatalf("nothing selected yet")
	}
	tr.SetAll(ids, true)
	if !tr.AllSelected(ids) {
		t.Fatalf("all visible ids selected, AllSelected should be true")
	}
	tr.Toggle("b")
	if tr.AllSelected(ids) {
		t.Fatalf("AllSelected must follow membership, not a stored flag")
	}
	if tr.AllSelected(nil) {
		t.Fatalf("empty visible set is never all-selected")
	}
}

func TestPruneDropsFilteredOutIDs(t *testing.T) {
	tr := NewTracker()
	tr.SetAll([]string{"a", "b", "c"}, true)

	tr.Prune([]string{"b"})
	if tr.Count() != 1 || !tr.Selected("b") {
		t.Fatalf("prune kept wrong ids, count=%d", tr.Count())
	}
}

func TestToggle(t *testing.T) {
	tr := NewTracker()
	tr.Toggle("x")
	if !tr.Selected("x") {
		t.Fatalf("toggle on failed")
	}
	tr.Toggle("x")
	if tr.Selected("x") || tr.Count() != 0 {
		t.Fatalf("toggle off failed")
	}
	tr.Toggle("")
	if tr.Count() != 0 {
		t.Fatalf("empty id must be ignored")
	}
}

func TestSelectedOfKeepsInputOrder(t *testing.T) {
	records := []domain.Record{
		{"_id": "r3"}, {"_id": "r1"}, {"_id": "r2"},
	}
	tr := NewTracker()
	tr.SetAll([]string{"r1", "r2", "r3"}, true)

	got := tr.SelectedOf(records, "_id")
	if len(got) != 3 || got[0].ID("_id") != "r3" || got[2].ID("_id") != "r2" {
		t.Fatalf("selection order must follow input order: %v", got)
	}
}
