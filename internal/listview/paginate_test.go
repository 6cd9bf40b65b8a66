package listview

import (
	"fmt"
	"testing"

	"backoffice/internal/domain"
)

func makeRecords(n int) []domain.Record {
	out := make([]domain.Record, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, domain.Record{"_id": fmt.Sprintf("r%02d", i)})
	}
	return out
}

func TestPageSizesTwelveByFive(t *testing.T) {
	records := makeRecords(12)
	w := Window{PageSize: 5, Page: 1}

	if got := w.TotalPages(len(records)); got != 3 {
		t.Fatalf("TotalPages = %d, want 3", got)
	}

	wantSizes := []int{5, 5, 2}
	for p := 1; p <= 3; p++ {
		w.Page = p
		if got := len(w.Slice(records)); got != wantSizes[p-1] {
			t.Fatalf("page %d has %d records, want %d", p, got, wantSizes[p-1])
		}
	}
}

func TestPagesReconstructSequence(t *testing.T) {
	for _, total := range []int{0, 1, 4, 5, 12, 13} {
		records := makeRecords(total)
		w := Window{PageSize: 5}
		var joined []domain.Record
		pages := w.TotalPages(total)
		for p := 1; p <= pages; p++ {
			w.Page = p
			joined = append(joined, w.Slice(records)...)
		}
		if len(joined) != total {
			t.Fatalf("total=%d: pages join to %d records", total, len(joined))
		}
		for i := range joined {
			if joined[i].ID("_id") != records[i].ID("_id") {
				t.Fatalf("total=%d: gap or duplicate at index %d", total, i)
			}
		}
	}
}

func TestOutOfRangeSliceIsEmpty(t *testing.T) {
	records := makeRecords(3)
	w := Window{PageSize: 5, Page: 7}
	if got := w.Slice(records); len(got) != 0 {
		t.Fatalf("out-of-range slice returned %d records", len(got))
	}
	if got := (Window{PageSize: 0, Page: 1}).Slice(records); len(got) != 0 {
		t.Fatalf("zero page size should slice empty, got %d", len(got))
	}
}

func TestClampAfterLastPageRecordDeleted(t *testing.T) {
	// 11 records at size 5 give 3 pages; deleting the only record on page 3
	// must clamp the window from page 3 to page 2.
	w := Window{PageSize: 5, Page: 3}
	w = w.Clamp(10)
	if w.Page != 2 {
		t.Fatalf("page = %d after shrink, want 2", w.Page)
	}
}

func TestClampNeverBelowPageOne(t *testing.T) {
	w := Window{PageSize: 5, Page: 4}
	w = w.Clamp(0)
	if w.Page != 1 {
		t.Fatalf("page = %d for empty collection, want 1", w.Page)
	}
}

func TestMetaTotals(t *testing.T) {
	meta := Window{PageSize: 5, Page: 2}.Meta(12)
	if meta.Total != 12 || meta.TotalPages != 3 || meta.Page != 2 || meta.PageSize != 5 {
		t.Fatalf("unexpected meta: %+v", meta)
	}
}
