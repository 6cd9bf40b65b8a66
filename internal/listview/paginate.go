package listview

import "backoffice/internal/domain"

// Window is the visible page over a filtered collection.
type Window struct {
	PageSize int
	Page     int
}

// TotalPages derives the page count for total records, 0 when the collection
// is empty.
func (w Window) TotalPages(total int) int {
	if w.PageSize <= 0 || total <= 0 {
		return 0
	}
	return (total + w.PageSize - 1) / w.PageSize
}

// Clamp pulls Page back into range after the collection shrank. Page never
// drops below 1, even for an empty collection.
func (w Window) Clamp(total int) Window {
	pages := w.TotalPages(total)
	if pages < 1 {
		pages = 1
	}
	if w.Page > pages {
		w.Page = pages
	}
	if w.Page < 1 {
		w.Page = 1
	}
	return w
}

// Slice cuts the current page out of records. Out-of-range windows yield an
// empty slice, never an error.
func (w Window) Slice(records []domain.Record) []domain.Record {
	if w.PageSize <= 0 || w.Page < 1 {
		return []domain.Record{}
	}
	start := (w.Page - 1) * w.PageSize
	if start >= len(records) {
		return []domain.Record{}
	}
	end := start + w.PageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

// Meta summarizes a window over total records for list responses.
func (w Window) Meta(total int) domain.Pagination {
	return domain.Pagination{
		Page:       w.Page,
		PageSize:   w.PageSize,
		Total:      total,
		TotalPages: w.TotalPages(total),
	}
}
