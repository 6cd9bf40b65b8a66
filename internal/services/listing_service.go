package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/listview"
	"backoffice/internal/store"
	"backoffice/internal/utils"
)

// ListQuery carries the filter and paging parameters of one list request.
type ListQuery struct {
	Search   string
	Status   string
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	PageSize int
}

// ListResult is one rendered page plus its pagination meta.
type ListResult struct {
	Data       []domain.Record   `json:"data"`
	Pagination domain.Pagination `json:"pagination"`
}

const defaultPageSize = 10

// ListService owns one record store per entity and renders filtered,
// paginated views of them. Filtering and paging stay client-side of the hotel
// backend: the whole collection is fetched, then narrowed here.
type ListService struct {
	Gateway store.Lister
	// CacheTTL keeps a fetched collection for a short window; zero reloads
	// on every request, matching the replace-wholesale lifecycle.
	CacheTTL time.Duration

	mu      sync.Mutex
	stores  map[string]*store.Store
	fetched map[string]time.Time
}

// storeFor lazily creates the per-entity store.
func (s *ListService) storeFor(e domain.Entity) *store.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stores == nil {
		s.stores = map[string]*store.Store{}
		s.fetched = map[string]time.Time{}
	}
	st, ok := s.stores[e.Name]
	if !ok {
		st = store.New(e, s.Gateway)
		s.stores[e.Name] = st
	}
	return st
}

func (s *ListService) needsReload(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.CacheTTL <= 0 {
		return true
	}
	last, ok := s.fetched[name]
	return !ok || time.Since(last) > s.CacheTTL
}

func (s *ListService) markFetched(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetched[name] = time.Now()
}

// Records returns the filtered (unpaginated) collection for an entity.
func (s *ListService) Records(ctx context.Context, e domain.Entity, q ListQuery) ([]domain.Record, error) {
	st := s.storeFor(e)
	if s.needsReload(e.Name) {
		if err := st.Reload(ctx); err != nil {
			return nil, err
		}
		s.markFetched(e.Name)
	}
	return listview.Apply(st.Current(), s.rules(e, q)), nil
}

// List renders one page of an entity collection.
func (s *ListService) List(ctx context.Context, e domain.Entity, q ListQuery) (ListResult, error) {
	filtered, err := s.Records(ctx, e, q)
	if err != nil {
		return ListResult{}, err
	}

	w := listview.Window{PageSize: q.PageSize, Page: q.Page}
	if w.PageSize <= 0 {
		w.PageSize = defaultPageSize
	}
	// a shrunken collection pulls the page back into range before rendering
	w = w.Clamp(len(filtered))

	utils.LogEvent("", "listing", "list",
		fmt.Sprintf("entity=%s total=%d page=%d", e.Name, len(filtered), w.Page))

	return ListResult{
		Data:       w.Slice(filtered),
		Pagination: w.Meta(len(filtered)),
	}, nil
}

// Invalidate drops the cache stamp so the next request refetches.
func (s *ListService) Invalidate(e domain.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fetched, e.Name)
}

// rules translates a query into filter rules using the entity's view config.
// A rule whose parameter is unset is simply not added.
func (s *ListService) rules(e domain.Entity, q ListQuery) []listview.Rule {
	cfg := ViewFor(e)
	rules := []listview.Rule{}
	if q.Search != "" {
		rules = append(rules, listview.TextMatch{Fields: cfg.SearchFields, Query: q.Search})
	}
	if q.Status != "" && cfg.StatusField != "" {
		rules = append(rules, listview.StatusIs{Field: cfg.StatusField, Allow: q.Status})
	}
	if (q.DateFrom != nil || q.DateTo != nil) && cfg.DateField != "" {
		rules = append(rules, listview.DateRange{Field: cfg.DateField, From: q.DateFrom, To: q.DateTo})
	}
	return rules
}
