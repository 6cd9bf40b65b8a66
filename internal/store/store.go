package store

import (
	"context"
	"sync"

	"backoffice/internal/domain"
)

// Lister is the slice of the gateway the store needs.
type Lister interface {
	List(ctx context.Context, e domain.Entity) ([]domain.Record, error)
}

// Store holds the last fetched collection for one entity. Every reload
// replaces the collection wholesale; there is no incremental merge. A failed
// reload empties the collection rather than keeping stale rows — an explicit
// empty list beats partial garbage.
//
// Reload may be called concurrently. Each call gets a generation number at
// issue time and a response is applied only if no later-issued reload has
// already finished; superseded responses are discarded. After Close every
// in-flight response is discarded.
type Store struct {
	entity domain.Entity
	lister Lister

	mu      sync.Mutex
	records []domain.Record
	loadErr error
	loading int
	issued  uint64
	applied uint64
	closed  bool
}

func New(e domain.Entity, l Lister) *Store {
	return &Store{entity: e, lister: l}
}

// Reload fetches the collection and replaces the store content.
func (s *Store) Reload(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.InternalError{Msg: "store is closed"}
	}
	s.issued++
	gen := s.issued
	s.loading++
	s.mu.Unlock()

	records, err := s.lister.List(ctx, s.entity)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading--
	if s.closed || gen < s.applied {
		// superseded by a later reload (or the owner went away)
		return err
	}
	s.applied = gen
	if err != nil {
		s.records = nil
		s.loadErr = err
		return err
	}
	s.records = records
	s.loadErr = nil
	return nil
}

// Current returns the last applied collection. Callers must not mutate it.
func (s *Store) Current() []domain.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records
}

// Loading reports whether any reload is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading > 0
}

// Err returns the error of the last applied reload, nil after a success.
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

// Entity returns the collection this store serves.
func (s *Store) Entity() domain.Entity {
	return s.entity
}

// Close marks the owner gone; late responses are dropped instead of applied.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.records = nil
	s.loadErr = nil
}
