package session

import (
	"strings"
	"sync"
)

// Store holds the process-wide bearer credential for the hotel backend.
// The auth flow writes it; gateways only read. Pages never mutate it directly.
type Store struct {
	mu    sync.RWMutex
	token string
}

// New seeds the store, usually from BACKEND_TOKEN at startup.
func New(token string) *Store {
	return &Store{token: strings.TrimSpace(token)}
}

// Set replaces the credential.
func (s *Store) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = strings.TrimSpace(token)
}

// Clear drops the credential; subsequent gateway calls fail fast.
func (s *Store) Clear() {
	s.Set("")
}

// Token returns the current credential, empty when not authenticated.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}
