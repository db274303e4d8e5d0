// Package session provides the session-scoped storage the navigation
// controller persists its state to. It lives and dies with the process;
// only the locale preference is kept durably.
package session

import (
	"sync"

	"cropguru/internal/ports/output"
)

var _ output.NavigationStateStore = (*Store)(nil)

// Store is an in-memory NavigationStateStore.
type Store struct {
	mu      sync.Mutex
	current string
	pending string
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Load() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.pending
}

func (s *Store) Save(currentPage, pendingTarget string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = currentPage
	s.pending = pendingTarget
}
