// internal/session/store.go
package session

import (
	"sync"

	"github.com/google/uuid"
)

// Store tracks the live hosts, one per connected view.
type Store struct {
	mu    sync.Mutex
	hosts map[uuid.UUID]*Host
}

func NewStore() *Store {
	return &Store{
		hosts: make(map[uuid.UUID]*Host),
	}
}

func (s *Store) Add(h *Host) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hosts[h.ID] = h
}

func (s *Store) Get(id uuid.UUID) (*Host, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, exists := s.hosts[id]
	return h, exists
}

func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.hosts, id)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.hosts)
}
