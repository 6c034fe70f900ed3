// internal/cache/memory.go
package cache

import (
	"context"
	"errors"
	"sync"

	"github.com/hearsay-games/hearsay/internal/models"
)

// MemoryScoreStore is an in-process ScoreStore, used in tests and when the
// server is run without redis. Entries remember insertion order so that
// leaderboard ties stay stable.
type MemoryScoreStore struct {
	mu     sync.Mutex
	scores map[string]int
	order  []string

	// FailReads and FailWrites force errors, for exercising the host's
	// best-effort persistence paths in tests.
	FailReads  bool
	FailWrites bool
}

var errStoreUnavailable = errors.New("score store unavailable")

func NewMemoryScoreStore() *MemoryScoreStore {
	return &MemoryScoreStore{scores: make(map[string]int)}
}

func (s *MemoryScoreStore) Get(ctx context.Context, identity string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailReads {
		return 0, errStoreUnavailable
	}
	return s.scores[identity], nil
}

func (s *MemoryScoreStore) Set(ctx context.Context, identity string, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites {
		return errStoreUnavailable
	}
	if _, ok := s.scores[identity]; !ok {
		s.order = append(s.order, identity)
	}
	s.scores[identity] = score
	return nil
}

func (s *MemoryScoreStore) All(ctx context.Context) ([]models.LeaderboardEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailReads {
		return nil, errStoreUnavailable
	}
	entries := make([]models.LeaderboardEntry, 0, len(s.order))
	for _, identity := range s.order {
		entries = append(entries, models.LeaderboardEntry{Identity: identity, Score: s.scores[identity]})
	}
	return entries, nil
}
