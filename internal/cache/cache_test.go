// internal/cache/cache_test.go
package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreKeyFormat(t *testing.T) {
	assert.Equal(t, "hearsay:score:anon", ScoreKey("anon"))
	assert.Equal(t, "hearsay:score:some_player", ScoreKey("some_player"))
}

func TestMemoryStoreAbsentIdentityIsZero(t *testing.T) {
	s := NewMemoryScoreStore()
	score, err := s.Get(context.Background(), "newcomer")
	require.NoError(t, err)
	assert.Equal(t, 0, score)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryScoreStore()

	require.NoError(t, s.Set(ctx, "alice", 13))
	require.NoError(t, s.Set(ctx, "bob", 5))
	require.NoError(t, s.Set(ctx, "alice", 26))

	score, err := s.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 26, score)

	entries, err := s.All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "alice", entries[0].Identity, "insertion order preserved")
	assert.Equal(t, "bob", entries[1].Identity)
}

func TestMemoryStoreForcedFailures(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryScoreStore()
	s.FailReads = true
	s.FailWrites = true

	_, err := s.Get(ctx, "x")
	assert.Error(t, err)
	assert.Error(t, s.Set(ctx, "x", 1))
	_, err = s.All(ctx)
	assert.Error(t, err)
}
