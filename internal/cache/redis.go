// internal/cache/redis.go
package cache

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/hearsay-games/hearsay/internal/models"
)

// scoreKeyPrefix namespaces all per-player score keys.
const scoreKeyPrefix = "hearsay:score:"

// ScoreStore is the persistence boundary for player scores. Implementations
// must tolerate absent keys (new player) without error.
type ScoreStore interface {
	// Get returns the stored score for identity, or 0 if none is stored.
	Get(ctx context.Context, identity string) (int, error)
	// Set stores the score for identity.
	Set(ctx context.Context, identity string, score int) error
	// All returns every known (identity, score) pair, in unspecified order.
	All(ctx context.Context) ([]models.LeaderboardEntry, error)
}

// ScoreKey builds the redis key for a player's score.
func ScoreKey(identity string) string {
	return scoreKeyPrefix + identity
}

// RedisScoreStore keeps scores in redis as plain string values, one key per
// player.
type RedisScoreStore struct {
	rdb *redis.Client
	log *logrus.Logger
}

// ConnectRedis dials redis at addr, verifies the connection with a short
// ping, and returns a score store over it.
func ConnectRedis(addr string, db int, logger *logrus.Logger) (*RedisScoreStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return &RedisScoreStore{rdb: rdb, log: logger}, nil
}

// NewRedisScoreStore wraps an existing client; used when the caller manages
// the connection.
func NewRedisScoreStore(rdb *redis.Client, logger *logrus.Logger) *RedisScoreStore {
	return &RedisScoreStore{rdb: rdb, log: logger}
}

func (s *RedisScoreStore) Get(ctx context.Context, identity string) (int, error) {
	val, err := s.rdb.Get(ctx, ScoreKey(identity)).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read score for %s: %w", identity, err)
	}
	score, err := strconv.Atoi(val)
	if err != nil {
		// A corrupt value is treated like an absent one, but worth a warning.
		s.log.Warnf("score key %s holds non-numeric value %q, treating as 0", ScoreKey(identity), val)
		return 0, nil
	}
	return score, nil
}

func (s *RedisScoreStore) Set(ctx context.Context, identity string, score int) error {
	if err := s.rdb.Set(ctx, ScoreKey(identity), strconv.Itoa(score), 0).Err(); err != nil {
		return fmt.Errorf("failed to write score for %s: %w", identity, err)
	}
	return nil
}

// All scans the score keyspace and returns one entry per player. Corrupt
// values are skipped.
func (s *RedisScoreStore) All(ctx context.Context) ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	iter := s.rdb.Scan(ctx, 0, scoreKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		val, err := s.rdb.Get(ctx, key).Result()
		if err != nil {
			continue
		}
		score, err := strconv.Atoi(val)
		if err != nil {
			continue
		}
		entries = append(entries, models.LeaderboardEntry{
			Identity: strings.TrimPrefix(key, scoreKeyPrefix),
			Score:    score,
		})
	}
	if err := iter.Err(); err != nil {
		return entries, fmt.Errorf("score scan failed: %w", err)
	}
	return entries, nil
}
