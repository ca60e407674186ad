package statecache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ccbc-ox/boathouse-api/internal/models"
)

const redisKeyPrefix = "boathouse:assignments:"

// RedisStore keeps drafts in Redis so multiple API instances share them.
type RedisStore struct {
	client *redis.Client
	expiry time.Duration
	clock  func() time.Time
}

// NewRedisStore returns a store over the given client. A nil clock defaults
// to time.Now.
func NewRedisStore(client *redis.Client, expiry time.Duration, clock func() time.Time) *RedisStore {
	if clock == nil {
		clock = time.Now
	}
	if expiry <= 0 {
		expiry = DefaultExpiry
	}
	return &RedisStore{client: client, expiry: expiry, clock: clock}
}

func (s *RedisStore) key(outingID string) string {
	return redisKeyPrefix + outingID
}

func (s *RedisStore) Load(ctx context.Context, outingID string) (*models.AssignmentState, error) {
	raw, err := s.client.Get(ctx, s.key(outingID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("load assignment state %s: %w", outingID, err)
	}

	var state models.AssignmentState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("decode assignment state %s: %w", outingID, err)
	}

	// Expiry is logical, checked on read; the blob itself is kept.
	if expired(&state, s.clock(), s.expiry) {
		return nil, nil
	}
	return &state, nil
}

func (s *RedisStore) Save(ctx context.Context, outingID string, assignments map[string]string) (*models.AssignmentState, error) {
	if assignments == nil {
		assignments = map[string]string{}
	}
	state := &models.AssignmentState{Assignments: assignments, LastUpdated: s.clock()}

	payload, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("encode assignment state %s: %w", outingID, err)
	}
	if err := s.client.Set(ctx, s.key(outingID), payload, 0).Err(); err != nil {
		return nil, fmt.Errorf("save assignment state %s: %w", outingID, err)
	}
	return state, nil
}

func (s *RedisStore) Clear(ctx context.Context, outingIDs ...string) error {
	if len(outingIDs) > 0 {
		keys := make([]string, len(outingIDs))
		for i, id := range outingIDs {
			keys[i] = s.key(id)
		}
		if err := s.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("clear assignment state: %w", err)
		}
		return nil
	}

	iter := s.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("clear assignment state %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan assignment state keys: %w", err)
	}
	return nil
}
