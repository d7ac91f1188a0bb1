package trip

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// StateStore persists trip state between funnel requests.
type StateStore interface {
	Save(ctx context.Context, state *TripState) error
	Get(ctx context.Context, tripID string) (*TripState, error)
	Delete(ctx context.Context, tripID string) error
}

// RedisStateStore keeps trip state JSON-marshalled in Redis with a TTL.
type RedisStateStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisStateStore(client *redis.Client, ttl time.Duration) *RedisStateStore {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &RedisStateStore{Client: client, TTL: ttl}
}

func tripKey(tripID string) string {
	return "trip:" + tripID
}

func (s *RedisStateStore) Save(ctx context.Context, state *TripState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal trip state: %w", err)
	}
	if err := s.Client.Set(ctx, tripKey(state.TripID), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store trip state: %w", err)
	}
	return nil
}

func (s *RedisStateStore) Get(ctx context.Context, tripID string) (*TripState, error) {
	data, err := s.Client.Get(ctx, tripKey(tripID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to load trip state: %w", err)
	}
	var state TripState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("failed to parse trip state: %w", err)
	}
	return &state, nil
}

func (s *RedisStateStore) Delete(ctx context.Context, tripID string) error {
	if err := s.Client.Del(ctx, tripKey(tripID)).Err(); err != nil {
		return fmt.Errorf("failed to delete trip state: %w", err)
	}
	return nil
}
