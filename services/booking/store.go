package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tripnest/models"

	"github.com/go-redis/redis/v8"
)

// SessionStore persists prebook sessions between funnel requests. The TTL
// only bounds garbage; it is never consulted for state decisions — true
// expiry is the supplier's call.
type SessionStore interface {
	Save(ctx context.Context, session *models.PrebookSession) error
	Get(ctx context.Context, sessionID string) (*models.PrebookSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps sessions JSON-marshalled in Redis.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func sessionKey(sessionID string) string {
	return "prebook:" + sessionID
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.PrebookSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal prebook session: %w", err)
	}
	if err := s.Client.Set(ctx, sessionKey(session.SessionID), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store prebook session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.PrebookSession, error) {
	data, err := s.Client.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load prebook session: %w", err)
	}
	var session models.PrebookSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse prebook session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete prebook session: %w", err)
	}
	return nil
}
