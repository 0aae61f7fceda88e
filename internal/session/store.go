package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL is how long an idle session survives before expiring.
const DefaultTTL = 24 * time.Hour

// Store persists sessions as JSON blobs in Redis, one key per session.
// Redis key expiry enforces the idle timeout.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a session store. A non-positive ttl falls back to
// DefaultTTL.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return "session:" + id
}

// Get loads a session by id. Returns nil with no error when the session
// does not exist or has expired.
func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	val, err := s.client.Get(ctx, sessionKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}

	var sess Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, fmt.Errorf("unmarshaling session %s: %w", id, err)
	}

	// Idle-timeout guard for stores without key expiry support.
	if time.Since(sess.LastActivity) > s.ttl {
		_ = s.client.Del(ctx, sessionKey(id)).Err()
		return nil, nil
	}
	return &sess, nil
}

// Save writes the session and refreshes its TTL.
func (s *Store) Save(ctx context.Context, sess Session) error {
	sess.LastActivity = time.Now()

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshaling session %s: %w", sess.ID, err)
	}
	if err := s.client.Set(ctx, sessionKey(sess.ID), string(data), s.ttl).Err(); err != nil {
		return fmt.Errorf("set session %s: %w", sess.ID, err)
	}
	return nil
}

// Delete removes a session.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("del session %s: %w", id, err)
	}
	return nil
}
