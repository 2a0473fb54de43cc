package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "chat:"

// RedisStore keeps session state in Redis so that sessions survive process
// restarts and can be shared by multiple backend instances. Each session is
// one JSON value under chat:<id> with a sliding TTL. Mutations are
// read-modify-write; the engine's per-session serialization makes that safe
// without optimistic locking.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed session store. A non-positive ttl
// defaults to 24 hours.
func NewRedisStore(client *redis.Client, ttl time.Duration) (*RedisStore, error) {
	if client == nil {
		return nil, fmt.Errorf("chat: redis store: client is required")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	return s.load(ctx, id)
}

// Reset implements Store.
func (s *RedisStore) Reset(ctx context.Context, id, lang string) error {
	return s.save(ctx, id, newSession(lang))
}

// AppendTurn implements Store.
func (s *RedisStore) AppendTurn(ctx context.Context, id, role, content string) error {
	return s.mutate(ctx, id, func(sess *Session) {
		sess.Transcript = append(sess.Transcript, Turn{Role: role, Content: content})
	})
}

// DropLastTurn implements Store.
func (s *RedisStore) DropLastTurn(ctx context.Context, id string) error {
	return s.mutate(ctx, id, func(sess *Session) {
		if len(sess.Transcript) > 1 {
			sess.Transcript = sess.Transcript[:len(sess.Transcript)-1]
		}
	})
}

// AppendItems implements Store.
func (s *RedisStore) AppendItems(ctx context.Context, id string, items []Item) error {
	return s.mutate(ctx, id, func(sess *Session) {
		sess.Items = append(sess.Items, items...)
	})
}

// TrimTranscript implements Store.
func (s *RedisStore) TrimTranscript(ctx context.Context, id string, max int) error {
	return s.mutate(ctx, id, func(sess *Session) {
		trimTranscript(sess, max)
	})
}

func (s *RedisStore) load(ctx context.Context, id string) (*Session, error) {
	val, err := s.client.Get(ctx, redisKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("chat: redis get %s: %w", id, err)
	}
	var sess Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, fmt.Errorf("chat: decode session %s: %w", id, err)
	}
	return &sess, nil
}

func (s *RedisStore) save(ctx context.Context, id string, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("chat: encode session %s: %w", id, err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+id, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("chat: redis set %s: %w", id, err)
	}
	return nil
}

func (s *RedisStore) mutate(ctx context.Context, id string, fn func(*Session)) error {
	sess, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if sess == nil {
		return ErrNoSession
	}
	fn(sess)
	return s.save(ctx, id, sess)
}
