package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrUnavailable is returned when the Redis backend cannot be reached or
// answers with an unexpected error.
var ErrUnavailable = errors.New("session store unavailable")

// DefaultRedisPrefix namespaces session keys in Redis.
const DefaultRedisPrefix = "authsession"

// RedisStore is a Redis-backed session store. Entries carry a TTL matching
// the session lifetime, so Redis reaps expired sessions on its own.
type RedisStore struct {
	redis  redis.UniversalClient
	prefix string
	now    func() time.Time
}

// NewRedisStore creates a session store on the given Redis client. An empty
// prefix falls back to [DefaultRedisPrefix].
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisStore{redis: client, prefix: prefix, now: time.Now}
}

func (r *RedisStore) key(sessionKey string) string {
	return r.prefix + ":" + sessionKey
}

// Get fetches and decodes a session. A missing key reports (nil, false, nil);
// transport failures wrap [ErrUnavailable].
func (r *RedisStore) Get(ctx context.Context, key string) (*Session, bool, error) {
	data, err := r.redis.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	sess, err := Decode(data)
	if err != nil {
		return nil, false, err
	}
	return sess, true, nil
}

// Set stores the session with a TTL running until its expiry. Sessions that
// are already expired are not written.
func (r *RedisStore) Set(ctx context.Context, sess *Session) error {
	data, err := Encode(sess)
	if err != nil {
		return err
	}

	ttl := sess.TTL(r.now())
	if ttl <= 0 {
		return nil
	}

	if err := r.redis.Set(ctx, r.key(sess.Key), data, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Delete removes the session under key. Deleting an absent key is a no-op.
func (r *RedisStore) Delete(ctx context.Context, key string) error {
	if err := r.redis.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
