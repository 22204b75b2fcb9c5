package ratelimit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ErrUnavailable is returned when the Redis backend cannot be reached.
var ErrUnavailable = errors.New("rate limit store unavailable")

// DefaultRedisPrefix namespaces rate-limit keys in Redis.
const DefaultRedisPrefix = "ratelimit"

// RedisStore keeps rate-limit entries in Redis as JSON blobs. Entries are
// not given a TTL; an out-of-window entry is reset in place on the next
// check rather than reaped by Redis.
type RedisStore struct {
	redis  redis.UniversalClient
	prefix string
}

// NewRedisStore creates an entry store on the given Redis client. An empty
// prefix falls back to [DefaultRedisPrefix].
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisStore{redis: client, prefix: prefix}
}

func (r *RedisStore) key(email string) string {
	return r.prefix + ":" + email
}

// Get fetches and decodes the entry for an email. A missing key reports
// (nil, false, nil); transport failures wrap [ErrUnavailable].
func (r *RedisStore) Get(ctx context.Context, email string) (*Entry, bool, error) {
	data, err := r.redis.Get(ctx, r.key(email)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	entry := &Entry{}
	if err := json.Unmarshal(data, entry); err != nil {
		return nil, false, err
	}
	return entry, true, nil
}

// Put stores the entry under its email key.
func (r *RedisStore) Put(ctx context.Context, entry *Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	if err := r.redis.Set(ctx, r.key(entry.Email), data, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
