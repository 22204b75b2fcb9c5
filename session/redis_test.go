package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewRedisStore(rdb, ""), mr
}

func liveSession(t *testing.T) *Session {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Second)
	sess := sampleSession()
	sess.TimeStarted = now
	sess.TimeExpire = now.Add(20 * time.Minute)
	return sess
}

func TestRedisStoreSetGetDelete(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisStore(t)
	sess := liveSession(t)

	if _, ok, err := store.Get(ctx, sess.Key); err != nil || ok {
		t.Fatalf("empty store returned ok=%v err=%v", ok, err)
	}

	if err := store.Set(ctx, sess); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, ok, err := store.Get(ctx, sess.Key)
	if err != nil || !ok {
		t.Fatalf("get after set returned ok=%v err=%v", ok, err)
	}
	if *got != *sess {
		t.Fatalf("stored session mismatch:\n got %+v\nwant %+v", got, sess)
	}

	if err := store.Delete(ctx, sess.Key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := store.Get(ctx, sess.Key); ok {
		t.Fatal("session survived delete")
	}
	if err := store.Delete(ctx, sess.Key); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestRedisStoreEntryExpiresWithSession(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)
	sess := liveSession(t)

	if err := store.Set(ctx, sess); err != nil {
		t.Fatalf("set: %v", err)
	}

	ttl := mr.TTL(store.key(sess.Key))
	if ttl <= 0 || ttl > 20*time.Minute {
		t.Fatalf("unexpected redis ttl: %v", ttl)
	}

	mr.FastForward(21 * time.Minute)
	if _, ok, _ := store.Get(ctx, sess.Key); ok {
		t.Fatal("session outlived its ttl")
	}
}

func TestRedisStoreSkipsAlreadyExpiredSession(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	sess := sampleSession()
	sess.TimeExpire = time.Now().UTC().Add(-time.Minute)

	if err := store.Set(ctx, sess); err != nil {
		t.Fatalf("set: %v", err)
	}
	if mr.Exists(store.key(sess.Key)) {
		t.Fatal("expired session was written to redis")
	}
}

func TestRedisStoreReportsBackendDown(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)
	mr.Close()

	if _, _, err := store.Get(ctx, "any"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if err := store.Set(ctx, liveSession(t)); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if err := store.Delete(ctx, "any"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
