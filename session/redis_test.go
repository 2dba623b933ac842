// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
)

var _ scs.CtxStore = (*RedisStore)(nil)

// Runs against a live redis, set TEST_REDIS_ADDR=localhost:6379
func setupRedisStore(t *testing.T) *RedisStore {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}

	store, err := NewRedisStore(context.Background(), addr)
	if err != nil {
		t.Fatalf("Failed to connect to redis: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store := setupRedisStore(t)
	ctx := context.Background()
	token := "round-trip-" + t.Name()

	if err := store.CommitCtx(ctx, token, []byte("payload"), time.Now().Add(time.Minute)); err != nil {
		t.Fatalf("CommitCtx() error = %v", err)
	}

	got, found, err := store.FindCtx(ctx, token)
	if err != nil {
		t.Fatalf("FindCtx() error = %v", err)
	}
	if !found || string(got) != "payload" {
		t.Errorf("Expected stored payload, got %q (found=%v)", got, found)
	}

	if err := store.DeleteCtx(ctx, token); err != nil {
		t.Fatalf("DeleteCtx() error = %v", err)
	}
	if _, found, err := store.FindCtx(ctx, token); err != nil || found {
		t.Errorf("Expected session to be gone, found=%v err=%v", found, err)
	}
}

func TestRedisStore_CommitPastExpiryDeletes(t *testing.T) {
	store := setupRedisStore(t)
	ctx := context.Background()
	token := "expired-" + t.Name()

	_ = store.CommitCtx(ctx, token, []byte("payload"), time.Now().Add(time.Minute))
	if err := store.CommitCtx(ctx, token, []byte("payload"), time.Now().Add(-time.Second)); err != nil {
		t.Fatalf("CommitCtx() error = %v", err)
	}

	if _, found, _ := store.FindCtx(ctx, token); found {
		t.Error("Expected expired commit to remove the session")
	}
}

func TestManager_WithRedisStore(t *testing.T) {
	store := setupRedisStore(t)
	manager := NewManager(store, time.Minute, false)

	w := serve(manager, nil, func(sess *Session) {
		sess.RandomPlay().Resolve(3)
	})
	cookie := sessionCookie(t, w)

	var score int
	serve(manager, cookie, func(sess *Session) {
		score = sess.RandomPlayScore()
	})
	if score != 1 {
		t.Errorf("Expected score 1 from redis, got %d", score)
	}
}
