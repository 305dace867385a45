package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestHistoryService_Recent_EmptyIsSliceNotNil(t *testing.T) {
	svc := NewHistoryService(newFakeSessionStore(), newFakeCache(), 10, time.Minute, zerolog.Nop())

	sessions, err := svc.Recent(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sessions == nil {
		t.Fatal("empty history must be a non-nil slice")
	}
	if len(sessions) != 0 {
		t.Errorf("got %d sessions, want 0", len(sessions))
	}
}

func TestHistoryService_Recent_NewestFirstAndLimited(t *testing.T) {
	store := newFakeSessionStore()
	for i := 0; i < 12; i++ {
		seedSession(t, store, float64(i))
	}
	svc := NewHistoryService(store, newFakeCache(), 10, time.Minute, zerolog.Nop())

	sessions, err := svc.Recent(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sessions) != 10 {
		t.Fatalf("got %d sessions, want 10", len(sessions))
	}
	if sessions[0].CorrectAnswer != 11 {
		t.Errorf("newest session first: got answer %v, want 11", sessions[0].CorrectAnswer)
	}
}

func TestHistoryService_Recent_SecondReadServedFromCache(t *testing.T) {
	store := newFakeSessionStore()
	seedSession(t, store, 72)
	cache := newFakeCache()
	svc := NewHistoryService(store, cache, 10, time.Minute, zerolog.Nop())

	if _, err := svc.Recent(context.Background()); err != nil {
		t.Fatalf("first read: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("cache writes: got %d, want 1", cache.sets)
	}

	sessions, err := svc.Recent(context.Background())
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if len(sessions) != 1 {
		t.Errorf("got %d sessions, want 1", len(sessions))
	}
	if cache.sets != 1 {
		t.Error("cache hit must not rewrite the entry")
	}
}

func TestHistoryService_Recent_CacheFailureFallsBackToDB(t *testing.T) {
	store := newFakeSessionStore()
	seedSession(t, store, 72)
	cache := newFakeCache()
	cache.getErr = errors.New("redis down")
	svc := NewHistoryService(store, cache, 10, time.Minute, zerolog.Nop())

	sessions, err := svc.Recent(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sessions) != 1 {
		t.Errorf("got %d sessions, want 1", len(sessions))
	}
}

func TestHistoryService_Recent_CorruptCacheEntryRefetched(t *testing.T) {
	store := newFakeSessionStore()
	seedSession(t, store, 72)
	cache := newFakeCache()
	svc := NewHistoryService(store, cache, 10, time.Minute, zerolog.Nop())

	// Poison the cache, then read; the corrupt entry is ignored.
	if _, err := svc.Recent(context.Background()); err != nil {
		t.Fatalf("prefill: %v", err)
	}
	for k := range cache.entries {
		cache.entries[k] = "{not json"
	}

	sessions, err := svc.Recent(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sessions) != 1 {
		t.Errorf("got %d sessions, want 1", len(sessions))
	}
}

func TestHistoryService_Invalidate(t *testing.T) {
	store := newFakeSessionStore()
	seedSession(t, store, 72)
	cache := newFakeCache()
	svc := NewHistoryService(store, cache, 10, time.Minute, zerolog.Nop())

	if _, err := svc.Recent(context.Background()); err != nil {
		t.Fatalf("prefill: %v", err)
	}
	if err := svc.Invalidate(context.Background()); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if len(cache.entries) != 0 {
		t.Error("invalidate must drop the cached list")
	}
}

func TestHistoryService_DBErrorPropagates(t *testing.T) {
	store := newFakeSessionStore()
	store.recentErr = errors.New("pg down")
	svc := NewHistoryService(store, newFakeCache(), 10, time.Minute, zerolog.Nop())

	if _, err := svc.Recent(context.Background()); err == nil {
		t.Fatal("expected error when the database read fails")
	}
}
