package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ottodot/mathpal-backend/internal/model"
)

// fakeSessionStore is an in-memory SessionStore.
type fakeSessionStore struct {
	mu        sync.Mutex
	sessions  map[uuid.UUID]model.ProblemSession
	order     []uuid.UUID
	createErr error
	recentErr error
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[uuid.UUID]model.ProblemSession)}
}

func (f *fakeSessionStore) Create(_ context.Context, s *model.ProblemSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	s.ID = uuid.New()
	s.CreatedAt = time.Now()
	f.sessions[s.ID] = *s
	f.order = append(f.order, s.ID)
	return nil
}

func (f *fakeSessionStore) GetByID(_ context.Context, id uuid.UUID) (*model.ProblemSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &s, nil
}

func (f *fakeSessionStore) Recent(_ context.Context, limit int) ([]model.ProblemSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.recentErr != nil {
		return nil, f.recentErr
	}
	var out []model.ProblemSession
	for i := len(f.order) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.sessions[f.order[i]])
	}
	return out, nil
}

func (f *fakeSessionStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sessions)
}

// fakeSubmissionStore is an in-memory SubmissionStore.
type fakeSubmissionStore struct {
	mu          sync.Mutex
	submissions []model.Submission
	createErr   error
}

func (f *fakeSubmissionStore) Create(_ context.Context, s *model.Submission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	s.ID = uuid.New()
	s.CreatedAt = time.Now()
	f.submissions = append(f.submissions, *s)
	return nil
}

func (f *fakeSubmissionStore) last() *model.Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.submissions) == 0 {
		return nil
	}
	s := f.submissions[len(f.submissions)-1]
	return &s
}

func (f *fakeSubmissionStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.submissions)
}

// fakeCache is an in-memory Cache without TTL expiry.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string]string
	gets    int
	sets    int
	dels    int
	getErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]string)}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	if f.getErr != nil {
		return "", false, f.getErr
	}
	v, ok := f.entries[key]
	return v, ok, nil
}

func (f *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	f.entries[key] = value
	return nil
}

func (f *fakeCache) Del(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dels++
	for _, k := range keys {
		delete(f.entries, k)
	}
	return nil
}

// fakeLocker grants or denies locks per configuration.
type fakeLocker struct {
	mu       sync.Mutex
	held     map[string]bool
	denyAll  bool
	releases int
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: make(map[string]bool)}
}

func (f *fakeLocker) Acquire(_ context.Context, key string, _ time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.denyAll || f.held[key] {
		return false, nil
	}
	f.held[key] = true
	return true, nil
}

func (f *fakeLocker) Release(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.held, key)
	f.releases++
	return nil
}

// fakeFeed records broadcast sessions.
type fakeFeed struct {
	mu       sync.Mutex
	sessions []model.ProblemSession
}

func (f *fakeFeed) BroadcastSession(s model.ProblemSession) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions = append(f.sessions, s)
}

func (f *fakeFeed) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sessions)
}
