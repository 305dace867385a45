package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ottodot/mathpal-backend/internal/model"
)

// SessionStore is the persistence surface for problem sessions.
// Implemented by repository.SessionRepository.
type SessionStore interface {
	Create(ctx context.Context, s *model.ProblemSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.ProblemSession, error)
	Recent(ctx context.Context, limit int) ([]model.ProblemSession, error)
}

// SubmissionStore is the persistence surface for submissions.
// Implemented by repository.SubmissionRepository.
type SubmissionStore interface {
	Create(ctx context.Context, s *model.Submission) error
}

// Cache is a string-value cache. Implemented by database.RedisCache.
type Cache interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// Locker provides best-effort mutual exclusion with expiring locks.
// Implemented by database.RedisLocker.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// SessionFeed receives newly created sessions for live delivery.
// Implemented by websocket.Feed.
type SessionFeed interface {
	BroadcastSession(s model.ProblemSession)
}
