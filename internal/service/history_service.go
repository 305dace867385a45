package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/ottodot/mathpal-backend/internal/config"
	"github.com/ottodot/mathpal-backend/internal/model"
)

// HistoryService serves the recent-problems view. Results are cached in
// Redis and invalidated whenever a new session is created, so the history
// list reflects fresh problems immediately.
type HistoryService struct {
	sessions SessionStore
	cache    Cache
	limit    int
	ttl      time.Duration
	log      zerolog.Logger
}

func NewHistoryService(sessions SessionStore, cache Cache, limit int, ttl time.Duration, log zerolog.Logger) *HistoryService {
	return &HistoryService{
		sessions: sessions,
		cache:    cache,
		limit:    limit,
		ttl:      ttl,
		log:      log.With().Str("component", "history_service").Logger(),
	}
}

// Recent returns the most recent sessions, newest first. Cache failures
// are logged and the database serves the request.
func (s *HistoryService) Recent(ctx context.Context) ([]model.ProblemSession, error) {
	key := config.CacheKey.HistoryKey(s.limit)

	if cached, found, err := s.cache.Get(ctx, key); err != nil {
		s.log.Warn().Err(err).Msg("history cache read failed")
	} else if found {
		var sessions []model.ProblemSession
		if err := json.Unmarshal([]byte(cached), &sessions); err == nil {
			return sessions, nil
		}
		s.log.Warn().Msg("history cache entry corrupt, refetching")
	}

	sessions, err := s.sessions.Recent(ctx, s.limit)
	if err != nil {
		return nil, err
	}
	if sessions == nil {
		sessions = []model.ProblemSession{}
	}

	if payload, err := json.Marshal(sessions); err == nil {
		if err := s.cache.Set(ctx, key, string(payload), s.ttl); err != nil {
			s.log.Warn().Err(err).Msg("history cache write failed")
		}
	}

	return sessions, nil
}

// Invalidate drops the cached history list. Called after each new session
// so the next read sees it.
func (s *HistoryService) Invalidate(ctx context.Context) error {
	return s.cache.Del(ctx, config.CacheKey.HistoryKey(s.limit))
}

// Prewarm populates the history cache before the server accepts traffic.
func (s *HistoryService) Prewarm(ctx context.Context) error {
	_, err := s.Recent(ctx)
	return err
}
