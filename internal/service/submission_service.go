package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/ottodot/mathpal-backend/internal/config"
	"github.com/ottodot/mathpal-backend/internal/llm"
	"github.com/ottodot/mathpal-backend/internal/model"
	"github.com/ottodot/mathpal-backend/internal/problemgen"
)

// SubmissionService grades an answer against its session, requests AI
// feedback, and records the attempt.
type SubmissionService struct {
	provider     llm.Provider
	sessions     SessionStore
	submissions  SubmissionStore
	locker       Locker
	lockTTL      time.Duration
	timeout      time.Duration
	maxTokens    int
	persistHints bool
	log          zerolog.Logger
}

func NewSubmissionService(
	provider llm.Provider,
	sessions SessionStore,
	submissions SubmissionStore,
	locker Locker,
	lockTTL time.Duration,
	timeout time.Duration,
	maxTokens int,
	persistHints bool,
	log zerolog.Logger,
) *SubmissionService {
	return &SubmissionService{
		provider:     provider,
		sessions:     sessions,
		submissions:  submissions,
		locker:       locker,
		lockTTL:      lockTTL,
		timeout:      timeout,
		maxTokens:    maxTokens,
		persistHints: persistHints,
		log:          log.With().Str("component", "submission_service").Logger(),
	}
}

// Submit grades userAnswer against the session's stored answer, asks the
// LLM for feedback, and persists the submission. Correctness is computed
// here and never trusted from the client. A missing session fails closed:
// no row is written.
func (s *SubmissionService) Submit(ctx context.Context, sessionID uuid.UUID, userAnswer float64) (*model.SubmissionResult, error) {
	// Guard against double-submission races on the same session.
	lockKey := config.CacheKey.SubmitLockKey(sessionID.String())
	acquired, err := s.locker.Acquire(ctx, lockKey, s.lockTTL)
	if err != nil {
		return nil, fmt.Errorf("acquire submit lock: %w", err)
	}
	if !acquired {
		return nil, ErrSubmissionInProgress
	}
	defer func() {
		if err := s.locker.Release(context.WithoutCancel(ctx), lockKey); err != nil {
			s.log.Warn().Err(err).Str("session_id", sessionID.String()).Msg("submit lock release failed")
		}
	}()

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	isCorrect := userAnswer == session.CorrectAnswer

	feedback, err := s.generateFeedback(ctx, session, userAnswer)
	if err != nil {
		var notCfg *llm.ErrNotConfigured
		if errors.As(err, &notCfg) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrFeedbackFailed, err)
	}

	submission := &model.Submission{
		SessionID:    sessionID,
		UserAnswer:   userAnswer,
		IsCorrect:    isCorrect,
		FeedbackText: feedback.FeedbackText,
	}
	if s.persistHints {
		hint := feedback.Hint
		submission.Hint = &hint
	}
	if err := s.submissions.Create(ctx, submission); err != nil {
		return nil, fmt.Errorf("store submission: %w", err)
	}

	s.log.Info().
		Str("session_id", sessionID.String()).
		Str("submission_id", submission.ID.String()).
		Bool("is_correct", isCorrect).
		Msg("Answer submitted")

	return &model.SubmissionResult{
		Submission:   *submission,
		FeedbackText: feedback.FeedbackText,
		Hint:         feedback.Hint,
	}, nil
}

func (s *SubmissionService) generateFeedback(ctx context.Context, session *model.ProblemSession, userAnswer float64) (*problemgen.Feedback, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prompt := problemgen.BuildFeedbackPrompt(session.ProblemText, session.CorrectAnswer, userAnswer)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      problemgen.FeedbackSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:      problemgen.FeedbackSchema,
		MaxTokens:   s.maxTokens,
		Temperature: 0.5,
	})
	if err != nil {
		return nil, err
	}

	feedback, err := problemgen.ParseFeedback(resp.Text())
	if err != nil {
		logExtractFailure(s.log, err)
		return nil, err
	}
	return feedback, nil
}
