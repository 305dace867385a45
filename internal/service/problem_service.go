package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ottodot/mathpal-backend/internal/extract"
	"github.com/ottodot/mathpal-backend/internal/llm"
	"github.com/ottodot/mathpal-backend/internal/model"
	"github.com/ottodot/mathpal-backend/internal/problemgen"
)

// ProblemService generates math word problems and persists them as
// sessions. Nothing is persisted unless extraction and validation passed.
type ProblemService struct {
	provider  llm.Provider
	sessions  SessionStore
	history   *HistoryService
	feed      SessionFeed
	timeout   time.Duration
	maxTokens int
	log       zerolog.Logger
}

func NewProblemService(
	provider llm.Provider,
	sessions SessionStore,
	history *HistoryService,
	feed SessionFeed,
	timeout time.Duration,
	maxTokens int,
	log zerolog.Logger,
) *ProblemService {
	return &ProblemService{
		provider:  provider,
		sessions:  sessions,
		history:   history,
		feed:      feed,
		timeout:   timeout,
		maxTokens: maxTokens,
		log:       log.With().Str("component", "problem_service").Logger(),
	}
}

// Generate asks the LLM for one Primary 5 word problem, validates it, and
// stores it as a new session. The returned session carries the assigned
// ID and timestamp.
func (s *ProblemService) Generate(ctx context.Context) (*model.ProblemSession, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      problemgen.GenerateSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: problemgen.BuildGeneratePrompt()}},
		Schema:      problemgen.ProblemSchema,
		MaxTokens:   s.maxTokens,
		Temperature: 0.7,
	})
	if err != nil {
		var notCfg *llm.ErrNotConfigured
		if errors.As(err, &notCfg) {
			return nil, err
		}
		s.log.Error().Err(err).Msg("LLM generation failed")
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	problem, err := problemgen.ParseProblem(resp.Text())
	if err != nil {
		// Raw completion goes to logs only; API callers get a generic error.
		logExtractFailure(s.log, err)
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	session := &model.ProblemSession{
		ProblemText:   problem.ProblemText,
		CorrectAnswer: problem.FinalAnswer,
		Difficulty:    problem.Difficulty,
		ProblemType:   problem.ProblemType,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	if s.history != nil {
		if err := s.history.Invalidate(ctx); err != nil {
			s.log.Warn().Err(err).Msg("history cache invalidation failed")
		}
	}
	if s.feed != nil {
		s.feed.BroadcastSession(*session)
	}

	s.log.Info().
		Str("session_id", session.ID.String()).
		Str("difficulty", string(session.Difficulty)).
		Str("problem_type", session.ProblemType).
		Int("tokens", resp.Usage.TotalTokens).
		Msg("Problem generated")

	return session, nil
}

// logExtractFailure logs extraction failures with the raw completion so a
// bad model response can be diagnosed without leaking it to callers.
func logExtractFailure(log zerolog.Logger, err error) {
	var exErr *extract.ExtractionError
	if errors.As(err, &exErr) {
		log.Error().Str("reason", exErr.Reason).Str("raw", exErr.Raw).Msg("completion extraction failed")
		return
	}
	var valErr *extract.ValidationError
	if errors.As(err, &valErr) {
		log.Error().
			Str("field", valErr.Field).
			Str("expected", valErr.Expected).
			Str("actual", valErr.Actual).
			Msg("completion validation failed")
		return
	}
	log.Error().Err(err).Msg("completion parse failed")
}
