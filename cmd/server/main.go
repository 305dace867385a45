package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/ottodot/mathpal-backend/internal/config"
	"github.com/ottodot/mathpal-backend/internal/database"
	"github.com/ottodot/mathpal-backend/internal/handler"
	"github.com/ottodot/mathpal-backend/internal/llm"
	"github.com/ottodot/mathpal-backend/internal/logger"
	"github.com/ottodot/mathpal-backend/internal/repository"
	"github.com/ottodot/mathpal-backend/internal/router"
	"github.com/ottodot/mathpal-backend/internal/service"
	"github.com/ottodot/mathpal-backend/internal/validator"
	ws "github.com/ottodot/mathpal-backend/internal/websocket"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("llm_provider", cfg.LLMProvider).
		Msg("Starting MathPal Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize LLM Provider ───────────────────────────────────────
	// A missing API key must not stop the server: the unconfigured
	// provider surfaces the problem on the generation endpoints instead.
	provider := buildProvider(ctx, cfg, log)

	// ─── Initialize Repositories ───────────────────────────────────────
	sessionRepo := repository.NewSessionRepository(pool)
	submissionRepo := repository.NewSubmissionRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	cache := database.NewRedisCache(rdb)
	locker := database.NewRedisLocker(rdb)
	feed := ws.NewFeed(log)

	historyService := service.NewHistoryService(sessionRepo, cache, cfg.HistoryLimit, cfg.HistoryCacheTTL, log)
	problemService := service.NewProblemService(provider, sessionRepo, historyService, feed, cfg.LLMTimeout, cfg.LLMMaxTokens, log)
	submissionService := service.NewSubmissionService(
		provider, sessionRepo, submissionRepo, locker,
		cfg.SubmitLockTTL, cfg.LLMTimeout, cfg.LLMMaxTokens, cfg.PersistHints, log,
	)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Problem:    handler.NewProblemHandler(problemService),
		Submission: handler.NewSubmissionHandler(submissionService),
		History:    handler.NewHistoryHandler(historyService),
		WS:         handler.NewWSHandler(feed, log, cfg.AllowedOrigins),
	}

	// ─── Prewarm Redis Caches ─────────────────────────────────────────
	// Load the recent history into Redis BEFORE accepting traffic so the
	// first page view never races the cache fill.
	if err := historyService.Prewarm(ctx); err != nil {
		log.Warn().Err(err).Msg("Cache prewarm failed")
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// buildProvider assembles the LLM provider from config. A provider whose
// key is missing degrades to one that fails per request, so the rest of
// the API stays up.
func buildProvider(ctx context.Context, cfg *config.Config, log zerolog.Logger) llm.Provider {
	llmCfg := llm.Config{
		Provider: cfg.LLMProvider,
		Gemini: llm.GeminiConfig{
			APIKey: cfg.GeminiAPIKey,
			Model:  cfg.GeminiModel,
		},
		OpenAI: llm.OpenAIConfig{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			BaseURL: cfg.OpenAIBaseURL,
		},
		Anthropic: llm.AnthropicConfig{
			APIKey: cfg.AnthropicKey,
			Model:  cfg.AnthropicModel,
		},
		Retry: llm.RetryConfig{
			MaxAttempts: cfg.LLMMaxAttempts,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
	}

	provider, err := llm.NewProvider(ctx, llmCfg)
	if err != nil {
		var notCfg *llm.ErrNotConfigured
		if errors.As(err, &notCfg) {
			log.Warn().
				Str("provider", cfg.LLMProvider).
				Msg("LLM provider not configured; generation endpoints will return errors")
			return llm.NewUnconfigured(cfg.LLMProvider)
		}
		log.Fatal().Err(err).Msg("Failed to initialize LLM provider")
	}
	return provider
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
