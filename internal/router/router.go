package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ottodot/mathpal-backend/internal/config"
	"github.com/ottodot/mathpal-backend/internal/handler"
	"github.com/ottodot/mathpal-backend/internal/middleware"
	"github.com/ottodot/mathpal-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Problem    *handler.ProblemHandler
	Submission *handler.SubmissionHandler
	History    *handler.HistoryHandler
	WS         *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for the generation endpoint: each call costs an LLM
	// request, so it gets its own per-IP budget.
	generateLimiter := middleware.NewRateLimiter(cfg.GenerateRatePerMin, time.Minute)

	// ─── API v1 ────────────────────────────────────────────────────────
	api := router.Group("/api/v1")
	{
		api.POST("/generate-problem", generateLimiter.Middleware(), handlers.Problem.GenerateProblem)
		api.POST("/submit-answer", handlers.Submission.SubmitAnswer)
		api.GET("/history", handlers.History.GetHistory)
	}

	// ─── WebSocket ─────────────────────────────────────────────────────
	ws := router.Group("/ws/v1")
	{
		ws.GET("/sessions/feed", handlers.WS.SessionFeedStream)
	}

	return router
}
