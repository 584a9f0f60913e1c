package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/quizagent/quizagent-backend/internal/config"
	"github.com/quizagent/quizagent-backend/internal/handler"
	"github.com/quizagent/quizagent-backend/internal/middleware"
	"github.com/quizagent/quizagent-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Proxy   *handler.ProxyHandler
	Session *handler.SessionHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Cap request bodies globally.
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	// Unknown routes keep the flat gateway error shape.
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})

	// Health check (no rate limit).
	router.GET("/health", handlers.Proxy.Health)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)

	// ─── 1. Gateway Proxy Group (Flat Shapes, Rate Limited) ────────────
	proxyAPI := router.Group("/api")
	proxyAPI.Use(limiter.ProxyMiddleware())
	{
		proxyAPI.POST("/analyze", handlers.Proxy.Analyze)
		proxyAPI.POST("/extract-terms", handlers.Proxy.ExtractTerms)
		proxyAPI.POST("/generate-questions", handlers.Proxy.GenerateQuestions)
	}

	// ─── 2. Session Group (Envelope Responses) ─────────────────────────
	sessionAPI := router.Group("/api/v1/sessions")
	{
		sessionAPI.POST("", handlers.Session.Create)
		sessionAPI.GET("/:id", handlers.Session.Get)
		sessionAPI.POST("/:id/document", handlers.Session.UploadDocument)
		sessionAPI.PUT("/:id/question-count", handlers.Session.SetQuestionCount)
		sessionAPI.POST("/:id/answers", handlers.Session.SubmitAnswer)
		sessionAPI.POST("/:id/next", handlers.Session.Advance)
		sessionAPI.POST("/:id/retry", handlers.Session.Retry)
		sessionAPI.POST("/:id/reset", handlers.Session.Reset)
		sessionAPI.GET("/:id/results", handlers.Session.Results)
		sessionAPI.GET("/:id/terms/export", handlers.Session.ExportTerms)

		// Model pipelines share the per-IP budget with the proxy group.
		sessionAPI.POST("/:id/analyze", limiter.Middleware(), handlers.Session.Analyze)
		sessionAPI.POST("/:id/generate", limiter.Middleware(), handlers.Session.Generate)
	}

	return router
}
