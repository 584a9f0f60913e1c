package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/quizagent/quizagent-backend/internal/config"
	"github.com/quizagent/quizagent-backend/internal/handler"
	"github.com/quizagent/quizagent-backend/internal/llm"
	"github.com/quizagent/quizagent-backend/internal/logger"
	"github.com/quizagent/quizagent-backend/internal/router"
	"github.com/quizagent/quizagent-backend/internal/service"
	"github.com/quizagent/quizagent-backend/internal/store"
	"github.com/quizagent/quizagent-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("provider", cfg.LLMProvider).
		Msg("Starting QuizAgent Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	// ─── Initialize Model Gateway ──────────────────────────────────────
	provider, err := llm.New(llm.Options{
		Provider: cfg.LLMProvider,
		Anthropic: llm.AnthropicConfig{
			APIKey: cfg.AnthropicAPIKey,
			Model:  cfg.LLMModel,
		},
		MockDelay: cfg.MockDelay,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize model gateway")
	}
	log.Info().Str("gateway", provider.Name()).Msg("Model gateway ready")

	// ─── Initialize Session Store ──────────────────────────────────────
	sessionStore := store.New(cfg.SessionTTL)

	janitorCtx, janitorCancel := context.WithCancel(context.Background())
	go sessionStore.StartJanitor(janitorCtx, time.Minute)

	// ─── Initialize Services ──────────────────────────────────────────
	gatewayService := service.NewGatewayService(provider, log)
	quizService := service.NewQuizService(provider, sessionStore, cfg.ProgressStepDelay, cfg.EnableTermExtraction, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Proxy:   handler.NewProxyHandler(gatewayService, cfg.MaxPromptChars),
		Session: handler.NewSessionHandler(quizService),
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

	janitorCancel()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
