package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string
	LogFormat  string

	// AllowedOrigins controls HTTP CORS. Empty slice means all origins
	// are permitted (dev default).
	AllowedOrigins []string

	// MaxBodyBytes caps incoming request bodies (proxy and session API).
	MaxBodyBytes int64

	// MaxPromptChars is the maximum prompt length accepted by the
	// /api/analyze proxy endpoint.
	MaxPromptChars int

	// RateLimitRequests per RateLimitWindow, keyed by client IP.
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// LLMProvider selects the gateway implementation: "anthropic" or "mock".
	// When unset, "anthropic" is used if ANTHROPIC_API_KEY is present,
	// otherwise "mock" so the workflow can be exercised without a credential.
	LLMProvider     string
	AnthropicAPIKey string
	LLMModel        string

	// EnableTermExtraction toggles the optional vocabulary extraction step
	// of the analysis pipeline.
	EnableTermExtraction bool

	// ProgressStepDelay is the pause between pipeline progress checkpoints.
	ProgressStepDelay time.Duration

	// MockDelay is the artificial latency of the mock gateway.
	MockDelay time.Duration

	// SessionTTL is how long an idle quiz session is kept in memory.
	SessionTTL time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	cfg := &Config{
		ServerPort:           getEnv("SERVER_PORT", "8080"),
		GinMode:              getEnv("GIN_MODE", "debug"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogFormat:            getEnv("LOG_FORMAT", "pretty"),
		AllowedOrigins:       parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
		MaxBodyBytes:         int64(getEnvInt("MAX_BODY_SIZE_MB", 10)) * 1024 * 1024,
		MaxPromptChars:       getEnvInt("MAX_PROMPT_CHARS", 50000),
		RateLimitRequests:    getEnvInt("RATE_LIMIT_REQUESTS", 10),
		RateLimitWindow:      time.Duration(getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
		LLMProvider:          getEnv("LLM_PROVIDER", ""),
		AnthropicAPIKey:      getEnv("ANTHROPIC_API_KEY", ""),
		LLMModel:             getEnv("LLM_MODEL", "claude-3-haiku-20240307"),
		EnableTermExtraction: getEnvBool("ENABLE_TERM_EXTRACTION", true),
		ProgressStepDelay:    time.Duration(getEnvInt("PROGRESS_STEP_DELAY_MS", 800)) * time.Millisecond,
		MockDelay:            time.Duration(getEnvInt("MOCK_DELAY_MS", 1000)) * time.Millisecond,
		SessionTTL:           time.Duration(getEnvInt("SESSION_TTL_MINUTES", 60)) * time.Minute,
	}

	if cfg.LLMProvider == "" {
		if cfg.AnthropicAPIKey != "" {
			cfg.LLMProvider = "anthropic"
		} else {
			cfg.LLMProvider = "mock"
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
