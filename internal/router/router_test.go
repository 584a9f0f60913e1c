package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/quizagent/quizagent-backend/internal/config"
	"github.com/quizagent/quizagent-backend/internal/handler"
	"github.com/quizagent/quizagent-backend/internal/llm"
	"github.com/quizagent/quizagent-backend/internal/service"
	"github.com/quizagent/quizagent-backend/internal/store"
	"github.com/quizagent/quizagent-backend/internal/validator"
)

func testRouter(rateLimit int) *gin.Engine {
	validator.Setup()
	cfg := &config.Config{
		GinMode:           gin.TestMode,
		MaxBodyBytes:      1 << 20,
		MaxPromptChars:    50000,
		RateLimitRequests: rateLimit,
		RateLimitWindow:   time.Minute,
	}

	provider := llm.NewMockProvider(0)
	log := zerolog.Nop()
	handlers := &Handlers{
		Proxy:   handler.NewProxyHandler(service.NewGatewayService(provider, log), cfg.MaxPromptChars),
		Session: handler.NewSessionHandler(service.NewQuizService(provider, store.New(time.Hour), 0, true, log)),
	}
	return SetupRouter(handlers, cfg)
}

func TestUnknownEndpoint(t *testing.T) {
	r := testRouter(100)
	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	var payload map[string]any
	json.Unmarshal(w.Body.Bytes(), &payload)
	if payload["error"] != "Endpoint not found" {
		t.Fatalf("error = %v", payload["error"])
	}
}

func TestHealthIsNotRateLimited(t *testing.T) {
	r := testRouter(1)
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i, w.Code)
		}
	}
}

func TestProxyRateLimitShape(t *testing.T) {
	r := testRouter(1)

	body := `{"prompt":"Phân tích tài liệu sau"}`
	first := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
	first.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, first)
	if w.Code != http.StatusOK {
		t.Fatalf("first request status = %d (%s)", w.Code, w.Body.String())
	}

	second := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
	second.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, second)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d", w.Code)
	}

	var payload struct {
		Error      string `json:"error"`
		RetryAfter int    `json:"retryAfter"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Error != "Too many requests" {
		t.Fatalf("error = %q", payload.Error)
	}
	if payload.RetryAfter <= 0 || payload.RetryAfter > 60 {
		t.Fatalf("retryAfter = %d", payload.RetryAfter)
	}
}

func TestSessionRoutesWired(t *testing.T) {
	r := testRouter(100)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	var payload struct {
		Data struct {
			Session struct {
				ID string `json:"id"`
			} `json:"session"`
		} `json:"data"`
		Metadata struct {
			RequestID string `json:"request_id"`
		} `json:"metadata"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Data.Session.ID == "" {
		t.Fatal("session id missing")
	}
	if payload.Metadata.RequestID == "" {
		t.Fatal("request id metadata missing")
	}
}
