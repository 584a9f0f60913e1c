package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quizagent/quizagent-backend/internal/llm"
	"github.com/quizagent/quizagent-backend/internal/service"
)

// ProxyHandler exposes the pass-through model gateway endpoints. These
// keep the flat wire shapes expected by existing browser clients:
// {"response": ...} on success, {"error": ...} on failure.
type ProxyHandler struct {
	gateway        *service.GatewayService
	maxPromptChars int
}

// NewProxyHandler creates a new ProxyHandler.
func NewProxyHandler(gateway *service.GatewayService, maxPromptChars int) *ProxyHandler {
	return &ProxyHandler{
		gateway:        gateway,
		maxPromptChars: maxPromptChars,
	}
}

type promptRequest struct {
	Prompt string `json:"prompt"`
}

// Health godoc
// GET /health
// Liveness probe.
func (h *ProxyHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Analyze godoc
// POST /api/analyze
// Forwards a document-analysis prompt. Enforces the prompt length cap.
func (h *ProxyHandler) Analyze(c *gin.Context) {
	prompt, ok := h.bindPrompt(c)
	if !ok {
		return
	}
	if len(prompt) > h.maxPromptChars {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt too long"})
		return
	}
	h.forward(c, "Analysis failed. Please try again.", h.gateway.Analyze)
}

// ExtractTerms godoc
// POST /api/extract-terms
// Forwards a vocabulary-extraction prompt.
func (h *ProxyHandler) ExtractTerms(c *gin.Context) {
	if _, ok := h.bindPrompt(c); !ok {
		return
	}
	h.forward(c, "Terms extraction failed. Please try again.", h.gateway.ExtractTerms)
}

// GenerateQuestions godoc
// POST /api/generate-questions
// Forwards a question-generation prompt.
func (h *ProxyHandler) GenerateQuestions(c *gin.Context) {
	if _, ok := h.bindPrompt(c); !ok {
		return
	}
	h.forward(c, "Questions generation failed. Please try again.", h.gateway.GenerateQuestions)
}

// bindPrompt reads {"prompt": ...} and rejects blank prompts. The parsed
// prompt is stashed on the context for forward.
func (h *ProxyHandler) bindPrompt(c *gin.Context) (string, bool) {
	var req promptRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required"})
		return "", false
	}
	c.Set("prompt", req.Prompt)
	return req.Prompt, true
}

func (h *ProxyHandler) forward(c *gin.Context, failMsg string, fn func(context.Context, string) (string, error)) {
	prompt := c.GetString("prompt")

	out, err := fn(c.Request.Context(), prompt)
	if err != nil {
		status, msg := mapUpstreamError(err, failMsg)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": out})
}

// mapUpstreamError translates gateway errors into the flat proxy shape.
func mapUpstreamError(err error, failMsg string) (int, string) {
	var (
		rateErr *llm.ErrRateLimit
		authErr *llm.ErrAuth
		badErr  *llm.ErrBadRequest
	)
	switch {
	case errors.As(err, &rateErr):
		return http.StatusTooManyRequests, "API rate limit exceeded. Please try again later."
	case errors.As(err, &authErr):
		return http.StatusInternalServerError, "API authentication failed"
	case errors.As(err, &badErr):
		return http.StatusBadRequest, failMsg
	default:
		return http.StatusInternalServerError, failMsg
	}
}
