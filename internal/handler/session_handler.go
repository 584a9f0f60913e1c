package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quizagent/quizagent-backend/internal/document"
	"github.com/quizagent/quizagent-backend/internal/llm"
	"github.com/quizagent/quizagent-backend/internal/quiz"
	"github.com/quizagent/quizagent-backend/internal/response"
	"github.com/quizagent/quizagent-backend/internal/service"
	"github.com/quizagent/quizagent-backend/internal/store"
	"github.com/quizagent/quizagent-backend/internal/validator"
)

// SessionHandler handles the quiz workflow endpoints.
type SessionHandler struct {
	quizService *service.QuizService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(quizService *service.QuizService) *SessionHandler {
	return &SessionHandler{quizService: quizService}
}

// Create godoc
// POST /api/v1/sessions
// Creates a session in the upload stage.
func (h *SessionHandler) Create(c *gin.Context) {
	v := h.quizService.CreateSession()
	response.Success(c, http.StatusCreated, gin.H{"session": v})
}

// Get godoc
// GET /api/v1/sessions/:id
// Returns the session snapshot.
func (h *SessionHandler) Get(c *gin.Context) {
	v, err := h.quizService.Get(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": v})
}

// UploadDocument godoc
// POST /api/v1/sessions/:id/document
// Accepts a multipart "file" field and moves the session to analyze.
func (h *SessionHandler) UploadDocument(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}

	f, err := fh.Open()
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRead)
		return
	}
	defer f.Close()

	v, err := h.quizService.UploadDocument(c.Param("id"), fh.Filename, f)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": v})
}

// Analyze godoc
// POST /api/v1/sessions/:id/analyze
// Runs the term-extraction and analysis pipeline.
func (h *SessionHandler) Analyze(c *gin.Context) {
	v, err := h.quizService.Analyze(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": v})
}

type questionCountRequest struct {
	Count int `json:"count" binding:"required,min=1"`
}

// SetQuestionCount godoc
// PUT /api/v1/sessions/:id/question-count
// Adjusts the question count within the analysis-suggested range.
func (h *SessionHandler) SetQuestionCount(c *gin.Context) {
	var req questionCountRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	v, err := h.quizService.SetQuestionCount(c.Param("id"), req.Count)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": v})
}

// Generate godoc
// POST /api/v1/sessions/:id/generate
// Runs the question-generation pipeline and enters the quiz stage.
func (h *SessionHandler) Generate(c *gin.Context) {
	v, err := h.quizService.Generate(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": v})
}

type answerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// SubmitAnswer godoc
// POST /api/v1/sessions/:id/answers
// Scores the selected option against the current question.
func (h *SessionHandler) SubmitAnswer(c *gin.Context) {
	var req answerRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	v, err := h.quizService.SubmitAnswer(c.Param("id"), req.Answer)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": v})
}

// Advance godoc
// POST /api/v1/sessions/:id/next
// Moves to the next question, or to results after the last one.
func (h *SessionHandler) Advance(c *gin.Context) {
	v, err := h.quizService.Advance(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": v})
}

// Retry godoc
// POST /api/v1/sessions/:id/retry
// Re-enters the quiz at the lowest-numbered incorrect question.
func (h *SessionHandler) Retry(c *gin.Context) {
	v, err := h.quizService.Retry(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": v})
}

// Reset godoc
// POST /api/v1/sessions/:id/reset
// Clears the session back to the upload stage.
func (h *SessionHandler) Reset(c *gin.Context) {
	v, err := h.quizService.Reset(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": v})
}

// Results godoc
// GET /api/v1/sessions/:id/results
// Returns the final score tally.
func (h *SessionHandler) Results(c *gin.Context) {
	sum, v, err := h.quizService.Results(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"score": sum, "session": v})
}

// ExportTerms godoc
// GET /api/v1/sessions/:id/terms/export
// Downloads the extracted vocabulary as a JSON attachment.
func (h *SessionHandler) ExportTerms(c *gin.Context) {
	export, err := h.quizService.ExportTerms(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	filename := fmt.Sprintf("english_terms_%s.json", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, export)
}

// fail maps service and domain errors onto response codes.
func (h *SessionHandler) fail(c *gin.Context, err error) {
	var (
		emptyErr *document.EmptyFileError
		readErr  *document.ReadError
		rateErr  *llm.ErrRateLimit
		respErr  *llm.ErrInvalidResponse
	)

	switch {
	case errors.Is(err, store.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrSessionNotFound)
	case errors.As(err, &emptyErr):
		response.Fail(c, http.StatusBadRequest, response.ErrEmptyFile)
	case errors.As(err, &readErr):
		response.Fail(c, http.StatusBadRequest, response.ErrFileRead)
	case errors.Is(err, quiz.ErrWrongStage),
		errors.Is(err, service.ErrDocumentRequired):
		response.Fail(c, http.StatusConflict, response.ErrWrongStage)
	case errors.Is(err, service.ErrBusy):
		response.Fail(c, http.StatusConflict, response.ErrBusy)
	case errors.Is(err, quiz.ErrAnalysisRequired):
		response.Fail(c, http.StatusConflict, response.ErrAnalysisRequired)
	case errors.Is(err, quiz.ErrCountOutOfRange):
		response.Fail(c, http.StatusBadRequest, response.ErrCountOutOfRange)
	case errors.Is(err, quiz.ErrNoSelection), errors.Is(err, quiz.ErrNotAnswered):
		response.Fail(c, http.StatusBadRequest, response.ErrNoSelection)
	case errors.Is(err, quiz.ErrInvalidOption):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidOption)
	case errors.Is(err, quiz.ErrNoIncorrect):
		response.Fail(c, http.StatusConflict, response.ErrNoIncorrect)
	case errors.Is(err, quiz.ErrNoTerms):
		response.Fail(c, http.StatusNotFound, response.ErrNoTerms)
	case errors.As(err, &rateErr):
		response.Fail(c, http.StatusTooManyRequests, response.ErrUpstreamLimited)
	case errors.As(err, &respErr):
		response.Fail(c, http.StatusBadGateway, response.ErrMalformedModel)
	case errors.Is(err, service.ErrAnalysisFailed):
		response.Fail(c, http.StatusBadGateway, response.ErrAnalysisFailed)
	case errors.Is(err, service.ErrGenerationFailed):
		response.Fail(c, http.StatusBadGateway, response.ErrGenerationFailed)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
