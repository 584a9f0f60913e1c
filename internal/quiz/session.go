// Package quiz implements the five-stage quiz workflow state machine and
// the scoring rules that run over a generated question set.
package quiz

import (
	"errors"
	"sync"
	"time"

	"github.com/quizagent/quizagent-backend/internal/model"
)

// Stage is one phase of the session workflow.
type Stage string

const (
	StageUpload     Stage = "upload"
	StageAnalyze    Stage = "analyze"
	StageGenerating Stage = "generating"
	StageQuiz       Stage = "quiz"
	StageResults    Stage = "results"
)

// DefaultQuestionCount is used when the analysis carries no recommendation.
const DefaultQuestionCount = 10

var (
	ErrWrongStage       = errors.New("operation not valid in current stage")
	ErrAnalysisRequired = errors.New("document analysis required")
	ErrCountOutOfRange  = errors.New("question count outside suggested range")
	ErrNoSelection      = errors.New("no answer selected")
	ErrInvalidOption    = errors.New("selected option is not a valid label")
	ErrNotAnswered      = errors.New("current question has not been answered")
	ErrNoIncorrect      = errors.New("no incorrect questions to retry")
	ErrNoTerms          = errors.New("no terms have been extracted")
)

// Session is the aggregate state of one quiz workflow.
// All mutating methods assume the caller holds the session lock
// (store.Store serializes access per session).
type Session struct {
	mu sync.Mutex

	ID       string
	Stage    Stage
	Document *model.Document
	Analysis *model.DocumentAnalysis
	Terms    []model.TermEntry

	SelectedQuestionCount int
	Questions             []model.Question
	CurrentIndex          int

	SelectedAnswer  string
	ShowExplanation bool
	Explanation     string

	Answers   map[int]model.AnswerRecord
	Score     int
	Completed map[int]struct{}
	Incorrect map[int]struct{}

	Progress  int
	Status    string
	Loading   bool
	LastError string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSession creates a session in its initial (upload) state.
func NewSession(id string) *Session {
	s := &Session{ID: id, CreatedAt: time.Now()}
	s.reset()
	return s
}

// Lock serializes operations on this session. One logical thread of
// control per session: no operation runs in parallel with another.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session.
func (s *Session) Unlock() { s.mu.Unlock() }

// Reset returns every field to its documented initial value. Valid from
// any stage and idempotent.
func (s *Session) Reset() {
	s.reset()
}

func (s *Session) reset() {
	s.Stage = StageUpload
	s.Document = nil
	s.Analysis = nil
	s.Terms = nil
	s.SelectedQuestionCount = DefaultQuestionCount
	s.Questions = nil
	s.CurrentIndex = 0
	s.SelectedAnswer = ""
	s.ShowExplanation = false
	s.Explanation = ""
	s.Answers = make(map[int]model.AnswerRecord)
	s.Score = 0
	s.Completed = make(map[int]struct{})
	s.Incorrect = make(map[int]struct{})
	s.Progress = 0
	s.Status = ""
	s.Loading = false
	s.LastError = ""
	s.touch()
}

// AttachDocument stores the ingested document and moves the session from
// upload to analyze.
func (s *Session) AttachDocument(doc *model.Document) error {
	if s.Stage != StageUpload {
		return ErrWrongStage
	}
	s.Document = doc
	s.Stage = StageAnalyze
	s.LastError = ""
	s.touch()
	return nil
}

// SetTerms stores the extracted vocabulary. Extraction is best-effort and
// independent of analysis success, so terms are stored as soon as the
// extraction step completes.
func (s *Session) SetTerms(terms []model.TermEntry) {
	s.Terms = terms
	s.touch()
}

// ApplyAnalysis stores a completed analysis and initializes the selected
// question count from its recommendation.
func (s *Session) ApplyAnalysis(a *model.DocumentAnalysis) error {
	if s.Stage != StageAnalyze {
		return ErrWrongStage
	}
	s.Analysis = a
	if a.SuggestedQuestions.Recommended > 0 {
		s.SelectedQuestionCount = a.SuggestedQuestions.Recommended
	} else {
		s.SelectedQuestionCount = DefaultQuestionCount
	}
	s.LastError = ""
	s.touch()
	return nil
}

// SetQuestionCount adjusts the selected count. Values outside the
// suggested [min, max] range are rejected, not clamped.
func (s *Session) SetQuestionCount(n int) error {
	if s.Analysis == nil {
		return ErrAnalysisRequired
	}
	sq := s.Analysis.SuggestedQuestions
	if n < sq.Min || n > sq.Max {
		return ErrCountOutOfRange
	}
	s.SelectedQuestionCount = n
	s.touch()
	return nil
}

// BeginGeneration enters the generating stage. Also valid when already
// generating, so a failed generation can be retried in place.
func (s *Session) BeginGeneration() error {
	if s.Stage != StageAnalyze && s.Stage != StageGenerating {
		return ErrWrongStage
	}
	if s.Analysis == nil {
		return ErrAnalysisRequired
	}
	s.Stage = StageGenerating
	s.LastError = ""
	s.touch()
	return nil
}

// ApplyQuestions stores a generated question set and enters the quiz stage
// with all counters at their initial values.
func (s *Session) ApplyQuestions(qs []model.Question) error {
	if s.Stage != StageGenerating {
		return ErrWrongStage
	}
	s.Questions = qs
	s.CurrentIndex = 0
	s.SelectedAnswer = ""
	s.ShowExplanation = false
	s.Explanation = ""
	s.Answers = make(map[int]model.AnswerRecord)
	s.Score = 0
	s.Completed = make(map[int]struct{})
	s.Incorrect = make(map[int]struct{})
	s.Stage = StageQuiz
	s.Progress = 0
	s.LastError = ""
	s.touch()
	return nil
}

// StartWork flags the session as busy at the start of a pipeline run.
func (s *Session) StartWork() {
	s.Loading = true
	s.LastError = ""
	s.Progress = 0
	s.Status = ""
	s.touch()
}

// SetProgress records a pipeline checkpoint with its status narrative.
func (s *Session) SetProgress(pct int, status string) {
	s.Progress = pct
	s.Status = status
	s.touch()
}

// FailStage aborts the running pipeline: the error message becomes visible,
// the loading flag reverts, and the stage is left unchanged so the caller
// can retry the same action.
func (s *Session) FailStage(msg string) {
	s.LastError = msg
	s.Loading = false
	s.touch()
}

// FinishWork clears the loading flag after a successful pipeline run.
func (s *Session) FinishWork() {
	s.Loading = false
	s.touch()
}

// CurrentQuestion returns the question at the current index, or nil when
// no question set exists.
func (s *Session) CurrentQuestion() *model.Question {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
		return nil
	}
	q := s.Questions[s.CurrentIndex]
	return &q
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now()
}
