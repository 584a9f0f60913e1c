package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/quizagent/quizagent-backend/internal/document"
	"github.com/quizagent/quizagent-backend/internal/llm"
	"github.com/quizagent/quizagent-backend/internal/model"
	"github.com/quizagent/quizagent-backend/internal/prompt"
	"github.com/quizagent/quizagent-backend/internal/quiz"
	"github.com/quizagent/quizagent-backend/internal/store"
)

// Domain Errors
var (
	ErrBusy             = errors.New("an operation is already running on this session")
	ErrDocumentRequired = errors.New("session has no document attached")
	ErrAnalysisFailed   = errors.New("document analysis failed")
	ErrGenerationFailed = errors.New("question generation failed")
)

// User-visible pipeline error messages, shown on the session itself.
const (
	msgAnalysisFailed   = "Lỗi phân tích tài liệu. Vui lòng thử lại."
	msgGenerationFailed = "Lỗi tạo câu hỏi. Vui lòng thử lại."
)

// QuizService drives the quiz workflow: document ingestion, the two model
// pipelines, and answer scoring over the in-memory session store.
type QuizService struct {
	provider    llm.Provider
	store       *store.Store
	log         zerolog.Logger
	stepDelay   time.Duration
	extractTerm bool
}

// NewQuizService creates a new QuizService. stepDelay paces pipeline
// progress checkpoints and may be zero.
func NewQuizService(
	provider llm.Provider,
	st *store.Store,
	stepDelay time.Duration,
	extractTerms bool,
	log zerolog.Logger,
) *QuizService {
	return &QuizService{
		provider:    provider,
		store:       st,
		log:         log.With().Str("component", "quiz_service").Logger(),
		stepDelay:   stepDelay,
		extractTerm: extractTerms,
	}
}

// CreateSession registers a fresh session in the upload stage.
func (s *QuizService) CreateSession() quiz.View {
	v := s.store.Create()
	s.log.Info().Str("session_id", v.ID).Msg("session created")
	return v
}

// Get returns the current snapshot of a session.
func (s *QuizService) Get(id string) (quiz.View, error) {
	var v quiz.View
	err := s.store.With(id, func(sess *quiz.Session) error {
		v = sess.View()
		return nil
	})
	return v, err
}

// UploadDocument ingests the uploaded file and moves the session into the
// analyze stage.
func (s *QuizService) UploadDocument(id, filename string, r io.Reader) (quiz.View, error) {
	doc, err := document.Ingest(filename, r)
	if err != nil {
		return quiz.View{}, err
	}

	var v quiz.View
	err = s.store.With(id, func(sess *quiz.Session) error {
		if err := sess.AttachDocument(doc); err != nil {
			return err
		}
		v = sess.View()
		return nil
	})
	if err != nil {
		return quiz.View{}, err
	}

	s.log.Info().
		Str("session_id", id).
		Str("filename", doc.Filename).
		Int64("size", doc.Size).
		Msg("document uploaded")
	return v, nil
}

// Analyze runs the analysis pipeline: optional term extraction, then
// summarization. Term extraction is best-effort; its failure is absorbed
// and the analysis continues. A failed or malformed analysis leaves the
// session in the analyze stage with no analysis stored, ready for retry.
func (s *QuizService) Analyze(ctx context.Context, id string) (quiz.View, error) {
	var content string
	err := s.store.With(id, func(sess *quiz.Session) error {
		if sess.Loading {
			return ErrBusy
		}
		if sess.Stage != quiz.StageAnalyze {
			return quiz.ErrWrongStage
		}
		if sess.Document == nil {
			return ErrDocumentRequired
		}
		content = sess.Document.Content
		sess.StartWork()
		sess.SetProgress(10, "Bắt đầu phân tích tài liệu...")
		return nil
	})
	if err != nil {
		return quiz.View{}, err
	}

	if s.extractTerm {
		s.extractTerms(ctx, id, content)
	}

	s.checkpoint(ctx, id, 60, "Đang phân tích cấu trúc và nội dung...")

	raw, err := s.provider.Complete(ctx, llm.Request{
		Prompt:      prompt.AnalyzeDocument(content),
		MaxTokens:   2000,
		Temperature: 0.7,
	})
	if err != nil {
		s.log.Error().Err(err).Str("session_id", id).Msg("analysis request failed")
		s.failPipeline(id, msgAnalysisFailed, "Lỗi phân tích tài liệu")
		return quiz.View{}, fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}

	s.checkpoint(ctx, id, 80, "Đang xử lý kết quả phân tích...")

	analysis, err := quiz.ParseAnalysis(raw)
	if err != nil {
		s.log.Error().Err(err).Str("session_id", id).Msg("analysis response malformed")
		s.failPipeline(id, msgAnalysisFailed, "Lỗi phân tích tài liệu")
		return quiz.View{}, fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}

	var v quiz.View
	err = s.store.With(id, func(sess *quiz.Session) error {
		if err := sess.ApplyAnalysis(analysis); err != nil {
			return err
		}
		sess.SetProgress(100, "Hoàn thành phân tích thành công!")
		sess.FinishWork()
		v = sess.View()
		return nil
	})
	if err != nil {
		return quiz.View{}, err
	}

	s.log.Info().
		Str("session_id", id).
		Str("difficulty", analysis.Difficulty).
		Int("recommended", analysis.SuggestedQuestions.Recommended).
		Msg("analysis complete")
	return v, nil
}

// extractTerms runs the best-effort vocabulary extraction step. Failures
// are logged and reported through the progress status only.
func (s *QuizService) extractTerms(ctx context.Context, id, content string) {
	s.checkpoint(ctx, id, 20, "Đang trích xuất thuật ngữ tiếng Anh...")

	raw, err := s.provider.Complete(ctx, llm.Request{
		Prompt:      prompt.ExtractTerms(content),
		MaxTokens:   1500,
		Temperature: 0.5,
	})
	var terms []model.TermEntry
	if err == nil {
		terms, err = quiz.ParseTerms(raw)
	}
	if err != nil {
		s.log.Warn().Err(err).Str("session_id", id).Msg("term extraction failed, continuing")
		s.checkpoint(ctx, id, 40, "Lỗi trích xuất thuật ngữ, tiếp tục phân tích...")
		return
	}

	_ = s.store.With(id, func(sess *quiz.Session) error {
		sess.SetTerms(terms)
		sess.SetProgress(40, fmt.Sprintf("Tìm thấy %d thuật ngữ tiếng Anh", len(terms)))
		return nil
	})
	s.pace(ctx)
}

// SetQuestionCount adjusts the number of questions to generate, bounded by
// the analysis suggestion.
func (s *QuizService) SetQuestionCount(id string, n int) (quiz.View, error) {
	var v quiz.View
	err := s.store.With(id, func(sess *quiz.Session) error {
		if err := sess.SetQuestionCount(n); err != nil {
			return err
		}
		v = sess.View()
		return nil
	})
	return v, err
}

// Generate runs the question-generation pipeline. On failure the session
// stays in the generating stage so the same call can be retried.
func (s *QuizService) Generate(ctx context.Context, id string) (quiz.View, error) {
	var (
		content    string
		count      int
		topics     []string
		difficulty string
	)
	err := s.store.With(id, func(sess *quiz.Session) error {
		if sess.Loading {
			return ErrBusy
		}
		if err := sess.BeginGeneration(); err != nil {
			return err
		}
		content = sess.Document.Content
		count = sess.SelectedQuestionCount
		topics = sess.Analysis.MainTopics
		difficulty = sess.Analysis.Difficulty
		sess.StartWork()
		sess.SetProgress(20, "Đang chuẩn bị tạo câu hỏi...")
		return nil
	})
	if err != nil {
		return quiz.View{}, err
	}
	s.pace(ctx)

	s.checkpoint(ctx, id, 60, fmt.Sprintf("Đang tạo %d câu hỏi từ AI...", count))

	raw, err := s.provider.Complete(ctx, llm.Request{
		Prompt:      prompt.GenerateQuestions(content, count, topics, difficulty),
		MaxTokens:   3000,
		Temperature: 0.8,
	})
	if err != nil {
		s.log.Error().Err(err).Str("session_id", id).Msg("generation request failed")
		s.failPipeline(id, msgGenerationFailed, "Lỗi tạo câu hỏi")
		return quiz.View{}, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	s.checkpoint(ctx, id, 90, "Đang xử lý và kiểm tra câu hỏi...")

	questions, err := quiz.ParseQuestions(raw)
	if err != nil {
		s.log.Error().Err(err).Str("session_id", id).Msg("generation response malformed")
		s.failPipeline(id, msgGenerationFailed, "Lỗi tạo câu hỏi")
		return quiz.View{}, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	var v quiz.View
	err = s.store.With(id, func(sess *quiz.Session) error {
		if err := sess.ApplyQuestions(questions); err != nil {
			return err
		}
		sess.SetProgress(100, fmt.Sprintf("Hoàn thành! Đã tạo %d câu hỏi", len(questions)))
		sess.FinishWork()
		v = sess.View()
		return nil
	})
	if err != nil {
		return quiz.View{}, err
	}

	s.log.Info().
		Str("session_id", id).
		Int("questions", len(questions)).
		Msg("question set generated")
	return v, nil
}

// SubmitAnswer scores the selected option against the current question.
func (s *QuizService) SubmitAnswer(id, selected string) (quiz.View, error) {
	var v quiz.View
	err := s.store.With(id, func(sess *quiz.Session) error {
		if _, err := sess.SubmitAnswer(selected); err != nil {
			return err
		}
		v = sess.View()
		return nil
	})
	return v, err
}

// Advance moves to the next question, or to results after the last one.
func (s *QuizService) Advance(id string) (quiz.View, error) {
	var v quiz.View
	err := s.store.With(id, func(sess *quiz.Session) error {
		if err := sess.Advance(); err != nil {
			return err
		}
		v = sess.View()
		return nil
	})
	return v, err
}

// Retry re-enters the quiz at the lowest-numbered incorrect question.
func (s *QuizService) Retry(id string) (quiz.View, error) {
	var v quiz.View
	err := s.store.With(id, func(sess *quiz.Session) error {
		if err := sess.RetryIncorrect(); err != nil {
			return err
		}
		v = sess.View()
		return nil
	})
	return v, err
}

// Reset returns the session to the upload stage with all state cleared.
func (s *QuizService) Reset(id string) (quiz.View, error) {
	var v quiz.View
	err := s.store.With(id, func(sess *quiz.Session) error {
		sess.Reset()
		v = sess.View()
		return nil
	})
	return v, err
}

// Results returns the final tally alongside the session snapshot.
func (s *QuizService) Results(id string) (quiz.ScoreSummary, quiz.View, error) {
	var (
		sum quiz.ScoreSummary
		v   quiz.View
	)
	err := s.store.With(id, func(sess *quiz.Session) error {
		if sess.Stage != quiz.StageResults {
			return quiz.ErrWrongStage
		}
		sum = sess.FinalScore()
		v = sess.View()
		return nil
	})
	return sum, v, err
}

// ExportTerms builds the downloadable vocabulary artifact.
func (s *QuizService) ExportTerms(id string) (*model.TermsExport, error) {
	var export *model.TermsExport
	err := s.store.With(id, func(sess *quiz.Session) error {
		e, err := sess.ExportTerms()
		if err != nil {
			return err
		}
		export = e
		return nil
	})
	return export, err
}

// checkpoint records a progress update and paces the pipeline.
func (s *QuizService) checkpoint(ctx context.Context, id string, pct int, status string) {
	_ = s.store.With(id, func(sess *quiz.Session) error {
		sess.SetProgress(pct, status)
		return nil
	})
	s.pace(ctx)
}

func (s *QuizService) failPipeline(id, lastError, status string) {
	_ = s.store.With(id, func(sess *quiz.Session) error {
		sess.FailStage(lastError)
		sess.SetProgress(0, status)
		return nil
	})
}

func (s *QuizService) pace(ctx context.Context) {
	if s.stepDelay <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(s.stepDelay):
	}
}
