package quiz

import (
	"reflect"
	"testing"

	"github.com/quizagent/quizagent-backend/internal/model"
)

func testDocument() *model.Document {
	return &model.Document{Filename: "notes.txt", Content: "some study notes", Size: 16}
}

func testAnalysis() *model.DocumentAnalysis {
	return &model.DocumentAnalysis{
		Summary:    "Tóm tắt",
		MainTopics: []string{"T1", "T2"},
		SuggestedQuestions: model.SuggestedQuestions{
			Min: 5, Max: 15, Recommended: 10,
		},
		Difficulty:    model.DifficultyMedium,
		EstimatedTime: "15-20 phút",
	}
}

func testAnalysisTerms() []model.TermEntry {
	return []model.TermEntry{
		{English: "Algorithm", Vietnamese: "Thuật toán", Category: "CS"},
		{English: "Database", Vietnamese: "Cơ sở dữ liệu", Category: "CS"},
	}
}

func testQuestions(n int) []model.Question {
	qs := make([]model.Question, n)
	for i := range qs {
		qs[i] = model.Question{
			ID:       i + 1,
			Question: "Q?",
			Options: map[string]string{
				"A": "a", "B": "b", "C": "c", "D": "d",
			},
			CorrectAnswer: "A",
			Explanation:   "vì A đúng",
		}
	}
	return qs
}

// quizSession builds a session that has reached the quiz stage with n
// questions.
func quizSession(t *testing.T, n int) *Session {
	t.Helper()
	s := NewSession("test")
	if err := s.AttachDocument(testDocument()); err != nil {
		t.Fatalf("AttachDocument: %v", err)
	}
	if err := s.ApplyAnalysis(testAnalysis()); err != nil {
		t.Fatalf("ApplyAnalysis: %v", err)
	}
	if err := s.BeginGeneration(); err != nil {
		t.Fatalf("BeginGeneration: %v", err)
	}
	if err := s.ApplyQuestions(testQuestions(n)); err != nil {
		t.Fatalf("ApplyQuestions: %v", err)
	}
	return s
}

func TestNewSessionInitialState(t *testing.T) {
	s := NewSession("abc")
	if s.Stage != StageUpload {
		t.Fatalf("stage = %q, want %q", s.Stage, StageUpload)
	}
	if s.SelectedQuestionCount != DefaultQuestionCount {
		t.Fatalf("count = %d, want %d", s.SelectedQuestionCount, DefaultQuestionCount)
	}
	if s.Score != 0 || len(s.Answers) != 0 || s.Loading {
		t.Fatal("counters not at initial values")
	}
}

func TestAttachDocumentAdvancesStage(t *testing.T) {
	s := NewSession("abc")
	if err := s.AttachDocument(testDocument()); err != nil {
		t.Fatalf("AttachDocument: %v", err)
	}
	if s.Stage != StageAnalyze {
		t.Fatalf("stage = %q, want %q", s.Stage, StageAnalyze)
	}
	if err := s.AttachDocument(testDocument()); err != ErrWrongStage {
		t.Fatalf("second attach err = %v, want ErrWrongStage", err)
	}
}

func TestApplyAnalysisSetsRecommendedCount(t *testing.T) {
	s := NewSession("abc")
	s.AttachDocument(testDocument())
	if err := s.ApplyAnalysis(testAnalysis()); err != nil {
		t.Fatalf("ApplyAnalysis: %v", err)
	}
	if s.SelectedQuestionCount != 10 {
		t.Fatalf("count = %d, want 10", s.SelectedQuestionCount)
	}
}

func TestApplyAnalysisDefaultsCountWhenUnrecommended(t *testing.T) {
	s := NewSession("abc")
	s.AttachDocument(testDocument())
	a := testAnalysis()
	a.SuggestedQuestions.Recommended = 0
	s.ApplyAnalysis(a)
	if s.SelectedQuestionCount != DefaultQuestionCount {
		t.Fatalf("count = %d, want %d", s.SelectedQuestionCount, DefaultQuestionCount)
	}
}

func TestSetQuestionCountBounds(t *testing.T) {
	s := NewSession("abc")
	if err := s.SetQuestionCount(7); err != ErrAnalysisRequired {
		t.Fatalf("err = %v, want ErrAnalysisRequired", err)
	}

	s.AttachDocument(testDocument())
	s.ApplyAnalysis(testAnalysis())

	for _, n := range []int{5, 10, 15} {
		if err := s.SetQuestionCount(n); err != nil {
			t.Fatalf("SetQuestionCount(%d): %v", n, err)
		}
		if s.SelectedQuestionCount != n {
			t.Fatalf("count = %d, want %d", s.SelectedQuestionCount, n)
		}
	}
	for _, n := range []int{4, 16, 0, -1} {
		if err := s.SetQuestionCount(n); err != ErrCountOutOfRange {
			t.Fatalf("SetQuestionCount(%d) err = %v, want ErrCountOutOfRange", n, err)
		}
	}
	if s.SelectedQuestionCount != 15 {
		t.Fatalf("rejected value mutated count: %d", s.SelectedQuestionCount)
	}
}

func TestBeginGenerationGuards(t *testing.T) {
	s := NewSession("abc")
	if err := s.BeginGeneration(); err != ErrWrongStage {
		t.Fatalf("err = %v, want ErrWrongStage", err)
	}

	s.AttachDocument(testDocument())
	s.ApplyAnalysis(testAnalysis())
	if err := s.BeginGeneration(); err != nil {
		t.Fatalf("BeginGeneration: %v", err)
	}
	// Retrying a failed generation is allowed in place.
	if err := s.BeginGeneration(); err != nil {
		t.Fatalf("BeginGeneration retry: %v", err)
	}
}

func TestApplyQuestionsResetsCounters(t *testing.T) {
	s := quizSession(t, 3)
	if s.Stage != StageQuiz {
		t.Fatalf("stage = %q, want %q", s.Stage, StageQuiz)
	}
	if s.CurrentIndex != 0 || s.Score != 0 || len(s.Answers) != 0 {
		t.Fatal("quiz counters not reset on entry")
	}
}

func TestResetIsIdempotent(t *testing.T) {
	s := quizSession(t, 3)
	s.SubmitAnswer("A")

	s.Reset()
	first := s.View()
	s.Reset()
	second := s.View()

	if first.Stage != StageUpload {
		t.Fatalf("stage after reset = %q, want %q", first.Stage, StageUpload)
	}
	if first.Document != nil || first.Analysis != nil || first.Questions != nil {
		t.Fatal("reset did not clear stored artifacts")
	}
	if first.SelectedQuestionCount != DefaultQuestionCount {
		t.Fatalf("count after reset = %d", first.SelectedQuestionCount)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("double reset diverged from single reset")
	}
}

func TestFailStageKeepsStage(t *testing.T) {
	s := NewSession("abc")
	s.AttachDocument(testDocument())
	s.StartWork()
	s.FailStage("Lỗi phân tích tài liệu. Vui lòng thử lại.")

	if s.Stage != StageAnalyze {
		t.Fatalf("stage = %q, want %q", s.Stage, StageAnalyze)
	}
	if s.Loading {
		t.Fatal("loading flag not cleared on failure")
	}
	if s.LastError == "" {
		t.Fatal("error message not recorded")
	}
	if s.Analysis != nil {
		t.Fatal("analysis stored despite failure")
	}
}

func TestCurrentQuestion(t *testing.T) {
	s := NewSession("abc")
	if s.CurrentQuestion() != nil {
		t.Fatal("expected nil question before generation")
	}
	s = quizSession(t, 2)
	if q := s.CurrentQuestion(); q == nil || q.ID != 1 {
		t.Fatalf("current question = %+v, want ID 1", q)
	}
}
