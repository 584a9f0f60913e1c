package quiz

import (
	"reflect"
	"strings"
	"testing"
)

func TestSubmitAnswerCorrectness(t *testing.T) {
	for _, label := range []string{"A", "B", "C", "D"} {
		s := quizSession(t, 1)
		rec, err := s.SubmitAnswer(label)
		if err != nil {
			t.Fatalf("SubmitAnswer(%s): %v", label, err)
		}
		want := label == "A"
		if rec.Correct != want {
			t.Fatalf("SubmitAnswer(%s).Correct = %v, want %v", label, rec.Correct, want)
		}
	}
}

func TestSubmitAnswerGuards(t *testing.T) {
	s := NewSession("abc")
	if _, err := s.SubmitAnswer("A"); err != ErrWrongStage {
		t.Fatalf("err = %v, want ErrWrongStage", err)
	}

	s = quizSession(t, 1)
	if _, err := s.SubmitAnswer(""); err != ErrNoSelection {
		t.Fatalf("err = %v, want ErrNoSelection", err)
	}
	if _, err := s.SubmitAnswer("E"); err != ErrInvalidOption {
		t.Fatalf("err = %v, want ErrInvalidOption", err)
	}
}

func TestSubmitAnswerExplanations(t *testing.T) {
	s := quizSession(t, 1)
	s.SubmitAnswer("A")
	if !strings.HasPrefix(s.Explanation, "Chính xác!") {
		t.Fatalf("explanation = %q", s.Explanation)
	}

	s = quizSession(t, 1)
	s.SubmitAnswer("B")
	if !strings.HasPrefix(s.Explanation, "Sai rồi! Đáp án đúng là A.") {
		t.Fatalf("explanation = %q", s.Explanation)
	}
	if !s.ShowExplanation {
		t.Fatal("explanation not revealed")
	}
}

func TestScoreEqualsCorrectRecords(t *testing.T) {
	s := quizSession(t, 3)
	answers := []string{"A", "B", "A"}
	for i, a := range answers {
		if _, err := s.SubmitAnswer(a); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		correct := 0
		for _, rec := range s.Answers {
			if rec.Correct {
				correct++
			}
		}
		if s.Score != correct {
			t.Fatalf("score = %d, correct records = %d", s.Score, correct)
		}
		if i < len(answers)-1 {
			if err := s.Advance(); err != nil {
				t.Fatalf("advance %d: %v", i, err)
			}
		}
	}
}

func TestResubmitOverwritesRecord(t *testing.T) {
	s := quizSession(t, 1)
	s.SubmitAnswer("B")
	if s.Score != 0 || len(s.Incorrect) != 1 {
		t.Fatalf("after wrong answer: score=%d incorrect=%d", s.Score, len(s.Incorrect))
	}

	s.SubmitAnswer("A")
	if s.Score != 1 {
		t.Fatalf("score = %d, want 1", s.Score)
	}
	if len(s.Answers) != 1 {
		t.Fatalf("records = %d, want 1 (overwrite, not duplicate)", len(s.Answers))
	}
	if len(s.Incorrect) != 0 || len(s.Completed) != 1 {
		t.Fatal("index not moved from incorrect to completed")
	}
}

func TestAdvanceRequiresAnswer(t *testing.T) {
	s := quizSession(t, 2)
	if err := s.Advance(); err != ErrNotAnswered {
		t.Fatalf("err = %v, want ErrNotAnswered", err)
	}
}

func TestAdvanceThroughToResults(t *testing.T) {
	s := quizSession(t, 2)

	s.SubmitAnswer("A")
	if err := s.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if s.CurrentIndex != 1 || s.Stage != StageQuiz {
		t.Fatalf("index=%d stage=%q", s.CurrentIndex, s.Stage)
	}
	if s.SelectedAnswer != "" || s.ShowExplanation {
		t.Fatal("selection not cleared on advance")
	}

	s.SubmitAnswer("B")
	if err := s.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if s.Stage != StageResults {
		t.Fatalf("stage = %q, want %q", s.Stage, StageResults)
	}
}

func TestFinalScorePercentage(t *testing.T) {
	s := quizSession(t, 2)
	s.SubmitAnswer("A")
	s.Advance()
	s.SubmitAnswer("C")
	s.Advance()

	sum := s.FinalScore()
	if sum.Correct != 1 || sum.Total != 2 || sum.Percentage != 50 {
		t.Fatalf("summary = %+v", sum)
	}

	// Disjoint sets covering all answered indices.
	completed := s.CompletedIndices()
	incorrect := s.IncorrectIndices()
	if !reflect.DeepEqual(completed, []int{0}) || !reflect.DeepEqual(incorrect, []int{1}) {
		t.Fatalf("completed=%v incorrect=%v", completed, incorrect)
	}
}

func TestRetryIncorrectGuards(t *testing.T) {
	s := quizSession(t, 1)
	if err := s.RetryIncorrect(); err != ErrWrongStage {
		t.Fatalf("err = %v, want ErrWrongStage", err)
	}

	s.SubmitAnswer("A")
	s.Advance()
	if err := s.RetryIncorrect(); err != ErrNoIncorrect {
		t.Fatalf("err = %v, want ErrNoIncorrect", err)
	}
}

// TestRetryWalkVisitsEachIncorrectOnce drives a full retry pass over a
// quiz answered wrong at indices 2, 5 and 7 and checks each is revisited
// exactly once, in ascending order, without re-queueing completed ones.
func TestRetryWalkVisitsEachIncorrectOnce(t *testing.T) {
	s := quizSession(t, 8)
	wrong := map[int]bool{2: true, 5: true, 7: true}

	for i := 0; i < 8; i++ {
		answer := "A"
		if wrong[i] {
			answer = "B"
		}
		if _, err := s.SubmitAnswer(answer); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if err := s.Advance(); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}
	if s.Stage != StageResults {
		t.Fatalf("stage = %q, want %q", s.Stage, StageResults)
	}
	if got := s.IncorrectIndices(); !reflect.DeepEqual(got, []int{2, 5, 7}) {
		t.Fatalf("incorrect = %v", got)
	}

	var visited []int
	for {
		err := s.RetryIncorrect()
		if err == ErrNoIncorrect {
			break
		}
		if err != nil {
			t.Fatalf("retry: %v", err)
		}
		visited = append(visited, s.CurrentIndex)

		// Answer correctly this time, then walk back to results.
		if _, err := s.SubmitAnswer("A"); err != nil {
			t.Fatalf("submit retry: %v", err)
		}
		for s.Stage == StageQuiz {
			if err := s.Advance(); err != nil {
				t.Fatalf("advance retry: %v", err)
			}
		}
	}

	if !reflect.DeepEqual(visited, []int{2, 5, 7}) {
		t.Fatalf("visited = %v, want [2 5 7]", visited)
	}
	if got := s.IncorrectIndices(); len(got) != 0 {
		t.Fatalf("incorrect not drained: %v", got)
	}
	if got := s.CompletedIndices(); !reflect.DeepEqual(got, []int{0, 1, 2, 3, 4, 5, 6, 7}) {
		t.Fatalf("completed = %v", got)
	}
	if sum := s.FinalScore(); sum.Correct != 8 || sum.Percentage != 100 {
		t.Fatalf("summary = %+v", sum)
	}
}

func TestExportTerms(t *testing.T) {
	s := quizSession(t, 1)
	if _, err := s.ExportTerms(); err != ErrNoTerms {
		t.Fatalf("err = %v, want ErrNoTerms", err)
	}

	s.SetTerms(testAnalysisTerms())
	export, err := s.ExportTerms()
	if err != nil {
		t.Fatalf("ExportTerms: %v", err)
	}
	if export.Document != "notes.txt" || export.TotalTerms != 2 || len(export.Terms) != 2 {
		t.Fatalf("export = %+v", export)
	}
}
