package quiz

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/quizagent/quizagent-backend/internal/model"
)

// SubmitAnswer scores the selected label against the current question.
// The answer record overwrites any previous record for this index, the
// score is recomputed from the record map, and the completed/incorrect
// sets are kept disjoint by moving the index between them.
// The current index does not advance.
func (s *Session) SubmitAnswer(selected string) (model.AnswerRecord, error) {
	if s.Stage != StageQuiz {
		return model.AnswerRecord{}, ErrWrongStage
	}
	if selected == "" {
		return model.AnswerRecord{}, ErrNoSelection
	}

	q := s.CurrentQuestion()
	if q == nil {
		return model.AnswerRecord{}, ErrWrongStage
	}
	if _, ok := q.Options[selected]; !ok {
		return model.AnswerRecord{}, ErrInvalidOption
	}

	correct := selected == q.CorrectAnswer
	rec := model.AnswerRecord{
		Selected: selected,
		Correct:  correct,
		Question: *q,
	}
	s.Answers[s.CurrentIndex] = rec

	if correct {
		s.Completed[s.CurrentIndex] = struct{}{}
		delete(s.Incorrect, s.CurrentIndex)
		s.Explanation = fmt.Sprintf("Chính xác! %s", q.Explanation)
	} else {
		s.Incorrect[s.CurrentIndex] = struct{}{}
		delete(s.Completed, s.CurrentIndex)
		s.Explanation = fmt.Sprintf("Sai rồi! Đáp án đúng là %s. %s", q.CorrectAnswer, q.Explanation)
	}

	s.SelectedAnswer = selected
	s.ShowExplanation = true
	s.recomputeScore()
	s.touch()
	return rec, nil
}

// Advance clears the selection and explanation and moves to the next
// question; exhausting the set transitions to results.
func (s *Session) Advance() error {
	if s.Stage != StageQuiz {
		return ErrWrongStage
	}
	if _, answered := s.Answers[s.CurrentIndex]; !answered {
		return ErrNotAnswered
	}

	s.SelectedAnswer = ""
	s.ShowExplanation = false
	s.Explanation = ""

	if s.CurrentIndex < len(s.Questions)-1 {
		s.CurrentIndex++
	} else {
		s.Stage = StageResults
	}
	s.touch()
	return nil
}

// RetryIncorrect pops the lowest incorrect index and re-enters the quiz
// stage there. Lowest index first, so the retry order is deterministic.
func (s *Session) RetryIncorrect() error {
	if s.Stage != StageResults {
		return ErrWrongStage
	}
	idx, ok := lowestIndex(s.Incorrect)
	if !ok {
		return ErrNoIncorrect
	}

	delete(s.Incorrect, idx)
	s.CurrentIndex = idx
	s.SelectedAnswer = ""
	s.ShowExplanation = false
	s.Explanation = ""
	s.Stage = StageQuiz
	s.touch()
	return nil
}

// ScoreSummary is the final tally of a quiz run.
type ScoreSummary struct {
	Correct    int `json:"correct"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// FinalScore computes the tally from the answer records. Valid at any
// point after the question set exists.
func (s *Session) FinalScore() ScoreSummary {
	correct := 0
	for _, rec := range s.Answers {
		if rec.Correct {
			correct++
		}
	}
	total := len(s.Questions)
	pct := 0
	if total > 0 {
		pct = int(math.Round(float64(correct) / float64(total) * 100))
	}
	return ScoreSummary{Correct: correct, Total: total, Percentage: pct}
}

// ExportTerms builds the downloadable vocabulary artifact.
func (s *Session) ExportTerms() (*model.TermsExport, error) {
	if len(s.Terms) == 0 {
		return nil, ErrNoTerms
	}
	name := ""
	if s.Document != nil {
		name = s.Document.Filename
	}
	return &model.TermsExport{
		Document:      name,
		ExtractedDate: time.Now().UTC(),
		TotalTerms:    len(s.Terms),
		Terms:         s.Terms,
	}, nil
}

// CompletedIndices returns the correctly answered indices in ascending order.
func (s *Session) CompletedIndices() []int {
	return sortedIndices(s.Completed)
}

// IncorrectIndices returns the retry queue in ascending order.
func (s *Session) IncorrectIndices() []int {
	return sortedIndices(s.Incorrect)
}

// recomputeScore derives the score from the answer records, which keeps
// the score equal to the count of correct records even when a retried
// question overwrites its earlier record.
func (s *Session) recomputeScore() {
	n := 0
	for _, rec := range s.Answers {
		if rec.Correct {
			n++
		}
	}
	s.Score = n
}

func sortedIndices(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for i := range set {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

func lowestIndex(set map[int]struct{}) (int, bool) {
	found := false
	lowest := 0
	for i := range set {
		if !found || i < lowest {
			lowest = i
			found = true
		}
	}
	return lowest, found
}
