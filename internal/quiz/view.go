package quiz

import "github.com/quizagent/quizagent-backend/internal/model"

// View is the JSON projection of a session returned by the API.
// Index sets are rendered as sorted slices so clients see a stable order.
type View struct {
	ID                    string                     `json:"id"`
	Stage                 Stage                      `json:"stage"`
	Document              *model.Document            `json:"document,omitempty"`
	Analysis              *model.DocumentAnalysis    `json:"analysis,omitempty"`
	Terms                 []model.TermEntry          `json:"terms,omitempty"`
	SelectedQuestionCount int                        `json:"selected_question_count"`
	Questions             []model.Question           `json:"questions,omitempty"`
	CurrentIndex          int                        `json:"current_index"`
	SelectedAnswer        string                     `json:"selected_answer,omitempty"`
	ShowExplanation       bool                       `json:"show_explanation"`
	Explanation           string                     `json:"explanation,omitempty"`
	Answers               map[int]model.AnswerRecord `json:"answers,omitempty"`
	Score                 int                        `json:"score"`
	CompletedIndices      []int                      `json:"completed_indices"`
	IncorrectIndices      []int                      `json:"incorrect_indices"`
	Progress              int                        `json:"progress"`
	Status                string                     `json:"status,omitempty"`
	Loading               bool                       `json:"loading"`
	LastError             string                     `json:"last_error,omitempty"`
}

// View snapshots the session for serialization. Maps are copied so the
// snapshot stays stable after the session lock is released.
func (s *Session) View() View {
	answers := make(map[int]model.AnswerRecord, len(s.Answers))
	for i, rec := range s.Answers {
		answers[i] = rec
	}

	return View{
		ID:                    s.ID,
		Stage:                 s.Stage,
		Document:              s.Document,
		Analysis:              s.Analysis,
		Terms:                 s.Terms,
		SelectedQuestionCount: s.SelectedQuestionCount,
		Questions:             s.Questions,
		CurrentIndex:          s.CurrentIndex,
		SelectedAnswer:        s.SelectedAnswer,
		ShowExplanation:       s.ShowExplanation,
		Explanation:           s.Explanation,
		Answers:               answers,
		Score:                 s.Score,
		CompletedIndices:      s.CompletedIndices(),
		IncorrectIndices:      s.IncorrectIndices(),
		Progress:              s.Progress,
		Status:                s.Status,
		Loading:               s.Loading,
		LastError:             s.LastError,
	}
}
