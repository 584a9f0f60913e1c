package model

// SuggestedQuestions is the question-count range the model recommends
// for a document.
type SuggestedQuestions struct {
	Min         int `json:"min"`
	Max         int `json:"max"`
	Recommended int `json:"recommended"`
}

// DocumentAnalysis is the model's one-shot assessment of a document.
// Produced once per document; immutable.
type DocumentAnalysis struct {
	Summary            string             `json:"summary"`
	MainTopics         []string           `json:"main_topics"`
	SuggestedQuestions SuggestedQuestions `json:"suggested_questions"`
	Difficulty         string             `json:"difficulty"`
	EstimatedTime      string             `json:"estimated_time"`
}

// Difficulty labels the model is instructed to use.
const (
	DifficultyEasy   = "Dễ"
	DifficultyMedium = "Trung bình"
	DifficultyHard   = "Khó"
)
