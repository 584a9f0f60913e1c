package quiz

import (
	"encoding/json"

	"github.com/quizagent/quizagent-backend/internal/llm"
	"github.com/quizagent/quizagent-backend/internal/model"
)

// ParseAnalysis validates and decodes a raw gateway response into a
// DocumentAnalysis. Returns *llm.ErrInvalidResponse on any parse or
// schema failure; nothing partial is ever returned.
func ParseAnalysis(raw string) (*model.DocumentAnalysis, error) {
	data := []byte(llm.ExtractJSON(raw))
	if err := llm.Validate(analysisSchema, data); err != nil {
		return nil, err
	}
	var a model.DocumentAnalysis
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: data, Err: err}
	}
	return &a, nil
}

// ParseTerms validates and decodes a term-extraction response.
func ParseTerms(raw string) ([]model.TermEntry, error) {
	data := []byte(llm.ExtractJSON(raw))
	if err := llm.Validate(termsSchema, data); err != nil {
		return nil, err
	}
	var payload struct {
		Terms []model.TermEntry `json:"terms"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: data, Err: err}
	}
	return payload.Terms, nil
}

// ParseQuestions validates and decodes a question-generation response.
// Question IDs are normalized to their 1-based position when the model
// omits them.
func ParseQuestions(raw string) ([]model.Question, error) {
	data := []byte(llm.ExtractJSON(raw))
	if err := llm.Validate(questionsSchema, data); err != nil {
		return nil, err
	}
	var payload struct {
		Questions []model.Question `json:"questions"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: data, Err: err}
	}
	for i := range payload.Questions {
		if payload.Questions[i].ID == 0 {
			payload.Questions[i].ID = i + 1
		}
	}
	return payload.Questions, nil
}
