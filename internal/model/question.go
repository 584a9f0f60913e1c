package model

// OptionLabels are the fixed multiple-choice labels, in display order.
var OptionLabels = []string{"A", "B", "C", "D"}

// Question is one generated multiple-choice question.
// Immutable once generated; the question set is ordered.
type Question struct {
	ID            int               `json:"id"`
	Question      string            `json:"question"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correct_answer"`
	Explanation   string            `json:"explanation"`
	Topic         string            `json:"topic"`
	Difficulty    string            `json:"difficulty"`
}

// AnswerRecord is the stored outcome of one question's submission.
// Created on submission and never mutated; re-answering a question
// replaces the record wholesale.
type AnswerRecord struct {
	Selected string   `json:"selected"`
	Correct  bool     `json:"correct"`
	Question Question `json:"question"`
}
