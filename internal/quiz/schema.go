package quiz

import (
	"github.com/quizagent/quizagent-backend/internal/llm"
	"github.com/quizagent/quizagent-backend/internal/model"
)

// JSON Schemas for the three model tasks. Every gateway response is
// validated against the matching schema before anything is stored, so a
// model that drifts from the instructed format is reported as a malformed
// response rather than half-populating the session.

var analysisSchema = &llm.Schema{
	Name: "document-analysis",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{"type": "string", "minLength": 1},
			"main_topics": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"suggested_questions": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"min":         map[string]any{"type": "integer", "minimum": 1},
					"max":         map[string]any{"type": "integer", "minimum": 1},
					"recommended": map[string]any{"type": "integer", "minimum": 1},
				},
				"required": []any{"min", "max", "recommended"},
			},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard},
			},
			"estimated_time": map[string]any{"type": "string"},
		},
		"required": []any{"summary", "main_topics", "suggested_questions", "difficulty", "estimated_time"},
	},
}

var termsSchema = &llm.Schema{
	Name: "english-terms",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"terms": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"english":    map[string]any{"type": "string", "minLength": 1},
						"vietnamese": map[string]any{"type": "string", "minLength": 1},
						"category":   map[string]any{"type": "string"},
					},
					"required": []any{"english", "vietnamese"},
				},
			},
		},
		"required": []any{"terms"},
	},
}

var questionsSchema = &llm.Schema{
	Name: "quiz-questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":       map[string]any{"type": "integer"},
						"question": map[string]any{"type": "string", "minLength": 1},
						"options": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"A": map[string]any{"type": "string"},
								"B": map[string]any{"type": "string"},
								"C": map[string]any{"type": "string"},
								"D": map[string]any{"type": "string"},
							},
							"required":             []any{"A", "B", "C", "D"},
							"additionalProperties": false,
						},
						"correct_answer": map[string]any{
							"type": "string",
							"enum": []any{"A", "B", "C", "D"},
						},
						"explanation": map[string]any{"type": "string"},
						"topic":       map[string]any{"type": "string"},
						"difficulty":  map[string]any{"type": "string"},
					},
					"required": []any{"question", "options", "correct_answer"},
				},
			},
		},
		"required": []any{"questions"},
	},
}
