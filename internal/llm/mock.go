package llm

import (
	"context"
	"strings"
	"time"
)

// Canned responses for the mock gateway. They mirror what the live model
// is instructed to produce for each of the three prompt kinds.
const (
	mockTermsResponse = `{
  "terms": [
    { "english": "Machine Learning", "vietnamese": "Học máy", "category": "AI" },
    { "english": "Neural Network", "vietnamese": "Mạng nơ-ron", "category": "AI" },
    { "english": "API", "vietnamese": "Giao diện lập trình ứng dụng", "category": "Technical" },
    { "english": "Database", "vietnamese": "Cơ sở dữ liệu", "category": "Technical" },
    { "english": "Algorithm", "vietnamese": "Thuật toán", "category": "Computer Science" }
  ]
}`

	mockAnalysisResponse = `{
  "summary": "Tài liệu này trình bày về các khái niệm cơ bản trong lập trình và khoa học máy tính.",
  "main_topics": ["Lập trình", "Thuật toán", "Cấu trúc dữ liệu"],
  "suggested_questions": { "min": 5, "max": 15, "recommended": 10 },
  "difficulty": "Trung bình",
  "estimated_time": "15-20 phút"
}`

	mockQuestionsResponse = `{
  "questions": [
    {
      "id": 1,
      "question": "Machine Learning là gì?",
      "options": {
        "A": "Một ngôn ngữ lập trình",
        "B": "Một phương pháp để máy tính học từ dữ liệu",
        "C": "Một loại phần cứng máy tính",
        "D": "Một hệ điều hành"
      },
      "correct_answer": "B",
      "explanation": "Machine Learning (Học máy) là phương pháp cho phép máy tính học từ dữ liệu mà không cần lập trình cụ thể.",
      "topic": "AI",
      "difficulty": "Dễ"
    },
    {
      "id": 2,
      "question": "API viết tắt của từ gì?",
      "options": {
        "A": "Application Programming Interface",
        "B": "Advanced Programming Intelligence",
        "C": "Automated Process Integration",
        "D": "Application Process Indicator"
      },
      "correct_answer": "A",
      "explanation": "API là viết tắt của Application Programming Interface - Giao diện lập trình ứng dụng.",
      "topic": "Technical",
      "difficulty": "Dễ"
    }
  ]
}`
)

// MockProvider is the simulated gateway variant. It pattern-matches on
// substrings of the prompt to pick one of three canned JSON responses and
// sleeps briefly to mimic network latency. It exists so the full workflow
// can be exercised without a live credential; it is a fixed-response test
// double, not production logic.
type MockProvider struct {
	delay time.Duration
}

// NewMockProvider creates a mock gateway with the given artificial latency.
func NewMockProvider(delay time.Duration) *MockProvider {
	return &MockProvider{delay: delay}
}

func (m *MockProvider) Complete(ctx context.Context, req Request) (string, error) {
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return "", &ErrGateway{Err: ctx.Err()}
		}
	}

	switch {
	case strings.Contains(req.Prompt, "trích xuất") && strings.Contains(req.Prompt, "thuật ngữ tiếng Anh"):
		return mockTermsResponse, nil
	case strings.Contains(req.Prompt, "Phân tích tài liệu"):
		return mockAnalysisResponse, nil
	case strings.Contains(req.Prompt, "câu hỏi trắc nghiệm"):
		return mockQuestionsResponse, nil
	}
	return `{"response": "Mock response"}`, nil
}

func (m *MockProvider) Name() string { return "mock" }
