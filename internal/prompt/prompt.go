// Package prompt builds the instruction strings sent to the model gateway.
// All three builders are pure functions: they embed a bounded excerpt of
// the document and demand a response that is valid JSON matching an exact
// literal schema, with no surrounding text.
package prompt

import (
	"fmt"
	"strings"
)

// Per-task caps on how much document content is embedded, to bound
// request size.
const (
	TermExtractionContentCap = 6000
	AnalysisContentCap       = 5000
	QuestionContentCap       = 4000
)

// ExtractTerms builds the English-vocabulary extraction prompt.
func ExtractTerms(content string) string {
	return fmt.Sprintf(`
Phân tích tài liệu sau và trích xuất TẤT CẢ thuật ngữ tiếng Anh quan trọng kèm giải thích tiếng Việt:

Nội dung tài liệu:
%s

Hãy tìm:
- Thuật ngữ kỹ thuật (technical terms)
- Từ khóa chuyên ngành
- Từ viết tắt và ý nghĩa đầy đủ
- Khái niệm quan trọng

Trả về kết quả CHÍNH XÁC theo định dạng JSON sau:
{
  "terms": [
    {
      "english": "Technical Term",
      "vietnamese": "Giải thích bằng tiếng Việt",
      "category": "Loại thuật ngữ"
    }
  ]
}

CHỈ TRẢ VỀ JSON HỢP LỆ, KHÔNG THÊM TEXT NÀO KHÁC.`, excerpt(content, TermExtractionContentCap))
}

// AnalyzeDocument builds the summarize/classify prompt.
func AnalyzeDocument(content string) string {
	return fmt.Sprintf(`
Phân tích tài liệu sau và đưa ra:
1. Tóm tắt nội dung chính (2-3 câu)
2. Các chủ đề/kiến thức chính được đề cập
3. Đề xuất số lượng câu hỏi phù hợp (từ 5-20 câu) để bao quát toàn bộ kiến thức
4. Ước tính độ khó của nội dung (Dễ/Trung bình/Khó)

Nội dung tài liệu:
%s

Trả về kết quả CHÍNH XÁC theo định dạng JSON sau:
{
  "summary": "Tóm tắt nội dung chính...",
  "main_topics": ["Chủ đề 1", "Chủ đề 2", "Chủ đề 3"],
  "suggested_questions": {
    "min": 5,
    "max": 15,
    "recommended": 10
  },
  "difficulty": "Trung bình",
  "estimated_time": "15-20 phút"
}

CHỈ TRẢ VỀ JSON HỢP LỆ, KHÔNG THÊM TEXT NÀO KHÁC.`, excerpt(content, AnalysisContentCap))
}

// GenerateQuestions builds the multiple-choice generation prompt.
func GenerateQuestions(content string, count int, topics []string, difficulty string) string {
	return fmt.Sprintf(`
Dựa trên nội dung tài liệu sau, hãy tạo %d câu hỏi trắc nghiệm (multiple choice) với 4 lựa chọn A, B, C, D.
Các câu hỏi phải:
- Bao quát các phần quan trọng của tài liệu: %s
- Có độ khó %s
- Có 1 đáp án đúng duy nhất
- Câu hỏi phải rõ ràng và không gây nhầm lẫn
- Được sắp xếp từ dễ đến khó

Nội dung tài liệu:
%s

Trả về kết quả CHÍNH XÁC theo định dạng JSON sau:
{
  "questions": [
    {
      "id": 1,
      "question": "Câu hỏi ở đây?",
      "options": {
        "A": "Lựa chọn A",
        "B": "Lựa chọn B",
        "C": "Lựa chọn C",
        "D": "Lựa chọn D"
      },
      "correct_answer": "A",
      "explanation": "Giải thích tại sao đáp án A đúng và các đáp án khác sai",
      "topic": "Chủ đề của câu hỏi",
      "difficulty": "Dễ"
    }
  ]
}

CHỈ TRẢ VỀ JSON HỢP LỆ, KHÔNG THÊM TEXT NÀO KHÁC.`,
		count,
		strings.Join(topics, ", "),
		strings.ToLower(difficulty),
		excerpt(content, QuestionContentCap))
}

// excerpt returns the leading prefix of content, capped at max runes so a
// multibyte character is never split.
func excerpt(content string, max int) string {
	runes := []rune(content)
	if len(runes) <= max {
		return content
	}
	return string(runes[:max])
}
