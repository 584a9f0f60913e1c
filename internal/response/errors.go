package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrSessionNotFound ErrCode = "SESSION_NOT_FOUND"

	// ─── Document ingestion ────────────────────────────────────────────
	ErrFileRequired ErrCode = "FILE_REQUIRED"
	ErrEmptyFile    ErrCode = "EMPTY_FILE"
	ErrFileRead     ErrCode = "FILE_READ_ERROR"

	// ─── Quiz workflow ─────────────────────────────────────────────────
	ErrWrongStage       ErrCode = "WRONG_STAGE"
	ErrAnalysisRequired ErrCode = "ANALYSIS_REQUIRED"
	ErrCountOutOfRange  ErrCode = "QUESTION_COUNT_OUT_OF_RANGE"
	ErrNoSelection      ErrCode = "ANSWER_REQUIRED"
	ErrInvalidOption    ErrCode = "INVALID_OPTION"
	ErrNoIncorrect      ErrCode = "NO_INCORRECT_QUESTIONS"
	ErrNoTerms          ErrCode = "NO_TERMS_EXTRACTED"
	ErrBusy             ErrCode = "OPERATION_IN_PROGRESS"

	// ─── Model gateway ─────────────────────────────────────────────────
	ErrAnalysisFailed   ErrCode = "ANALYSIS_FAILED"
	ErrGenerationFailed ErrCode = "GENERATION_FAILED"
	ErrUpstreamLimited  ErrCode = "UPSTREAM_RATE_LIMITED"
	ErrMalformedModel   ErrCode = "MALFORMED_MODEL_RESPONSE"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
// User-facing messages are in Vietnamese, matching the quiz UI locale.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Dữ liệu không hợp lệ. Vui lòng kiểm tra lại."
	case ErrInvalidPayload:
		return "Nội dung yêu cầu không hợp lệ."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrSessionNotFound:
		return "Không tìm thấy phiên làm việc."

	// ─── Document ingestion ────────────────────────────────────────────
	case ErrFileRequired:
		return "Vui lòng chọn file để tải lên."
	case ErrEmptyFile:
		return "File rỗng hoặc không có nội dung."
	case ErrFileRead:
		return "Lỗi đọc file. Vui lòng kiểm tra định dạng file và thử lại."

	// ─── Quiz workflow ─────────────────────────────────────────────────
	case ErrWrongStage:
		return "Thao tác không hợp lệ ở bước hiện tại."
	case ErrAnalysisRequired:
		return "Cần phân tích tài liệu trước khi thực hiện thao tác này."
	case ErrCountOutOfRange:
		return "Số câu hỏi nằm ngoài khoảng cho phép."
	case ErrNoSelection:
		return "Vui lòng chọn một đáp án."
	case ErrInvalidOption:
		return "Đáp án được chọn không hợp lệ."
	case ErrNoIncorrect:
		return "Không còn câu sai nào để làm lại."
	case ErrNoTerms:
		return "Chưa có thuật ngữ nào được trích xuất!"
	case ErrBusy:
		return "Đang xử lý yêu cầu trước đó. Vui lòng chờ."

	// ─── Model gateway ─────────────────────────────────────────────────
	case ErrAnalysisFailed:
		return "Lỗi phân tích tài liệu. Vui lòng thử lại."
	case ErrGenerationFailed:
		return "Lỗi tạo câu hỏi. Vui lòng thử lại."
	case ErrUpstreamLimited:
		return "Hệ thống AI đang quá tải. Vui lòng thử lại sau."
	case ErrMalformedModel:
		return "Phản hồi từ AI không hợp lệ. Vui lòng thử lại."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Quá nhiều yêu cầu. Vui lòng thử lại sau."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "Đã xảy ra lỗi máy chủ."
	default:
		return "Đã xảy ra lỗi không xác định."
	}
}
