package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound        ErrCode = "NOT_FOUND"
	ErrSessionNotFound ErrCode = "SESSION_NOT_FOUND"

	// ─── Generation ────────────────────────────────────────────────────
	ErrLLMNotConfigured ErrCode = "LLM_NOT_CONFIGURED"
	ErrGenerationFailed ErrCode = "GENERATION_FAILED"
	ErrFeedbackFailed   ErrCode = "FEEDBACK_FAILED"

	// ─── Submissions ───────────────────────────────────────────────────
	ErrSubmissionInProgress ErrCode = "SUBMISSION_IN_PROGRESS"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid ID format."
	case ErrInvalidPayload:
		return "Invalid request payload."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Resource not found."
	case ErrSessionNotFound:
		return "Session not found"

	// ─── Generation ────────────────────────────────────────────────────
	case ErrLLMNotConfigured:
		return "The problem generator is not configured."
	case ErrGenerationFailed:
		return "Could not generate a problem. Please try again."
	case ErrFeedbackFailed:
		return "Could not generate feedback. Please try again."

	// ─── Submissions ───────────────────────────────────────────────────
	case ErrSubmissionInProgress:
		return "A submission for this session is already being processed."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
