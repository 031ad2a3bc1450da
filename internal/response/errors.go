package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"
	ErrConflict ErrCode = "CONFLICT"

	// ─── Quiz session ──────────────────────────────────────────────────
	// Precondition violations on session operations. The UI is expected
	// to prevent these by disabling the relevant control; the engine
	// still rejects them explicitly.
	ErrSessionSubmitted ErrCode = "SESSION_SUBMITTED"
	ErrNoAnswers        ErrCode = "NO_ANSWERS"
	ErrOptionOutOfRange ErrCode = "OPTION_OUT_OF_RANGE"
	ErrNotSubmitted     ErrCode = "NOT_SUBMITTED"

	// ─── Paper loading ─────────────────────────────────────────────────
	ErrPaperIntegrity ErrCode = "PAPER_INTEGRITY"

	// ─── Media ─────────────────────────────────────────────────────────
	ErrFileRequired    ErrCode = "FILE_REQUIRED"
	ErrUnsupportedFile ErrCode = "UNSUPPORTED_FILE_TYPE"
	ErrFileTooLarge    ErrCode = "FILE_TOO_LARGE"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid identifier format."
	case ErrInvalidPayload:
		return "Invalid request payload."
	case ErrNotFound:
		return "Resource not found."
	case ErrConflict:
		return "Resource already exists."
	case ErrSessionSubmitted:
		return "This session is already submitted; reset it to try again."
	case ErrNoAnswers:
		return "Answer at least one question before submitting."
	case ErrOptionOutOfRange:
		return "The selected option does not exist for this question."
	case ErrNotSubmitted:
		return "This session has not been submitted yet."
	case ErrPaperIntegrity:
		return "The paper failed integrity checks and cannot be attempted."
	case ErrFileRequired:
		return "A file upload is required."
	case ErrUnsupportedFile:
		return "Unsupported file type."
	case ErrFileTooLarge:
		return "File size exceeds the limit."
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
