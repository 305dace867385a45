package model

import (
	"time"

	"github.com/google/uuid"
)

// Submission is one recorded answer attempt against a session. IsCorrect is
// derived server-side and never trusted from the client. Rows are
// append-only.
type Submission struct {
	ID           uuid.UUID `json:"id"`
	SessionID    uuid.UUID `json:"session_id"`
	UserAnswer   float64   `json:"user_answer"`
	IsCorrect    bool      `json:"is_correct"`
	FeedbackText string    `json:"feedback_text"`
	// Hint is persisted only when PERSIST_HINTS is enabled; otherwise the
	// column stays NULL and the hint is returned to the caller only.
	Hint      *string   `json:"hint,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SubmitAnswerRequest is the payload for submitting an answer to a session.
// UserAnswer accepts both a JSON number and a numeric string.
type SubmitAnswerRequest struct {
	SessionID  uuid.UUID `json:"session_id" binding:"required"`
	UserAnswer *Number   `json:"user_answer" binding:"required"`
}

// SubmissionResult is a persisted submission merged with the ephemeral
// feedback fields returned to the caller.
type SubmissionResult struct {
	Submission
	FeedbackText string `json:"feedback_text"`
	Hint         string `json:"hint"`
}
