package service

import "errors"

var (
	// ErrSessionNotFound means the referenced problem session does not
	// exist. The submission handler fails closed on it: no row is written.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSubmissionInProgress means another submission for the same
	// session currently holds the submit lock.
	ErrSubmissionInProgress = errors.New("submission already in progress")

	// ErrGenerationFailed wraps upstream or extraction failures during
	// problem generation.
	ErrGenerationFailed = errors.New("problem generation failed")

	// ErrFeedbackFailed wraps upstream or extraction failures during
	// feedback generation.
	ErrFeedbackFailed = errors.New("feedback generation failed")
)
