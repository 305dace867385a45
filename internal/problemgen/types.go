package problemgen

import (
	"github.com/ottodot/mathpal-backend/internal/extract"
	"github.com/ottodot/mathpal-backend/internal/model"
)

// Problem is a validated generated problem before persistence.
type Problem struct {
	ProblemText string
	FinalAnswer float64
	Difficulty  model.Difficulty
	ProblemType string
}

// Feedback is validated answer feedback.
type Feedback struct {
	FeedbackText string
	Hint         string
}

// ParseProblem extracts and validates a Problem from a raw completion.
func ParseProblem(raw string) (*Problem, error) {
	fields, err := extract.Extract(raw, ProblemFields)
	if err != nil {
		return nil, err
	}
	return &Problem{
		ProblemText: fields["problem_text"].(string),
		FinalAnswer: fields["final_answer"].(float64),
		Difficulty:  model.Difficulty(fields["difficulty"].(string)),
		ProblemType: fields["problem_type"].(string),
	}, nil
}

// ParseFeedback extracts and validates a Feedback from a raw completion.
func ParseFeedback(raw string) (*Feedback, error) {
	fields, err := extract.Extract(raw, FeedbackFields)
	if err != nil {
		return nil, err
	}
	return &Feedback{
		FeedbackText: fields["feedback_text"].(string),
		Hint:         fields["hint"].(string),
	}, nil
}
