package problemgen

import (
	"github.com/ottodot/mathpal-backend/internal/extract"
	"github.com/ottodot/mathpal-backend/internal/llm"
)

// ProblemSchema constrains LLM problem generation responses.
var ProblemSchema = &llm.Schema{
	Name:        "math-word-problem",
	Description: "A single Primary 5 math word problem with its final answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"problem_text": map[string]any{
				"type":        "string",
				"description": "The word problem shown to the learner, in plain ASCII text",
			},
			"final_answer": map[string]any{
				"type":        "number",
				"description": "The single numeric answer to the problem",
			},
			"difficulty": map[string]any{
				"type":        "string",
				"enum":        []any{"easy", "medium", "hard"},
				"description": "Self-assessed difficulty of the problem",
			},
			"problem_type": map[string]any{
				"type":        "string",
				"description": "Topic of the problem, e.g. fractions, geometry, multiplication",
			},
		},
		"required":             []any{"problem_text", "final_answer", "difficulty", "problem_type"},
		"additionalProperties": false,
	},
}

// FeedbackSchema constrains LLM answer-feedback responses.
var FeedbackSchema = &llm.Schema{
	Name:        "answer-feedback",
	Description: "Short friendly feedback and a hint for a student's answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"feedback_text": map[string]any{
				"type":        "string",
				"description": "2-3 friendly sentences reacting to the student's answer",
			},
			"hint": map[string]any{
				"type":        "string",
				"description": "A hint or partial step-by-step explanation",
			},
		},
		"required":             []any{"feedback_text", "hint"},
		"additionalProperties": false,
	},
}

// ProblemFields is the extractor field spec matching ProblemSchema, used
// on the raw completion as the best-effort fallback path.
var ProblemFields = []extract.Field{
	{Name: "problem_text", Type: extract.String},
	{Name: "final_answer", Type: extract.Number},
	{Name: "difficulty", Type: extract.Enum, Allowed: []string{"easy", "medium", "hard"}},
	{Name: "problem_type", Type: extract.String},
}

// FeedbackFields is the extractor field spec matching FeedbackSchema.
var FeedbackFields = []extract.Field{
	{Name: "feedback_text", Type: extract.String},
	{Name: "hint", Type: extract.String},
}
