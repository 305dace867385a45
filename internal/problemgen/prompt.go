package problemgen

import (
	"fmt"
	"strconv"
	"strings"
)

// GenerateSystemPrompt fixes the word-problem domain: Primary 5,
// Singapore syllabus.
const GenerateSystemPrompt = `You are a math teacher writing practice word problems for Primary 5 students following the Singapore syllabus.

Rules:
- Generate a single self-contained word problem with one numeric final answer.
- Use plain ASCII text. No LaTeX, no Unicode math symbols.
- The problem should be age-appropriate and solvable with Primary 5 methods.
- Pick a sensible topic such as fractions, geometry, multiplication, ratio or percentage.
- Return a clean JSON object ONLY, no extra text.`

// BuildGeneratePrompt returns the user message for problem generation.
func BuildGeneratePrompt() string {
	return `Generate a Primary 5 level math word problem based on the Singapore syllabus.
Include:
- problem_text
- final_answer
- difficulty ("easy", "medium", "hard")
- problem_type (e.g., "fractions", "geometry", "multiplication")

Example:
{
  "problem_text": "Mrs Tan baked some cookies...",
  "final_answer": 72,
  "difficulty": "medium",
  "problem_type": "fractions"
}`
}

// FeedbackSystemPrompt frames the feedback request.
const FeedbackSystemPrompt = `You are a friendly math tutor giving feedback to a Primary 5 student.
Return a clean JSON object ONLY, no extra text.`

// BuildFeedbackPrompt returns the user message for answer feedback.
func BuildFeedbackPrompt(problemText string, correctAnswer, userAnswer float64) string {
	var b strings.Builder

	b.WriteString("Student answered a math problem.\n")
	fmt.Fprintf(&b, "Problem: %s\n", problemText)
	fmt.Fprintf(&b, "Correct Answer: %s\n", formatAnswer(correctAnswer))
	fmt.Fprintf(&b, "Student's Answer: %s\n", formatAnswer(userAnswer))
	b.WriteString(`
Give short, friendly feedback in 2-3 sentences.
If correct, congratulate them.
If incorrect, gently explain the right reasoning (no full solution steps).
Also include a hint or partial step-by-step explanation if possible.
Return as valid JSON ONLY:
{
  "feedback_text": "...",
  "hint": "..."
}`)

	return b.String()
}

// formatAnswer renders a float with the shortest exact representation,
// so whole-number answers read as "72" rather than "72.000000".
func formatAnswer(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
