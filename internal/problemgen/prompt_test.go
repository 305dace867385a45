package problemgen

import (
	"strings"
	"testing"
)

func TestBuildFeedbackPrompt_WholeNumbersReadClean(t *testing.T) {
	prompt := BuildFeedbackPrompt("A problem.", 72, 71)

	if !strings.Contains(prompt, "Correct Answer: 72\n") {
		t.Errorf("whole answers must not carry trailing zeros:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Student's Answer: 71\n") {
		t.Errorf("student answer missing:\n%s", prompt)
	}
	if !strings.Contains(prompt, "A problem.") {
		t.Error("problem text missing from prompt")
	}
}

func TestBuildFeedbackPrompt_FractionalAnswer(t *testing.T) {
	prompt := BuildFeedbackPrompt("p", 12.5, 12.5)
	if !strings.Contains(prompt, "Correct Answer: 12.5\n") {
		t.Errorf("fractional answer mangled:\n%s", prompt)
	}
}

func TestBuildGeneratePrompt_NamesAllFields(t *testing.T) {
	prompt := BuildGeneratePrompt()
	for _, field := range []string{"problem_text", "final_answer", "difficulty", "problem_type"} {
		if !strings.Contains(prompt, field) {
			t.Errorf("prompt must name %q", field)
		}
	}
}
