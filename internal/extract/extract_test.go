package extract

import (
	"errors"
	"testing"
)

var problemFields = []Field{
	{Name: "problem_text", Type: String},
	{Name: "final_answer", Type: Number},
	{Name: "difficulty", Type: Enum, Allowed: []string{"easy", "medium", "hard"}},
	{Name: "problem_type", Type: String},
}

func TestExtract_CleanObject(t *testing.T) {
	raw := `{"problem_text": "Siti has 12 apples.", "final_answer": 72, "difficulty": "medium", "problem_type": "multiplication"}`

	out, err := Extract(raw, problemFields)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["problem_text"] != "Siti has 12 apples." {
		t.Errorf("problem_text: got %v", out["problem_text"])
	}
	if out["final_answer"] != 72.0 {
		t.Errorf("final_answer: got %v, want 72", out["final_answer"])
	}
	if out["difficulty"] != "medium" {
		t.Errorf("difficulty: got %v", out["difficulty"])
	}
}

func TestExtract_ProseWrappedObject(t *testing.T) {
	raw := "Sure! Here is the problem you asked for:\n\n" +
		`{"problem_text": "A baker sells 8 trays.", "final_answer": 96, "difficulty": "easy", "problem_type": "multiplication"}` +
		"\n\nLet me know if you need another one."

	out, err := Extract(raw, problemFields)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["final_answer"] != 96.0 {
		t.Errorf("final_answer: got %v, want 96", out["final_answer"])
	}
}

func TestExtract_NumericStringCoerced(t *testing.T) {
	raw := `{"problem_text": "p", "final_answer": "72", "difficulty": "hard", "problem_type": "division"}`

	out, err := Extract(raw, problemFields)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["final_answer"] != 72.0 {
		t.Errorf("coerced final_answer: got %v, want 72", out["final_answer"])
	}
}

func TestExtract_NoObject(t *testing.T) {
	raw := "I could not generate a problem this time, sorry."

	_, err := Extract(raw, problemFields)
	var exErr *ExtractionError
	if !errors.As(err, &exErr) {
		t.Fatalf("expected ExtractionError, got %v", err)
	}
	if exErr.Reason != "no JSON object found" {
		t.Errorf("reason: got %q", exErr.Reason)
	}
	if exErr.Raw != raw {
		t.Errorf("Raw should carry the full completion")
	}
}

func TestExtract_MalformedJSON(t *testing.T) {
	raw := `{"problem_text": "p", "final_answer": }`

	_, err := Extract(raw, problemFields)
	var exErr *ExtractionError
	if !errors.As(err, &exErr) {
		t.Fatalf("expected ExtractionError, got %v", err)
	}
	if exErr.Reason != "malformed JSON" {
		t.Errorf("reason: got %q", exErr.Reason)
	}
}

// Trailing prose containing a '}' defeats the naive first-to-last slice;
// the balanced scan has to recover the object.
func TestExtract_BalancedScanFallback(t *testing.T) {
	raw := `{"problem_text": "p", "final_answer": 5, "difficulty": "easy", "problem_type": "t"} and here is a stray brace }`

	out, err := Extract(raw, problemFields)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["final_answer"] != 5.0 {
		t.Errorf("final_answer: got %v, want 5", out["final_answer"])
	}
}

func TestExtract_BracesInsideStrings(t *testing.T) {
	raw := `{"problem_text": "Draw a model {like this}.", "final_answer": 3, "difficulty": "easy", "problem_type": "t"} trailing }`

	out, err := Extract(raw, problemFields)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["problem_text"] != "Draw a model {like this}." {
		t.Errorf("problem_text: got %v", out["problem_text"])
	}
}

func TestExtract_MissingField(t *testing.T) {
	raw := `{"problem_text": "p", "difficulty": "easy", "problem_type": "t"}`

	_, err := Extract(raw, problemFields)
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if valErr.Field != "final_answer" {
		t.Errorf("field: got %q", valErr.Field)
	}
	if valErr.Actual != "missing" {
		t.Errorf("actual: got %q", valErr.Actual)
	}
}

func TestExtract_NullFieldIsMissing(t *testing.T) {
	raw := `{"problem_text": "p", "final_answer": null, "difficulty": "easy", "problem_type": "t"}`

	_, err := Extract(raw, problemFields)
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if valErr.Field != "final_answer" || valErr.Actual != "missing" {
		t.Errorf("got field=%q actual=%q", valErr.Field, valErr.Actual)
	}
}

func TestExtract_WrongType(t *testing.T) {
	raw := `{"problem_text": 42, "final_answer": 1, "difficulty": "easy", "problem_type": "t"}`

	_, err := Extract(raw, problemFields)
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if valErr.Field != "problem_text" || valErr.Actual != "number" {
		t.Errorf("got field=%q actual=%q", valErr.Field, valErr.Actual)
	}
}

func TestExtract_NonNumericStringRejected(t *testing.T) {
	raw := `{"problem_text": "p", "final_answer": "seventy-two", "difficulty": "easy", "problem_type": "t"}`

	_, err := Extract(raw, problemFields)
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if valErr.Field != "final_answer" {
		t.Errorf("field: got %q", valErr.Field)
	}
}

func TestExtract_EnumMemberRejected(t *testing.T) {
	raw := `{"problem_text": "p", "final_answer": 1, "difficulty": "impossible", "problem_type": "t"}`

	_, err := Extract(raw, problemFields)
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if valErr.Field != "difficulty" {
		t.Errorf("field: got %q", valErr.Field)
	}
	if valErr.Expected != "one of [easy, medium, hard]" {
		t.Errorf("expected: got %q", valErr.Expected)
	}
}

func TestExtract_EmptyStringRejected(t *testing.T) {
	raw := `{"problem_text": "", "final_answer": 1, "difficulty": "easy", "problem_type": "t"}`

	_, err := Extract(raw, problemFields)
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if valErr.Field != "problem_text" {
		t.Errorf("field: got %q", valErr.Field)
	}
}

func TestExtract_ExtraFieldsIgnored(t *testing.T) {
	raw := `{"problem_text": "p", "final_answer": 1, "difficulty": "easy", "problem_type": "t", "commentary": "bonus"}`

	out, err := Extract(raw, problemFields)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := out["commentary"]; ok {
		t.Error("extra fields should not survive extraction")
	}
	if len(out) != len(problemFields) {
		t.Errorf("got %d fields, want %d", len(out), len(problemFields))
	}
}

func TestScanBalanced_Unterminated(t *testing.T) {
	if _, ok := scanBalanced(`{"a": {"b": 1}`); ok {
		t.Error("unterminated object should not scan")
	}
}
