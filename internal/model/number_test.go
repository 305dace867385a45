package model

import (
	"encoding/json"
	"testing"
)

func TestNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"plain number", `72`, 72, false},
		{"quoted number", `"72"`, 72, false},
		{"decimal", `12.5`, 12.5, false},
		{"quoted decimal", `"12.5"`, 12.5, false},
		{"negative", `-3`, -3, false},
		{"zero", `0`, 0, false},
		{"quoted with spaces", `" 72 "`, 72, false},
		{"non-numeric string", `"seventy-two"`, 0, true},
		{"empty string", `""`, 0, true},
		{"bool", `true`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Number
			err := json.Unmarshal([]byte(tt.input), &n)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n.Float64() != tt.want {
				t.Errorf("got %v, want %v", n.Float64(), tt.want)
			}
		})
	}
}

func TestSubmitAnswerRequest_AcceptsStringAnswer(t *testing.T) {
	var req SubmitAnswerRequest
	body := `{"session_id": "4f9d2a9e-5b7c-4e1d-9a3f-8c2b1d0e7f64", "user_answer": "72"}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.UserAnswer == nil || req.UserAnswer.Float64() != 72 {
		t.Errorf("user_answer: got %v, want 72", req.UserAnswer)
	}
}

func TestNumber_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Number(72))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "72" {
		t.Errorf("got %s, want 72", data)
	}
}

func TestDifficulty_Valid(t *testing.T) {
	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		if !d.Valid() {
			t.Errorf("%q should be valid", d)
		}
	}
	if Difficulty("impossible").Valid() {
		t.Error("unknown difficulty should be invalid")
	}
}
