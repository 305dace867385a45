package model

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty enumerates problem difficulty levels.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the known difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ProblemSession is one generated problem instance awaiting or having
// received an answer. Rows are append-only; there is no update or delete
// lifecycle.
type ProblemSession struct {
	ID            uuid.UUID  `json:"id"`
	ProblemText   string     `json:"problem_text"`
	CorrectAnswer float64    `json:"correct_answer"`
	Difficulty    Difficulty `json:"difficulty"`
	ProblemType   string     `json:"problem_type"`
	CreatedAt     time.Time  `json:"created_at"`
}
