package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ottodot/mathpal-backend/internal/model"
)

type SessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

// Create inserts a new problem session and fills in the assigned ID and
// timestamp.
func (r *SessionRepository) Create(ctx context.Context, s *model.ProblemSession) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO math_problem_sessions (problem_text, correct_answer, difficulty, problem_type)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		s.ProblemText, s.CorrectAnswer, s.Difficulty, s.ProblemType,
	).Scan(&s.ID, &s.CreatedAt)
}

// GetByID fetches one session. Returns pgx.ErrNoRows when absent.
func (r *SessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ProblemSession, error) {
	var s model.ProblemSession
	err := r.pool.QueryRow(ctx,
		`SELECT id, problem_text, correct_answer, difficulty, problem_type, created_at
		 FROM math_problem_sessions
		 WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.ProblemText, &s.CorrectAnswer, &s.Difficulty, &s.ProblemType, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Recent returns the most recent sessions ordered by creation time
// descending.
func (r *SessionRepository) Recent(ctx context.Context, limit int) ([]model.ProblemSession, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, problem_text, correct_answer, difficulty, problem_type, created_at
		 FROM math_problem_sessions
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []model.ProblemSession
	for rows.Next() {
		var s model.ProblemSession
		if err := rows.Scan(&s.ID, &s.ProblemText, &s.CorrectAnswer, &s.Difficulty, &s.ProblemType, &s.CreatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
