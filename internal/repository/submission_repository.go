package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ottodot/mathpal-backend/internal/model"
)

type SubmissionRepository struct {
	pool *pgxpool.Pool
}

func NewSubmissionRepository(pool *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{pool: pool}
}

// Create inserts a new submission and fills in the assigned ID and
// timestamp. Hint is nil unless hint persistence is enabled.
func (r *SubmissionRepository) Create(ctx context.Context, s *model.Submission) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO math_problem_submissions (session_id, user_answer, is_correct, feedback_text, hint)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		s.SessionID, s.UserAnswer, s.IsCorrect, s.FeedbackText, s.Hint,
	).Scan(&s.ID, &s.CreatedAt)
}

// CountBySession returns how many submissions exist for a session.
func (r *SubmissionRepository) CountBySession(ctx context.Context, sessionID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM math_problem_submissions WHERE session_id = $1`,
		sessionID,
	).Scan(&n)
	return n, err
}
