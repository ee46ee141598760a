package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rsharma/collegium/internal/app/models"
)

// FeedbackRepository handles database operations for student feedback
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Feedback, error)
}

type feedbackRepository struct {
	db *pgxpool.Pool
}

// NewFeedbackRepository creates a pgx-backed feedback repository
func NewFeedbackRepository(db *pgxpool.Pool) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	query := `
		INSERT INTO feedback (student_id, subject, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query,
		feedback.StudentID, feedback.Subject, feedback.Content,
	).Scan(&feedback.ID, &feedback.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating feedback: %w", err)
	}

	return nil
}

func (r *feedbackRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Feedback, error) {
	query := `
		SELECT id, student_id, subject, content, created_at
		FROM feedback
		WHERE student_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing feedback: %w", err)
	}
	defer rows.Close()

	var records []*models.Feedback
	for rows.Next() {
		var f models.Feedback
		if err := rows.Scan(&f.ID, &f.StudentID, &f.Subject, &f.Content, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning feedback: %w", err)
		}
		records = append(records, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feedback: %w", err)
	}

	return records, nil
}
