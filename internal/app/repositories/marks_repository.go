package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rsharma/collegium/internal/app/models"
	"github.com/rsharma/collegium/internal/db"
	"github.com/rsharma/collegium/internal/pkg/apperrors"
	"github.com/rsharma/collegium/internal/pkg/dberrors"
)

// MarkRecord is one (student, value) pair in an upload batch
type MarkRecord struct {
	StudentID int64
	Value     int
}

// MarksRepository handles database operations for marks
type MarksRepository interface {
	ExistsForTest(ctx context.Context, testID int64) (bool, error)
	// CreateBatch inserts every record in one transaction. The existence
	// check runs inside the same transaction so two concurrent uploads for
	// the same test cannot both pass the write-once guard.
	CreateBatch(ctx context.Context, testID int64, records []MarkRecord) error
	GetByStudentAndTest(ctx context.Context, studentID, testID int64) (*models.Marks, error)
}

type marksRepository struct {
	db *pgxpool.Pool
}

// NewMarksRepository creates a pgx-backed marks repository
func NewMarksRepository(db *pgxpool.Pool) MarksRepository {
	return &marksRepository{db: db}
}

func (r *marksRepository) ExistsForTest(ctx context.Context, testID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM marks WHERE test_id = $1)`, testID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking marks existence: %w", err)
	}
	return exists, nil
}

func (r *marksRepository) CreateBatch(ctx context.Context, testID int64, records []MarkRecord) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM marks WHERE test_id = $1)`, testID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking marks existence: %w", err)
		}
		if exists {
			return apperrors.ErrMarksAlreadyUploaded
		}

		for _, record := range records {
			_, err := tx.Exec(ctx,
				`INSERT INTO marks (student_id, test_id, marks) VALUES ($1, $2, $3)`,
				record.StudentID, testID, record.Value)
			if err != nil {
				return fmt.Errorf("error inserting mark: %w", err)
			}
		}

		return nil
	})
}

func (r *marksRepository) GetByStudentAndTest(ctx context.Context, studentID, testID int64) (*models.Marks, error) {
	query := `SELECT id, student_id, test_id, marks FROM marks WHERE student_id = $1 AND test_id = $2`

	var m models.Marks
	err := r.db.QueryRow(ctx, query, studentID, testID).Scan(&m.ID, &m.StudentID, &m.TestID, &m.Marks)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving mark: %w", err)
	}

	return &m, nil
}
