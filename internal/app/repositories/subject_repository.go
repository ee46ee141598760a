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

// SubjectRepository handles database operations for subjects
type SubjectRepository interface {
	// CreateWithStudents inserts the subject and enrolls every existing
	// student matching (department, year) in one transaction.
	CreateWithStudents(ctx context.Context, subject *models.Subject) error
	GetByName(ctx context.Context, subjectName string) (*models.Subject, error)
	ExistsByCode(ctx context.Context, subjectCode string) (bool, error)
	List(ctx context.Context, department, year string) ([]*models.Subject, error)
	ListAll(ctx context.Context) ([]*models.Subject, error)
	DeleteByIDs(ctx context.Context, ids []int64) error
}

type subjectRepository struct {
	db *pgxpool.Pool
}

// NewSubjectRepository creates a pgx-backed subject repository
func NewSubjectRepository(db *pgxpool.Pool) SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) CreateWithStudents(ctx context.Context, subject *models.Subject) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO subjects (subject_code, subject_name, department, year, total_lectures)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`

		err := tx.QueryRow(ctx, query,
			subject.SubjectCode, subject.SubjectName, subject.Department,
			subject.Year, subject.TotalLectures,
		).Scan(&subject.ID)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrSubjectAlreadyExists
			}
			return fmt.Errorf("error creating subject: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO student_subjects (student_id, subject_id)
			SELECT id, $1 FROM students WHERE department = $2 AND year = $3::int
		`, subject.ID, subject.Department, subject.Year)
		if err != nil {
			return fmt.Errorf("error enrolling students: %w", err)
		}

		return nil
	})
}

func (r *subjectRepository) GetByName(ctx context.Context, subjectName string) (*models.Subject, error) {
	query := `
		SELECT id, subject_code, subject_name, department, year, total_lectures
		FROM subjects WHERE subject_name = $1
	`

	var subject models.Subject
	err := r.db.QueryRow(ctx, query, subjectName).Scan(
		&subject.ID, &subject.SubjectCode, &subject.SubjectName,
		&subject.Department, &subject.Year, &subject.TotalLectures,
	)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrSubjectNotFound
		}
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}

	return &subject, nil
}

func (r *subjectRepository) ExistsByCode(ctx context.Context, subjectCode string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM subjects WHERE subject_code = $1)`, subjectCode).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking subject existence: %w", err)
	}
	return exists, nil
}

func (r *subjectRepository) List(ctx context.Context, department, year string) ([]*models.Subject, error) {
	query := `
		SELECT id, subject_code, subject_name, department, year, total_lectures
		FROM subjects WHERE department = $1 AND year = $2 ORDER BY subject_code
	`

	rows, err := r.db.Query(ctx, query, department, year)
	if err != nil {
		return nil, fmt.Errorf("error listing subjects: %w", err)
	}
	defer rows.Close()

	return collectSubjects(rows)
}

func (r *subjectRepository) ListAll(ctx context.Context) ([]*models.Subject, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, subject_code, subject_name, department, year, total_lectures
		FROM subjects ORDER BY subject_code
	`)
	if err != nil {
		return nil, fmt.Errorf("error listing subjects: %w", err)
	}
	defer rows.Close()

	return collectSubjects(rows)
}

func collectSubjects(rows pgx.Rows) ([]*models.Subject, error) {
	var subjects []*models.Subject
	for rows.Next() {
		var subject models.Subject
		if err := rows.Scan(
			&subject.ID, &subject.SubjectCode, &subject.SubjectName,
			&subject.Department, &subject.Year, &subject.TotalLectures,
		); err != nil {
			return nil, err
		}
		subjects = append(subjects, &subject)
	}
	return subjects, rows.Err()
}

func (r *subjectRepository) DeleteByIDs(ctx context.Context, ids []int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM subjects WHERE id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("error deleting subjects: %w", err)
	}
	return nil
}
