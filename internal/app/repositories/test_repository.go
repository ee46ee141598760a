package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rsharma/collegium/internal/app/models"
	"github.com/rsharma/collegium/internal/pkg/apperrors"
	"github.com/rsharma/collegium/internal/pkg/dberrors"
)

// TestRepository handles database operations for tests
type TestRepository interface {
	Create(ctx context.Context, test *models.Test) error
	GetByClassAndName(ctx context.Context, department, year, section, name string) (*models.Test, error)
	ListByClass(ctx context.Context, department, year, section string) ([]*models.Test, error)
}

type testRepository struct {
	db *pgxpool.Pool
}

// NewTestRepository creates a pgx-backed test repository
func NewTestRepository(db *pgxpool.Pool) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) Create(ctx context.Context, test *models.Test) error {
	query := `
		INSERT INTO tests (subject_code, department, year, section, name, total_marks, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		test.SubjectCode, test.Department, test.Year, test.Section,
		test.Name, test.TotalMarks, test.Date,
	).Scan(&test.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrTestAlreadyExists
		}
		return fmt.Errorf("error creating test: %w", err)
	}

	return nil
}

func (r *testRepository) GetByClassAndName(ctx context.Context, department, year, section, name string) (*models.Test, error) {
	query := `
		SELECT id, subject_code, department, year, section, name, total_marks, date
		FROM tests
		WHERE department = $1 AND year = $2 AND section = $3 AND name = $4
	`

	var test models.Test
	err := r.db.QueryRow(ctx, query, department, year, section, name).Scan(
		&test.ID, &test.SubjectCode, &test.Department, &test.Year,
		&test.Section, &test.Name, &test.TotalMarks, &test.Date,
	)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrTestNotFound
		}
		return nil, fmt.Errorf("error retrieving test: %w", err)
	}

	return &test, nil
}

func (r *testRepository) ListByClass(ctx context.Context, department, year, section string) ([]*models.Test, error) {
	query := `
		SELECT id, subject_code, department, year, section, name, total_marks, date
		FROM tests
		WHERE department = $1 AND year = $2 AND section = $3
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, department, year, section)
	if err != nil {
		return nil, fmt.Errorf("error listing tests: %w", err)
	}
	defer rows.Close()

	var tests []*models.Test
	for rows.Next() {
		var test models.Test
		if err := rows.Scan(
			&test.ID, &test.SubjectCode, &test.Department, &test.Year,
			&test.Section, &test.Name, &test.TotalMarks, &test.Date,
		); err != nil {
			return nil, err
		}
		tests = append(tests, &test)
	}
	return tests, rows.Err()
}
