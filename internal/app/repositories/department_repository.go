package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rsharma/collegium/internal/app/models"
	"github.com/rsharma/collegium/internal/pkg/apperrors"
	"github.com/rsharma/collegium/internal/pkg/dberrors"
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository interface {
	Create(ctx context.Context, department *models.Department) error
	GetByName(ctx context.Context, name string) (*models.Department, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	// NextCode returns the next two-digit department code. Codes are derived
	// from the maximum code ever assigned, not the live row count, so a
	// deleted department's code is never reissued.
	NextCode(ctx context.Context) (string, error)
	List(ctx context.Context) ([]*models.Department, error)
	DeleteByName(ctx context.Context, name string) error
}

type departmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a pgx-backed department repository
func NewDepartmentRepository(db *pgxpool.Pool) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) Create(ctx context.Context, department *models.Department) error {
	query := `
		INSERT INTO departments (name, code)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, department.Name, department.Code).Scan(&department.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDepartmentAlreadyExists
		}
		return fmt.Errorf("error creating department: %w", err)
	}

	return nil
}

func (r *departmentRepository) GetByName(ctx context.Context, name string) (*models.Department, error) {
	query := `SELECT id, name, code FROM departments WHERE name = $1`

	var department models.Department
	err := r.db.QueryRow(ctx, query, name).Scan(&department.ID, &department.Name, &department.Code)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	return &department, nil
}

func (r *departmentRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM departments WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking department existence: %w", err)
	}
	return exists, nil
}

func (r *departmentRepository) NextCode(ctx context.Context) (string, error) {
	var maxCode int
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(MAX(code::int), 0) FROM departments`).Scan(&maxCode)
	if err != nil {
		return "", fmt.Errorf("error computing department code: %w", err)
	}
	return fmt.Sprintf("%02d", maxCode+1), nil
}

func (r *departmentRepository) List(ctx context.Context) ([]*models.Department, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, code FROM departments ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("error listing departments: %w", err)
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		var department models.Department
		if err := rows.Scan(&department.ID, &department.Name, &department.Code); err != nil {
			return nil, err
		}
		departments = append(departments, &department)
	}
	return departments, rows.Err()
}

func (r *departmentRepository) DeleteByName(ctx context.Context, name string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM departments WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("error deleting department: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}
	return nil
}
