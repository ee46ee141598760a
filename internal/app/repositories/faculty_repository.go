package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rsharma/collegium/internal/app/models"
	"github.com/rsharma/collegium/internal/pkg/apperrors"
	"github.com/rsharma/collegium/internal/pkg/dberrors"
)

// FacultyProfileUpdate carries the mutable faculty profile fields
type FacultyProfileUpdate struct {
	Name          *string
	DOB           *string
	Department    *string
	Designation   *string
	ContactNumber *string
	Avatar        *string
}

// FacultyRepository handles database operations for faculty accounts
type FacultyRepository interface {
	Create(ctx context.Context, faculty *models.Faculty) error
	GetByUsername(ctx context.Context, username string) (*models.Faculty, error)
	GetByEmail(ctx context.Context, email string) (*models.Faculty, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	CountByDepartment(ctx context.Context, department string) (int, error)
	List(ctx context.Context, department string) ([]*models.Faculty, error)
	UpdateProfile(ctx context.Context, email string, upd FacultyProfileUpdate) (*models.Faculty, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
	DeleteByIDs(ctx context.Context, ids []int64) error
}

type facultyRepository struct {
	db *pgxpool.Pool
}

// NewFacultyRepository creates a pgx-backed faculty repository
func NewFacultyRepository(db *pgxpool.Pool) FacultyRepository {
	return &facultyRepository{db: db}
}

const facultyColumns = `id, name, email, username, password, password_updated,
	department, designation, dob, joining_year, gender, contact_number, avatar, created_at`

func scanFaculty(row interface{ Scan(dest ...any) error }) (*models.Faculty, error) {
	var f models.Faculty
	err := row.Scan(
		&f.ID, &f.Name, &f.Email, &f.Username, &f.Password, &f.PasswordUpdated,
		&f.Department, &f.Designation, &f.DOB, &f.JoiningYear, &f.Gender,
		&f.ContactNumber, &f.Avatar, &f.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *facultyRepository) Create(ctx context.Context, faculty *models.Faculty) error {
	query := `
		INSERT INTO faculty (name, email, username, password, password_updated,
			department, designation, dob, joining_year, gender, contact_number, avatar)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		faculty.Name, faculty.Email, faculty.Username, faculty.Password, faculty.PasswordUpdated,
		faculty.Department, faculty.Designation, faculty.DOB, faculty.JoiningYear,
		faculty.Gender, faculty.ContactNumber, faculty.Avatar,
	).Scan(&faculty.ID, &faculty.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating faculty: %w", err)
	}

	return nil
}

func (r *facultyRepository) GetByUsername(ctx context.Context, username string) (*models.Faculty, error) {
	query := `SELECT ` + facultyColumns + ` FROM faculty WHERE username = $1`

	faculty, err := scanFaculty(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}
	return faculty, nil
}

func (r *facultyRepository) GetByEmail(ctx context.Context, email string) (*models.Faculty, error) {
	query := `SELECT ` + facultyColumns + ` FROM faculty WHERE email = $1`

	faculty, err := scanFaculty(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}
	return faculty, nil
}

func (r *facultyRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM faculty WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking faculty email: %w", err)
	}
	return exists, nil
}

func (r *facultyRepository) CountByDepartment(ctx context.Context, department string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM faculty WHERE department = $1`, department).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting faculty: %w", err)
	}
	return count, nil
}

func (r *facultyRepository) List(ctx context.Context, department string) ([]*models.Faculty, error) {
	query := `SELECT ` + facultyColumns + ` FROM faculty`
	args := []any{}
	if department != "" {
		query += ` WHERE department = $1`
		args = append(args, department)
	}
	query += ` ORDER BY id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing faculty: %w", err)
	}
	defer rows.Close()

	var faculties []*models.Faculty
	for rows.Next() {
		faculty, err := scanFaculty(rows)
		if err != nil {
			return nil, err
		}
		faculties = append(faculties, faculty)
	}
	return faculties, rows.Err()
}

func (r *facultyRepository) UpdateProfile(ctx context.Context, email string, upd FacultyProfileUpdate) (*models.Faculty, error) {
	query := `
		UPDATE faculty
		SET name = COALESCE($2, name),
			dob = COALESCE($3, dob),
			department = COALESCE($4, department),
			designation = COALESCE($5, designation),
			contact_number = COALESCE($6, contact_number),
			avatar = COALESCE($7, avatar)
		WHERE email = $1
		RETURNING ` + facultyColumns

	faculty, err := scanFaculty(r.db.QueryRow(ctx, query,
		email, upd.Name, upd.DOB, upd.Department, upd.Designation, upd.ContactNumber, upd.Avatar))
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error updating faculty: %w", err)
	}
	return faculty, nil
}

func (r *facultyRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE faculty SET password = $2, password_updated = TRUE WHERE email = $1`,
		email, passwordHash)
	if err != nil {
		return fmt.Errorf("error updating faculty password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAccountNotFound
	}
	return nil
}

func (r *facultyRepository) DeleteByIDs(ctx context.Context, ids []int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM faculty WHERE id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("error deleting faculty: %w", err)
	}
	return nil
}
