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

// StudentProfileUpdate carries the mutable student profile fields
type StudentProfileUpdate struct {
	Name                *string
	DOB                 *string
	Department          *string
	ContactNumber       *string
	Avatar              *string
	Batch               *string
	Section             *string
	Year                *int
	FatherName          *string
	MotherName          *string
	FatherContactNumber *string
}

// StudentRepository handles database operations for student accounts
type StudentRepository interface {
	// CreateWithSubjects inserts the student and links every existing subject
	// matching the student's (department, year) in one transaction.
	CreateWithSubjects(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByUsername(ctx context.Context, username string) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	CountByDepartment(ctx context.Context, department string) (int, error)
	List(ctx context.Context, department string, year int, section string) ([]*models.Student, error)
	ListAll(ctx context.Context) ([]*models.Student, error)
	UpdateProfile(ctx context.Context, email string, upd StudentProfileUpdate) (*models.Student, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
	DeleteByIDs(ctx context.Context, ids []int64) error
}

type studentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a pgx-backed student repository
func NewStudentRepository(db *pgxpool.Pool) StudentRepository {
	return &studentRepository{db: db}
}

const studentColumns = `id, name, email, username, password, password_updated,
	department, year, section, dob, gender, contact_number, avatar,
	father_name, mother_name, father_contact_number, mother_contact_number,
	batch, created_at`

func scanStudent(row interface{ Scan(dest ...any) error }) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID, &s.Name, &s.Email, &s.Username, &s.Password, &s.PasswordUpdated,
		&s.Department, &s.Year, &s.Section, &s.DOB, &s.Gender, &s.ContactNumber,
		&s.Avatar, &s.FatherName, &s.MotherName, &s.FatherContactNumber,
		&s.MotherContactNumber, &s.Batch, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *studentRepository) CreateWithSubjects(ctx context.Context, student *models.Student) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO students (name, email, username, password, password_updated,
				department, year, section, dob, gender, contact_number, avatar,
				father_name, mother_name, father_contact_number, mother_contact_number, batch)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
			RETURNING id, created_at
		`

		err := tx.QueryRow(ctx, query,
			student.Name, student.Email, student.Username, student.Password, student.PasswordUpdated,
			student.Department, student.Year, student.Section, student.DOB, student.Gender,
			student.ContactNumber, student.Avatar, student.FatherName, student.MotherName,
			student.FatherContactNumber, student.MotherContactNumber, student.Batch,
		).Scan(&student.ID, &student.CreatedAt)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrEmailAlreadyExists
			}
			return fmt.Errorf("error creating student: %w", err)
		}

		// Retroactively enroll the student in subjects already defined for
		// the class.
		_, err = tx.Exec(ctx, `
			INSERT INTO student_subjects (student_id, subject_id)
			SELECT $1, id FROM subjects WHERE department = $2 AND year = $3
		`, student.ID, student.Department, fmt.Sprintf("%d", student.Year))
		if err != nil {
			return fmt.Errorf("error linking subjects: %w", err)
		}

		return nil
	})
}

func (r *studentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

func (r *studentRepository) GetByUsername(ctx context.Context, username string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE username = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

func (r *studentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE email = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

func (r *studentRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student email: %w", err)
	}
	return exists, nil
}

func (r *studentRepository) CountByDepartment(ctx context.Context, department string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM students WHERE department = $1`, department).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

// List filters by class selectors. Year 0 and empty section mean "any".
func (r *studentRepository) List(ctx context.Context, department string, year int, section string) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE department = $1`
	args := []any{department}

	if year > 0 {
		args = append(args, year)
		query += fmt.Sprintf(` AND year = $%d`, len(args))
	}
	if section != "" {
		args = append(args, section)
		query += fmt.Sprintf(` AND section = $%d`, len(args))
	}
	query += ` ORDER BY id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

func (r *studentRepository) ListAll(ctx context.Context) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, `SELECT `+studentColumns+` FROM students ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

func (r *studentRepository) UpdateProfile(ctx context.Context, email string, upd StudentProfileUpdate) (*models.Student, error) {
	query := `
		UPDATE students
		SET name = COALESCE($2, name),
			dob = COALESCE($3, dob),
			department = COALESCE($4, department),
			contact_number = COALESCE($5, contact_number),
			avatar = COALESCE($6, avatar),
			batch = COALESCE($7, batch),
			section = COALESCE($8, section),
			year = COALESCE($9, year),
			father_name = COALESCE($10, father_name),
			mother_name = COALESCE($11, mother_name),
			father_contact_number = COALESCE($12, father_contact_number)
		WHERE email = $1
		RETURNING ` + studentColumns

	student, err := scanStudent(r.db.QueryRow(ctx, query,
		email, upd.Name, upd.DOB, upd.Department, upd.ContactNumber, upd.Avatar,
		upd.Batch, upd.Section, upd.Year, upd.FatherName, upd.MotherName,
		upd.FatherContactNumber))
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error updating student: %w", err)
	}
	return student, nil
}

func (r *studentRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE students SET password = $2, password_updated = TRUE WHERE email = $1`,
		email, passwordHash)
	if err != nil {
		return fmt.Errorf("error updating student password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAccountNotFound
	}
	return nil
}

func (r *studentRepository) DeleteByIDs(ctx context.Context, ids []int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("error deleting students: %w", err)
	}
	return nil
}
