package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rsharma/collegium/internal/app/models"
	"github.com/rsharma/collegium/internal/pkg/apperrors"
	"github.com/rsharma/collegium/internal/pkg/dberrors"
)

// AdminProfileUpdate carries the mutable admin profile fields; nil means
// leave unchanged.
type AdminProfileUpdate struct {
	Name          *string
	DOB           *string
	Department    *string
	ContactNumber *string
	Avatar        *string
}

// AdminRepository handles database operations for admin accounts
type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	CountByDepartment(ctx context.Context, department *string) (int, error)
	List(ctx context.Context, department string) ([]*models.Admin, error)
	UpdateProfile(ctx context.Context, email string, upd AdminProfileUpdate) (*models.Admin, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
	DeleteByIDs(ctx context.Context, ids []int64) error
}

type adminRepository struct {
	db *pgxpool.Pool
}

// NewAdminRepository creates a pgx-backed admin repository
func NewAdminRepository(db *pgxpool.Pool) AdminRepository {
	return &adminRepository{db: db}
}

const adminColumns = `id, name, email, username, password, password_updated,
	department, dob, joining_year, contact_number, avatar, created_at`

func scanAdmin(row interface{ Scan(dest ...any) error }) (*models.Admin, error) {
	var a models.Admin
	err := row.Scan(
		&a.ID, &a.Name, &a.Email, &a.Username, &a.Password, &a.PasswordUpdated,
		&a.Department, &a.DOB, &a.JoiningYear, &a.ContactNumber, &a.Avatar, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *adminRepository) Create(ctx context.Context, admin *models.Admin) error {
	query := `
		INSERT INTO admins (name, email, username, password, password_updated,
			department, dob, joining_year, contact_number, avatar)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		admin.Name, admin.Email, admin.Username, admin.Password, admin.PasswordUpdated,
		admin.Department, admin.DOB, admin.JoiningYear, admin.ContactNumber, admin.Avatar,
	).Scan(&admin.ID, &admin.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating admin: %w", err)
	}

	return nil
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE username = $1`

	admin, err := scanAdmin(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}
	return admin, nil
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE email = $1`

	admin, err := scanAdmin(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}
	return admin, nil
}

func (r *adminRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM admins WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking admin email: %w", err)
	}
	return exists, nil
}

func (r *adminRepository) CountByDepartment(ctx context.Context, department *string) (int, error) {
	var count int
	var err error
	if department == nil {
		err = r.db.QueryRow(ctx,
			`SELECT COUNT(*) FROM admins WHERE department IS NULL`).Scan(&count)
	} else {
		err = r.db.QueryRow(ctx,
			`SELECT COUNT(*) FROM admins WHERE department = $1`, *department).Scan(&count)
	}
	if err != nil {
		return 0, fmt.Errorf("error counting admins: %w", err)
	}
	return count, nil
}

func (r *adminRepository) List(ctx context.Context, department string) ([]*models.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins`
	args := []any{}
	if department != "" {
		query += ` WHERE department = $1`
		args = append(args, department)
	}
	query += ` ORDER BY id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing admins: %w", err)
	}
	defer rows.Close()

	var admins []*models.Admin
	for rows.Next() {
		admin, err := scanAdmin(rows)
		if err != nil {
			return nil, err
		}
		admins = append(admins, admin)
	}
	return admins, rows.Err()
}

func (r *adminRepository) UpdateProfile(ctx context.Context, email string, upd AdminProfileUpdate) (*models.Admin, error) {
	query := `
		UPDATE admins
		SET name = COALESCE($2, name),
			dob = COALESCE($3, dob),
			department = COALESCE($4, department),
			contact_number = COALESCE($5, contact_number),
			avatar = COALESCE($6, avatar)
		WHERE email = $1
		RETURNING ` + adminColumns

	admin, err := scanAdmin(r.db.QueryRow(ctx, query,
		email, upd.Name, upd.DOB, upd.Department, upd.ContactNumber, upd.Avatar))
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error updating admin: %w", err)
	}
	return admin, nil
}

func (r *adminRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE admins SET password = $2, password_updated = TRUE WHERE email = $1`,
		email, passwordHash)
	if err != nil {
		return fmt.Errorf("error updating admin password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAccountNotFound
	}
	return nil
}

func (r *adminRepository) DeleteByIDs(ctx context.Context, ids []int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM admins WHERE id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("error deleting admins: %w", err)
	}
	return nil
}
