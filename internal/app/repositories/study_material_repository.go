package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rsharma/collegium/internal/app/models"
	"github.com/rsharma/collegium/internal/pkg/apperrors"
	"github.com/rsharma/collegium/internal/pkg/dberrors"
)

// StudyMaterialRepository handles database operations for study materials
type StudyMaterialRepository interface {
	Create(ctx context.Context, material *models.StudyMaterial) error
	ListByClass(ctx context.Context, department string, year int, section string) ([]*models.StudyMaterial, error)
}

type studyMaterialRepository struct {
	db *pgxpool.Pool
}

// NewStudyMaterialRepository creates a pgx-backed study material repository
func NewStudyMaterialRepository(db *pgxpool.Pool) StudyMaterialRepository {
	return &studyMaterialRepository{db: db}
}

func (r *studyMaterialRepository) Create(ctx context.Context, material *models.StudyMaterial) error {
	query := `
		INSERT INTO study_materials (title, description, file_url, subject, department, year, section)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		material.Title, material.Description, material.FileURL,
		material.Subject, material.Department, material.Year, material.Section,
	).Scan(&material.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrMaterialAlreadyExists
		}
		return fmt.Errorf("error creating study material: %w", err)
	}

	return nil
}

func (r *studyMaterialRepository) ListByClass(ctx context.Context, department string, year int, section string) ([]*models.StudyMaterial, error) {
	query := `
		SELECT id, title, description, file_url, subject, department, year, section
		FROM study_materials
		WHERE department = $1 AND year = $2 AND section = $3
		ORDER BY id DESC`

	rows, err := r.db.Query(ctx, query, department, year, section)
	if err != nil {
		return nil, fmt.Errorf("error listing study materials: %w", err)
	}
	defer rows.Close()

	var materials []*models.StudyMaterial
	for rows.Next() {
		var m models.StudyMaterial
		err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.FileURL,
			&m.Subject, &m.Department, &m.Year, &m.Section)
		if err != nil {
			return nil, fmt.Errorf("error scanning study material: %w", err)
		}
		materials = append(materials, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating study materials: %w", err)
	}

	return materials, nil
}
