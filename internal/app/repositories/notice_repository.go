package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rsharma/collegium/internal/app/models"
	"github.com/rsharma/collegium/internal/pkg/apperrors"
	"github.com/rsharma/collegium/internal/pkg/dberrors"
)

// NoticeRepository handles database operations for notices
type NoticeRepository interface {
	Create(ctx context.Context, notice *models.Notice) error
	List(ctx context.Context) ([]*models.Notice, error)
}

type noticeRepository struct {
	db *pgxpool.Pool
}

// NewNoticeRepository creates a pgx-backed notice repository
func NewNoticeRepository(db *pgxpool.Pool) NoticeRepository {
	return &noticeRepository{db: db}
}

func (r *noticeRepository) Create(ctx context.Context, notice *models.Notice) error {
	query := `
		INSERT INTO notices (sender, topic, content, date, notice_for)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		notice.From, notice.Topic, notice.Content, notice.Date, notice.NoticeFor,
	).Scan(&notice.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrNoticeAlreadyExists
		}
		return fmt.Errorf("error creating notice: %w", err)
	}

	return nil
}

func (r *noticeRepository) List(ctx context.Context) ([]*models.Notice, error) {
	query := `SELECT id, sender, topic, content, date, notice_for FROM notices ORDER BY id DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing notices: %w", err)
	}
	defer rows.Close()

	var notices []*models.Notice
	for rows.Next() {
		var n models.Notice
		if err := rows.Scan(&n.ID, &n.From, &n.Topic, &n.Content, &n.Date, &n.NoticeFor); err != nil {
			return nil, fmt.Errorf("error scanning notice: %w", err)
		}
		notices = append(notices, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notices: %w", err)
	}

	return notices, nil
}
