package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaan/studenthub/internal/app/models"
	"github.com/kaan/studenthub/internal/pkg/apperrors"
	"github.com/kaan/studenthub/internal/pkg/dberrors"
)

// AnnouncementRepository handles database operations for announcements
type AnnouncementRepository struct {
	db *pgxpool.Pool
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

// Create publishes an announcement
func (r *AnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	query := `
		INSERT INTO announcements (title, content, priority, department_id, is_active, created_by, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		announcement.Title, announcement.Content, announcement.Priority,
		announcement.DepartmentID, announcement.IsActive, announcement.CreatedBy,
		announcement.ExpiresAt,
	).Scan(&announcement.ID, &announcement.CreatedAt, &announcement.UpdatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error creating announcement: %w", err)
	}

	return nil
}

const announcementColumns = `
	a.id, a.title, a.content, a.priority, a.department_id, a.is_active,
	a.created_by, a.expires_at, a.created_at, a.updated_at,
	d.name AS department_name,
	u.first_name || ' ' || u.last_name AS created_by_name`

func scanAnnouncement(row pgx.Row, extra ...interface{}) (*models.Announcement, error) {
	var announcement models.Announcement
	dest := []interface{}{
		&announcement.ID,
		&announcement.Title,
		&announcement.Content,
		&announcement.Priority,
		&announcement.DepartmentID,
		&announcement.IsActive,
		&announcement.CreatedBy,
		&announcement.ExpiresAt,
		&announcement.CreatedAt,
		&announcement.UpdatedAt,
		&announcement.DepartmentName,
		&announcement.CreatedByName,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &announcement, nil
}

// GetByID retrieves an announcement by ID
func (r *AnnouncementRepository) GetByID(ctx context.Context, id int64) (*models.Announcement, error) {
	query := `
		SELECT ` + announcementColumns + `
		FROM announcements a
		LEFT JOIN departments d ON d.id = a.department_id
		LEFT JOIN users u ON u.id = a.created_by
		WHERE a.id = $1
	`

	announcement, err := scanAnnouncement(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("error retrieving announcement: %w", err)
	}

	return announcement, nil
}

// GetActive retrieves active, unexpired announcements ordered by
// priority then recency, with pagination.
func (r *AnnouncementRepository) GetActive(ctx context.Context, limit int, offset uint64) ([]*models.Announcement, int64, error) {
	query := `
		SELECT ` + announcementColumns + `,
			COUNT(*) OVER() AS total_count
		FROM announcements a
		LEFT JOIN departments d ON d.id = a.department_id
		LEFT JOIN users u ON u.id = a.created_by
		WHERE a.is_active AND (a.expires_at IS NULL OR a.expires_at > NOW())
		ORDER BY
			CASE a.priority WHEN 'U' THEN 0 WHEN 'H' THEN 1 WHEN 'M' THEN 2 ELSE 3 END,
			a.created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var announcements []*models.Announcement
	var total int64

	for rows.Next() {
		announcement, err := scanAnnouncement(rows, &total)
		if err != nil {
			return nil, 0, err
		}
		announcements = append(announcements, announcement)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return announcements, total, nil
}

// Update updates an existing announcement
func (r *AnnouncementRepository) Update(ctx context.Context, announcement *models.Announcement) error {
	query := `
		UPDATE announcements
		SET title = $1, content = $2, priority = $3, department_id = $4,
			is_active = $5, expires_at = $6, updated_at = NOW()
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		announcement.Title, announcement.Content, announcement.Priority,
		announcement.DepartmentID, announcement.IsActive, announcement.ExpiresAt,
		announcement.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error updating announcement: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAnnouncementNotFound
	}

	return nil
}

// Delete deletes an announcement by ID
func (r *AnnouncementRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting announcement: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAnnouncementNotFound
	}

	return nil
}
