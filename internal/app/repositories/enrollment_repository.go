package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaan/studenthub/internal/app/models"
	"github.com/kaan/studenthub/internal/db"
	"github.com/kaan/studenthub/internal/pkg/apperrors"
	"github.com/kaan/studenthub/internal/pkg/dberrors"
)

const constraintEnrollmentPair = "enrollments_student_id_course_id_key"

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Create enrolls a student in a course. The course row is locked so the
// capacity check and the insert observe the same enrollment count.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	return db.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		var maxStudents int
		var isActive bool
		err := tx.QueryRow(ctx, `
			SELECT max_students, is_active FROM courses WHERE id = $1 FOR UPDATE`,
			enrollment.CourseID).Scan(&maxStudents, &isActive)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrCourseNotFound
			}
			return fmt.Errorf("error locking course: %w", err)
		}

		if !isActive {
			return apperrors.ErrCourseInactive
		}

		var enrolled int
		err = tx.QueryRow(ctx, `
			SELECT COUNT(*) FROM enrollments WHERE course_id = $1 AND is_active`,
			enrollment.CourseID).Scan(&enrolled)
		if err != nil {
			return fmt.Errorf("error counting enrollments: %w", err)
		}

		if enrolled >= maxStudents {
			return apperrors.ErrCourseCapacityFull
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO enrollments (student_id, course_id, enrolled_date, is_active, completed)
			VALUES ($1, $2, $3, TRUE, FALSE)
			RETURNING id, created_at, updated_at`,
			enrollment.StudentID, enrollment.CourseID, enrollment.EnrolledDate,
		).Scan(&enrollment.ID, &enrollment.CreatedAt, &enrollment.UpdatedAt)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, constraintEnrollmentPair) {
				return apperrors.ErrAlreadyEnrolled
			}
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrStudentNotFound
			}
			return fmt.Errorf("error creating enrollment: %w", err)
		}

		enrollment.IsActive = true
		enrollment.Completed = false
		return nil
	})
}

const enrollmentColumns = `
	e.id, e.student_id, e.course_id, e.enrolled_date, e.internal_marks,
	e.external_marks, e.grade, e.is_active, e.completed, e.created_at, e.updated_at,
	s.first_name || ' ' || s.last_name AS student_name, s.student_number,
	c.code AS course_code, c.name AS course_name`

func scanEnrollment(row pgx.Row) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := row.Scan(
		&enrollment.ID,
		&enrollment.StudentID,
		&enrollment.CourseID,
		&enrollment.EnrolledDate,
		&enrollment.InternalMarks,
		&enrollment.ExternalMarks,
		&enrollment.Grade,
		&enrollment.IsActive,
		&enrollment.Completed,
		&enrollment.CreatedAt,
		&enrollment.UpdatedAt,
		&enrollment.StudentName,
		&enrollment.StudentNumber,
		&enrollment.CourseCode,
		&enrollment.CourseName,
	)
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// GetByID retrieves an enrollment by ID
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	query := `
		SELECT ` + enrollmentColumns + `
		FROM enrollments e
		JOIN students s ON s.id = e.student_id
		JOIN courses c ON c.id = e.course_id
		WHERE e.id = $1
	`

	enrollment, err := scanEnrollment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	return enrollment, nil
}

// GetByStudentID retrieves all enrollments for a student
func (r *EnrollmentRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	return r.list(ctx, "e.student_id = $1", studentID)
}

// GetByCourseID retrieves all active enrollments for a course
func (r *EnrollmentRepository) GetByCourseID(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	return r.list(ctx, "e.course_id = $1 AND e.is_active", courseID)
}

func (r *EnrollmentRepository) list(ctx context.Context, where string, arg interface{}) ([]*models.Enrollment, error) {
	query := `
		SELECT ` + enrollmentColumns + `
		FROM enrollments e
		JOIN students s ON s.id = e.student_id
		JOIN courses c ON c.id = e.course_id
		WHERE ` + where + `
		ORDER BY e.enrolled_date DESC, e.id DESC
	`

	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		enrollment, err := scanEnrollment(rows)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, enrollment)
	}

	return enrollments, rows.Err()
}

// Update writes marks, the derived grade and flags for an enrollment.
// Reactivating an inactive enrollment re-checks the course capacity
// under the same lock the create path takes.
func (r *EnrollmentRepository) Update(ctx context.Context, enrollment *models.Enrollment) error {
	return db.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		var wasActive bool
		var courseID int64
		err := tx.QueryRow(ctx, `
			SELECT is_active, course_id FROM enrollments WHERE id = $1 FOR UPDATE`,
			enrollment.ID).Scan(&wasActive, &courseID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrEnrollmentNotFound
			}
			return fmt.Errorf("error locking enrollment: %w", err)
		}

		if enrollment.IsActive && !wasActive {
			var maxStudents int
			err := tx.QueryRow(ctx, `
				SELECT max_students FROM courses WHERE id = $1 FOR UPDATE`,
				courseID).Scan(&maxStudents)
			if err != nil {
				return fmt.Errorf("error locking course: %w", err)
			}

			var enrolled int
			err = tx.QueryRow(ctx, `
				SELECT COUNT(*) FROM enrollments WHERE course_id = $1 AND is_active AND id != $2`,
				courseID, enrollment.ID).Scan(&enrolled)
			if err != nil {
				return fmt.Errorf("error counting enrollments: %w", err)
			}

			if enrolled >= maxStudents {
				return apperrors.ErrCourseCapacityFull
			}
		}

		_, err = tx.Exec(ctx, `
			UPDATE enrollments
			SET internal_marks = $1, external_marks = $2, grade = $3,
				is_active = $4, completed = $5, updated_at = NOW()
			WHERE id = $6`,
			enrollment.InternalMarks, enrollment.ExternalMarks, enrollment.Grade,
			enrollment.IsActive, enrollment.Completed, enrollment.ID)
		if err != nil {
			return fmt.Errorf("error updating enrollment: %w", err)
		}

		return nil
	})
}

// Delete deletes an enrollment by ID
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM enrollments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}
