package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaan/studenthub/internal/app/models"
	"github.com/kaan/studenthub/internal/db"
	"github.com/kaan/studenthub/internal/pkg/apperrors"
	"github.com/kaan/studenthub/internal/pkg/dberrors"
	"github.com/kaan/studenthub/internal/pkg/helpers"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create creates a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (code, name, department_id, credits, semester, instructor, max_students, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		course.Code, course.Name, course.DepartmentID, course.Credits,
		course.Semester, course.Instructor, course.MaxStudents, course.IsActive,
	).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCourseCodeExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseDeptNotFound
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID with its department name and active enrollment count
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT c.id, c.code, c.name, c.department_id, c.credits, c.semester,
			c.instructor, c.max_students, c.is_active, c.created_at, c.updated_at,
			d.name AS department_name,
			(SELECT COUNT(*) FROM enrollments e WHERE e.course_id = c.id AND e.is_active) AS enrolled_count
		FROM courses c
		JOIN departments d ON d.id = c.department_id
		WHERE c.id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Code,
		&course.Name,
		&course.DepartmentID,
		&course.Credits,
		&course.Semester,
		&course.Instructor,
		&course.MaxStudents,
		&course.IsActive,
		&course.CreatedAt,
		&course.UpdatedAt,
		&course.DepartmentName,
		&course.EnrolledCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// GetAll retrieves courses with filtering and pagination
func (r *CourseRepository) GetAll(ctx context.Context, search string, departmentID int64, semester int, limit int, offset uint64) ([]*models.Course, int64, error) {
	query := squirrel.Select(
		"c.id", "c.code", "c.name", "c.department_id", "c.credits", "c.semester",
		"c.instructor", "c.max_students", "c.is_active", "c.created_at", "c.updated_at",
		"d.name AS department_name",
		"(SELECT COUNT(*) FROM enrollments e WHERE e.course_id = c.id AND e.is_active) AS enrolled_count",
		"COUNT(*) OVER() AS total_count",
	).
		From("courses c").
		Join("departments d ON d.id = c.department_id").
		PlaceholderFormat(squirrel.Dollar)

	if search != "" {
		pattern := "%" + helpers.EscapeLikePattern(search) + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"c.code": pattern},
			squirrel.ILike{"c.name": pattern},
			squirrel.ILike{"c.instructor": pattern},
		})
	}
	if departmentID > 0 {
		query = query.Where("c.department_id = ?", departmentID)
	}
	if semester > 0 {
		query = query.Where("c.semester = ?", semester)
	}

	query = query.OrderBy("c.code").Limit(uint64(limit)).Offset(offset)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	var total int64

	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Code,
			&course.Name,
			&course.DepartmentID,
			&course.Credits,
			&course.Semester,
			&course.Instructor,
			&course.MaxStudents,
			&course.IsActive,
			&course.CreatedAt,
			&course.UpdatedAt,
			&course.DepartmentName,
			&course.EnrolledCount,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}

// ExistsByCode checks if another course uses the code. excludeID is ignored when zero.
func (r *CourseRepository) ExistsByCode(ctx context.Context, code string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM courses WHERE code = $1 AND id != $2)`,
		code, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course existence: %w", err)
	}

	return exists, nil
}

// Update updates an existing course. The course row is locked so
// max_students cannot drop below the active enrollment count it is
// compared against.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	return db.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		var currentID int64
		err := tx.QueryRow(ctx, `
			SELECT id FROM courses WHERE id = $1 FOR UPDATE`,
			course.ID).Scan(&currentID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrCourseNotFound
			}
			return fmt.Errorf("error locking course: %w", err)
		}

		var enrolled int
		err = tx.QueryRow(ctx, `
			SELECT COUNT(*) FROM enrollments WHERE course_id = $1 AND is_active`,
			course.ID).Scan(&enrolled)
		if err != nil {
			return fmt.Errorf("error counting enrollments: %w", err)
		}

		if course.MaxStudents < enrolled {
			return apperrors.ErrCourseCapacityTooSmall
		}

		_, err = tx.Exec(ctx, `
			UPDATE courses
			SET code = $1, name = $2, department_id = $3, credits = $4, semester = $5,
				instructor = $6, max_students = $7, is_active = $8, updated_at = NOW()
			WHERE id = $9`,
			course.Code, course.Name, course.DepartmentID, course.Credits, course.Semester,
			course.Instructor, course.MaxStudents, course.IsActive, course.ID)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrCourseCodeExists
			}
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrCourseDeptNotFound
			}
			return fmt.Errorf("error updating course: %w", err)
		}

		return nil
	})
}

// Delete deletes a course by ID. Courses with enrollments or attendance
// are protected by RESTRICT foreign keys.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseHasRelations
		}
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// GradeDistribution counts graded enrollments per letter grade for a course
func (r *CourseRepository) GradeDistribution(ctx context.Context, courseID int64) (map[string]int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT grade, COUNT(*)
		FROM enrollments
		WHERE course_id = $1 AND grade IS NOT NULL
		GROUP BY grade`, courseID)
	if err != nil {
		return nil, fmt.Errorf("error querying grade distribution: %w", err)
	}
	defer rows.Close()

	distribution := map[string]int64{}
	for rows.Next() {
		var grade string
		var count int64
		if err := rows.Scan(&grade, &count); err != nil {
			return nil, err
		}
		distribution[grade] = count
	}

	return distribution, rows.Err()
}
