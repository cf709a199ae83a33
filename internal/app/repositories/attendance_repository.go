package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaan/studenthub/internal/app/models"
	"github.com/kaan/studenthub/internal/db"
	"github.com/kaan/studenthub/internal/pkg/apperrors"
	"github.com/kaan/studenthub/internal/pkg/dberrors"
)

const constraintAttendanceTriple = "attendance_student_id_course_id_date_key"

// AttendanceFilter narrows an attendance listing.
type AttendanceFilter struct {
	Date      *time.Time
	CourseID  int64
	StudentID int64
	Limit     int
	Offset    uint64
}

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Create records attendance for one student. A second record for the
// same (student, course, date) is a conflict.
func (r *AttendanceRepository) Create(ctx context.Context, attendance *models.Attendance) error {
	query := `
		INSERT INTO attendance (student_id, course_id, date, status, remarks, recorded_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		attendance.StudentID, attendance.CourseID, attendance.Date,
		attendance.Status, attendance.Remarks, attendance.RecordedBy,
	).Scan(&attendance.ID, &attendance.CreatedAt, &attendance.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, constraintAttendanceTriple) {
			return apperrors.ErrAttendanceExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error creating attendance: %w", err)
	}

	return nil
}

// BulkUpsert records attendance for a whole course on one date inside a
// single transaction. Existing records are updated in place.
func (r *AttendanceRepository) BulkUpsert(ctx context.Context, records []*models.Attendance) (created, updated int, err error) {
	err = db.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO attendance (student_id, course_id, date, status, remarks, recorded_by)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (student_id, course_id, date)
			DO UPDATE SET status = EXCLUDED.status, remarks = EXCLUDED.remarks,
				recorded_by = EXCLUDED.recorded_by, updated_at = NOW()
			RETURNING id, (xmax = 0) AS inserted
		`

		for _, record := range records {
			var inserted bool
			err := tx.QueryRow(ctx, query,
				record.StudentID, record.CourseID, record.Date,
				record.Status, record.Remarks, record.RecordedBy,
			).Scan(&record.ID, &inserted)
			if err != nil {
				if dberrors.IsForeignKeyViolation(err) {
					return apperrors.ErrStudentNotFound
				}
				return fmt.Errorf("error upserting attendance: %w", err)
			}
			if inserted {
				created++
			} else {
				updated++
			}
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return created, updated, nil
}

const attendanceColumns = `
	a.id, a.student_id, a.course_id, a.date, a.status, a.remarks, a.recorded_by,
	a.created_at, a.updated_at,
	s.first_name || ' ' || s.last_name AS student_name, s.student_number,
	c.code AS course_code, c.name AS course_name`

func scanAttendance(row pgx.Row, extra ...interface{}) (*models.Attendance, error) {
	var attendance models.Attendance
	dest := []interface{}{
		&attendance.ID,
		&attendance.StudentID,
		&attendance.CourseID,
		&attendance.Date,
		&attendance.Status,
		&attendance.Remarks,
		&attendance.RecordedBy,
		&attendance.CreatedAt,
		&attendance.UpdatedAt,
		&attendance.StudentName,
		&attendance.StudentNumber,
		&attendance.CourseCode,
		&attendance.CourseName,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &attendance, nil
}

// GetAll retrieves attendance records with filtering and pagination
func (r *AttendanceRepository) GetAll(ctx context.Context, filter AttendanceFilter) ([]*models.Attendance, int64, error) {
	query := squirrel.Select(
		"a.id", "a.student_id", "a.course_id", "a.date", "a.status", "a.remarks",
		"a.recorded_by", "a.created_at", "a.updated_at",
		"s.first_name || ' ' || s.last_name AS student_name", "s.student_number",
		"c.code AS course_code", "c.name AS course_name",
		"COUNT(*) OVER() AS total_count",
	).
		From("attendance a").
		Join("students s ON s.id = a.student_id").
		Join("courses c ON c.id = a.course_id").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Date != nil {
		query = query.Where("a.date = ?", *filter.Date)
	}
	if filter.CourseID > 0 {
		query = query.Where("a.course_id = ?", filter.CourseID)
	}
	if filter.StudentID > 0 {
		query = query.Where("a.student_id = ?", filter.StudentID)
	}

	query = query.OrderBy("a.date DESC, s.student_number").
		Limit(uint64(filter.Limit)).
		Offset(filter.Offset)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var records []*models.Attendance
	var total int64

	for rows.Next() {
		record, err := scanAttendance(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// SummaryForStudent aggregates a student's attendance counts
func (r *AttendanceRepository) SummaryForStudent(ctx context.Context, studentID int64) (total, present int64, err error) {
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status IN ('P', 'L', 'OD'))
		FROM attendance
		WHERE student_id = $1`, studentID).Scan(&total, &present)
	if err != nil {
		return 0, 0, fmt.Errorf("error summarizing attendance: %w", err)
	}
	return total, present, nil
}

// Delete deletes an attendance record by ID
func (r *AttendanceRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM attendance WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting attendance: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAttendanceNotFound
	}

	return nil
}

// GetByID retrieves an attendance record by ID
func (r *AttendanceRepository) GetByID(ctx context.Context, id int64) (*models.Attendance, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance a
		JOIN students s ON s.id = a.student_id
		JOIN courses c ON c.id = a.course_id
		WHERE a.id = $1
	`

	record, err := scanAttendance(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("error retrieving attendance: %w", err)
	}

	return record, nil
}
