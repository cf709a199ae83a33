package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EntityCounts carries the headline dashboard numbers.
type EntityCounts struct {
	TotalStudents    int64
	ActiveStudents   int64
	TotalDepartments int64
	TotalCourses     int64
	TotalEnrollments int64
}

// DepartmentCount is the number of students in one department.
type DepartmentCount struct {
	DepartmentID   int64
	DepartmentName string
	StudentCount   int64
}

// GPABucketCount is one bucket of the GPA distribution.
type GPABucketCount struct {
	Label string
	Count int64
}

// MonthCount is one month of the admission trend.
type MonthCount struct {
	Month string
	Count int64
}

// DayStatusCounts is one day of the attendance chart.
type DayStatusCounts struct {
	Date    time.Time
	Present int64
	Absent  int64
	Late    int64
}

// DashboardRepository runs the aggregate queries behind the dashboard
type DashboardRepository struct {
	db *pgxpool.Pool
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(db *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// Counts retrieves the headline entity counts
func (r *DashboardRepository) Counts(ctx context.Context) (*EntityCounts, error) {
	var counts EntityCounts
	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM students),
			(SELECT COUNT(*) FROM students WHERE is_active),
			(SELECT COUNT(*) FROM departments),
			(SELECT COUNT(*) FROM courses),
			(SELECT COUNT(*) FROM enrollments)`,
	).Scan(
		&counts.TotalStudents,
		&counts.ActiveStudents,
		&counts.TotalDepartments,
		&counts.TotalCourses,
		&counts.TotalEnrollments,
	)
	if err != nil {
		return nil, fmt.Errorf("error counting entities: %w", err)
	}

	return &counts, nil
}

// StudentCountsByDepartment groups active students per department
func (r *DashboardRepository) StudentCountsByDepartment(ctx context.Context) ([]DepartmentCount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT d.id, d.name, COUNT(s.id)
		FROM departments d
		LEFT JOIN students s ON s.department_id = d.id AND s.is_active
		GROUP BY d.id, d.name
		ORDER BY d.name`)
	if err != nil {
		return nil, fmt.Errorf("error grouping students by department: %w", err)
	}
	defer rows.Close()

	var counts []DepartmentCount
	for rows.Next() {
		var count DepartmentCount
		if err := rows.Scan(&count.DepartmentID, &count.DepartmentName, &count.StudentCount); err != nil {
			return nil, err
		}
		counts = append(counts, count)
	}

	return counts, rows.Err()
}

// GPADistribution buckets active students into half-point GPA ranges
// up to the configured scale.
func (r *DashboardRepository) GPADistribution(ctx context.Context, scale float64) ([]GPABucketCount, error) {
	rows, err := r.db.Query(ctx, `
		WITH buckets AS (
			SELECT generate_series(0, $1::numeric - 0.5, 0.5) AS low
		)
		SELECT
			to_char(b.low, 'FM0.0') || '-' || to_char(b.low + 0.5, 'FM0.0'),
			COUNT(s.id)
		FROM buckets b
		LEFT JOIN students s ON s.is_active
			AND s.gpa >= b.low
			AND (s.gpa < b.low + 0.5 OR (b.low + 0.5 >= $1 AND s.gpa <= $1))
		GROUP BY b.low
		ORDER BY b.low`, scale)
	if err != nil {
		return nil, fmt.Errorf("error bucketing GPA: %w", err)
	}
	defer rows.Close()

	var buckets []GPABucketCount
	for rows.Next() {
		var bucket GPABucketCount
		if err := rows.Scan(&bucket.Label, &bucket.Count); err != nil {
			return nil, err
		}
		buckets = append(buckets, bucket)
	}

	return buckets, rows.Err()
}

// AttendanceForDate counts present and absent records for one date
func (r *DashboardRepository) AttendanceForDate(ctx context.Context, date time.Time) (present, absent int64, err error) {
	err = r.db.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE status IN ('P', 'L', 'OD')),
			COUNT(*) FILTER (WHERE status IN ('A', 'ML'))
		FROM attendance
		WHERE date = $1`, date).Scan(&present, &absent)
	if err != nil {
		return 0, 0, fmt.Errorf("error counting attendance: %w", err)
	}
	return present, absent, nil
}

// PendingFeeTotals sums outstanding amounts over unpaid fees
func (r *DashboardRepository) PendingFeeTotals(ctx context.Context) (totalOutstanding float64, count int64, err error) {
	err = r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount - amount_paid), 0), COUNT(*)
		FROM fees
		WHERE status IN ('PEN', 'PAR', 'OVD')`).Scan(&totalOutstanding, &count)
	if err != nil {
		return 0, 0, fmt.Errorf("error totaling pending fees: %w", err)
	}
	return totalOutstanding, count, nil
}

// AdmissionTrend counts admissions per month over the last n months
func (r *DashboardRepository) AdmissionTrend(ctx context.Context, months int) ([]MonthCount, error) {
	rows, err := r.db.Query(ctx, `
		WITH series AS (
			SELECT date_trunc('month', NOW()) - (n || ' months')::interval AS month
			FROM generate_series($1::int - 1, 0, -1) AS n
		)
		SELECT to_char(series.month, 'YYYY-MM'), COUNT(s.id)
		FROM series
		LEFT JOIN students s ON date_trunc('month', s.admission_date) = series.month
		GROUP BY series.month
		ORDER BY series.month`, months)
	if err != nil {
		return nil, fmt.Errorf("error querying admission trend: %w", err)
	}
	defer rows.Close()

	var trend []MonthCount
	for rows.Next() {
		var point MonthCount
		if err := rows.Scan(&point.Month, &point.Count); err != nil {
			return nil, err
		}
		trend = append(trend, point)
	}

	return trend, rows.Err()
}

// AttendanceByDay counts statuses per day over the last n days,
// optionally for one course.
func (r *DashboardRepository) AttendanceByDay(ctx context.Context, days int, courseID int64) ([]DayStatusCounts, error) {
	rows, err := r.db.Query(ctx, `
		SELECT date,
			COUNT(*) FILTER (WHERE status IN ('P', 'OD')),
			COUNT(*) FILTER (WHERE status IN ('A', 'ML')),
			COUNT(*) FILTER (WHERE status = 'L')
		FROM attendance
		WHERE date > CURRENT_DATE - $1::int
			AND ($2::bigint = 0 OR course_id = $2)
		GROUP BY date
		ORDER BY date`, days, courseID)
	if err != nil {
		return nil, fmt.Errorf("error querying attendance by day: %w", err)
	}
	defer rows.Close()

	var points []DayStatusCounts
	for rows.Next() {
		var point DayStatusCounts
		if err := rows.Scan(&point.Date, &point.Present, &point.Absent, &point.Late); err != nil {
			return nil, err
		}
		points = append(points, point)
	}

	return points, rows.Err()
}

// RecentAdmissions returns the ids of the newest student records,
// ordered by creation time.
func (r *DashboardRepository) RecentAdmissions(ctx context.Context, limit int) ([]int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id FROM students ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying recent admissions: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
