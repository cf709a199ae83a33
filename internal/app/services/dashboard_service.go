package services

import (
	"context"
	"time"

	"github.com/kaan/studenthub/internal/app/models"
	"github.com/kaan/studenthub/internal/app/models/dto"
	"github.com/kaan/studenthub/internal/app/repositories"
	"github.com/kaan/studenthub/internal/config"
	"github.com/kaan/studenthub/internal/pkg/helpers"
)

// DashboardStore runs the aggregate queries behind the dashboard.
type DashboardStore interface {
	Counts(ctx context.Context) (*repositories.EntityCounts, error)
	StudentCountsByDepartment(ctx context.Context) ([]repositories.DepartmentCount, error)
	GPADistribution(ctx context.Context, scale float64) ([]repositories.GPABucketCount, error)
	AttendanceForDate(ctx context.Context, date time.Time) (present, absent int64, err error)
	PendingFeeTotals(ctx context.Context) (totalOutstanding float64, count int64, err error)
	AdmissionTrend(ctx context.Context, months int) ([]repositories.MonthCount, error)
	AttendanceByDay(ctx context.Context, days int, courseID int64) ([]repositories.DayStatusCounts, error)
	RecentAdmissions(ctx context.Context, limit int) ([]int64, error)
}

// DashboardStudentStore loads students for the recent-admissions panel.
type DashboardStudentStore interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
}

// DashboardService assembles the dashboard payloads
type DashboardService struct {
	dashboard DashboardStore
	students  DashboardStudentStore
	academic  config.AcademicConfig
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(dashboard DashboardStore, students DashboardStudentStore, academic config.AcademicConfig) *DashboardService {
	return &DashboardService{
		dashboard: dashboard,
		students:  students,
		academic:  academic,
	}
}

// Stats retrieves the headline entity counts
func (s *DashboardService) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	counts, err := s.dashboard.Counts(ctx)
	if err != nil {
		return nil, err
	}
	return toDashboardStats(counts), nil
}

// Overview assembles the full dashboard payload
func (s *DashboardService) Overview(ctx context.Context) (*dto.DashboardOverview, error) {
	counts, err := s.dashboard.Counts(ctx)
	if err != nil {
		return nil, err
	}

	recentIDs, err := s.dashboard.RecentAdmissions(ctx, 5)
	if err != nil {
		return nil, err
	}
	recent := make([]dto.StudentResponse, 0, len(recentIDs))
	for _, id := range recentIDs {
		student, err := s.students.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		recent = append(recent, *toStudentResponse(student))
	}

	departmentCounts, err := s.dashboard.StudentCountsByDepartment(ctx)
	if err != nil {
		return nil, err
	}

	gpaBuckets, err := s.dashboard.GPADistribution(ctx, s.academic.GPAScale)
	if err != nil {
		return nil, err
	}

	present, absent, err := s.dashboard.AttendanceForDate(ctx, helpers.Today())
	if err != nil {
		return nil, err
	}

	pendingTotal, pendingCount, err := s.dashboard.PendingFeeTotals(ctx)
	if err != nil {
		return nil, err
	}

	trend, err := s.dashboard.AdmissionTrend(ctx, 6)
	if err != nil {
		return nil, err
	}

	overview := &dto.DashboardOverview{
		Stats:            *toDashboardStats(counts),
		RecentStudents:   recent,
		DepartmentCounts: make([]dto.DepartmentStudentCount, 0, len(departmentCounts)),
		GPADistribution:  make([]dto.GPABucket, 0, len(gpaBuckets)),
		TodayAttendance:  dto.TodayAttendance{Present: present, Absent: absent},
		PendingFees: dto.FeeSummary{
			TotalOutstanding: pendingTotal,
			PendingCount:     pendingCount,
		},
		AdmissionTrend: make([]dto.MonthlyAdmissions, 0, len(trend)),
	}
	for _, count := range departmentCounts {
		overview.DepartmentCounts = append(overview.DepartmentCounts, dto.DepartmentStudentCount{
			DepartmentID:   count.DepartmentID,
			DepartmentName: count.DepartmentName,
			StudentCount:   count.StudentCount,
		})
	}
	for _, bucket := range gpaBuckets {
		overview.GPADistribution = append(overview.GPADistribution, dto.GPABucket{
			Label: bucket.Label,
			Count: bucket.Count,
		})
	}
	for _, point := range trend {
		overview.AdmissionTrend = append(overview.AdmissionTrend, dto.MonthlyAdmissions{
			Month: point.Month,
			Count: point.Count,
		})
	}
	return overview, nil
}

// AttendanceChart builds per-day status counts over the last days
func (s *DashboardService) AttendanceChart(ctx context.Context, days int, courseID int64) (*dto.AttendanceChartResponse, error) {
	if days < 1 || days > 90 {
		days = 7
	}

	points, err := s.dashboard.AttendanceByDay(ctx, days, courseID)
	if err != nil {
		return nil, err
	}

	response := &dto.AttendanceChartResponse{
		Days: make([]dto.AttendanceChartPoint, 0, len(points)),
	}
	for _, point := range points {
		response.Days = append(response.Days, dto.AttendanceChartPoint{
			Date:    point.Date.Format(helpers.DateFormat),
			Present: point.Present,
			Absent:  point.Absent,
			Late:    point.Late,
		})
	}
	return response, nil
}

func toDashboardStats(counts *repositories.EntityCounts) *dto.DashboardStats {
	return &dto.DashboardStats{
		TotalStudents:    counts.TotalStudents,
		ActiveStudents:   counts.ActiveStudents,
		TotalDepartments: counts.TotalDepartments,
		TotalCourses:     counts.TotalCourses,
		TotalEnrollments: counts.TotalEnrollments,
	}
}
