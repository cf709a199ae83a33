package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan/studenthub/internal/app/models"
	"github.com/kaan/studenthub/internal/app/repositories"
	"github.com/kaan/studenthub/internal/config"
)

type fakeDashboardStore struct {
	lastChartDays     int
	lastChartCourseID int64
}

func (s *fakeDashboardStore) Counts(_ context.Context) (*repositories.EntityCounts, error) {
	return &repositories.EntityCounts{
		TotalStudents:    120,
		ActiveStudents:   110,
		TotalDepartments: 4,
		TotalCourses:     18,
		TotalEnrollments: 300,
	}, nil
}

func (s *fakeDashboardStore) StudentCountsByDepartment(_ context.Context) ([]repositories.DepartmentCount, error) {
	return []repositories.DepartmentCount{
		{DepartmentID: 1, DepartmentName: "Computer Science", StudentCount: 80},
		{DepartmentID: 2, DepartmentName: "Physics", StudentCount: 40},
	}, nil
}

func (s *fakeDashboardStore) GPADistribution(_ context.Context, _ float64) ([]repositories.GPABucketCount, error) {
	return []repositories.GPABucketCount{{Label: "3.0-4.0", Count: 50}}, nil
}

func (s *fakeDashboardStore) AttendanceForDate(_ context.Context, _ time.Time) (int64, int64, error) {
	return 95, 15, nil
}

func (s *fakeDashboardStore) PendingFeeTotals(_ context.Context) (float64, int64, error) {
	return 42000, 12, nil
}

func (s *fakeDashboardStore) AdmissionTrend(_ context.Context, months int) ([]repositories.MonthCount, error) {
	return make([]repositories.MonthCount, months), nil
}

func (s *fakeDashboardStore) AttendanceByDay(_ context.Context, days int, courseID int64) ([]repositories.DayStatusCounts, error) {
	s.lastChartDays = days
	s.lastChartCourseID = courseID
	points := make([]repositories.DayStatusCounts, days)
	for i := range points {
		points[i].Date = time.Now().AddDate(0, 0, -i)
	}
	return points, nil
}

func (s *fakeDashboardStore) RecentAdmissions(_ context.Context, limit int) ([]int64, error) {
	// Newest records first, matching the repository ordering.
	ids := []int64{9, 4}
	if limit < len(ids) {
		ids = ids[:limit]
	}
	return ids, nil
}

type fakeDashboardStudents struct{}

func (s *fakeDashboardStudents) GetByID(_ context.Context, id int64) (*models.Student, error) {
	return &models.Student{ID: id, StudentNumber: models.FormatStudentNumber(id), FirstName: "Test"}, nil
}

func newDashboardServiceForTest() (*DashboardService, *fakeDashboardStore) {
	store := &fakeDashboardStore{}
	service := NewDashboardService(store, &fakeDashboardStudents{}, config.AcademicConfig{GPAScale: 4.0, SemesterMax: 8})
	return service, store
}

func TestDashboardServiceStats(t *testing.T) {
	service, _ := newDashboardServiceForTest()

	stats, err := service.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(120), stats.TotalStudents)
	assert.Equal(t, int64(110), stats.ActiveStudents)
}

func TestDashboardServiceOverview(t *testing.T) {
	service, _ := newDashboardServiceForTest()

	overview, err := service.Overview(context.Background())
	require.NoError(t, err)
	require.Len(t, overview.RecentStudents, 2)
	assert.Equal(t, int64(9), overview.RecentStudents[0].ID)
	assert.Equal(t, int64(4), overview.RecentStudents[1].ID)
	assert.Len(t, overview.DepartmentCounts, 2)
	assert.Equal(t, int64(95), overview.TodayAttendance.Present)
	assert.Equal(t, 42000.0, overview.PendingFees.TotalOutstanding)
	assert.Len(t, overview.AdmissionTrend, 6)
}

func TestDashboardServiceAttendanceChartClampsDays(t *testing.T) {
	service, store := newDashboardServiceForTest()

	t.Run("in-range value passes through", func(t *testing.T) {
		resp, err := service.AttendanceChart(context.Background(), 30, 5)
		require.NoError(t, err)
		assert.Equal(t, 30, store.lastChartDays)
		assert.Equal(t, int64(5), store.lastChartCourseID)
		assert.Len(t, resp.Days, 30)
	})

	t.Run("zero falls back to a week", func(t *testing.T) {
		_, err := service.AttendanceChart(context.Background(), 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 7, store.lastChartDays)
	})

	t.Run("excessive range falls back to a week", func(t *testing.T) {
		_, err := service.AttendanceChart(context.Background(), 365, 0)
		require.NoError(t, err)
		assert.Equal(t, 7, store.lastChartDays)
	})
}
