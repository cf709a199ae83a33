package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan/studenthub/internal/app/models"
	"github.com/kaan/studenthub/internal/app/models/dto"
	"github.com/kaan/studenthub/internal/config"
	"github.com/kaan/studenthub/internal/pkg/apperrors"
)

type fakeCourseStore struct {
	courses      map[int64]*models.Course
	nextID       int64
	distribution map[string]int64
	activeCount  int
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{courses: make(map[int64]*models.Course), nextID: 1}
}

func (s *fakeCourseStore) Create(_ context.Context, course *models.Course) error {
	course.ID = s.nextID
	s.nextID++
	s.courses[course.ID] = course
	return nil
}

func (s *fakeCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := s.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	copied := *course
	return &copied, nil
}

func (s *fakeCourseStore) GetAll(_ context.Context, _ string, _ int64, _ int, _ int, _ uint64) ([]*models.Course, int64, error) {
	out := make([]*models.Course, 0, len(s.courses))
	for _, course := range s.courses {
		out = append(out, course)
	}
	return out, int64(len(out)), nil
}

func (s *fakeCourseStore) ExistsByCode(_ context.Context, code string, excludeID int64) (bool, error) {
	for _, course := range s.courses {
		if course.ID != excludeID && course.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeCourseStore) Update(_ context.Context, course *models.Course) error {
	if _, ok := s.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	if course.MaxStudents < s.activeCount {
		return apperrors.ErrCourseCapacityTooSmall
	}
	s.courses[course.ID] = course
	return nil
}

func (s *fakeCourseStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(s.courses, id)
	return nil
}

func (s *fakeCourseStore) GradeDistribution(_ context.Context, _ int64) (map[string]int64, error) {
	if s.distribution == nil {
		return map[string]int64{}, nil
	}
	return s.distribution, nil
}

type fakeCourseEnrollments struct{ enrollments []*models.Enrollment }

func (s *fakeCourseEnrollments) GetByCourseID(_ context.Context, _ int64) ([]*models.Enrollment, error) {
	return s.enrollments, nil
}

func newCourseServiceForTest(store *fakeCourseStore) *CourseService {
	return NewCourseService(store, &fakeCourseEnrollments{}, config.AcademicConfig{GPAScale: 4.0, SemesterMax: 8})
}

func validCreateCourseRequest() *dto.CreateCourseRequest {
	return &dto.CreateCourseRequest{
		Code:         "cs101",
		Name:         "Introduction to Programming",
		DepartmentID: 1,
		Credits:      4,
		Semester:     1,
		Instructor:   "Dr. Yıldız",
		MaxStudents:  60,
	}
}

func TestCourseServiceCreate(t *testing.T) {
	t.Run("uppercases the code and activates the course", func(t *testing.T) {
		store := newFakeCourseStore()
		service := newCourseServiceForTest(store)

		resp, err := service.Create(context.Background(), validCreateCourseRequest())
		require.NoError(t, err)
		assert.Equal(t, "CS101", resp.Code)
		assert.True(t, resp.IsActive)
	})

	t.Run("semester beyond the configured maximum", func(t *testing.T) {
		store := newFakeCourseStore()
		service := newCourseServiceForTest(store)

		req := validCreateCourseRequest()
		req.Semester = 9

		_, err := service.Create(context.Background(), req)
		var verrs *dto.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.Fields, "semester")
	})

	t.Run("duplicate code regardless of case", func(t *testing.T) {
		store := newFakeCourseStore()
		service := newCourseServiceForTest(store)

		_, err := service.Create(context.Background(), validCreateCourseRequest())
		require.NoError(t, err)

		req := validCreateCourseRequest()
		req.Code = "CS101"
		_, err = service.Create(context.Background(), req)
		assert.ErrorIs(t, err, apperrors.ErrCourseCodeExists)
	})
}

func TestCourseServiceGetDetail(t *testing.T) {
	store := newFakeCourseStore()
	store.distribution = map[string]int64{"A+": 3, "B": 7, "F": 1}
	grade := models.GradeA
	service := NewCourseService(
		store,
		&fakeCourseEnrollments{enrollments: []*models.Enrollment{
			{ID: 1, StudentID: 1, CourseID: 1, Grade: &grade},
			{ID: 2, StudentID: 2, CourseID: 1},
		}},
		config.AcademicConfig{GPAScale: 4.0, SemesterMax: 8},
	)

	created, err := service.Create(context.Background(), validCreateCourseRequest())
	require.NoError(t, err)

	detail, err := service.GetDetail(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Enrollments, 2)
	assert.Equal(t, int64(3), detail.GradeDistribution["A+"])
}

func TestCourseServiceUpdateAllowsOwnCode(t *testing.T) {
	store := newFakeCourseStore()
	service := newCourseServiceForTest(store)

	created, err := service.Create(context.Background(), validCreateCourseRequest())
	require.NoError(t, err)

	active := false
	resp, err := service.Update(context.Background(), created.ID, &dto.UpdateCourseRequest{
		Code:         "CS101",
		Name:         "Introduction to Programming",
		DepartmentID: 1,
		Credits:      4,
		Semester:     2,
		Instructor:   "Dr. Yıldız",
		MaxStudents:  40,
		IsActive:     &active,
	})
	require.NoError(t, err)
	assert.False(t, resp.IsActive)
	assert.Equal(t, 40, resp.MaxStudents)
}

func TestCourseServiceUpdateCapacityFloor(t *testing.T) {
	store := newFakeCourseStore()
	service := newCourseServiceForTest(store)

	created, err := service.Create(context.Background(), validCreateCourseRequest())
	require.NoError(t, err)
	store.activeCount = 3

	active := true
	update := func(maxStudents int) (*dto.CourseResponse, error) {
		return service.Update(context.Background(), created.ID, &dto.UpdateCourseRequest{
			Code:         "CS101",
			Name:         "Introduction to Programming",
			DepartmentID: 1,
			Credits:      4,
			Semester:     1,
			Instructor:   "Dr. Yıldız",
			MaxStudents:  maxStudents,
			IsActive:     &active,
		})
	}

	t.Run("below the active enrollment count is a conflict", func(t *testing.T) {
		_, err := update(2)
		assert.ErrorIs(t, err, apperrors.ErrCourseCapacityTooSmall)
	})

	t.Run("matching the active enrollment count is allowed", func(t *testing.T) {
		resp, err := update(3)
		require.NoError(t, err)
		assert.Equal(t, 3, resp.MaxStudents)
	})
}
