package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan/studenthub/internal/app/models"
	"github.com/kaan/studenthub/internal/app/models/dto"
	"github.com/kaan/studenthub/internal/app/repositories"
	"github.com/kaan/studenthub/internal/config"
	"github.com/kaan/studenthub/internal/pkg/apperrors"
)

type fakeStudentStore struct {
	students map[int64]*models.Student
	nextID   int64
	nextSeq  int64
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: make(map[int64]*models.Student), nextID: 1, nextSeq: 1}
}

func (s *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	for _, existing := range s.students {
		if existing.Email == student.Email {
			return apperrors.ErrStudentEmailExists
		}
	}
	student.ID = s.nextID
	s.nextID++
	s.students[student.ID] = student
	return nil
}

func (s *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := s.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *student
	return &copied, nil
}

func (s *fakeStudentStore) GetAll(_ context.Context, _ repositories.StudentFilter) ([]*models.Student, int64, error) {
	out := make([]*models.Student, 0, len(s.students))
	for _, student := range s.students {
		out = append(out, student)
	}
	return out, int64(len(out)), nil
}

func (s *fakeStudentStore) Update(_ context.Context, student *models.Student) error {
	if _, ok := s.students[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	s.students[student.ID] = student
	return nil
}

func (s *fakeStudentStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(s.students, id)
	return nil
}

func (s *fakeStudentStore) NextStudentNumber(_ context.Context) (string, error) {
	number := models.FormatStudentNumber(s.nextSeq)
	s.nextSeq++
	return number, nil
}

type fakeStudentEnrollments struct{ enrollments []*models.Enrollment }

func (s *fakeStudentEnrollments) GetByStudentID(_ context.Context, _ int64) ([]*models.Enrollment, error) {
	return s.enrollments, nil
}

type fakeStudentAttendance struct{ total, present int64 }

func (s *fakeStudentAttendance) SummaryForStudent(_ context.Context, _ int64) (int64, int64, error) {
	return s.total, s.present, nil
}

type fakeStudentFees struct {
	totalAmount, totalPaid float64
	pendingCount           int64
}

func (s *fakeStudentFees) SummaryForStudent(_ context.Context, _ int64) (float64, float64, int64, error) {
	return s.totalAmount, s.totalPaid, s.pendingCount, nil
}

func newStudentServiceForTest(store *fakeStudentStore) *StudentService {
	return NewStudentService(
		store,
		&fakeStudentEnrollments{},
		&fakeStudentAttendance{},
		&fakeStudentFees{},
		config.AcademicConfig{GPAScale: 4.0, SemesterMax: 8},
	)
}

func validCreateStudentRequest() *dto.CreateStudentRequest {
	return &dto.CreateStudentRequest{
		FirstName:     "Mehmet",
		LastName:      "Çelik",
		Email:         "Mehmet@StudentHub.edu",
		DateOfBirth:   "2004-02-11",
		Gender:        "M",
		AdmissionDate: "2025-09-01",
		Semester:      1,
		GPA:           3.2,
	}
}

func TestStudentServiceCreate(t *testing.T) {
	t.Run("generates a student number when none supplied", func(t *testing.T) {
		store := newFakeStudentStore()
		service := newStudentServiceForTest(store)

		resp, err := service.Create(context.Background(), validCreateStudentRequest())
		require.NoError(t, err)
		assert.Equal(t, "STU00001", resp.StudentNumber)
		assert.Equal(t, "mehmet@studenthub.edu", resp.Email)
		assert.Equal(t, "GEN", resp.Category)
		assert.True(t, resp.IsActive)
	})

	t.Run("keeps a supplied student number", func(t *testing.T) {
		store := newFakeStudentStore()
		service := newStudentServiceForTest(store)

		number := "STU00777"
		req := validCreateStudentRequest()
		req.StudentNumber = &number

		resp, err := service.Create(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "STU00777", resp.StudentNumber)
	})

	t.Run("malformed supplied student number is rejected", func(t *testing.T) {
		store := newFakeStudentStore()
		service := newStudentServiceForTest(store)

		number := "not a number!!"
		req := validCreateStudentRequest()
		req.StudentNumber = &number

		_, err := service.Create(context.Background(), req)
		var verrs *dto.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.Fields, "studentNumber")
		assert.Empty(t, store.students)
	})

	t.Run("gpa above the scale is rejected, not clamped", func(t *testing.T) {
		store := newFakeStudentStore()
		service := newStudentServiceForTest(store)

		req := validCreateStudentRequest()
		req.GPA = 4.5

		_, err := service.Create(context.Background(), req)
		var verrs *dto.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.Fields, "gpa")
		assert.Empty(t, store.students)
	})

	t.Run("semester beyond the maximum is rejected", func(t *testing.T) {
		store := newFakeStudentStore()
		service := newStudentServiceForTest(store)

		req := validCreateStudentRequest()
		req.Semester = 9

		_, err := service.Create(context.Background(), req)
		var verrs *dto.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.Fields, "semester")
	})

	t.Run("invalid optional fields collected together", func(t *testing.T) {
		store := newFakeStudentStore()
		service := newStudentServiceForTest(store)

		phone := "12ab"
		nationalID := "123"
		bloodGroup := "Z+"
		req := validCreateStudentRequest()
		req.Phone = &phone
		req.NationalID = &nationalID
		req.BloodGroup = &bloodGroup

		_, err := service.Create(context.Background(), req)
		var verrs *dto.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.Fields, "phone")
		assert.Contains(t, verrs.Fields, "nationalId")
		assert.Contains(t, verrs.Fields, "bloodGroup")
	})

	t.Run("duplicate email conflict propagates", func(t *testing.T) {
		store := newFakeStudentStore()
		service := newStudentServiceForTest(store)

		_, err := service.Create(context.Background(), validCreateStudentRequest())
		require.NoError(t, err)

		_, err = service.Create(context.Background(), validCreateStudentRequest())
		assert.ErrorIs(t, err, apperrors.ErrStudentEmailExists)
	})
}

func TestStudentServiceUpdatePreservesIdentity(t *testing.T) {
	store := newFakeStudentStore()
	service := newStudentServiceForTest(store)

	created, err := service.Create(context.Background(), validCreateStudentRequest())
	require.NoError(t, err)

	active := true
	resp, err := service.Update(context.Background(), created.ID, &dto.UpdateStudentRequest{
		FirstName:   "Mehmet",
		LastName:    "Çelik",
		Email:       "new@studenthub.edu",
		DateOfBirth: "2004-02-11",
		Gender:      "M",
		Semester:    2,
		GPA:         3.4,
		IsActive:    &active,
	})
	require.NoError(t, err)

	// Student number and admission date never change through updates.
	assert.Equal(t, created.StudentNumber, resp.StudentNumber)
	assert.Equal(t, created.AdmissionDate, resp.AdmissionDate)
	assert.Equal(t, 2, resp.Semester)
}

func TestStudentServiceGetDetail(t *testing.T) {
	store := newFakeStudentStore()
	internal := 40.0
	external := 42.0
	grade := models.GradeA
	service := NewStudentService(
		store,
		&fakeStudentEnrollments{enrollments: []*models.Enrollment{
			{ID: 1, StudentID: 1, CourseID: 1, InternalMarks: &internal, ExternalMarks: &external, Grade: &grade},
		}},
		&fakeStudentAttendance{total: 20, present: 18},
		&fakeStudentFees{totalAmount: 5000, totalPaid: 3500, pendingCount: 1},
		config.AcademicConfig{GPAScale: 4.0, SemesterMax: 8},
	)

	created, err := service.Create(context.Background(), validCreateStudentRequest())
	require.NoError(t, err)

	detail, err := service.GetDetail(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Len(t, detail.Enrollments, 1)
	assert.Equal(t, int64(20), detail.AttendanceSummary.TotalDays)
	assert.Equal(t, int64(2), detail.AttendanceSummary.AbsentDays)
	assert.InDelta(t, 90.0, detail.AttendanceSummary.AttendancePct, 0.001)
	assert.Equal(t, 1500.0, detail.FeeSummary.TotalOutstanding)
}

func TestStudentServiceGetDetailUnknownStudent(t *testing.T) {
	service := newStudentServiceForTest(newFakeStudentStore())
	_, err := service.GetDetail(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestFormatStudentNumberWidth(t *testing.T) {
	for seq, want := range map[int64]string{
		1:      "STU00001",
		42:     "STU00042",
		99999:  "STU99999",
		100000: "STU100000",
	} {
		assert.Equal(t, want, models.FormatStudentNumber(seq), fmt.Sprintf("seq %d", seq))
	}
}
