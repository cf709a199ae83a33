package services

import (
	"context"

	"github.com/kaan/studenthub/internal/app/models"
	"github.com/kaan/studenthub/internal/app/models/dto"
	"github.com/kaan/studenthub/internal/pkg/helpers"
	"github.com/kaan/studenthub/internal/pkg/logger"
)

// EnrollmentStore is the enrollment persistence surface.
type EnrollmentStore interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	Update(ctx context.Context, enrollment *models.Enrollment) error
	Delete(ctx context.Context, id int64) error
}

// EnrollmentService handles business logic for enrollments
type EnrollmentService struct {
	enrollments EnrollmentStore
}

// NewEnrollmentService creates a new enrollment service
func NewEnrollmentService(enrollments EnrollmentStore) *EnrollmentService {
	return &EnrollmentService{enrollments: enrollments}
}

// Create enrolls a student in a course. Duplicate pairs and full
// courses are conflicts, enforced atomically by the store.
func (s *EnrollmentService) Create(ctx context.Context, req *dto.CreateEnrollmentRequest) (*dto.EnrollmentResponse, error) {
	enrolledDate := helpers.Today()
	if req.EnrolledDate != "" {
		parsed, err := helpers.ParseDate(req.EnrolledDate)
		if err != nil {
			verrs := dto.NewValidationErrors()
			verrs.Add("enrolledDate", "must be a date in YYYY-MM-DD form")
			return nil, verrs
		}
		enrolledDate = parsed
	}

	enrollment := &models.Enrollment{
		StudentID:    req.StudentID,
		CourseID:     req.CourseID,
		EnrolledDate: enrolledDate,
	}

	if err := s.enrollments.Create(ctx, enrollment); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("enrollmentId", enrollment.ID).
		Int64("studentId", enrollment.StudentID).
		Int64("courseId", enrollment.CourseID).
		Msg("Student enrolled")

	// Re-read for the joined student and course fields.
	return s.GetByID(ctx, enrollment.ID)
}

// GetByID retrieves an enrollment
func (s *EnrollmentService) GetByID(ctx context.Context, id int64) (*dto.EnrollmentResponse, error) {
	enrollment, err := s.enrollments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toEnrollmentResponse(enrollment), nil
}

// Update records marks and flags. The letter grade is derived from the
// marks once both components are present. Reactivating an inactive
// enrollment fails when the course is already at capacity.
func (s *EnrollmentService) Update(ctx context.Context, id int64, req *dto.UpdateEnrollmentRequest) (*dto.EnrollmentResponse, error) {
	enrollment, err := s.enrollments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.InternalMarks != nil {
		enrollment.InternalMarks = req.InternalMarks
	}
	if req.ExternalMarks != nil {
		enrollment.ExternalMarks = req.ExternalMarks
	}
	if req.IsActive != nil {
		enrollment.IsActive = *req.IsActive
	}
	if req.Completed != nil {
		enrollment.Completed = *req.Completed
	}

	if total, graded := enrollment.TotalMarks(); graded {
		grade := models.DeriveGrade(total)
		enrollment.Grade = &grade
	} else {
		enrollment.Grade = nil
	}

	if err := s.enrollments.Update(ctx, enrollment); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// Delete removes an enrollment
func (s *EnrollmentService) Delete(ctx context.Context, id int64) error {
	if err := s.enrollments.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("enrollmentId", id).Msg("Enrollment deleted")
	return nil
}

func toEnrollmentResponse(enrollment *models.Enrollment) *dto.EnrollmentResponse {
	response := &dto.EnrollmentResponse{
		ID:            enrollment.ID,
		StudentID:     enrollment.StudentID,
		StudentName:   enrollment.StudentName,
		StudentNumber: enrollment.StudentNumber,
		CourseID:      enrollment.CourseID,
		CourseCode:    enrollment.CourseCode,
		CourseName:    enrollment.CourseName,
		EnrolledDate:  enrollment.EnrolledDate.Format(helpers.DateFormat),
		InternalMarks: enrollment.InternalMarks,
		ExternalMarks: enrollment.ExternalMarks,
		IsActive:      enrollment.IsActive,
		Completed:     enrollment.Completed,
		CreatedAt:     enrollment.CreatedAt,
		UpdatedAt:     enrollment.UpdatedAt,
	}
	if enrollment.Grade != nil {
		grade := string(*enrollment.Grade)
		response.Grade = &grade
	}
	return response
}
