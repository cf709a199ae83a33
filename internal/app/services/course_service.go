package services

import (
	"context"
	"strings"

	"github.com/kaan/studenthub/internal/app/models"
	"github.com/kaan/studenthub/internal/app/models/dto"
	"github.com/kaan/studenthub/internal/config"
	"github.com/kaan/studenthub/internal/pkg/apperrors"
	"github.com/kaan/studenthub/internal/pkg/helpers"
	"github.com/kaan/studenthub/internal/pkg/logger"
)

// CourseStore is the course persistence surface.
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context, search string, departmentID int64, semester int, limit int, offset uint64) ([]*models.Course, int64, error)
	ExistsByCode(ctx context.Context, code string, excludeID int64) (bool, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
	GradeDistribution(ctx context.Context, courseID int64) (map[string]int64, error)
}

// CourseEnrollmentStore lists enrollments for course detail views.
type CourseEnrollmentStore interface {
	GetByCourseID(ctx context.Context, courseID int64) ([]*models.Enrollment, error)
}

// CourseService handles business logic for courses
type CourseService struct {
	courses     CourseStore
	enrollments CourseEnrollmentStore
	academic    config.AcademicConfig
}

// NewCourseService creates a new course service
func NewCourseService(courses CourseStore, enrollments CourseEnrollmentStore, academic config.AcademicConfig) *CourseService {
	return &CourseService{
		courses:     courses,
		enrollments: enrollments,
		academic:    academic,
	}
}

func (s *CourseService) validate(req *dto.CreateCourseRequest) *dto.ValidationErrors {
	verrs := dto.NewValidationErrors()
	if req.Semester > s.academic.SemesterMax {
		verrs.Add("semester", "exceeds the configured semester limit")
	}
	if verrs.HasErrors() {
		return verrs
	}
	return nil
}

// Create creates a course
func (s *CourseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	if verrs := s.validate(req); verrs != nil {
		return nil, verrs
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	exists, err := s.courses.ExistsByCode(ctx, code, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrCourseCodeExists
	}

	course := &models.Course{
		Code:         code,
		Name:         req.Name,
		DepartmentID: req.DepartmentID,
		Credits:      req.Credits,
		Semester:     req.Semester,
		Instructor:   req.Instructor,
		MaxStudents:  req.MaxStudents,
		IsActive:     true,
	}

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}

	logger.Info().Int64("courseId", course.ID).Str("code", course.Code).Msg("Course created")
	return s.GetByID(ctx, course.ID)
}

// GetByID retrieves a course
func (s *CourseService) GetByID(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCourseResponse(course), nil
}

// GetDetail retrieves a course with its active enrollments and grade distribution
func (s *CourseService) GetDetail(ctx context.Context, id int64) (*dto.CourseDetailResponse, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	enrollments, err := s.enrollments.GetByCourseID(ctx, id)
	if err != nil {
		return nil, err
	}

	distribution, err := s.courses.GradeDistribution(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &dto.CourseDetailResponse{
		CourseResponse:    *toCourseResponse(course),
		Enrollments:       make([]dto.EnrollmentResponse, 0, len(enrollments)),
		GradeDistribution: distribution,
	}
	for _, enrollment := range enrollments {
		detail.Enrollments = append(detail.Enrollments, *toEnrollmentResponse(enrollment))
	}
	return detail, nil
}

// GetAll lists courses with filtering and pagination
func (s *CourseService) GetAll(ctx context.Context, filter *dto.CourseFilterRequest) (*dto.CourseListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Size)

	courses, total, err := s.courses.GetAll(ctx, filter.Query, filter.DepartmentID, filter.Semester, limit, offset)
	if err != nil {
		return nil, err
	}

	response := &dto.CourseListResponse{
		Courses:    make([]dto.CourseResponse, 0, len(courses)),
		Pagination: helpers.NewPaginationInfo(total, filter.Page, limit),
	}
	for _, course := range courses {
		response.Courses = append(response.Courses, *toCourseResponse(course))
	}
	return response, nil
}

// Update updates a course
func (s *CourseService) Update(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	if req.Semester > s.academic.SemesterMax {
		verrs := dto.NewValidationErrors()
		verrs.Add("semester", "exceeds the configured semester limit")
		return nil, verrs
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	exists, err := s.courses.ExistsByCode(ctx, code, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrCourseCodeExists
	}

	course := &models.Course{
		ID:           id,
		Code:         code,
		Name:         req.Name,
		DepartmentID: req.DepartmentID,
		Credits:      req.Credits,
		Semester:     req.Semester,
		Instructor:   req.Instructor,
		MaxStudents:  req.MaxStudents,
		IsActive:     *req.IsActive,
	}

	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// Delete deletes a course. Courses with enrollments or attendance
// cannot be deleted.
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	if err := s.courses.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("courseId", id).Msg("Course deleted")
	return nil
}

func toCourseResponse(course *models.Course) *dto.CourseResponse {
	return &dto.CourseResponse{
		ID:             course.ID,
		Code:           course.Code,
		Name:           course.Name,
		DepartmentID:   course.DepartmentID,
		DepartmentName: course.DepartmentName,
		Credits:        course.Credits,
		Semester:       course.Semester,
		Instructor:     course.Instructor,
		MaxStudents:    course.MaxStudents,
		EnrolledCount:  course.EnrolledCount,
		IsActive:       course.IsActive,
		CreatedAt:      course.CreatedAt,
		UpdatedAt:      course.UpdatedAt,
	}
}
