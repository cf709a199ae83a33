package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kaan/studenthub/internal/app/models"
	"github.com/kaan/studenthub/internal/app/models/dto"
	"github.com/kaan/studenthub/internal/app/repositories"
	"github.com/kaan/studenthub/internal/config"
	"github.com/kaan/studenthub/internal/pkg/apperrors"
	"github.com/kaan/studenthub/internal/pkg/helpers"
	"github.com/kaan/studenthub/internal/pkg/logger"
	"github.com/kaan/studenthub/internal/pkg/validation"
)

// StudentStore is the student persistence surface.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context, filter repositories.StudentFilter) ([]*models.Student, int64, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
	NextStudentNumber(ctx context.Context) (string, error)
}

// StudentEnrollmentStore lists a student's enrollments for detail views.
type StudentEnrollmentStore interface {
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
}

// StudentAttendanceStore summarizes a student's attendance.
type StudentAttendanceStore interface {
	SummaryForStudent(ctx context.Context, studentID int64) (total, present int64, err error)
}

// StudentFeeStore summarizes a student's fees.
type StudentFeeStore interface {
	SummaryForStudent(ctx context.Context, studentID int64) (totalAmount, totalPaid float64, pendingCount int64, err error)
}

// StudentService handles business logic for students
type StudentService struct {
	students    StudentStore
	enrollments StudentEnrollmentStore
	attendance  StudentAttendanceStore
	fees        StudentFeeStore
	academic    config.AcademicConfig
}

// NewStudentService creates a new student service
func NewStudentService(
	students StudentStore,
	enrollments StudentEnrollmentStore,
	attendance StudentAttendanceStore,
	fees StudentFeeStore,
	academic config.AcademicConfig,
) *StudentService {
	return &StudentService{
		students:    students,
		enrollments: enrollments,
		attendance:  attendance,
		fees:        fees,
		academic:    academic,
	}
}

// validateFields applies field checks the binding layer cannot express.
// Out-of-bounds values are rejected, never clamped.
func (s *StudentService) validateFields(phone, guardianPhone, nationalID, bloodGroup *string, gpa float64, semester int) *dto.ValidationErrors {
	verrs := dto.NewValidationErrors()

	if phone != nil && !validation.IsValidPhone(*phone) {
		verrs.Add("phone", "must be 7 to 15 digits with an optional leading +")
	}
	if guardianPhone != nil && !validation.IsValidPhone(*guardianPhone) {
		verrs.Add("guardianPhone", "must be 7 to 15 digits with an optional leading +")
	}
	if nationalID != nil && !validation.IsValidNationalID(*nationalID) {
		verrs.Add("nationalId", "must be exactly 11 digits")
	}
	if bloodGroup != nil && !models.IsValidBloodGroup(*bloodGroup) {
		verrs.Add("bloodGroup", "unknown blood group")
	}
	if !validation.InRange(gpa, 0, s.academic.GPAScale) {
		verrs.Add("gpa", fmt.Sprintf("must be between 0 and %.2f", s.academic.GPAScale))
	}
	if semester < 1 || semester > s.academic.SemesterMax {
		verrs.Add("semester", fmt.Sprintf("must be between 1 and %d", s.academic.SemesterMax))
	}

	if verrs.HasErrors() {
		return verrs
	}
	return nil
}

// Create creates a student record, generating a student number when
// none is supplied.
func (s *StudentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	if verrs := s.validateFields(req.Phone, req.GuardianPhone, req.NationalID, req.BloodGroup, req.GPA, req.Semester); verrs != nil {
		return nil, verrs
	}

	dateOfBirth, err := helpers.ParseDate(req.DateOfBirth)
	if err != nil {
		verrs := dto.NewValidationErrors()
		verrs.Add("dateOfBirth", "must be a date in YYYY-MM-DD form")
		return nil, verrs
	}
	admissionDate, err := helpers.ParseDate(req.AdmissionDate)
	if err != nil {
		verrs := dto.NewValidationErrors()
		verrs.Add("admissionDate", "must be a date in YYYY-MM-DD form")
		return nil, verrs
	}

	studentNumber := ""
	if req.StudentNumber != nil {
		studentNumber = strings.TrimSpace(*req.StudentNumber)
	}
	if studentNumber == "" {
		studentNumber, err = s.students.NextStudentNumber(ctx)
		if err != nil {
			return nil, err
		}
	} else if !validation.IsValidStudentNumber(studentNumber) {
		verrs := dto.NewValidationErrors()
		verrs.Add("studentNumber", "must be STU followed by at least 5 digits")
		return nil, verrs
	}

	category := models.Category(req.Category)
	if category == "" {
		category = models.CategoryGeneral
	}
	if !category.IsValid() {
		return nil, apperrors.NewBadRequestError("unknown category")
	}

	student := &models.Student{
		StudentNumber: studentNumber,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         strings.ToLower(req.Email),
		Phone:         req.Phone,
		DateOfBirth:   dateOfBirth,
		Gender:        models.Gender(req.Gender),
		BloodGroup:    req.BloodGroup,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		PostalCode:    req.PostalCode,
		GuardianName:  req.GuardianName,
		GuardianPhone: req.GuardianPhone,
		NationalID:    req.NationalID,
		Category:      category,
		DepartmentID:  req.DepartmentID,
		AdmissionDate: admissionDate,
		Semester:      req.Semester,
		GPA:           req.GPA,
		TotalCredits:  req.TotalCredits,
		IsActive:      true,
	}

	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}

	logger.Info().Int64("studentId", student.ID).Str("studentNumber", student.StudentNumber).Msg("Student created")
	return toStudentResponse(student), nil
}

// GetByID retrieves a student
func (s *StudentService) GetByID(ctx context.Context, id int64) (*dto.StudentResponse, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toStudentResponse(student), nil
}

// GetDetail retrieves a student with enrollments and summaries
func (s *StudentService) GetDetail(ctx context.Context, id int64) (*dto.StudentDetailResponse, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	enrollments, err := s.enrollments.GetByStudentID(ctx, id)
	if err != nil {
		return nil, err
	}

	totalDays, presentDays, err := s.attendance.SummaryForStudent(ctx, id)
	if err != nil {
		return nil, err
	}

	totalAmount, totalPaid, pendingCount, err := s.fees.SummaryForStudent(ctx, id)
	if err != nil {
		return nil, err
	}

	attendancePct := 0.0
	if totalDays > 0 {
		attendancePct = float64(presentDays) / float64(totalDays) * 100
	}

	detail := &dto.StudentDetailResponse{
		StudentResponse: *toStudentResponse(student),
		Enrollments:     make([]dto.EnrollmentResponse, 0, len(enrollments)),
		AttendanceSummary: dto.AttendanceSummary{
			TotalDays:     totalDays,
			PresentDays:   presentDays,
			AbsentDays:    totalDays - presentDays,
			AttendancePct: attendancePct,
		},
		FeeSummary: dto.FeeSummary{
			TotalAmount:      totalAmount,
			TotalPaid:        totalPaid,
			TotalOutstanding: totalAmount - totalPaid,
			PendingCount:     pendingCount,
		},
	}
	for _, enrollment := range enrollments {
		detail.Enrollments = append(detail.Enrollments, *toEnrollmentResponse(enrollment))
	}
	return detail, nil
}

// GetAll lists students with filtering, sorting and pagination
func (s *StudentService) GetAll(ctx context.Context, filter *dto.StudentFilterRequest) (*dto.StudentListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Size)

	students, total, err := s.students.GetAll(ctx, repositories.StudentFilter{
		Search:       filter.Query,
		DepartmentID: filter.DepartmentID,
		Semester:     filter.Semester,
		Status:       filter.Status,
		SortBy:       filter.SortBy,
		SortOrder:    filter.SortOrder,
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		return nil, err
	}

	response := &dto.StudentListResponse{
		Students:   make([]dto.StudentResponse, 0, len(students)),
		Pagination: helpers.NewPaginationInfo(total, filter.Page, limit),
	}
	for _, student := range students {
		response.Students = append(response.Students, *toStudentResponse(student))
	}
	return response, nil
}

// Update updates a student record
func (s *StudentService) Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	if verrs := s.validateFields(req.Phone, req.GuardianPhone, req.NationalID, req.BloodGroup, req.GPA, req.Semester); verrs != nil {
		return nil, verrs
	}

	existing, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dateOfBirth, err := helpers.ParseDate(req.DateOfBirth)
	if err != nil {
		verrs := dto.NewValidationErrors()
		verrs.Add("dateOfBirth", "must be a date in YYYY-MM-DD form")
		return nil, verrs
	}

	category := models.Category(req.Category)
	if category == "" {
		category = existing.Category
	}
	if !category.IsValid() {
		return nil, apperrors.NewBadRequestError("unknown category")
	}

	student := &models.Student{
		ID:            id,
		StudentNumber: existing.StudentNumber,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         strings.ToLower(req.Email),
		Phone:         req.Phone,
		DateOfBirth:   dateOfBirth,
		Gender:        models.Gender(req.Gender),
		BloodGroup:    req.BloodGroup,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		PostalCode:    req.PostalCode,
		GuardianName:  req.GuardianName,
		GuardianPhone: req.GuardianPhone,
		NationalID:    req.NationalID,
		Category:      category,
		DepartmentID:  req.DepartmentID,
		AdmissionDate: existing.AdmissionDate,
		Semester:      req.Semester,
		GPA:           req.GPA,
		TotalCredits:  req.TotalCredits,
		IsActive:      *req.IsActive,
	}

	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// Delete deletes a student. Related enrollments, attendance and fees
// are removed with it.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	if err := s.students.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("studentId", id).Msg("Student deleted")
	return nil
}

func toStudentResponse(student *models.Student) *dto.StudentResponse {
	return &dto.StudentResponse{
		ID:             student.ID,
		StudentNumber:  student.StudentNumber,
		FirstName:      student.FirstName,
		LastName:       student.LastName,
		Email:          student.Email,
		Phone:          student.Phone,
		DateOfBirth:    student.DateOfBirth.Format(helpers.DateFormat),
		Gender:         string(student.Gender),
		BloodGroup:     student.BloodGroup,
		Address:        student.Address,
		City:           student.City,
		State:          student.State,
		PostalCode:     student.PostalCode,
		GuardianName:   student.GuardianName,
		GuardianPhone:  student.GuardianPhone,
		NationalID:     student.NationalID,
		Category:       string(student.Category),
		DepartmentID:   student.DepartmentID,
		DepartmentName: student.DepartmentName,
		AdmissionDate:  student.AdmissionDate.Format(helpers.DateFormat),
		Semester:       student.Semester,
		GPA:            student.GPA,
		TotalCredits:   student.TotalCredits,
		IsActive:       student.IsActive,
		CreatedAt:      student.CreatedAt,
		UpdatedAt:      student.UpdatedAt,
	}
}
