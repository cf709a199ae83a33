package services

import (
	"github.com/kaan/studenthub/internal/app/repositories"
	"github.com/kaan/studenthub/internal/config"
	"github.com/kaan/studenthub/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService         *AuthService
	DepartmentService   *DepartmentService
	CourseService       *CourseService
	StudentService      *StudentService
	EnrollmentService   *EnrollmentService
	AttendanceService   *AttendanceService
	FeeService          *FeeService
	AnnouncementService *AnnouncementService
	DashboardService    *DashboardService
	ExportService       *ExportService
}

// NewServices wires all services to their repositories
func NewServices(repos *repositories.Repositories, jwt *auth.JWTService, passwords *auth.PasswordService, academic config.AcademicConfig) *Services {
	return &Services{
		AuthService:         NewAuthService(repos.UserRepository, repos.TokenRepository, jwt, passwords),
		DepartmentService:   NewDepartmentService(repos.DepartmentRepository),
		CourseService:       NewCourseService(repos.CourseRepository, repos.EnrollmentRepository, academic),
		StudentService:      NewStudentService(repos.StudentRepository, repos.EnrollmentRepository, repos.AttendanceRepository, repos.FeeRepository, academic),
		EnrollmentService:   NewEnrollmentService(repos.EnrollmentRepository),
		AttendanceService:   NewAttendanceService(repos.AttendanceRepository),
		FeeService:          NewFeeService(repos.FeeRepository),
		AnnouncementService: NewAnnouncementService(repos.AnnouncementRepository),
		DashboardService:    NewDashboardService(repos.DashboardRepository, repos.StudentRepository, academic),
		ExportService:       NewExportService(repos.StudentRepository, repos.AttendanceRepository),
	}
}
