package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/kaan/studenthub/internal/app/controllers"
	"github.com/kaan/studenthub/internal/app/models"
	"github.com/kaan/studenthub/internal/metrics"
	"github.com/kaan/studenthub/internal/middleware"
	"github.com/kaan/studenthub/internal/pkg/auth"
)

// Controllers groups everything the router mounts.
type Controllers struct {
	Health       *controllers.HealthController
	Auth         *controllers.AuthController
	Department   *controllers.DepartmentController
	Course       *controllers.CourseController
	Student      *controllers.StudentController
	Enrollment   *controllers.EnrollmentController
	Attendance   *controllers.AttendanceController
	Fee          *controllers.FeeController
	Announcement *controllers.AnnouncementController
	Dashboard    *controllers.DashboardController
	Export       *controllers.ExportController
}

// Setup mounts all routes. Everything under /api/v1 except auth and
// health requires a valid token; deletes additionally require ADMIN.
func Setup(router *gin.Engine, c *Controllers, jwtService *auth.JWTService) {
	router.GET("/metrics", metrics.Handler())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	v1.GET("/health", c.Health.Health)

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", c.Auth.Register)
		authGroup.POST("/login", c.Auth.Login)
		authGroup.POST("/refresh", c.Auth.Refresh)
		authGroup.GET("/profile", middleware.JWTAuth(jwtService), c.Auth.Profile)
	}

	protected := v1.Group("")
	protected.Use(middleware.JWTAuth(jwtService))
	adminOnly := middleware.RoleRequired(string(models.RoleAdmin))

	departments := protected.Group("/departments")
	{
		departments.POST("", c.Department.Create)
		departments.GET("", c.Department.GetAll)
		departments.GET("/:id", c.Department.GetByID)
		departments.PUT("/:id", c.Department.Update)
		departments.DELETE("/:id", adminOnly, c.Department.Delete)
	}

	courses := protected.Group("/courses")
	{
		courses.POST("", c.Course.Create)
		courses.GET("", c.Course.GetAll)
		courses.GET("/:id", c.Course.GetByID)
		courses.PUT("/:id", c.Course.Update)
		courses.DELETE("/:id", adminOnly, c.Course.Delete)
	}

	students := protected.Group("/students")
	{
		students.POST("", c.Student.Create)
		students.GET("", c.Student.GetAll)
		students.GET("/:id", c.Student.GetByID)
		students.PUT("/:id", c.Student.Update)
		students.DELETE("/:id", adminOnly, c.Student.Delete)
	}

	enrollments := protected.Group("/enrollments")
	{
		enrollments.POST("", c.Enrollment.Create)
		enrollments.GET("/:id", c.Enrollment.GetByID)
		enrollments.PUT("/:id", c.Enrollment.Update)
		enrollments.DELETE("/:id", adminOnly, c.Enrollment.Delete)
	}

	attendance := protected.Group("/attendance")
	{
		attendance.GET("", c.Attendance.GetAll)
		attendance.POST("", c.Attendance.Create)
		attendance.POST("/bulk", c.Attendance.BulkRecord)
		attendance.DELETE("/:id", adminOnly, c.Attendance.Delete)
	}

	fees := protected.Group("/fees")
	{
		fees.POST("", c.Fee.Create)
		fees.GET("", c.Fee.GetAll)
		fees.GET("/:id", c.Fee.GetByID)
		fees.PUT("/:id", c.Fee.Update)
		fees.POST("/:id/payments", c.Fee.RecordPayment)
		fees.DELETE("/:id", adminOnly, c.Fee.Delete)
	}

	announcements := protected.Group("/announcements")
	{
		announcements.POST("", c.Announcement.Create)
		announcements.GET("", c.Announcement.GetAll)
		announcements.PUT("/:id", c.Announcement.Update)
		announcements.DELETE("/:id", adminOnly, c.Announcement.Delete)
	}

	dashboard := protected.Group("/dashboard")
	{
		dashboard.GET("/stats", c.Dashboard.Stats)
		dashboard.GET("/overview", c.Dashboard.Overview)
		dashboard.GET("/attendance-chart", c.Dashboard.AttendanceChart)
	}

	exports := protected.Group("/exports")
	{
		exports.GET("/students.xlsx", c.Export.Students)
		exports.GET("/attendance.xlsx", c.Export.Attendance)
	}
}
