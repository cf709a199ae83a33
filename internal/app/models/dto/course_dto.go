package dto

import "time"

// CreateCourseRequest creates a new course.
type CreateCourseRequest struct {
	Code         string `json:"code" binding:"required,min=2,max=20" example:"CS101"`
	Name         string `json:"name" binding:"required,min=2,max=200" example:"Introduction to Programming"`
	DepartmentID int64  `json:"departmentId" binding:"required,gt=0" example:"1"`
	Credits      int    `json:"credits" binding:"required,min=1,max=6" example:"4"`
	Semester     int    `json:"semester" binding:"required,min=1" example:"1"`
	Instructor   string `json:"instructor" binding:"required,min=2,max=100" example:"Dr. Yıldız"`
	MaxStudents  int    `json:"maxStudents" binding:"required,gt=0" example:"60"`
}

// UpdateCourseRequest updates an existing course.
type UpdateCourseRequest struct {
	Code         string `json:"code" binding:"required,min=2,max=20"`
	Name         string `json:"name" binding:"required,min=2,max=200"`
	DepartmentID int64  `json:"departmentId" binding:"required,gt=0"`
	Credits      int    `json:"credits" binding:"required,min=1,max=6"`
	Semester     int    `json:"semester" binding:"required,min=1"`
	Instructor   string `json:"instructor" binding:"required,min=2,max=100"`
	MaxStudents  int    `json:"maxStudents" binding:"required,gt=0"`
	IsActive     *bool  `json:"isActive" binding:"required"`
}

// CourseFilterRequest filters the course list.
type CourseFilterRequest struct {
	Query        string `form:"q" binding:"omitempty,max=100"`
	DepartmentID int64  `form:"departmentId" binding:"omitempty,gt=0"`
	Semester     int    `form:"semester" binding:"omitempty,min=1"`
	Page         int    `form:"page" binding:"omitempty,min=1"`
	Size         int    `form:"size" binding:"omitempty,min=1,max=100"`
}

// CourseResponse is the public view of a course.
type CourseResponse struct {
	ID             int64     `json:"id" example:"1"`
	Code           string    `json:"code" example:"CS101"`
	Name           string    `json:"name" example:"Introduction to Programming"`
	DepartmentID   int64     `json:"departmentId" example:"1"`
	DepartmentName string    `json:"departmentName,omitempty" example:"Computer Science"`
	Credits        int       `json:"credits" example:"4"`
	Semester       int       `json:"semester" example:"1"`
	Instructor     string    `json:"instructor" example:"Dr. Yıldız"`
	MaxStudents    int       `json:"maxStudents" example:"60"`
	EnrolledCount  int64     `json:"enrolledCount" example:"42"`
	IsActive       bool      `json:"isActive" example:"true"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CourseDetailResponse adds enrollment detail to a course.
type CourseDetailResponse struct {
	CourseResponse
	Enrollments       []EnrollmentResponse `json:"enrollments"`
	GradeDistribution map[string]int64     `json:"gradeDistribution"`
}

// CourseListResponse is a paginated course list.
type CourseListResponse struct {
	Courses    []CourseResponse `json:"courses"`
	Pagination PaginationInfo   `json:"pagination"`
}
