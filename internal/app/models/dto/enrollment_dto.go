package dto

import "time"

// CreateEnrollmentRequest enrolls a student in a course.
type CreateEnrollmentRequest struct {
	StudentID    int64  `json:"studentId" binding:"required,gt=0" example:"1"`
	CourseID     int64  `json:"courseId" binding:"required,gt=0" example:"1"`
	EnrolledDate string `json:"enrolledDate" binding:"omitempty" example:"2025-09-05"`
}

// UpdateEnrollmentRequest records marks and flags on an enrollment.
// The letter grade is always derived from the marks.
type UpdateEnrollmentRequest struct {
	InternalMarks *float64 `json:"internalMarks" binding:"omitempty,gte=0,lte=50" example:"41"`
	ExternalMarks *float64 `json:"externalMarks" binding:"omitempty,gte=0,lte=50" example:"44"`
	IsActive      *bool    `json:"isActive" binding:"omitempty"`
	Completed     *bool    `json:"completed" binding:"omitempty"`
}

// EnrollmentResponse is the public view of an enrollment.
type EnrollmentResponse struct {
	ID            int64    `json:"id" example:"1"`
	StudentID     int64    `json:"studentId" example:"1"`
	StudentName   string   `json:"studentName,omitempty" example:"Mehmet Çelik"`
	StudentNumber string   `json:"studentNumber,omitempty" example:"STU00042"`
	CourseID      int64    `json:"courseId" example:"1"`
	CourseCode    string   `json:"courseCode,omitempty" example:"CS101"`
	CourseName    string   `json:"courseName,omitempty" example:"Introduction to Programming"`
	EnrolledDate  string   `json:"enrolledDate" example:"2025-09-05"`
	InternalMarks *float64 `json:"internalMarks,omitempty" example:"41"`
	ExternalMarks *float64 `json:"externalMarks,omitempty" example:"44"`
	Grade         *string  `json:"grade,omitempty" example:"A"`
	IsActive      bool     `json:"isActive" example:"true"`
	Completed     bool     `json:"completed" example:"false"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
