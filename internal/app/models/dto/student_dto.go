package dto

import "time"

// CreateStudentRequest creates a new student record.
type CreateStudentRequest struct {
	FirstName     string  `json:"firstName" binding:"required,min=2,max=100" example:"Mehmet"`
	LastName      string  `json:"lastName" binding:"required,min=2,max=100" example:"Çelik"`
	Email         string  `json:"email" binding:"required,email" example:"mehmet@studenthub.edu"`
	Phone         *string `json:"phone" binding:"omitempty,phone"`
	DateOfBirth   string  `json:"dateOfBirth" binding:"required" example:"2004-02-11"`
	Gender        string  `json:"gender" binding:"required,oneof=M F O" example:"M"`
	BloodGroup    *string `json:"bloodGroup" binding:"omitempty"`
	Address       *string `json:"address" binding:"omitempty,max=500"`
	City          *string `json:"city" binding:"omitempty,max=100"`
	State         *string `json:"state" binding:"omitempty,max=100"`
	PostalCode    *string `json:"postalCode" binding:"omitempty,max=20"`
	GuardianName  *string `json:"guardianName" binding:"omitempty,max=100"`
	GuardianPhone *string `json:"guardianPhone" binding:"omitempty,phone"`
	NationalID    *string `json:"nationalId" binding:"omitempty,nationalid"`
	Category      string  `json:"category" binding:"omitempty,oneof=GEN OBC SC ST OTH" example:"GEN"`
	DepartmentID  *int64  `json:"departmentId" binding:"omitempty,gt=0" example:"1"`
	AdmissionDate string  `json:"admissionDate" binding:"required" example:"2025-09-01"`
	Semester      int     `json:"semester" binding:"required,min=1" example:"1"`
	GPA           float64 `json:"gpa" binding:"omitempty,gte=0" example:"3.20"`
	TotalCredits  int     `json:"totalCredits" binding:"omitempty,gte=0" example:"0"`
	StudentNumber *string `json:"studentNumber" binding:"omitempty"`
}

// UpdateStudentRequest updates an existing student record.
type UpdateStudentRequest struct {
	FirstName     string  `json:"firstName" binding:"required,min=2,max=100"`
	LastName      string  `json:"lastName" binding:"required,min=2,max=100"`
	Email         string  `json:"email" binding:"required,email"`
	Phone         *string `json:"phone" binding:"omitempty,phone"`
	DateOfBirth   string  `json:"dateOfBirth" binding:"required"`
	Gender        string  `json:"gender" binding:"required,oneof=M F O"`
	BloodGroup    *string `json:"bloodGroup" binding:"omitempty"`
	Address       *string `json:"address" binding:"omitempty,max=500"`
	City          *string `json:"city" binding:"omitempty,max=100"`
	State         *string `json:"state" binding:"omitempty,max=100"`
	PostalCode    *string `json:"postalCode" binding:"omitempty,max=20"`
	GuardianName  *string `json:"guardianName" binding:"omitempty,max=100"`
	GuardianPhone *string `json:"guardianPhone" binding:"omitempty,phone"`
	NationalID    *string `json:"nationalId" binding:"omitempty,nationalid"`
	Category      string  `json:"category" binding:"omitempty,oneof=GEN OBC SC ST OTH"`
	DepartmentID  *int64  `json:"departmentId" binding:"omitempty,gt=0"`
	Semester      int     `json:"semester" binding:"required,min=1"`
	GPA           float64 `json:"gpa" binding:"omitempty,gte=0"`
	TotalCredits  int     `json:"totalCredits" binding:"omitempty,gte=0"`
	IsActive      *bool   `json:"isActive" binding:"required"`
}

// StudentFilterRequest filters the student list.
type StudentFilterRequest struct {
	Query        string `form:"q" binding:"omitempty,max=100"`
	DepartmentID int64  `form:"departmentId" binding:"omitempty,gt=0"`
	Semester     int    `form:"semester" binding:"omitempty,min=1"`
	Status       string `form:"status" binding:"omitempty,oneof=active inactive"`
	SortBy       string `form:"sortBy" binding:"omitempty,oneof=student_number first_name gpa created_at"`
	SortOrder    string `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
	Page         int    `form:"page" binding:"omitempty,min=1"`
	Size         int    `form:"size" binding:"omitempty,min=1,max=100"`
}

// StudentResponse is the public view of a student.
type StudentResponse struct {
	ID             int64   `json:"id" example:"1"`
	StudentNumber  string  `json:"studentNumber" example:"STU00042"`
	FirstName      string  `json:"firstName" example:"Mehmet"`
	LastName       string  `json:"lastName" example:"Çelik"`
	Email          string  `json:"email" example:"mehmet@studenthub.edu"`
	Phone          *string `json:"phone,omitempty"`
	DateOfBirth    string  `json:"dateOfBirth" example:"2004-02-11"`
	Gender         string  `json:"gender" example:"M"`
	BloodGroup     *string `json:"bloodGroup,omitempty"`
	Address        *string `json:"address,omitempty"`
	City           *string `json:"city,omitempty"`
	State          *string `json:"state,omitempty"`
	PostalCode     *string `json:"postalCode,omitempty"`
	GuardianName   *string `json:"guardianName,omitempty"`
	GuardianPhone  *string `json:"guardianPhone,omitempty"`
	NationalID     *string `json:"nationalId,omitempty"`
	Category       string  `json:"category" example:"GEN"`
	DepartmentID   *int64  `json:"departmentId,omitempty"`
	DepartmentName *string `json:"departmentName,omitempty"`
	AdmissionDate  string  `json:"admissionDate" example:"2025-09-01"`
	Semester       int     `json:"semester" example:"1"`
	GPA            float64 `json:"gpa" example:"3.20"`
	TotalCredits   int     `json:"totalCredits" example:"24"`
	IsActive       bool    `json:"isActive" example:"true"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StudentDetailResponse adds related records to a student.
type StudentDetailResponse struct {
	StudentResponse
	Enrollments       []EnrollmentResponse `json:"enrollments"`
	AttendanceSummary AttendanceSummary    `json:"attendanceSummary"`
	FeeSummary        FeeSummary           `json:"feeSummary"`
}

// StudentListResponse is a paginated student list.
type StudentListResponse struct {
	Students   []StudentResponse `json:"students"`
	Pagination PaginationInfo    `json:"pagination"`
}
