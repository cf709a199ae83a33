package dto

import "time"

// CreateDepartmentRequest creates a new department.
type CreateDepartmentRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=100" example:"Computer Science"`
	Code        string  `json:"code" binding:"required,min=2,max=10" example:"CS"`
	Description string  `json:"description" binding:"omitempty,max=500" example:"Computing and software"`
	Head        *string `json:"head" binding:"omitempty,max=100" example:"Dr. Kaya"`
}

// UpdateDepartmentRequest updates an existing department.
type UpdateDepartmentRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=100"`
	Code        string  `json:"code" binding:"required,min=2,max=10"`
	Description string  `json:"description" binding:"omitempty,max=500"`
	Head        *string `json:"head" binding:"omitempty,max=100"`
}

// DepartmentResponse is the public view of a department.
type DepartmentResponse struct {
	ID           int64     `json:"id" example:"1"`
	Name         string    `json:"name" example:"Computer Science"`
	Code         string    `json:"code" example:"CS"`
	Description  string    `json:"description,omitempty"`
	Head         *string   `json:"head,omitempty"`
	StudentCount int64     `json:"studentCount" example:"120"`
	CourseCount  int64     `json:"courseCount" example:"14"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// DepartmentListResponse is a paginated department list.
type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
	Pagination  PaginationInfo       `json:"pagination"`
}
