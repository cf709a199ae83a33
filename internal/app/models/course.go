package models

import "time"

// Course credit bounds.
const (
	CourseMinCredits = 1
	CourseMaxCredits = 6
)

// Course represents a course offered by a department.
type Course struct {
	ID           int64
	Code         string
	Name         string
	DepartmentID int64
	Credits      int
	Semester     int
	Instructor   string
	MaxStudents  int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Populated by joins.
	DepartmentName string
	EnrolledCount  int64
}
