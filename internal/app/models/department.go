package models

import "time"

// Department represents an academic department.
type Department struct {
	ID          int64
	Name        string
	Code        string
	Description string
	Head        *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Populated by list queries.
	StudentCount int64
	CourseCount  int64
}
