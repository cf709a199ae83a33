package models

import "time"

// AnnouncementPriority orders announcements on the dashboard.
type AnnouncementPriority string

const (
	PriorityLow    AnnouncementPriority = "L"
	PriorityMedium AnnouncementPriority = "M"
	PriorityHigh   AnnouncementPriority = "H"
	PriorityUrgent AnnouncementPriority = "U"
)

// IsValid checks if the priority is a known value.
func (p AnnouncementPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Announcement is a notice, optionally scoped to a department.
type Announcement struct {
	ID           int64
	Title        string
	Content      string
	Priority     AnnouncementPriority
	DepartmentID *int64
	IsActive     bool
	CreatedBy    *int64
	ExpiresAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Populated by joins.
	DepartmentName *string
	CreatedByName  *string
}
