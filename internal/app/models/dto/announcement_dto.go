package dto

import "time"

// CreateAnnouncementRequest publishes an announcement.
type CreateAnnouncementRequest struct {
	Title        string     `json:"title" binding:"required,min=2,max=200" example:"Midterm schedule published"`
	Content      string     `json:"content" binding:"required" example:"See the exams page for details."`
	Priority     string     `json:"priority" binding:"omitempty,oneof=L M H U" example:"M"`
	DepartmentID *int64     `json:"departmentId" binding:"omitempty,gt=0"`
	ExpiresAt    *time.Time `json:"expiresAt" binding:"omitempty"`
}

// UpdateAnnouncementRequest updates an announcement.
type UpdateAnnouncementRequest struct {
	Title        string     `json:"title" binding:"required,min=2,max=200"`
	Content      string     `json:"content" binding:"required"`
	Priority     string     `json:"priority" binding:"required,oneof=L M H U"`
	DepartmentID *int64     `json:"departmentId" binding:"omitempty,gt=0"`
	IsActive     *bool      `json:"isActive" binding:"required"`
	ExpiresAt    *time.Time `json:"expiresAt" binding:"omitempty"`
}

// AnnouncementResponse is the public view of an announcement.
type AnnouncementResponse struct {
	ID             int64      `json:"id" example:"1"`
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	Priority       string     `json:"priority" example:"M"`
	DepartmentID   *int64     `json:"departmentId,omitempty"`
	DepartmentName *string    `json:"departmentName,omitempty"`
	IsActive       bool       `json:"isActive" example:"true"`
	CreatedBy      *int64     `json:"createdBy,omitempty"`
	CreatedByName  *string    `json:"createdByName,omitempty"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// AnnouncementListResponse is a paginated announcement list.
type AnnouncementListResponse struct {
	Announcements []AnnouncementResponse `json:"announcements"`
	Pagination    PaginationInfo         `json:"pagination"`
}
