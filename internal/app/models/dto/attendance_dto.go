package dto

import "time"

// CreateAttendanceRequest records attendance for one student.
type CreateAttendanceRequest struct {
	StudentID int64   `json:"studentId" binding:"required,gt=0" example:"1"`
	CourseID  int64   `json:"courseId" binding:"required,gt=0" example:"1"`
	Date      string  `json:"date" binding:"required" example:"2026-08-25"`
	Status    string  `json:"status" binding:"required,oneof=P A L OD ML" example:"P"`
	Remarks   *string `json:"remarks" binding:"omitempty,max=500"`
}

// BulkAttendanceEntry is one row of a bulk attendance submission.
type BulkAttendanceEntry struct {
	StudentID int64   `json:"studentId" binding:"required,gt=0"`
	Status    string  `json:"status" binding:"required,oneof=P A L OD ML"`
	Remarks   *string `json:"remarks" binding:"omitempty,max=500"`
}

// BulkAttendanceRequest records attendance for a whole course on one date.
// Existing records for the same (student, course, date) are updated.
type BulkAttendanceRequest struct {
	CourseID int64                 `json:"courseId" binding:"required,gt=0"`
	Date     string                `json:"date" binding:"required" example:"2026-08-25"`
	Entries  []BulkAttendanceEntry `json:"entries" binding:"required,min=1,dive"`
}

// AttendanceFilterRequest filters the attendance list.
type AttendanceFilterRequest struct {
	Date      string `form:"date" binding:"omitempty"`
	CourseID  int64  `form:"courseId" binding:"omitempty,gt=0"`
	StudentID int64  `form:"studentId" binding:"omitempty,gt=0"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	Size      int    `form:"size" binding:"omitempty,min=1,max=100"`
}

// AttendanceResponse is the public view of an attendance record.
type AttendanceResponse struct {
	ID            int64   `json:"id" example:"1"`
	StudentID     int64   `json:"studentId" example:"1"`
	StudentName   string  `json:"studentName,omitempty"`
	StudentNumber string  `json:"studentNumber,omitempty"`
	CourseID      int64   `json:"courseId" example:"1"`
	CourseCode    string  `json:"courseCode,omitempty"`
	CourseName    string  `json:"courseName,omitempty"`
	Date          string  `json:"date" example:"2026-08-25"`
	Status        string  `json:"status" example:"P"`
	Remarks       *string `json:"remarks,omitempty"`
	RecordedBy    *int64  `json:"recordedBy,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AttendanceListResponse is a paginated attendance list.
type AttendanceListResponse struct {
	Records    []AttendanceResponse `json:"records"`
	Pagination PaginationInfo       `json:"pagination"`
}

// BulkAttendanceResponse summarizes a bulk submission.
type BulkAttendanceResponse struct {
	Created int `json:"created" example:"28"`
	Updated int `json:"updated" example:"2"`
}

// AttendanceSummary aggregates a student's attendance.
type AttendanceSummary struct {
	TotalDays     int64   `json:"totalDays" example:"40"`
	PresentDays   int64   `json:"presentDays" example:"36"`
	AbsentDays    int64   `json:"absentDays" example:"4"`
	AttendancePct float64 `json:"attendancePct" example:"90.0"`
}
