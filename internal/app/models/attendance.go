package models

import "time"

// AttendanceStatus for a student on a given date.
type AttendanceStatus string

const (
	AttendancePresent      AttendanceStatus = "P"
	AttendanceAbsent       AttendanceStatus = "A"
	AttendanceLate         AttendanceStatus = "L"
	AttendanceOnDuty       AttendanceStatus = "OD"
	AttendanceMedicalLeave AttendanceStatus = "ML"
)

// IsValid checks if the status is a known value.
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceOnDuty, AttendanceMedicalLeave:
		return true
	}
	return false
}

// CountsAsPresent reports whether the status counts toward attendance
// percentage. On-duty and late count as attended.
func (s AttendanceStatus) CountsAsPresent() bool {
	return s == AttendancePresent || s == AttendanceLate || s == AttendanceOnDuty
}

// Attendance is one student's record for one course on one date.
type Attendance struct {
	ID         int64
	StudentID  int64
	CourseID   int64
	Date       time.Time
	Status     AttendanceStatus
	Remarks    *string
	RecordedBy *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Populated by joins.
	StudentName   string
	StudentNumber string
	CourseCode    string
	CourseName    string
}
