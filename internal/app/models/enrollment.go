package models

import "time"

// Mark bounds for a single component.
const (
	MarkMin = 0
	MarkMax = 50
)

// Grade is a derived letter grade.
type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeBPlus Grade = "B+"
	GradeB     Grade = "B"
	GradeC     Grade = "C"
	GradeD     Grade = "D"
	GradeF     Grade = "F"
)

// DeriveGrade maps total marks (internal + external, 0..100) to a letter
// grade. Grades are always recomputed from marks, never set directly.
func DeriveGrade(totalMarks float64) Grade {
	switch {
	case totalMarks >= 90:
		return GradeAPlus
	case totalMarks >= 80:
		return GradeA
	case totalMarks >= 70:
		return GradeBPlus
	case totalMarks >= 60:
		return GradeB
	case totalMarks >= 50:
		return GradeC
	case totalMarks >= 40:
		return GradeD
	default:
		return GradeF
	}
}

// Enrollment links a student to a course.
type Enrollment struct {
	ID            int64
	StudentID     int64
	CourseID      int64
	EnrolledDate  time.Time
	InternalMarks *float64
	ExternalMarks *float64
	Grade         *Grade
	IsActive      bool
	Completed     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Populated by joins.
	StudentName   string
	StudentNumber string
	CourseCode    string
	CourseName    string
}

// TotalMarks sums the internal and external components. The second return
// value is false until both components are recorded.
func (e *Enrollment) TotalMarks() (float64, bool) {
	if e.InternalMarks == nil || e.ExternalMarks == nil {
		return 0, false
	}
	return *e.InternalMarks + *e.ExternalMarks, true
}
