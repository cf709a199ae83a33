package models

import (
	"fmt"
	"time"
)

// Gender of a student.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

// IsValid checks if the gender is a known value.
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

// Category is the admission category of a student.
type Category string

const (
	CategoryGeneral Category = "GEN"
	CategoryOBC     Category = "OBC"
	CategorySC      Category = "SC"
	CategoryST      Category = "ST"
	CategoryOther   Category = "OTH"
)

// IsValid checks if the category is a known value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryGeneral, CategoryOBC, CategorySC, CategoryST, CategoryOther:
		return true
	}
	return false
}

// BloodGroups lists the accepted blood group values.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// IsValidBloodGroup checks a blood group string against the accepted set.
func IsValidBloodGroup(bg string) bool {
	for _, v := range BloodGroups {
		if bg == v {
			return true
		}
	}
	return false
}

// Student represents an enrolled student record.
type Student struct {
	ID            int64
	StudentNumber string
	FirstName     string
	LastName      string
	Email         string
	Phone         *string
	DateOfBirth   time.Time
	Gender        Gender
	BloodGroup    *string
	Address       *string
	City          *string
	State         *string
	PostalCode    *string
	GuardianName  *string
	GuardianPhone *string
	NationalID    *string
	Category      Category
	DepartmentID  *int64
	AdmissionDate time.Time
	Semester      int
	GPA           float64
	TotalCredits  int
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Populated by joins.
	DepartmentName *string
}

// FullName returns the student's display name.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// FormatStudentNumber renders a sequence value as a student number.
func FormatStudentNumber(seq int64) string {
	return fmt.Sprintf("STU%05d", seq)
}
