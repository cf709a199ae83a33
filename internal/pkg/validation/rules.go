package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Phone pattern - optional leading +, 7 to 15 digits
	PhonePattern = `^\+?[0-9]{7,15}$`

	// National identifier pattern - exactly 11 digits
	NationalIDPattern = `^\d{11}$`

	// Student number pattern - STU followed by at least 5 digits.
	// Generated numbers widen past STU99999, so the tail is open-ended.
	StudentNumberPattern = `^STU\d{5,}$`

	// Academic year pattern, e.g. "2025-2026"
	AcademicYearPattern = `^\d{4}-\d{4}$`

	PasswordMinLength = 8

	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email         *regexp.Regexp
	Phone         *regexp.Regexp
	NationalID    *regexp.Regexp
	StudentNumber *regexp.Regexp
	AcademicYear  *regexp.Regexp
}{
	Email:         regexp.MustCompile(EmailPattern),
	Phone:         regexp.MustCompile(PhonePattern),
	NationalID:    regexp.MustCompile(NationalIDPattern),
	StudentNumber: regexp.MustCompile(StudentNumberPattern),
	AcademicYear:  regexp.MustCompile(AcademicYearPattern),
}

// IsValidEmail reports whether the value matches the email pattern.
func IsValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(value)
}

// IsValidPhone reports whether the value matches the phone pattern.
func IsValidPhone(value string) bool {
	return CompiledPatterns.Phone.MatchString(value)
}

// IsValidNationalID reports whether the value is an 11-digit identifier.
func IsValidNationalID(value string) bool {
	return CompiledPatterns.NationalID.MatchString(value)
}

// IsValidStudentNumber reports whether the value matches the student
// number pattern.
func IsValidStudentNumber(value string) bool {
	return CompiledPatterns.StudentNumber.MatchString(value)
}

// IsValidAcademicYear reports whether the value looks like "YYYY-YYYY".
func IsValidAcademicYear(value string) bool {
	return CompiledPatterns.AcademicYear.MatchString(value)
}

// IsUppercaseCode reports whether the value is non-empty uppercase alphanumeric.
// Department and course codes use this form.
func IsUppercaseCode(code string) bool {
	if code == "" {
		return false
	}
	for _, char := range code {
		if !((char >= 'A' && char <= 'Z') || (char >= '0' && char <= '9')) {
			return false
		}
	}
	return true
}

// InRange reports whether value lies in [min, max] inclusive.
func InRange(value, min, max float64) bool {
	return value >= min && value <= max
}
