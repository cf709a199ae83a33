package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("jane.doe@example.com"))
	assert.True(t, IsValidEmail("a+b@sub.domain.org"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("+905551234567"))
	assert.True(t, IsValidPhone("5551234"))
	assert.False(t, IsValidPhone("123"))
	assert.False(t, IsValidPhone("555-123-4567"))
	assert.False(t, IsValidPhone("1234567890123456"))
}

func TestIsValidNationalID(t *testing.T) {
	assert.True(t, IsValidNationalID("12345678901"))
	assert.False(t, IsValidNationalID("1234567890"))
	assert.False(t, IsValidNationalID("123456789012"))
	assert.False(t, IsValidNationalID("1234567890a"))
}

func TestIsValidStudentNumber(t *testing.T) {
	assert.True(t, IsValidStudentNumber("STU00001"))
	assert.True(t, IsValidStudentNumber("STU99999"))
	assert.True(t, IsValidStudentNumber("STU100000"))
	assert.False(t, IsValidStudentNumber("STU1234"))
	assert.False(t, IsValidStudentNumber("stu00001"))
	assert.False(t, IsValidStudentNumber("not a number!!"))
}

func TestIsValidAcademicYear(t *testing.T) {
	assert.True(t, IsValidAcademicYear("2026-2027"))
	assert.False(t, IsValidAcademicYear("2026"))
	assert.False(t, IsValidAcademicYear("26-27"))
	assert.False(t, IsValidAcademicYear("2026/2027"))
}

func TestIsUppercaseCode(t *testing.T) {
	assert.True(t, IsUppercaseCode("CS101"))
	assert.True(t, IsUppercaseCode("MATH"))
	assert.False(t, IsUppercaseCode(""))
	assert.False(t, IsUppercaseCode("cs101"))
	assert.False(t, IsUppercaseCode("CS-101"))
}

func TestInRange(t *testing.T) {
	assert.True(t, InRange(0, 0, 4))
	assert.True(t, InRange(4, 0, 4))
	assert.False(t, InRange(4.01, 0, 4))
	assert.False(t, InRange(-0.5, 0, 4))
}
