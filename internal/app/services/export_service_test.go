package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/kaan/studenthub/internal/app/models"
	"github.com/kaan/studenthub/internal/app/repositories"
)

type fakeExportStudents struct {
	lastFilter repositories.StudentFilter
}

func (s *fakeExportStudents) GetAll(_ context.Context, filter repositories.StudentFilter) ([]*models.Student, int64, error) {
	s.lastFilter = filter
	department := "Computer Science"
	return []*models.Student{
		{
			ID:             1,
			StudentNumber:  "STU00001",
			FirstName:      "Ayşe",
			LastName:       "Demir",
			Email:          "ayse@example.com",
			DepartmentName: &department,
			Semester:       3,
			GPA:            3.4,
			AdmissionDate:  time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
			IsActive:       true,
		},
	}, 1, nil
}

type fakeExportAttendance struct{}

func (s *fakeExportAttendance) GetAll(_ context.Context, _ repositories.AttendanceFilter) ([]*models.Attendance, int64, error) {
	return []*models.Attendance{
		{
			ID:            1,
			StudentID:     1,
			CourseID:      1,
			Date:          time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
			Status:        models.AttendancePresent,
			StudentNumber: "STU00001",
			StudentName:   "Ayşe Demir",
			CourseCode:    "CS101",
			CourseName:    "Introduction to Programming",
		},
	}, 1, nil
}

func TestExportServiceStudentsWorkbook(t *testing.T) {
	students := &fakeExportStudents{}
	service := NewExportService(students, &fakeExportAttendance{})

	buf, err := service.StudentsWorkbook(context.Background(), "ayse", 2)
	require.NoError(t, err)
	assert.Equal(t, "ayse", students.lastFilter.Search)
	assert.Equal(t, int64(2), students.lastFilter.DepartmentID)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Students", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Student Number", header)

	number, err := f.GetCellValue("Students", "A2")
	require.NoError(t, err)
	assert.Equal(t, "STU00001", number)

	date, err := f.GetCellValue("Students", "H2")
	require.NoError(t, err)
	assert.Equal(t, "2024-09-01", date)
}

func TestExportServiceAttendanceWorkbook(t *testing.T) {
	service := NewExportService(&fakeExportStudents{}, &fakeExportAttendance{})

	buf, err := service.AttendanceWorkbook(context.Background(), repositories.AttendanceFilter{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	status, err := f.GetCellValue("Attendance", "F2")
	require.NoError(t, err)
	assert.Equal(t, "P", status)
}
