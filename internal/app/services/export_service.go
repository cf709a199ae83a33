package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/kaan/studenthub/internal/app/models"
	"github.com/kaan/studenthub/internal/app/repositories"
	"github.com/kaan/studenthub/internal/pkg/helpers"
)

// exportPageSize caps a workbook at one repository page.
const exportPageSize = 10000

// ExportStudentStore lists students for spreadsheet export.
type ExportStudentStore interface {
	GetAll(ctx context.Context, filter repositories.StudentFilter) ([]*models.Student, int64, error)
}

// ExportAttendanceStore lists attendance records for spreadsheet export.
type ExportAttendanceStore interface {
	GetAll(ctx context.Context, filter repositories.AttendanceFilter) ([]*models.Attendance, int64, error)
}

// ExportService renders xlsx workbooks from record listings
type ExportService struct {
	students   ExportStudentStore
	attendance ExportAttendanceStore
}

// NewExportService creates a new export service
func NewExportService(students ExportStudentStore, attendance ExportAttendanceStore) *ExportService {
	return &ExportService{
		students:   students,
		attendance: attendance,
	}
}

// StudentsWorkbook builds an xlsx workbook of students matching the filter
func (s *ExportService) StudentsWorkbook(ctx context.Context, search string, departmentID int64) (*bytes.Buffer, error) {
	students, _, err := s.students.GetAll(ctx, repositories.StudentFilter{
		Search:       search,
		DepartmentID: departmentID,
		Limit:        exportPageSize,
	})
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Students"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Student Number", "First Name", "Last Name", "Email", "Department", "Semester", "GPA", "Admission Date", "Active"}
	if err := writeHeaderRow(f, sheet, headers); err != nil {
		return nil, err
	}

	for i, student := range students {
		row := i + 2
		department := ""
		if student.DepartmentName != nil {
			department = *student.DepartmentName
		}
		values := []interface{}{
			student.StudentNumber,
			student.FirstName,
			student.LastName,
			student.Email,
			department,
			student.Semester,
			student.GPA,
			student.AdmissionDate.Format(helpers.DateFormat),
			student.IsActive,
		}
		if err := writeRow(f, sheet, row, values); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}

// AttendanceWorkbook builds an xlsx workbook of attendance records
func (s *ExportService) AttendanceWorkbook(ctx context.Context, filter repositories.AttendanceFilter) (*bytes.Buffer, error) {
	filter.Limit = exportPageSize
	records, _, err := s.attendance.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Attendance"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Date", "Student Number", "Student Name", "Course Code", "Course Name", "Status", "Remarks"}
	if err := writeHeaderRow(f, sheet, headers); err != nil {
		return nil, err
	}

	for i, record := range records {
		row := i + 2
		remarks := ""
		if record.Remarks != nil {
			remarks = *record.Remarks
		}
		values := []interface{}{
			record.Date.Format(helpers.DateFormat),
			record.StudentNumber,
			record.StudentName,
			record.CourseCode,
			record.CourseName,
			string(record.Status),
			remarks,
		}
		if err := writeRow(f, sheet, row, values); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}

	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("error styling header row: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}
