package services

import (
	"context"
	"time"

	"github.com/kaan/studenthub/internal/app/models"
	"github.com/kaan/studenthub/internal/app/models/dto"
	"github.com/kaan/studenthub/internal/app/repositories"
	"github.com/kaan/studenthub/internal/pkg/helpers"
	"github.com/kaan/studenthub/internal/pkg/logger"
)

// AttendanceStore is the attendance persistence surface.
type AttendanceStore interface {
	Create(ctx context.Context, attendance *models.Attendance) error
	BulkUpsert(ctx context.Context, records []*models.Attendance) (created, updated int, err error)
	GetAll(ctx context.Context, filter repositories.AttendanceFilter) ([]*models.Attendance, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Attendance, error)
	Delete(ctx context.Context, id int64) error
}

// AttendanceService handles business logic for attendance records
type AttendanceService struct {
	attendance AttendanceStore
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(attendance AttendanceStore) *AttendanceService {
	return &AttendanceService{attendance: attendance}
}

// Create records attendance for one student on one date
func (s *AttendanceService) Create(ctx context.Context, req *dto.CreateAttendanceRequest, recordedBy *int64) (*dto.AttendanceResponse, error) {
	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		verrs := dto.NewValidationErrors()
		verrs.Add("date", "must be a date in YYYY-MM-DD form")
		return nil, verrs
	}

	record := &models.Attendance{
		StudentID:  req.StudentID,
		CourseID:   req.CourseID,
		Date:       date,
		Status:     models.AttendanceStatus(req.Status),
		Remarks:    req.Remarks,
		RecordedBy: recordedBy,
	}

	if err := s.attendance.Create(ctx, record); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, record.ID)
}

// BulkRecord upserts attendance for a whole course on one date
func (s *AttendanceService) BulkRecord(ctx context.Context, req *dto.BulkAttendanceRequest, recordedBy *int64) (*dto.BulkAttendanceResponse, error) {
	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		verrs := dto.NewValidationErrors()
		verrs.Add("date", "must be a date in YYYY-MM-DD form")
		return nil, verrs
	}

	records := make([]*models.Attendance, 0, len(req.Entries))
	for _, entry := range req.Entries {
		records = append(records, &models.Attendance{
			StudentID:  entry.StudentID,
			CourseID:   req.CourseID,
			Date:       date,
			Status:     models.AttendanceStatus(entry.Status),
			Remarks:    entry.Remarks,
			RecordedBy: recordedBy,
		})
	}

	created, updated, err := s.attendance.BulkUpsert(ctx, records)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int64("courseId", req.CourseID).
		Str("date", req.Date).
		Int("created", created).
		Int("updated", updated).
		Msg("Bulk attendance recorded")

	return &dto.BulkAttendanceResponse{Created: created, Updated: updated}, nil
}

// GetByID retrieves an attendance record
func (s *AttendanceService) GetByID(ctx context.Context, id int64) (*dto.AttendanceResponse, error) {
	record, err := s.attendance.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAttendanceResponse(record), nil
}

// GetAll lists attendance records. The date defaults to today when no
// filter narrows the listing.
func (s *AttendanceService) GetAll(ctx context.Context, filter *dto.AttendanceFilterRequest) (*dto.AttendanceListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Size)

	var date *time.Time
	if filter.Date != "" {
		parsed, err := helpers.ParseDate(filter.Date)
		if err != nil {
			verrs := dto.NewValidationErrors()
			verrs.Add("date", "must be a date in YYYY-MM-DD form")
			return nil, verrs
		}
		date = &parsed
	} else if filter.CourseID == 0 && filter.StudentID == 0 {
		today := helpers.Today()
		date = &today
	}

	records, total, err := s.attendance.GetAll(ctx, repositories.AttendanceFilter{
		Date:      date,
		CourseID:  filter.CourseID,
		StudentID: filter.StudentID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return nil, err
	}

	response := &dto.AttendanceListResponse{
		Records:    make([]dto.AttendanceResponse, 0, len(records)),
		Pagination: helpers.NewPaginationInfo(total, filter.Page, limit),
	}
	for _, record := range records {
		response.Records = append(response.Records, *toAttendanceResponse(record))
	}
	return response, nil
}

// Delete removes an attendance record
func (s *AttendanceService) Delete(ctx context.Context, id int64) error {
	return s.attendance.Delete(ctx, id)
}

func toAttendanceResponse(record *models.Attendance) *dto.AttendanceResponse {
	return &dto.AttendanceResponse{
		ID:            record.ID,
		StudentID:     record.StudentID,
		StudentName:   record.StudentName,
		StudentNumber: record.StudentNumber,
		CourseID:      record.CourseID,
		CourseCode:    record.CourseCode,
		CourseName:    record.CourseName,
		Date:          record.Date.Format(helpers.DateFormat),
		Status:        string(record.Status),
		Remarks:       record.Remarks,
		RecordedBy:    record.RecordedBy,
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
	}
}
