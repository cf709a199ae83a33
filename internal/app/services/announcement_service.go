package services

import (
	"context"

	"github.com/kaan/studenthub/internal/app/models"
	"github.com/kaan/studenthub/internal/app/models/dto"
	"github.com/kaan/studenthub/internal/pkg/helpers"
	"github.com/kaan/studenthub/internal/pkg/logger"
)

// AnnouncementStore is the announcement persistence surface.
type AnnouncementStore interface {
	Create(ctx context.Context, announcement *models.Announcement) error
	GetByID(ctx context.Context, id int64) (*models.Announcement, error)
	GetActive(ctx context.Context, limit int, offset uint64) ([]*models.Announcement, int64, error)
	Update(ctx context.Context, announcement *models.Announcement) error
	Delete(ctx context.Context, id int64) error
}

// AnnouncementService handles business logic for announcements
type AnnouncementService struct {
	announcements AnnouncementStore
}

// NewAnnouncementService creates a new announcement service
func NewAnnouncementService(announcements AnnouncementStore) *AnnouncementService {
	return &AnnouncementService{announcements: announcements}
}

// Create publishes an announcement
func (s *AnnouncementService) Create(ctx context.Context, req *dto.CreateAnnouncementRequest, createdBy *int64) (*dto.AnnouncementResponse, error) {
	priority := models.AnnouncementPriority(req.Priority)
	if priority == "" {
		priority = models.PriorityMedium
	}

	announcement := &models.Announcement{
		Title:        req.Title,
		Content:      req.Content,
		Priority:     priority,
		DepartmentID: req.DepartmentID,
		IsActive:     true,
		CreatedBy:    createdBy,
		ExpiresAt:    req.ExpiresAt,
	}

	if err := s.announcements.Create(ctx, announcement); err != nil {
		return nil, err
	}

	logger.Info().Int64("announcementId", announcement.ID).Str("priority", string(priority)).Msg("Announcement published")
	return s.GetByID(ctx, announcement.ID)
}

// GetByID retrieves an announcement
func (s *AnnouncementService) GetByID(ctx context.Context, id int64) (*dto.AnnouncementResponse, error) {
	announcement, err := s.announcements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAnnouncementResponse(announcement), nil
}

// GetActive lists active announcements ordered by priority then recency
func (s *AnnouncementService) GetActive(ctx context.Context, page, size int) (*dto.AnnouncementListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	announcements, total, err := s.announcements.GetActive(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	response := &dto.AnnouncementListResponse{
		Announcements: make([]dto.AnnouncementResponse, 0, len(announcements)),
		Pagination:    helpers.NewPaginationInfo(total, page, limit),
	}
	for _, announcement := range announcements {
		response.Announcements = append(response.Announcements, *toAnnouncementResponse(announcement))
	}
	return response, nil
}

// Update updates an announcement
func (s *AnnouncementService) Update(ctx context.Context, id int64, req *dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	announcement, err := s.announcements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	announcement.Title = req.Title
	announcement.Content = req.Content
	announcement.Priority = models.AnnouncementPriority(req.Priority)
	announcement.DepartmentID = req.DepartmentID
	announcement.IsActive = *req.IsActive
	announcement.ExpiresAt = req.ExpiresAt

	if err := s.announcements.Update(ctx, announcement); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// Delete removes an announcement
func (s *AnnouncementService) Delete(ctx context.Context, id int64) error {
	return s.announcements.Delete(ctx, id)
}

func toAnnouncementResponse(announcement *models.Announcement) *dto.AnnouncementResponse {
	return &dto.AnnouncementResponse{
		ID:             announcement.ID,
		Title:          announcement.Title,
		Content:        announcement.Content,
		Priority:       string(announcement.Priority),
		DepartmentID:   announcement.DepartmentID,
		DepartmentName: announcement.DepartmentName,
		IsActive:       announcement.IsActive,
		CreatedBy:      announcement.CreatedBy,
		CreatedByName:  announcement.CreatedByName,
		ExpiresAt:      announcement.ExpiresAt,
		CreatedAt:      announcement.CreatedAt,
		UpdatedAt:      announcement.UpdatedAt,
	}
}
