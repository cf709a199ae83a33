package services

import (
	"context"
	"strings"

	"github.com/kaan/studenthub/internal/app/models"
	"github.com/kaan/studenthub/internal/app/models/dto"
	"github.com/kaan/studenthub/internal/pkg/apperrors"
	"github.com/kaan/studenthub/internal/pkg/logger"
	"github.com/kaan/studenthub/internal/pkg/validation"
)

// DepartmentStore is the department persistence surface.
type DepartmentStore interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetAll(ctx context.Context) ([]*models.Department, error)
	ExistsByNameOrCode(ctx context.Context, name, code string, excludeID int64) (bool, error)
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id int64) error
}

// DepartmentService handles business logic for departments
type DepartmentService struct {
	departments DepartmentStore
}

// NewDepartmentService creates a new department service
func NewDepartmentService(departments DepartmentStore) *DepartmentService {
	return &DepartmentService{departments: departments}
}

// Create creates a department after checking code format and uniqueness
func (s *DepartmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if !validation.IsUppercaseCode(code) {
		verrs := dto.NewValidationErrors()
		verrs.Add("code", "must be uppercase letters and digits")
		return nil, verrs
	}

	exists, err := s.departments.ExistsByNameOrCode(ctx, req.Name, code, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDepartmentAlreadyExists
	}

	department := &models.Department{
		Name:        req.Name,
		Code:        code,
		Description: req.Description,
		Head:        req.Head,
	}

	if err := s.departments.Create(ctx, department); err != nil {
		return nil, err
	}

	logger.Info().Int64("departmentId", department.ID).Str("code", department.Code).Msg("Department created")
	return toDepartmentResponse(department), nil
}

// GetByID retrieves a department
func (s *DepartmentService) GetByID(ctx context.Context, id int64) (*dto.DepartmentResponse, error) {
	department, err := s.departments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDepartmentResponse(department), nil
}

// GetAll lists all departments
func (s *DepartmentService) GetAll(ctx context.Context) ([]dto.DepartmentResponse, error) {
	departments, err := s.departments.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.DepartmentResponse, 0, len(departments))
	for _, department := range departments {
		responses = append(responses, *toDepartmentResponse(department))
	}
	return responses, nil
}

// Update updates a department
func (s *DepartmentService) Update(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if !validation.IsUppercaseCode(code) {
		verrs := dto.NewValidationErrors()
		verrs.Add("code", "must be uppercase letters and digits")
		return nil, verrs
	}

	exists, err := s.departments.ExistsByNameOrCode(ctx, req.Name, code, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDepartmentAlreadyExists
	}

	department := &models.Department{
		ID:          id,
		Name:        req.Name,
		Code:        code,
		Description: req.Description,
		Head:        req.Head,
	}

	if err := s.departments.Update(ctx, department); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// Delete deletes a department. Departments referenced by students or
// courses cannot be deleted.
func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	if err := s.departments.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("departmentId", id).Msg("Department deleted")
	return nil
}

func toDepartmentResponse(department *models.Department) *dto.DepartmentResponse {
	return &dto.DepartmentResponse{
		ID:           department.ID,
		Name:         department.Name,
		Code:         department.Code,
		Description:  department.Description,
		Head:         department.Head,
		StudentCount: department.StudentCount,
		CourseCount:  department.CourseCount,
		CreatedAt:    department.CreatedAt,
		UpdatedAt:    department.UpdatedAt,
	}
}
