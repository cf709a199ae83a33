package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan/studenthub/internal/app/models"
	"github.com/kaan/studenthub/internal/app/models/dto"
	"github.com/kaan/studenthub/internal/pkg/apperrors"
)

type fakeDepartmentStore struct {
	departments map[int64]*models.Department
	nextID      int64
	inUse       map[int64]bool
}

func newFakeDepartmentStore() *fakeDepartmentStore {
	return &fakeDepartmentStore{
		departments: make(map[int64]*models.Department),
		nextID:      1,
		inUse:       make(map[int64]bool),
	}
}

func (s *fakeDepartmentStore) Create(_ context.Context, department *models.Department) error {
	department.ID = s.nextID
	s.nextID++
	s.departments[department.ID] = department
	return nil
}

func (s *fakeDepartmentStore) GetByID(_ context.Context, id int64) (*models.Department, error) {
	department, ok := s.departments[id]
	if !ok {
		return nil, apperrors.ErrDepartmentNotFound
	}
	copied := *department
	return &copied, nil
}

func (s *fakeDepartmentStore) GetAll(_ context.Context) ([]*models.Department, error) {
	out := make([]*models.Department, 0, len(s.departments))
	for _, department := range s.departments {
		out = append(out, department)
	}
	return out, nil
}

func (s *fakeDepartmentStore) ExistsByNameOrCode(_ context.Context, name, code string, excludeID int64) (bool, error) {
	for _, department := range s.departments {
		if department.ID == excludeID {
			continue
		}
		if department.Name == name || department.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeDepartmentStore) Update(_ context.Context, department *models.Department) error {
	if _, ok := s.departments[department.ID]; !ok {
		return apperrors.ErrDepartmentNotFound
	}
	s.departments[department.ID] = department
	return nil
}

func (s *fakeDepartmentStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.departments[id]; !ok {
		return apperrors.ErrDepartmentNotFound
	}
	if s.inUse[id] {
		return apperrors.ErrDepartmentHasRelations
	}
	delete(s.departments, id)
	return nil
}

func TestDepartmentServiceCreate(t *testing.T) {
	t.Run("uppercases the code", func(t *testing.T) {
		store := newFakeDepartmentStore()
		service := NewDepartmentService(store)

		resp, err := service.Create(context.Background(), &dto.CreateDepartmentRequest{
			Name: "Computer Science",
			Code: " cs ",
		})
		require.NoError(t, err)
		assert.Equal(t, "CS", resp.Code)
	})

	t.Run("rejects non-alphanumeric codes", func(t *testing.T) {
		store := newFakeDepartmentStore()
		service := NewDepartmentService(store)

		_, err := service.Create(context.Background(), &dto.CreateDepartmentRequest{
			Name: "Computer Science",
			Code: "CS-1",
		})
		var verrs *dto.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.Fields, "code")
	})

	t.Run("duplicate name or code", func(t *testing.T) {
		store := newFakeDepartmentStore()
		service := NewDepartmentService(store)

		_, err := service.Create(context.Background(), &dto.CreateDepartmentRequest{Name: "Physics", Code: "PHY"})
		require.NoError(t, err)

		_, err = service.Create(context.Background(), &dto.CreateDepartmentRequest{Name: "Physics", Code: "PHY2"})
		assert.ErrorIs(t, err, apperrors.ErrDepartmentAlreadyExists)
	})
}

func TestDepartmentServiceUpdateAllowsOwnName(t *testing.T) {
	store := newFakeDepartmentStore()
	service := NewDepartmentService(store)

	created, err := service.Create(context.Background(), &dto.CreateDepartmentRequest{Name: "Physics", Code: "PHY"})
	require.NoError(t, err)

	// Re-saving under the same name must not trip the uniqueness check.
	resp, err := service.Update(context.Background(), created.ID, &dto.UpdateDepartmentRequest{
		Name:        "Physics",
		Code:        "PHY",
		Description: "Physics and Astronomy",
	})
	require.NoError(t, err)
	assert.Equal(t, "Physics and Astronomy", resp.Description)
}

func TestDepartmentServiceDeleteInUse(t *testing.T) {
	store := newFakeDepartmentStore()
	service := NewDepartmentService(store)

	created, err := service.Create(context.Background(), &dto.CreateDepartmentRequest{Name: "Physics", Code: "PHY"})
	require.NoError(t, err)
	store.inUse[created.ID] = true

	err = service.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, apperrors.ErrDepartmentHasRelations)
}
