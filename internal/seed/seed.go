package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/kaan/studenthub/internal/app/models"
	"github.com/kaan/studenthub/internal/app/repositories"
	"github.com/kaan/studenthub/internal/pkg/apperrors"
	"github.com/kaan/studenthub/internal/pkg/logger"
)

// DefaultAdminEmail is the account created on first startup.
const DefaultAdminEmail = "admin@studenthub.local"

var defaultDepartments = []models.Department{
	{Name: "Computer Science", Code: "CS", Description: "Computer Science and Engineering"},
	{Name: "Mathematics", Code: "MATH", Description: "Pure and Applied Mathematics"},
	{Name: "Physics", Code: "PHY", Description: "Physics and Astronomy"},
}

// CreateDefaultData seeds the default admin account and a few starter
// departments. Existing rows are left untouched; individual failures are
// collected so a partial seed does not block startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, adminPassword string) error {
	departmentRepo := repositories.NewDepartmentRepository(dbPool)
	userRepo := repositories.NewUserRepository(dbPool)

	var finalErr error

	for i := range defaultDepartments {
		dept := defaultDepartments[i]
		if err := departmentRepo.Create(ctx, &dept); err != nil {
			if errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
				continue
			}
			logger.Error().Err(err).Str("code", dept.Code).Msg("Failed to seed department")
			finalErr = errors.Join(finalErr, err)
		}
	}

	exists, err := userRepo.EmailExists(ctx, DefaultAdminEmail)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to check for default admin user")
		return errors.Join(finalErr, err)
	}
	if exists {
		logger.Debug().Msg("Default admin user already exists, skipping")
		return finalErr
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash default admin password")
		return errors.Join(finalErr, err)
	}

	admin := &models.User{
		Email:     DefaultAdminEmail,
		Password:  string(hashed),
		FirstName: "System",
		LastName:  "Administrator",
		Role:      models.RoleAdmin,
		IsActive:  true,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		logger.Error().Err(err).Msg("Failed to create default admin user")
		return errors.Join(finalErr, err)
	}

	logger.Info().Int64("userID", admin.ID).Str("email", admin.Email).Msg("Default admin user created")
	return finalErr
}
