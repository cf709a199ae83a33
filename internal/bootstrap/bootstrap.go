package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	_ "github.com/kaan/studenthub/docs" // generated swagger docs
	"github.com/kaan/studenthub/internal/app/controllers"
	"github.com/kaan/studenthub/internal/app/migrations"
	"github.com/kaan/studenthub/internal/app/repositories"
	"github.com/kaan/studenthub/internal/app/routes"
	"github.com/kaan/studenthub/internal/app/services"
	"github.com/kaan/studenthub/internal/config"
	"github.com/kaan/studenthub/internal/db"
	"github.com/kaan/studenthub/internal/metrics"
	"github.com/kaan/studenthub/internal/middleware"
	"github.com/kaan/studenthub/internal/pkg/auth"
	"github.com/kaan/studenthub/internal/pkg/helpers"
	"github.com/kaan/studenthub/internal/pkg/logger"
	"github.com/kaan/studenthub/internal/seed"
)

// defaultAdminPassword is only used when seeding a fresh database.
// Override via the ADMIN_PASSWORD environment variable.
const defaultAdminPassword = "Admin123!"

// Dependencies holds the wired application graph.
type Dependencies struct {
	Repos       *repositories.Repositories
	Services    *services.Services
	Controllers *routes.Controllers
	JWTService  *auth.JWTService
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})
	logger.Info().Str("level", cfg.Logging.Level).Str("format", cfg.Logging.Format).Msg("Logger configured")

	return cfg, nil
}

// SetupDatabase establishes the connection pool, runs migrations and seeds
// default data.
func SetupDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	dbPool, err := db.NewPgxPool(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.Info().Str("host", cfg.Database.Host).Str("database", cfg.Database.DBName).Msg("Database connection established")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := migrations.NewMigrator(dbPool)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	logger.Info().Msg("Database migrations applied")

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = defaultAdminPassword
	}
	if err := seed.CreateDefaultData(ctx, dbPool, adminPassword); err != nil {
		// Seeding is best-effort; the service is still usable.
		logger.Warn().Err(err).Msg("Failed to seed default data, continuing")
	}

	return dbPool, nil
}

// BuildDependencies wires repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool) *Dependencies {
	repos := repositories.NewRepositories(dbPool)

	jwtService := auth.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.Issuer,
		helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, time.Hour),
		helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
	)
	passwordService := auth.NewPasswordService()

	svcs := services.NewServices(repos, jwtService, passwordService, cfg.Academic)

	ctrls := &routes.Controllers{
		Health:       controllers.NewHealthController(),
		Auth:         controllers.NewAuthController(svcs.AuthService),
		Department:   controllers.NewDepartmentController(svcs.DepartmentService),
		Course:       controllers.NewCourseController(svcs.CourseService),
		Student:      controllers.NewStudentController(svcs.StudentService),
		Enrollment:   controllers.NewEnrollmentController(svcs.EnrollmentService),
		Attendance:   controllers.NewAttendanceController(svcs.AttendanceService),
		Fee:          controllers.NewFeeController(svcs.FeeService),
		Announcement: controllers.NewAnnouncementController(svcs.AnnouncementService),
		Dashboard:    controllers.NewDashboardController(svcs.DashboardService),
		Export:       controllers.NewExportController(svcs.ExportService),
	}

	return &Dependencies{
		Repos:       repos,
		Services:    svcs,
		Controllers: ctrls,
		JWTService:  jwtService,
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	middleware.RegisterCustomValidators()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(metrics.Middleware())

	routes.Setup(router, deps.Controllers, deps.JWTService)

	return router
}
