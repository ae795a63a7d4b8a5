package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/emredok/studenthub/internal/app/controllers"
	appMigrations "github.com/emredok/studenthub/internal/app/migrations"
	appRepos "github.com/emredok/studenthub/internal/app/repositories"
	appRoutes "github.com/emredok/studenthub/internal/app/routes"
	appServices "github.com/emredok/studenthub/internal/app/services"
	"github.com/emredok/studenthub/internal/config"
	"github.com/emredok/studenthub/internal/db"
	appMiddleware "github.com/emredok/studenthub/internal/middleware"
	pkgAuth "github.com/emredok/studenthub/internal/pkg/auth"
	"github.com/emredok/studenthub/internal/pkg/helpers"
	"github.com/emredok/studenthub/internal/pkg/logger"
	"github.com/emredok/studenthub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       *appServices.AuthService
	StudentService    *appServices.StudentService
	ResultService     *appServices.ResultService
	CourseService     *appServices.CourseService
	AuthController    *appControllers.AuthController
	StudentController *appControllers.StudentController
	ResultController  *appControllers.ResultController
	CourseController  *appControllers.CourseController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Create default data (after migrations)
	if err := seed.CreateDefaultData(context.Background(), database, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExpiry: helpers.ParseDuration(cfg.JWT.TokenExpiry, 24*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.StudentRepository, deps.JWTService, lgr)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.ResultService = appServices.NewResultService(deps.Repos.EnrollmentRepository, deps.Repos.ResultRepository, lgr)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.ResultController = appControllers.NewResultController(deps.ResultService, lgr)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.ResultController,
		deps.CourseController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
