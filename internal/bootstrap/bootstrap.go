package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/merdan/studentinfo/docs" // generated swagger docs
	appControllers "github.com/merdan/studentinfo/internal/app/controllers"
	appMigrations "github.com/merdan/studentinfo/internal/app/migrations"
	"github.com/merdan/studentinfo/internal/app/models"
	appRepos "github.com/merdan/studentinfo/internal/app/repositories"
	appRoutes "github.com/merdan/studentinfo/internal/app/routes"
	appServices "github.com/merdan/studentinfo/internal/app/services"
	"github.com/merdan/studentinfo/internal/config"
	"github.com/merdan/studentinfo/internal/db"
	appMiddleware "github.com/merdan/studentinfo/internal/middleware"
	"github.com/merdan/studentinfo/internal/pkg/filestorage"
	"github.com/merdan/studentinfo/internal/pkg/logger"
	"github.com/merdan/studentinfo/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *appRepos.Repositories
	FileStorage *filestorage.LocalStorage
	Controllers appRoutes.Controllers
	Logger      zerolog.Logger
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

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default reference data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	// Seed all catalogs or none; a half-seeded install is worse than an
	// empty one.
	err = database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return seed.CreateDefaultData(ctx, tx)
	})
	if err != nil {
		// Seeding is convenience, not correctness; startup continues.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, "/uploads")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	catalogService := func(kind models.ReferenceKind) appServices.ReferenceService {
		return appServices.NewReferenceService(deps.Repos.ReferenceRepositoryFor(kind))
	}
	facultyService := catalogService(models.KindFaculty)
	groupService := catalogService(models.KindGroup)
	scholarshipService := catalogService(models.KindScholarship)
	lessonService := catalogService(models.KindLesson)
	semesterService := catalogService(models.KindSemester)

	studentService := appServices.NewStudentService(
		deps.Repos.Students,
		deps.Repos.Faculties,
		deps.Repos.Groups,
		deps.Repos.Scholarships,
	)

	markService := appServices.NewMarkService(
		deps.Repos.Marks,
		deps.Repos.Students,
		deps.Repos.Lessons,
		deps.Repos.Semesters,
	)

	deps.Controllers = appRoutes.Controllers{
		Faculties:    appControllers.NewReferenceController(facultyService),
		Groups:       appControllers.NewReferenceController(groupService),
		Scholarships: appControllers.NewReferenceController(scholarshipService),
		Lessons:      appControllers.NewReferenceController(lessonService),
		Semesters:    appControllers.NewReferenceController(semesterService),
		Students:     appControllers.NewStudentController(studentService, deps.FileStorage, cfg.Server.BaseURL),
		Marks:        appControllers.NewMarkController(markService),
	}

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

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router, deps.Controllers)

	return router
}
