// Package bootstrap wires configuration, storage, services and transport
// into a runnable application.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/rsharma/collegium/internal/app/controllers"
	appMigrations "github.com/rsharma/collegium/internal/app/migrations"
	appRepos "github.com/rsharma/collegium/internal/app/repositories"
	appRoutes "github.com/rsharma/collegium/internal/app/routes"
	appServices "github.com/rsharma/collegium/internal/app/services"
	"github.com/rsharma/collegium/internal/config"
	"github.com/rsharma/collegium/internal/db"
	appMiddleware "github.com/rsharma/collegium/internal/middleware"
	pkgAuth "github.com/rsharma/collegium/internal/pkg/auth"
	"github.com/rsharma/collegium/internal/pkg/logger"
	"github.com/rsharma/collegium/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	AuthService       *appServices.AuthService
	AccountService    *appServices.AccountService
	DepartmentService *appServices.DepartmentService
	SubjectService    *appServices.SubjectService
	TestService       *appServices.TestService
	MarksService      *appServices.MarksService
	AttendanceService *appServices.AttendanceService
	ContentService    *appServices.ContentService
	ReportService     *appServices.ReportService
	AdminController   *appControllers.AdminController
	FacultyController *appControllers.FacultyController
	StudentController *appControllers.StudentController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	RateLimiter       *appMiddleware.RateLimiter
	RedisClient       *redis.Client
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to Postgres, applies migrations and seeds the
// bootstrap admin.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(dbPool)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations applied")

	if err := seed.CreateBootstrapAdmin(ctx, dbPool, lgr); err != nil {
		// Startup continues; the deployment can still seed an admin by hand
		lgr.Error().Err(err).Msg("Failed to create bootstrap admin, proceeding anyway...")
	}

	return dbPool, nil
}

// SetupRedis connects to Redis when enabled; rate limiting is skipped
// otherwise.
func SetupRedis(cfg *config.Config, lgr zerolog.Logger) *redis.Client {
	if !cfg.Redis.Enabled {
		lgr.Info().Msg("Redis disabled, rate limiting inactive")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		lgr.Error().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis unreachable, rate limiting inactive")
		return nil
	}

	lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Redis connected")
	return client
}

// BuildDependencies initializes repositories, services and controllers
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExpiry: cfg.TokenExpiry(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.Admin, deps.Repos.Faculty, deps.Repos.Student, deps.JWTService, lgr)
	deps.AccountService = appServices.NewAccountService(
		deps.Repos.Admin, deps.Repos.Faculty, deps.Repos.Student, deps.Repos.Department, lgr)
	deps.DepartmentService = appServices.NewDepartmentService(deps.Repos.Department, lgr)
	deps.SubjectService = appServices.NewSubjectService(deps.Repos.Subject, deps.Repos.Department, lgr)
	deps.TestService = appServices.NewTestService(deps.Repos.Test, lgr)
	deps.MarksService = appServices.NewMarksService(
		deps.Repos.Marks, deps.Repos.Test, deps.Repos.Student, lgr)
	deps.AttendanceService = appServices.NewAttendanceService(
		deps.Repos.Attendance, deps.Repos.Subject, deps.Repos.Student, lgr)
	deps.ContentService = appServices.NewContentService(
		deps.Repos.Notice, deps.Repos.StudyMaterial, deps.Repos.Feedback, lgr)
	deps.ReportService = appServices.NewReportService(
		deps.Repos.Attendance, deps.Repos.Marks, deps.Repos.Subject,
		deps.Repos.Student, deps.Repos.Test, lgr)

	deps.AdminController = appControllers.NewAdminController(
		deps.AuthService, deps.AccountService, deps.DepartmentService,
		deps.SubjectService, deps.ContentService, lgr)
	deps.FacultyController = appControllers.NewFacultyController(
		deps.AuthService, deps.AccountService, deps.TestService, deps.MarksService,
		deps.AttendanceService, deps.ContentService, deps.ReportService, lgr)
	deps.StudentController = appControllers.NewStudentController(
		deps.AuthService, deps.AccountService, deps.SubjectService,
		deps.MarksService, deps.AttendanceService, deps.ContentService, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)
	deps.RedisClient = SetupRedis(cfg, lgr)
	deps.RateLimiter = appMiddleware.NewRateLimiter(deps.RedisClient)

	return deps, nil
}

// SetupRouter builds the gin engine with all routes attached
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.EqualFold(cfg.Server.Mode, "production") {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(lgr))

	appRoutes.SetupRouter(router,
		deps.AdminController, deps.FacultyController, deps.StudentController,
		deps.AuthMiddleware, deps.RateLimiter)

	return router
}

// requestLogger logs one line per request with latency and status
func requestLogger(lgr zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		lgr.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("clientIP", c.ClientIP()).
			Msg("Request handled")
	}
}
