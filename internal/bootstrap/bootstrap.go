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
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/edaguler/scholarhub/internal/app/controllers"
	appMigrations "github.com/edaguler/scholarhub/internal/app/migrations"
	appRepos "github.com/edaguler/scholarhub/internal/app/repositories"
	appRoutes "github.com/edaguler/scholarhub/internal/app/routes"
	appServices "github.com/edaguler/scholarhub/internal/app/services"
	"github.com/edaguler/scholarhub/internal/config"
	"github.com/edaguler/scholarhub/internal/db"
	appMiddleware "github.com/edaguler/scholarhub/internal/middleware"
	pkgAuth "github.com/edaguler/scholarhub/internal/pkg/auth"
	"github.com/edaguler/scholarhub/internal/pkg/logger"
	"github.com/edaguler/scholarhub/internal/pkg/metrics"
	"github.com/edaguler/scholarhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService           appServices.AuthService
	OpportunityService    appServices.OpportunityService
	ApplicationService    appServices.ApplicationService
	ProfileService        appServices.ProfileService
	StatService           appServices.StatService
	ContactService        appServices.ContactService
	AuthController        *appControllers.AuthController
	OpportunityController *appControllers.OpportunityController
	ApplicationController *appControllers.ApplicationController
	ProfileController     *appControllers.ProfileController
	StatController        *appControllers.StatController
	ContactController     *appControllers.ContactController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	Repos                 *appRepos.Repositories
	JWTService            *pkgAuth.JWTService
	Logger                zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// A .env file next to the binary is read first so local runs can keep
// secrets out of the config file.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("Could not read .env file")
	}

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
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
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
		dbPool.Close()
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

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// A failed seed should not block startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	accessTokenExp, err := time.ParseDuration(cfg.JWT.AccessTokenExpiration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access token expiration: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: accessTokenExp,
		TokenIssuer:    cfg.JWT.Issuer,
	})

	hasher := pkgAuth.NewBcryptHasher()

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, hasher, deps.JWTService, lgr)
	deps.OpportunityService = appServices.NewOpportunityService(deps.Repos.OpportunityRepository, cfg)
	deps.ApplicationService = appServices.NewApplicationService(
		deps.Repos.ApplicationRepository,
		deps.Repos.OpportunityRepository,
		deps.Repos.TeacherProfileRepository,
		lgr,
	)
	deps.ProfileService = appServices.NewProfileService(deps.Repos.StudentProfileRepository, deps.Repos.TeacherProfileRepository)
	deps.StatService = appServices.NewStatService(deps.Repos.StatRepository)
	deps.ContactService = appServices.NewContactService(deps.Repos.MessageRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.OpportunityController = appControllers.NewOpportunityController(deps.OpportunityService)
	deps.ApplicationController = appControllers.NewApplicationController(deps.ApplicationService)
	deps.ProfileController = appControllers.NewProfileController(deps.ProfileService)
	deps.StatController = appControllers.NewStatController(deps.StatService)
	deps.ContactController = appControllers.NewContactController(deps.ContactService)

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

	metrics.Register()
	router.Use(appMiddleware.Metrics())

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	router.Use(wrapCORS(corsHandler))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.OpportunityController,
		deps.ApplicationController,
		deps.ProfileController,
		deps.StatController,
		deps.ContactController,
		deps.AuthMiddleware,
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

// wrapCORS adapts the net/http CORS handler to a gin middleware
func wrapCORS(handler *cors.Cors) gin.HandlerFunc {
	return func(c *gin.Context) {
		handler.HandlerFunc(c.Writer, c.Request)
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
