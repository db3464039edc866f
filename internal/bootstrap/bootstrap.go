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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/mertc/coursehub/internal/app/auth"
	appControllers "github.com/mertc/coursehub/internal/app/controllers"
	appMigrations "github.com/mertc/coursehub/internal/app/migrations"
	appRepos "github.com/mertc/coursehub/internal/app/repositories"
	appRoutes "github.com/mertc/coursehub/internal/app/routes"
	appServices "github.com/mertc/coursehub/internal/app/services"
	"github.com/mertc/coursehub/internal/config"
	"github.com/mertc/coursehub/internal/db"
	appMiddleware "github.com/mertc/coursehub/internal/middleware"
	pkgAuth "github.com/mertc/coursehub/internal/pkg/auth"
	"github.com/mertc/coursehub/internal/pkg/email"
	"github.com/mertc/coursehub/internal/pkg/filestorage"
	"github.com/mertc/coursehub/internal/pkg/helpers"
	"github.com/mertc/coursehub/internal/pkg/logger"
	"github.com/mertc/coursehub/internal/pkg/payment"
	"github.com/mertc/coursehub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	Controllers    *appControllers.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	FileStorage    *filestorage.LocalStorage
	Logger         zerolog.Logger
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
	migrator := appMigrations.NewMigrator(dbPool, lgr)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Storage.Path, cfg.Storage.BaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	emailService := email.NewEmailService(email.SMTPConfig{
		Host:        cfg.SMTP.Host,
		Port:        cfg.SMTP.Port,
		Username:    cfg.SMTP.Username,
		Password:    cfg.SMTP.Password,
		FromName:    cfg.SMTP.FromName,
		FromEmail:   cfg.SMTP.FromEmail,
		FrontendURL: cfg.Frontend.URL,
	}, lgr)

	gateway := payment.NewGateway(payment.Config{
		ServerKey:  cfg.Payment.ServerKey,
		Production: cfg.Payment.Production,
	}, lgr)
	if gateway == nil {
		lgr.Warn().Msg("No payment server key configured, transactions will not create gateway checkouts")
	}

	deps.Services = appServices.NewServices(
		deps.Repos,
		deps.JWTService,
		emailService,
		gateway,
		deps.FileStorage,
		cfg.Registration.CheckMXRecord,
		lgr,
	)

	authzService := appAuth.NewAuthorizationService(deps.Repos.UserRepository, deps.Repos.CourseRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)
	deps.Controllers = appControllers.NewControllers(deps.Services, authzService)

	return deps, nil
}

// StartTokenCleanup periodically removes expired refresh and password reset
// tokens. Stops when ctx is cancelled.
func StartTokenCleanup(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n, err := repos.TokenRepository.DeleteExpiredTokens(ctx); err != nil {
					lgr.Error().Err(err).Msg("Failed to clean up expired refresh tokens")
				} else if n > 0 {
					lgr.Info().Int64("removed", n).Msg("Removed expired refresh tokens")
				}

				if n, err := repos.PasswordResetTokenRepository.DeleteExpiredTokens(ctx); err != nil {
					lgr.Error().Err(err).Msg("Failed to clean up expired password reset tokens")
				} else if n > 0 {
					lgr.Info().Int64("removed", n).Msg("Removed expired password reset tokens")
				}
			}
		}
	}()
}

// newCORSConfig allows the single configured frontend origin with every
// method and header. MaxAge stays zero so preflight responses are never
// cached, and credentials are never allowed.
func newCORSConfig(cfg *config.Config) cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.CORS.AllowedOrigin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"*"}
	corsConfig.MaxAge = 0
	return corsConfig
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

	router.Use(cors.New(newCORSConfig(cfg)))

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)
	appRoutes.SetupSwagger(router)

	// Serve rendered certificate documents
	router.Static(cfg.Storage.BaseURL, cfg.Storage.Path)

	return router
}
