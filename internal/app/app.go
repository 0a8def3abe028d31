package app

import (
	"fmt"

	"workzo_backend/database"
	"workzo_backend/internal/config"
	"workzo_backend/internal/email"
	"workzo_backend/internal/handlers"
	"workzo_backend/internal/logger"
	"workzo_backend/internal/middleware"
	"workzo_backend/internal/repositories"
	"workzo_backend/internal/routes"
	"workzo_backend/internal/services"
	"workzo_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full gin engine. Tests call it directly against
// their own DB handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := InitializeServices(cfg)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

// InitializeServices wires repositories into services. Repositories are
// stateless; the DB handle travels per request via DBMiddleware.
func InitializeServices(cfg *config.Config) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" {
		provider, err := email.NewSMTPProvider(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		if err != nil {
			logger.Fatal("Failed to initialize email provider", "error", err)
		}
		emailProvider = provider
	} else {
		logger.Warn("SMTP not configured, using mock email provider")
		emailProvider = email.NewMockProvider()
	}

	userRepo := repositories.NewUserRepository()
	jobRepo := repositories.NewJobRepository()
	applicationRepo := repositories.NewApplicationRepository()
	jobStatusRepo := repositories.NewJobStatusRepository()
	reviewRepo := repositories.NewReviewRepository()
	notificationRepo := repositories.NewNotificationRepository()

	notificationService := services.NewNotificationService(notificationRepo)
	authService := services.NewAuthService(userRepo, emailProvider)
	userService := services.NewUserService(userRepo)
	jobService := services.NewJobService(jobRepo)
	applicationService := services.NewApplicationService(applicationRepo, jobRepo, jobStatusRepo, userRepo, notificationService)
	reviewService := services.NewReviewService(reviewRepo, userRepo)
	jobStatusService := services.NewJobStatusService(jobStatusRepo, applicationRepo, userRepo, reviewService)

	return &services.ServiceContainer{
		AuthService:         authService,
		UserService:         userService,
		JobService:          jobService,
		ApplicationService:  applicationService,
		JobStatusService:    jobStatusService,
		ReviewService:       reviewService,
		NotificationService: notificationService,
		EmailProvider:       emailProvider,
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, services.AuthService),
		UserHandler:         handlers.NewUserHandler(baseHandler, services.UserService),
		JobHandler:          handlers.NewJobHandler(baseHandler, services.JobService),
		ApplicationHandler:  handlers.NewApplicationHandler(baseHandler, services.ApplicationService),
		JobStatusHandler:    handlers.NewJobStatusHandler(baseHandler, services.JobStatusService),
		ReviewHandler:       handlers.NewReviewHandler(baseHandler, services.ReviewService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, services.NotificationService),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
