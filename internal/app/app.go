package app

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"craftlink_backend/database"
	"craftlink_backend/internal/auth"
	"craftlink_backend/internal/config"
	"craftlink_backend/internal/email"
	"craftlink_backend/internal/handlers"
	"craftlink_backend/internal/logger"
	"craftlink_backend/internal/middleware"
	"craftlink_backend/internal/models"
	"craftlink_backend/internal/repositories"
	"craftlink_backend/internal/routes"
	"craftlink_backend/internal/services"
	"craftlink_backend/internal/validator"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}

	// Отдельное подключение через lib/pq: репозитории на database/sql
	// различают нарушение уникального индекса по *pq.Error.
	sqlDB, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to open database connection", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("AutoMigrate failed", "error", err)
	}
	logger.Info("AutoMigrate completed")

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB, sqlDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB, sqlDB *sql.DB) *gin.Engine {
	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Hour)

	serviceContainer := initializeServices(cfg, gormDB, sqlDB, tokens)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers, tokens)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, sqlDB *sql.DB, tokens *auth.TokenManager) *services.ServiceContainer {
	var mailer email.Sender
	if cfg.Email.Enabled {
		mailer = email.NewSMTPSender(cfg)
	} else {
		logger.Warn("Email sending is disabled in config")
		mailer = email.NewNoopSender()
	}

	userRepo := repositories.NewUserRepository(sqlDB)
	profileRepo := repositories.NewProfileRepository(sqlDB)
	jobRepo := repositories.NewJobRepository(sqlDB)
	applicationRepo := repositories.NewApplicationRepository(sqlDB)
	verificationRepo := repositories.NewVerificationRepository(sqlDB)
	messageRepo := repositories.NewMessageRepository(sqlDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)

	notificationService := services.NewNotificationService(notificationRepo)
	authService := services.NewAuthService(userRepo, tokens)
	userService := services.NewUserService(userRepo)
	profileService := services.NewProfileService(profileRepo)
	jobService := services.NewJobService(jobRepo, profileRepo)
	applicationService := services.NewApplicationService(applicationRepo, jobRepo, profileRepo, notificationService)
	verificationService := services.NewVerificationService(
		verificationRepo, userRepo, notificationService, mailer,
		cfg.Verification.RequireRejectComments,
	)
	messageService := services.NewMessageService(messageRepo, userRepo, notificationService)

	return &services.ServiceContainer{
		AuthService:         authService,
		UserService:         userService,
		ProfileService:      profileService,
		JobService:          jobService,
		ApplicationService:  applicationService,
		VerificationService: verificationService,
		NotificationService: notificationService,
		MessageService:      messageService,
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, services.AuthService),
		UserHandler:         handlers.NewUserHandler(baseHandler, services.UserService),
		ProfileHandler:      handlers.NewProfileHandler(baseHandler, services.ProfileService),
		JobHandler:          handlers.NewJobHandler(baseHandler, services.JobService),
		ApplicationHandler:  handlers.NewApplicationHandler(baseHandler, services.ApplicationService),
		VerificationHandler: handlers.NewVerificationHandler(baseHandler, services.VerificationService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, services.NotificationService),
		MessageHandler:      handlers.NewMessageHandler(baseHandler, services.MessageService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	return router
}

// seedFirstAdmin создает первого администратора, если его еще нет.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.Admin.Email
	adminPassword := cfg.Admin.Password

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("Admin email or password is not set. Skipping admin seeding.")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", adminEmail).First(&existing)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found. Creating first admin...", "email", adminEmail)

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:           adminEmail,
		PasswordHash:    hashedPassword,
		FirstName:       "Platform",
		LastName:        "Admin",
		Role:            models.UserRoleAdmin,
		Status:          models.UserStatusActive,
		EmailVerified:   true,
		ProfileVerified: true,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", adminEmail)
	return nil
}
