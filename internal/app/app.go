package app

import (
	"fmt"
	"time"

	"signup_backend/database"
	"signup_backend/internal/auth"
	"signup_backend/internal/clock"
	"signup_backend/internal/config"
	"signup_backend/internal/email"
	"signup_backend/internal/handlers"
	"signup_backend/internal/logger"
	"signup_backend/internal/middleware"
	"signup_backend/internal/repositories"
	"signup_backend/internal/routes"
	"signup_backend/internal/services"
	"signup_backend/internal/validator"

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
	// TranslateError: нарушения unique constraint приходят как
	// gorm.ErrDuplicatedKey, на этом держится атомарная проверка email.
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("AutoMigrate failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	// --- Нотификатор ---
	var notifier email.Provider
	if cfg.Email.SMTPHost != "" {
		smtpProvider, err := email.NewSMTPProvider(email.Config{
			SMTPHost:     cfg.Email.SMTPHost,
			SMTPPort:     cfg.Email.SMTPPort,
			Username:     cfg.Email.SMTPUsername,
			Password:     cfg.Email.SMTPPassword,
			FromEmail:    cfg.Email.FromEmail,
			FromName:     cfg.Email.FromName,
			TemplatesDir: cfg.Email.TemplatesDir,
		})
		if err != nil {
			logger.Fatal("Failed to initialize SMTP provider", "error", err)
		}
		notifier = smtpProvider
	} else {
		logger.Warn("SMTP host not configured, confirmation links are only logged")
		notifier = &LogEmailProvider{}
	}

	// --- Репозитории ---
	accountRepo := repositories.NewAccountRepository(gormDB)
	tokenRepo := repositories.NewTokenRepository(gormDB)

	// --- Сервисы ---
	registrationService := services.NewRegistrationService(
		accountRepo,
		tokenRepo,
		auth.NewBcryptHasher(),
		notifier,
		clock.New(),
		cfg.Registration.ConfirmURL,
		time.Duration(cfg.Registration.TokenTTLMinutes)*time.Minute,
	)

	// --- Хэндлеры ---
	baseHandler := handlers.NewBaseHandler(validator.New())
	authHandler := handlers.NewAuthHandler(baseHandler, registrationService)

	// --- Gin ---
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(ginRouter, authHandler)

	return ginRouter
}
