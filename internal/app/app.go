package app

import (
	"fmt"

	"greenroots_backend/internal/config"
	"greenroots_backend/internal/email"
	"greenroots_backend/internal/handlers"
	"greenroots_backend/internal/logger"
	"greenroots_backend/internal/middleware"
	"greenroots_backend/internal/models"
	"greenroots_backend/internal/routes"
	"greenroots_backend/internal/services"
	"greenroots_backend/internal/storage"

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

	if err := gormDB.AutoMigrate(&models.Project{}, &models.News{}, &models.GalleryItem{}); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB, newMailSender(cfg))

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full HTTP stack on top of an already open database
// connection. Tests call it directly with their own db and mail sender.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, sender email.Sender) *gin.Engine {
	st, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "path", cfg.Storage.BasePath)

	serviceContainer := services.NewServiceContainer(gormDB, st, sender, services.UploadConfig{
		MaxFileSize:  cfg.Upload.MaxSize,
		MaxFiles:     cfg.Upload.MaxImages,
		NamingPolicy: services.NamingPolicy(cfg.Upload.NamingPolicy),
	})

	appHandlers := handlers.NewAppHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers, cfg.Storage.BasePath)

	return ginRouter
}

// newMailSender returns the SMTP relay, or a logging mock when no SMTP host
// is configured so local development works without a mail account.
func newMailSender(cfg *config.Config) email.Sender {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP host not configured, contact messages will only be logged")
		return &MockEmailSender{}
	}

	return email.NewSMTPSender(email.Config{
		SMTPHost: cfg.Email.SMTPHost,
		SMTPPort: cfg.Email.SMTPPort,
		Username: cfg.Email.SMTPUsername,
		Password: cfg.Email.SMTPPassword,
		FromName: cfg.Email.FromName,
		Inbox:    cfg.Email.ContactInbox,
	})
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
