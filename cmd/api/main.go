package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/wedsnap/wedsnap-backend/internal/config"
	"github.com/wedsnap/wedsnap-backend/internal/handler"
	"github.com/wedsnap/wedsnap-backend/internal/matcher"
	"github.com/wedsnap/wedsnap-backend/internal/middleware"
	"github.com/wedsnap/wedsnap-backend/internal/repository"
	"github.com/wedsnap/wedsnap-backend/internal/service"
	"github.com/wedsnap/wedsnap-backend/pkg/database"
	"github.com/wedsnap/wedsnap-backend/pkg/logger"
	"github.com/wedsnap/wedsnap-backend/pkg/storage"
	"github.com/wedsnap/wedsnap-backend/pkg/utils"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	zapLogger, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer zapLogger.Sync()

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		zapLogger.Fatal("database init failed", zap.Error(err))
	}

	var store storage.PhotoStore
	switch cfg.StorageDriver {
	case "s3":
		store, err = storage.NewS3Storage(context.Background(), storage.S3Config{
			Endpoint:        cfg.S3.Endpoint,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			Bucket:          cfg.S3.Bucket,
			Region:          cfg.S3.Region,
		})
	default:
		store, err = storage.NewLocalStorage(cfg.UploadDir)
	}
	if err != nil {
		zapLogger.Fatal("storage init failed", zap.Error(err))
	}

	// Repositories
	adminRepo := repository.NewAdminRepository(db)
	eventRepo := repository.NewEventRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	searchRepo := repository.NewGuestSearchRepository(db)

	// Services
	jwtSecret := []byte(cfg.JWTSecret)
	authService := service.NewAuthService(adminRepo, jwtSecret, zapLogger)
	eventService := service.NewEventService(eventRepo, zapLogger)
	photoService := service.NewPhotoService(photoRepo, eventRepo, store, cfg.MaxFileSize, cfg.MaxBatchFiles, zapLogger)
	searchService := service.NewSearchService(eventRepo, searchRepo, matcher.Noop{}, zapLogger)

	// Handlers
	validator := utils.NewValidator()
	authHandler := handler.NewAuthHandler(authService, validator)
	eventHandler := handler.NewEventHandler(eventService, validator)
	photoHandler := handler.NewPhotoHandler(photoService)
	searchHandler := handler.NewSearchHandler(searchService)
	healthHandler := handler.NewHealthHandler(db)

	app := fiber.New(fiber.Config{
		// Big enough for a full photo batch plus multipart overhead.
		BodyLimit: (cfg.MaxBatchFiles + 1) * int(cfg.MaxFileSize),
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST",
	}))
	app.Use(fiberlogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api := app.Group("/api")

	api.Get("/health", healthHandler.Check)

	// Public routes
	api.Post("/admin/login", authHandler.Login)
	api.Get("/events", eventHandler.ListEvents)
	api.Get("/events/:slug", eventHandler.GetEventBySlug)
	api.Post("/photos/upload/:eventId", photoHandler.UploadPhotos)
	api.Get("/photos/event/:eventId", photoHandler.GetEventPhotos)
	api.Post("/photos/search/:eventSlug", searchHandler.SearchPhotos)

	// Admin-only routes (public routes must be registered first)
	api.Use(middleware.AuthRequired(jwtSecret))
	api.Get("/admin/profile", authHandler.GetProfile)
	api.Post("/events", eventHandler.CreateEvent)

	zapLogger.Info("starting api", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}
