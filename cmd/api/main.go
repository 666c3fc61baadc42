package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/cinesine/cinesine-backend/internal/config"
	"github.com/cinesine/cinesine-backend/internal/handler"
	"github.com/cinesine/cinesine-backend/internal/middleware"
	"github.com/cinesine/cinesine-backend/internal/repository"
	"github.com/cinesine/cinesine-backend/internal/service"
	"github.com/cinesine/cinesine-backend/pkg/database"
	"github.com/cinesine/cinesine-backend/pkg/email"
	"github.com/cinesine/cinesine-backend/pkg/logger"
	"github.com/cinesine/cinesine-backend/pkg/utils"
)

func main() {
	// .env is optional outside local development
	_ = godotenv.Load()

	cfg := config.Load()

	logg, err := logger.New(cfg.IsDevelopment())
	if err != nil {
		log.Fatal("failed to initialize logger:", err)
	}
	defer logg.Sync()

	mgr := database.NewManager(cfg.MongoURI, cfg.MongoDB, logg)
	if !cfg.Serverless {
		// Long-lived server: connect up front and fail fast. In serverless
		// mode the first request connects instead, and a warm process keeps
		// reusing the cached connection.
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		if _, err := mgr.Get(ctx); err != nil {
			cancel()
			logg.Fatalw("database connection failed at startup", "error", err)
		}
		cancel()
	}
	defer mgr.Disconnect(context.Background())

	// Repositories
	storyRepo := repository.NewStoryRepository(mgr)
	filmRepo := repository.NewFilmRepository(mgr)
	preWeddingRepo := repository.NewPreWeddingRepository(mgr)
	photobookRepo := repository.NewPhotobookRepository(mgr)
	musicRepo := repository.NewMusicRepository(mgr)
	imageRepo := repository.NewImageRepository(mgr)
	socialLinkRepo := repository.NewSocialLinkRepository(mgr)
	contactRepo := repository.NewContactRepository(mgr)
	userRepo := repository.NewUserRepository(mgr)

	// Email service
	notifier := email.NewResendNotifier(cfg.Email, logg)

	// Services
	contactService := service.NewContactService(contactRepo, notifier, logg)
	userService := service.NewUserService(userRepo)
	seedService := service.NewSeedService(mgr, logg)

	validator := utils.NewValidator()

	// Handlers
	storyHandler := handler.NewStoryHandler(storyRepo, validator)
	filmHandler := handler.NewFilmHandler(filmRepo, validator)
	preWeddingHandler := handler.NewPreWeddingHandler(preWeddingRepo, validator)
	photobookHandler := handler.NewPhotobookHandler(photobookRepo, validator)
	musicHandler := handler.NewMusicHandler(musicRepo, validator)
	imageHandler := handler.NewImageHandler(imageRepo, validator)
	socialLinkHandler := handler.NewSocialLinkHandler(socialLinkRepo, validator)
	contactHandler := handler.NewContactHandler(contactService, validator)
	userHandler := handler.NewUserHandler(userService)
	healthHandler := handler.NewHealthHandler(mgr)
	seedHandler := handler.NewSeedHandler(seedService)

	app := fiber.New(fiber.Config{
		ErrorHandler: handler.NewErrorHandler(cfg.IsDevelopment(), logg),
	})

	app.Use(middleware.NewCORS(cfg.CORS, logg))
	app.Use(fiberlogger.New())
	app.Use(middleware.EnsureDatabase(mgr, logg))

	app.Get("/", healthHandler.Liveness)
	app.Get("/health", healthHandler.Health)

	app.Get("/stories", storyHandler.List)
	app.Get("/stories/:id", storyHandler.Get)
	app.Post("/stories", storyHandler.Create)
	app.Put("/stories/:id", storyHandler.Update)
	app.Delete("/stories/:id", storyHandler.Delete)

	app.Get("/films", filmHandler.List)
	app.Post("/films", filmHandler.Create)
	app.Put("/films/:id", filmHandler.Update)
	app.Delete("/films/:id", filmHandler.Delete)

	app.Get("/pre-weddings", preWeddingHandler.List)
	app.Get("/pre-weddings/:id", preWeddingHandler.Get)
	app.Post("/pre-weddings", preWeddingHandler.Create)
	app.Put("/pre-weddings/:id", preWeddingHandler.Update)
	app.Delete("/pre-weddings/:id", preWeddingHandler.Delete)

	app.Get("/photobooks", photobookHandler.List)
	app.Post("/photobooks", photobookHandler.Create)
	app.Put("/photobooks/:id", photobookHandler.Update)
	app.Delete("/photobooks/:id", photobookHandler.Delete)

	app.Get("/music", musicHandler.List)
	app.Post("/music", musicHandler.Create)

	app.Get("/images", imageHandler.List)
	app.Post("/images", imageHandler.Create)
	app.Delete("/images/:id", imageHandler.Delete)

	app.Get("/social-links", socialLinkHandler.List)
	app.Post("/social-links", socialLinkHandler.Create)
	app.Put("/social-links/:id", socialLinkHandler.Update)
	app.Delete("/social-links/:id", socialLinkHandler.Delete)

	app.Get("/contacts", contactHandler.List)
	app.Post("/contact", contactHandler.Submit)

	app.Get("/user", userHandler.Get)
	app.Put("/user", userHandler.Update)

	if cfg.IsDevelopment() {
		app.Get("/seed", seedHandler.Seed)
	}

	app.Use(handler.NotFoundHandler)

	logg.Infow("starting server", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logg.Fatalw("server stopped", "error", err)
	}
}
