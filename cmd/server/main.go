package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "video-gallery/docs"

	"video-gallery/internal/delivery/http/routers"
	"video-gallery/internal/infrastructure/db"
	"video-gallery/internal/infrastructure/media"
	"video-gallery/internal/infrastructure/queue"
	infra_repo "video-gallery/internal/infrastructure/repositories"
	"video-gallery/internal/pkg/config"
	"video-gallery/internal/usecases"
	"video-gallery/pkg/constants"

	_ "video-gallery/migrations"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/swagger"
)

// @title        Video Gallery API
// @version      1.0
// @description  Video/image gallery backend over a cloud media transform service.
// @BasePath     /api/v1
func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using system environment variables")
	}
	cfg := config.LoadConfig()

	database, err := db.NewPostgresDB(cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}
	defer func() {
		if err := db.Close(database); err != nil {
			logrus.WithError(err).Error("database close failed")
		}
	}()

	switch os.Getenv("RUN_AUTO_MIGRATION") {
	case "true":
		sqlDB, err := database.DB()
		if err != nil {
			logrus.WithError(err).Fatal("could not get sql.DB for migrations")
		}
		goose.SetBaseFS(nil)
		if err := goose.Up(sqlDB, "."); err != nil {
			logrus.WithError(err).Fatal("failed to apply migrations")
		}
	case "gorm":
		// Dev convenience: schema sync without the migration history.
		if err := db.AutoMigrate(database); err != nil {
			logrus.WithError(err).Fatal("automigrate failed")
		}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
	})

	// Repositories & services
	gateway := media.NewClient(cfg.Cloudinary)
	videoRepo := infra_repo.NewVideoRepository(database)
	reconcileQueue := queue.NewRedisQueue(rdb)
	videoService := usecases.NewVideoService(videoRepo, gateway, reconcileQueue)
	reconcileService := usecases.NewReconcileService(videoRepo, gateway)

	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.Upload.BodyLimit),
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Routes
	routers.SetupMediaRoutes(app, videoService, gateway, cfg.Auth.JWTSecret)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": constants.StatusOK})
	})

	// Periodic sweep for pending deletes the request path could not finish.
	c := cron.New(cron.WithSeconds())
	c.AddFunc("0 */5 * * * *", func() {
		if err := reconcileService.SweepPendingDeletes(context.Background(), cfg.Reconcile.GracePeriod); err != nil {
			logrus.WithError(err).Error("pending delete sweep failed")
		}
	})
	c.Start()
	defer c.Stop()

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logrus.WithField("addr", addr).Info("server starting")

	// Graceful shutdown
	go func() {
		if err := app.Listen(addr); err != nil {
			logrus.WithError(err).Fatal("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("shutdown signal received")

	ctxShut, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctxShut); err != nil {
		logrus.WithError(err).Fatal("server shutdown failed")
	}
	logrus.Info("server stopped cleanly")
}
