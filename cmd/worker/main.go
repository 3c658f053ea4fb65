package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"video-gallery/internal/infrastructure/db"
	"video-gallery/internal/infrastructure/media"
	"video-gallery/internal/infrastructure/queue"
	infra_repo "video-gallery/internal/infrastructure/repositories"
	"video-gallery/internal/pkg/config"
	"video-gallery/internal/usecases"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const workerCount = 3

// The reconcile worker drains the queue the server fills on partial
// failures: orphaned remote assets and half-finished two-phase deletes.
func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using system environment variables")
	}
	cfg := config.LoadConfig()

	database, err := db.NewPostgresDB(cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}
	defer db.Close(database)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
	})

	gateway := media.NewClient(cfg.Cloudinary)
	videoRepo := infra_repo.NewVideoRepository(database)
	reconcileService := usecases.NewReconcileService(videoRepo, gateway)
	reconcileQueue := queue.NewRedisQueue(rdb)

	pool := queue.NewWorkerPool(workerCount, reconcileService.ProcessJob)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logrus.Info("shutdown signal received")
		cancel()
	}()

	logrus.Info("reconcile worker started")

	// BRPOP loop feeding the pool
	for {
		select {
		case <-ctx.Done():
			pool.Shutdown()
			logrus.Info("reconcile worker stopped")
			return
		default:
		}

		job, err := reconcileQueue.Pop(ctx, 5*time.Second)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			logrus.WithError(err).Error("queue pop failed")
			time.Sleep(time.Second)
			continue
		}
		if job == nil {
			continue
		}
		pool.AddJob(*job)
	}
}
