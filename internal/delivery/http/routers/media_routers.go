package routers

import (
	"video-gallery/internal/delivery/http/handlers"
	"video-gallery/internal/delivery/http/middleware"
	"video-gallery/internal/domain/repositories"
	"video-gallery/internal/usecases"

	"github.com/gofiber/fiber/v2"
)

// SetupMediaRoutes mounts the gallery API. The listing is the only public
// API route; everything else requires a session.
func SetupMediaRoutes(app *fiber.App, videoService usecases.VideoService, gateway repositories.MediaGateway, jwtSecret string) {
	videoHandler := handlers.NewVideoHandler(videoService)
	imageHandler := handlers.NewImageHandler(videoService, gateway)

	requireAuth := middleware.RequireAuth(jwtSecret)

	api := app.Group("/api/v1")
	api.Get("/videos", videoHandler.ListVideos)
	api.Post("/videos", requireAuth, videoHandler.UploadVideo)
	api.Delete("/videos", requireAuth, videoHandler.DeleteVideo)
	api.Post("/images", requireAuth, imageHandler.UploadImage)
	api.Get("/images/:publicId/social", requireAuth, imageHandler.SocialImage)
}
