package handlers

import (
	"video-gallery/internal/domain/dto"
	"video-gallery/internal/usecases"
	apperrors "video-gallery/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

type VideoHandler struct {
	videoService usecases.VideoService
}

func NewVideoHandler(videoService usecases.VideoService) *VideoHandler {
	return &VideoHandler{
		videoService: videoService,
	}
}

// UploadVideo
//
// @Summary      Upload Video
// @Description  Uploads a video to the media service and persists its metadata
// @Tags         Videos
// @Accept       multipart/form-data
// @Produce      json
// @Param        file           formData  file   true  "Video file"
// @Param        title          formData  string true  "Title"
// @Param        description    formData  string false "Description"
// @Param        original_size  formData  string true  "Client-measured size in bytes"
// @Success      200  {object}  dto.UploadVideoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /videos [post]
func (h *VideoHandler) UploadVideo(c *fiber.Ctx) error {
	req := &dto.UploadVideoRequestDTO{
		Title:        c.FormValue("title"),
		Description:  c.FormValue("description"),
		OriginalSize: c.FormValue("original_size"),
	}
	// The browser client sends camelCase field names.
	if req.OriginalSize == "" {
		req.OriginalSize = c.FormValue("originalSize")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperrors.HandleError(c, apperrors.ErrBadRequest("file not found"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apperrors.HandleError(c, apperrors.ErrBadRequest("file could not be opened"))
	}
	defer file.Close()

	video, err := h.videoService.UploadVideo(c.Context(), req, file, fileHeader.Filename)
	if err != nil {
		return apperrors.HandleError(c, err)
	}

	return c.JSON(dto.UploadVideoResponse{
		Success: true,
		Video:   *video,
	})
}

// ListVideos
//
// @Summary      List Videos
// @Description  Returns all videos, newest first, with derived gallery fields
// @Tags         Videos
// @Produce      json
// @Success      200  {array}   dto.VideoDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /videos [get]
func (h *VideoHandler) ListVideos(c *fiber.Ctx) error {
	videos, err := h.videoService.ListVideos(c.Context())
	if err != nil {
		return apperrors.HandleError(c, err)
	}
	return c.JSON(videos)
}

// DeleteVideo
//
// @Summary      Delete Video
// @Description  Deletes the remote asset and the local record (idempotent)
// @Tags         Videos
// @Accept       json
// @Produce      json
// @Param        request  body      dto.DeleteVideoRequestDTO true "Public ID of the video"
// @Success      200      {object}  dto.DeleteVideoResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /videos [delete]
func (h *VideoHandler) DeleteVideo(c *fiber.Ctx) error {
	var req dto.DeleteVideoRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return apperrors.HandleError(c, apperrors.ErrBadRequest("invalid request body"))
	}
	publicID := req.ResolvedPublicID()
	if publicID == "" {
		return apperrors.HandleError(c, apperrors.ErrBadRequest("public_id is required"))
	}

	if err := h.videoService.DeleteVideo(c.Context(), publicID); err != nil {
		return apperrors.HandleError(c, err)
	}

	return c.JSON(dto.DeleteVideoResponse{Success: true})
}
