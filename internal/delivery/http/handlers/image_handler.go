package handlers

import (
	"video-gallery/internal/domain/dto"
	"video-gallery/internal/domain/repositories"
	"video-gallery/internal/infrastructure/media"
	"video-gallery/internal/usecases"
	apperrors "video-gallery/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

type ImageHandler struct {
	videoService usecases.VideoService
	gateway      repositories.MediaGateway
}

func NewImageHandler(videoService usecases.VideoService, gateway repositories.MediaGateway) *ImageHandler {
	return &ImageHandler{
		videoService: videoService,
		gateway:      gateway,
	}
}

// UploadImage
//
// @Summary      Upload Image
// @Description  Uploads an image to the media service; no record is persisted
// @Tags         Images
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file true "Image file"
// @Success      200   {object}  dto.UploadImageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /images [post]
func (h *ImageHandler) UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperrors.HandleError(c, apperrors.ErrBadRequest("file not found"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apperrors.HandleError(c, apperrors.ErrBadRequest("file could not be opened"))
	}
	defer file.Close()

	result, err := h.videoService.UploadImage(c.Context(), file, fileHeader.Filename)
	if err != nil {
		return apperrors.HandleError(c, err)
	}

	return c.JSON(result)
}

// SocialImage
//
// @Summary      Social Image URLs
// @Description  Returns transformed delivery URLs for social sharing formats
// @Tags         Images
// @Produce      json
// @Param        publicId  path   string true  "Public ID of the image"
// @Param        format    query  string false "Format key (e.g. ig_square); all formats when omitted"
// @Success      200  {object}  dto.SocialImageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /images/{publicId}/social [get]
func (h *ImageHandler) SocialImage(c *fiber.Ctx) error {
	publicID := c.Params("publicId")
	if publicID == "" {
		return apperrors.HandleError(c, apperrors.ErrBadRequest("publicId is required"))
	}

	formats := media.SocialFormats
	if key := c.Query("format"); key != "" {
		format, ok := media.SocialFormatByKey(key)
		if !ok {
			return apperrors.HandleError(c, apperrors.ErrBadRequest("unknown social format: "+key))
		}
		formats = []media.SocialFormat{format}
	}

	response := dto.SocialImageResponse{PublicID: publicID}
	for _, format := range formats {
		response.Formats = append(response.Formats, dto.SocialImageDTO{
			Format: format.Key,
			Label:  format.Label,
			Width:  format.Width,
			Height: format.Height,
			URL:    h.gateway.SocialImageURL(publicID, format.Width, format.Height),
		})
	}

	return c.JSON(response)
}
