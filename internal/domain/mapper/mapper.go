package mapper

import (
	"video-gallery/internal/domain/dto"
	"video-gallery/internal/domain/entities"
)

func VideoToDTO(v *entities.Video) dto.VideoDTO {
	return dto.VideoDTO{
		ID:             v.ID.String(),
		Title:          v.Title,
		Description:    v.Description,
		PublicID:       v.PublicID,
		OriginalSize:   v.OriginalSize,
		CompressedSize: v.CompressedSize,
		Duration:       v.Duration,
		CreatedAt:      v.CreatedAt,
	}
}
