package usecases

import (
	"fmt"
	"math"

	"video-gallery/internal/domain/dto"
	"video-gallery/internal/domain/entities"
	"video-gallery/internal/domain/mapper"
	"video-gallery/internal/domain/repositories"

	"github.com/dustin/go-humanize"
)

// CompressionSavedPercent returns round((1 - compressed/original) * 100).
// ok is false when the original size is 0 or negative, where the ratio is
// undefined.
func CompressionSavedPercent(originalSize, compressedSize int64) (percent int, ok bool) {
	if originalSize <= 0 {
		return 0, false
	}
	ratio := 1 - float64(compressedSize)/float64(originalSize)
	return int(math.Round(ratio * 100)), true
}

// FormatDuration renders seconds as "m:ss". The remainder is rounded, not
// truncated, and a rounded 60 carries into the minutes.
func FormatDuration(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	minutes := int(seconds / 60)
	remainder := int(math.Round(math.Mod(seconds, 60)))
	if remainder == 60 {
		minutes++
		remainder = 0
	}
	return fmt.Sprintf("%d:%02d", minutes, remainder)
}

func FormatSize(size int64) string {
	if size < 0 {
		size = 0
	}
	return humanize.Bytes(uint64(size))
}

// PresentVideo decorates a record with the values the gallery renders.
func PresentVideo(video *entities.Video, gateway repositories.MediaGateway) dto.VideoDTO {
	presented := mapper.VideoToDTO(video)
	presented.OriginalSizeLabel = FormatSize(video.OriginalSize)
	presented.CompressedSizeLabel = FormatSize(video.CompressedSize)
	presented.DurationLabel = FormatDuration(video.Duration)
	if percent, ok := CompressionSavedPercent(video.OriginalSize, video.CompressedSize); ok {
		presented.SavedPercent = &percent
	}
	presented.URL = gateway.VideoURL(video.PublicID)
	presented.ThumbnailURL = gateway.ThumbnailURL(video.PublicID)
	presented.PreviewURL = gateway.PreviewURL(video.PublicID)
	presented.DownloadURL = gateway.DownloadURL(video.PublicID, video.Title)
	return presented
}
