package dto

import "time"

type UploadVideoRequestDTO struct {
	Title        string `json:"title" form:"title"`
	Description  string `json:"description" form:"description"`
	OriginalSize string `json:"original_size" form:"original_size"`
}

type VideoDTO struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	PublicID       string    `json:"public_id"`
	OriginalSize   int64     `json:"original_size"`
	CompressedSize int64     `json:"compressed_size"`
	Duration       float64   `json:"duration"`
	CreatedAt      time.Time `json:"created_at"`

	// Derived presentation values
	OriginalSizeLabel   string `json:"original_size_label"`
	CompressedSizeLabel string `json:"compressed_size_label"`
	DurationLabel       string `json:"duration_label"`
	SavedPercent        *int   `json:"saved_percent,omitempty"` // nil when original size is 0
	URL                 string `json:"url"`
	ThumbnailURL        string `json:"thumbnail_url"`
	PreviewURL          string `json:"preview_url"`
	DownloadURL         string `json:"download_url"`
}

type UploadVideoResponse struct {
	Success bool     `json:"success"`
	Video   VideoDTO `json:"video"`
}

type DeleteVideoRequestDTO struct {
	PublicID string `json:"public_id" form:"public_id"`
	// Browser clients send camelCase.
	PublicIDAlt string `json:"publicId,omitempty" form:"publicId"`
}

func (r *DeleteVideoRequestDTO) ResolvedPublicID() string {
	if r.PublicID != "" {
		return r.PublicID
	}
	return r.PublicIDAlt
}

type DeleteVideoResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
