package repositories

import (
	"context"
	"errors"
	"io"
)

// ErrAssetNotFound is returned by Destroy when the remote side reports the
// asset is already gone. Callers treat it as success so delete stays
// idempotent.
var ErrAssetNotFound = errors.New("remote asset not found")

// UploadDescriptor is the result the media transform service reports after
// processing. Duration is 0 when the service omits it.
type UploadDescriptor struct {
	PublicID string
	Bytes    int64
	Duration float64
	Format   string
	URL      string
}

// MediaGateway wraps the external media transform API: stream bytes in, get a
// descriptor back. Not retried at this layer.
type MediaGateway interface {
	UploadVideo(ctx context.Context, file io.Reader, filename string) (*UploadDescriptor, error)
	UploadImage(ctx context.Context, file io.Reader, filename string) (*UploadDescriptor, error)
	Destroy(ctx context.Context, publicID, resourceType string) error
	IsConfigured() bool

	VideoURL(publicID string) string
	ThumbnailURL(publicID string) string
	PreviewURL(publicID string) string
	DownloadURL(publicID, title string) string
	SocialImageURL(publicID string, width, height int) string
}
