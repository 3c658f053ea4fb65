package repositories

import (
	"time"

	"video-gallery/internal/domain/entities"
)

// VideoRepository persists gallery records. ListActive returns newest first;
// the ordering is a contract the gallery depends on.
type VideoRepository interface {
	Create(video *entities.Video) error
	ListActive() ([]entities.Video, error)
	GetByPublicID(publicID string) (*entities.Video, error)
	MarkPendingDelete(publicID string) error
	DeleteByPublicID(publicID string) error
	ListPendingDelete(olderThan time.Time) ([]entities.Video, error)
}
