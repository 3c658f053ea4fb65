package repositories

import (
	"sort"
	"sync"
	"time"

	"video-gallery/internal/domain/entities"
	"video-gallery/pkg/constants"

	"gorm.io/gorm"
)

// InMemoryVideoRepository mirrors the Postgres repository's contract,
// including the created_at DESC listing order. Used in tests and local runs
// without a database.
type InMemoryVideoRepository struct {
	mu   sync.RWMutex
	data map[string]*entities.Video
}

func NewInMemoryVideoRepository() *InMemoryVideoRepository {
	return &InMemoryVideoRepository{
		data: make(map[string]*entities.Video),
	}
}

func (r *InMemoryVideoRepository) Create(video *entities.Video) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.data[video.PublicID]; exists {
		return gorm.ErrDuplicatedKey
	}
	if video.Status == "" {
		video.Status = constants.VideoStatusActive
	}
	if video.CreatedAt.IsZero() {
		video.CreatedAt = time.Now()
	}
	video.UpdatedAt = video.CreatedAt
	stored := *video
	r.data[video.PublicID] = &stored
	return nil
}

func (r *InMemoryVideoRepository) ListActive() ([]entities.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	videos := make([]entities.Video, 0, len(r.data))
	for _, video := range r.data {
		if video.Status == constants.VideoStatusActive {
			videos = append(videos, *video)
		}
	}
	sort.Slice(videos, func(i, j int) bool {
		return videos[i].CreatedAt.After(videos[j].CreatedAt)
	})
	return videos, nil
}

func (r *InMemoryVideoRepository) GetByPublicID(publicID string) (*entities.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	video, exists := r.data[publicID]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}
	found := *video
	return &found, nil
}

func (r *InMemoryVideoRepository) MarkPendingDelete(publicID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if video, exists := r.data[publicID]; exists {
		video.Status = constants.VideoStatusPendingDelete
		video.UpdatedAt = time.Now()
	}
	return nil
}

func (r *InMemoryVideoRepository) DeleteByPublicID(publicID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, publicID)
	return nil
}

func (r *InMemoryVideoRepository) ListPendingDelete(olderThan time.Time) ([]entities.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	videos := make([]entities.Video, 0)
	for _, video := range r.data {
		if video.Status == constants.VideoStatusPendingDelete && video.UpdatedAt.Before(olderThan) {
			videos = append(videos, *video)
		}
	}
	return videos, nil
}
