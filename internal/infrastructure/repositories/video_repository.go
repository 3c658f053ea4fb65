package repositories

import (
	"time"

	"video-gallery/internal/domain/entities"
	"video-gallery/internal/domain/repositories"
	"video-gallery/pkg/constants"

	"gorm.io/gorm"
)

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) repositories.VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(video *entities.Video) error {
	if video.Status == "" {
		video.Status = constants.VideoStatusActive
	}
	return r.db.Create(video).Error
}

func (r *videoRepository) ListActive() ([]entities.Video, error) {
	var videos []entities.Video
	err := r.db.
		Where("status = ?", constants.VideoStatusActive).
		Order("created_at DESC").
		Find(&videos).Error
	return videos, err
}

func (r *videoRepository) GetByPublicID(publicID string) (*entities.Video, error) {
	var video entities.Video
	if err := r.db.First(&video, "public_id = ?", publicID).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) MarkPendingDelete(publicID string) error {
	return r.db.Model(&entities.Video{}).
		Where("public_id = ?", publicID).
		Update("status", constants.VideoStatusPendingDelete).Error
}

func (r *videoRepository) DeleteByPublicID(publicID string) error {
	return r.db.Delete(&entities.Video{}, "public_id = ?", publicID).Error
}

func (r *videoRepository) ListPendingDelete(olderThan time.Time) ([]entities.Video, error) {
	var videos []entities.Video
	err := r.db.
		Where("status = ? AND updated_at < ?", constants.VideoStatusPendingDelete, olderThan).
		Find(&videos).Error
	return videos, err
}
