package db

import (
	"video-gallery/internal/domain/entities"

	"gorm.io/gorm"
)

func AutoMigrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&entities.Video{},
	)
}
