package db

import (
	"fmt"

	"video-gallery/internal/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgresDB opens the metadata store. The handle is constructed once at
// startup and passed down explicitly; Close releases it on shutdown.
func NewPostgresDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("postgres connection failed: %w", err)
	}
	return database, nil
}

func Close(database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
