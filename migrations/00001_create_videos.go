package migrations

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigration(upCreateVideos, downCreateVideos)
}

func upCreateVideos(tx *sql.Tx) error {
	createVideosTable := `
	CREATE TABLE videos (
		id UUID PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description TEXT,
		public_id VARCHAR(255) NOT NULL UNIQUE,
		original_size BIGINT NOT NULL,
		compressed_size BIGINT NOT NULL,
		duration DOUBLE PRECISION NOT NULL DEFAULT 0,
		status VARCHAR(20) NOT NULL DEFAULT 'active',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	`
	if _, err := tx.Exec(createVideosTable); err != nil {
		return fmt.Errorf("could not create videos table: %w", err)
	}

	// The listing always reads newest first; pending_delete rows are
	// filtered out and swept separately.
	indexes := []string{
		`CREATE INDEX idx_videos_created_at ON videos (created_at DESC);`,
		`CREATE INDEX idx_videos_status ON videos (status);`,
	}
	for _, index := range indexes {
		if _, err := tx.Exec(index); err != nil {
			return fmt.Errorf("could not create index: %w", err)
		}
	}

	return nil
}

func downCreateVideos(tx *sql.Tx) error {
	if _, err := tx.Exec(`DROP TABLE IF EXISTS videos;`); err != nil {
		return fmt.Errorf("could not drop videos table: %w", err)
	}
	return nil
}
