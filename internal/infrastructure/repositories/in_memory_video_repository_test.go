package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/gorm"

	"video-gallery/internal/domain/entities"
	"video-gallery/pkg/constants"
)

func TestCreateRejectsDuplicatePublicID(t *testing.T) {
	repo := NewInMemoryVideoRepository()
	require.NoError(t, repo.Create(&entities.Video{Title: "A", PublicID: "same-id"}))

	err := repo.Create(&entities.Video{Title: "B", PublicID: "same-id"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestListActiveNewestFirst(t *testing.T) {
	repo := NewInMemoryVideoRepository()
	base := time.Now().Add(-time.Hour)

	titles := []string{"T1", "T2", "T3"}
	for i, title := range titles {
		require.NoError(t, repo.Create(&entities.Video{
			Title:     title,
			PublicID:  title,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	videos, err := repo.ListActive()
	require.NoError(t, err)
	require.Len(t, videos, 3)
	assert.Equal(t, "T3", videos[0].Title)
	assert.Equal(t, "T2", videos[1].Title)
	assert.Equal(t, "T1", videos[2].Title)
}

func TestListActiveExcludesPendingDelete(t *testing.T) {
	repo := NewInMemoryVideoRepository()
	require.NoError(t, repo.Create(&entities.Video{Title: "Keep", PublicID: "keep"}))
	require.NoError(t, repo.Create(&entities.Video{Title: "Drop", PublicID: "drop"}))
	require.NoError(t, repo.MarkPendingDelete("drop"))

	videos, err := repo.ListActive()
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "keep", videos[0].PublicID)
}

func TestGetByPublicIDMissing(t *testing.T) {
	repo := NewInMemoryVideoRepository()
	_, err := repo.GetByPublicID("nope")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListPendingDeleteHonorsCutoff(t *testing.T) {
	repo := NewInMemoryVideoRepository()
	require.NoError(t, repo.Create(&entities.Video{
		Title:     "Old",
		PublicID:  "old",
		Status:    constants.VideoStatusPendingDelete,
		CreatedAt: time.Now().Add(-time.Hour),
	}))
	require.NoError(t, repo.Create(&entities.Video{
		Title:    "Fresh",
		PublicID: "fresh",
		Status:   constants.VideoStatusPendingDelete,
	}))

	pending, err := repo.ListPendingDelete(time.Now().Add(-time.Minute))
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "old", pending[0].PublicID)
}
