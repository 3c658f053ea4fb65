package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"video-gallery/internal/domain/entities"
)

func TestCompressionSavedPercent(t *testing.T) {
	tests := []struct {
		name           string
		originalSize   int64
		compressedSize int64
		wantPercent    int
		wantOK         bool
	}{
		{"typical saving", 1000, 250, 75, true},
		{"no saving", 1000, 1000, 0, true},
		{"compressed larger", 1000, 1500, -50, true},
		{"rounds to nearest", 3000, 1000, 67, true},
		{"zero original", 0, 500, 0, false},
		{"negative original", -10, 500, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			percent, ok := CompressionSavedPercent(tt.originalSize, tt.compressedSize)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantPercent, percent)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{65, "1:05"},
		{125, "2:05"},
		{59.4, "0:59"},
		{59.6, "1:00"}, // rounding the remainder carries into minutes
		{119.7, "2:00"},
		{3600, "60:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.seconds), "seconds=%v", tt.seconds)
	}
}

func TestPresentVideo(t *testing.T) {
	gateway := &fakeGateway{configured: true}
	video := &entities.Video{
		Title:          "Demo",
		PublicID:       "abc123",
		OriginalSize:   1000,
		CompressedSize: 250,
		Duration:       125,
	}

	presented := PresentVideo(video, gateway)

	assert.Equal(t, "abc123", presented.PublicID)
	assert.Equal(t, "2:05", presented.DurationLabel)
	require.NotNil(t, presented.SavedPercent)
	assert.Equal(t, 75, *presented.SavedPercent)
	assert.NotEmpty(t, presented.URL)
	assert.NotEmpty(t, presented.ThumbnailURL)
	assert.NotEmpty(t, presented.PreviewURL)
	assert.NotEmpty(t, presented.DownloadURL)
}

func TestPresentVideoUnknownOriginalSize(t *testing.T) {
	gateway := &fakeGateway{configured: true}
	video := &entities.Video{
		Title:          "Demo",
		PublicID:       "abc123",
		OriginalSize:   0,
		CompressedSize: 250,
	}

	presented := PresentVideo(video, gateway)
	assert.Nil(t, presented.SavedPercent)
}
