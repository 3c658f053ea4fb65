package helper

import (
	"path/filepath"
	"strings"
)

func GetMimeTypeFromExtension(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".mp4":
		return "video/mp4"
	case ".mov":
		return "video/quicktime"
	case ".avi":
		return "video/avi"
	case ".mkv":
		return "video/mkv"
	case ".webm":
		return "video/webm"
	default:
		return "application/octet-stream"
	}
}

func IsVideoMime(mimeType string) bool {
	return strings.HasPrefix(mimeType, "video/")
}

func IsImageMime(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/")
}

func IsVideoFile(filename string) bool {
	return IsVideoMime(GetMimeTypeFromExtension(filename))
}

func IsImageFile(filename string) bool {
	return IsImageMime(GetMimeTypeFromExtension(filename))
}
