package constants

const (
	StatusOK     = "ok"
	StatusFailed = "failed"

	// Video record lifecycle
	VideoStatusActive        = "active"
	VideoStatusPendingDelete = "pending_delete"

	// Remote asset resource types
	ResourceTypeVideo = "video"
	ResourceTypeImage = "image"
)
