package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"video-gallery/internal/domain/dto"
	"video-gallery/pkg/helper"
)

// State of the upload flow. Transitions:
// idle -> fileSelected -> (rejected | uploading) -> (succeeded | failed).
// A failed upload can be re-submitted without re-selecting the file.
type State string

const (
	StateIdle         State = "idle"
	StateFileSelected State = "fileSelected"
	StateRejected     State = "rejected"
	StateUploading    State = "uploading"
	StateSucceeded    State = "succeeded"
	StateFailed       State = "failed"
)

type Mode string

const (
	ModeVideo Mode = "video"
	ModeImage Mode = "image"
)

const (
	MaxVideoSize   = 70 * 1024 * 1024 // enforced before any transfer
	defaultTimeout = 5 * time.Minute
)

// Uploader drives the client-side upload flow against the gallery API.
type Uploader struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client

	// OnProgress receives the integer percentage 0-100 as bytes leave the
	// transport.
	OnProgress func(percent int)

	// MaxVideoSize overrides the default ceiling; for tests.
	MaxVideoSize int64

	state          State
	rejectedReason string

	filePath string
	fileSize int64
	mimeType string
	mode     Mode
}

func NewUploader(baseURL, token string) *Uploader {
	return &Uploader{
		BaseURL:      strings.TrimRight(baseURL, "/"),
		Token:        token,
		HTTPClient:   &http.Client{Timeout: defaultTimeout},
		MaxVideoSize: MaxVideoSize,
		state:        StateIdle,
	}
}

func (u *Uploader) State() State {
	return u.state
}

// RejectedReason is the user-facing message after a rejected selection.
func (u *Uploader) RejectedReason() string {
	return u.rejectedReason
}

// SelectFile validates the MIME category and (for videos) the size ceiling.
// A violation moves the flow to rejected without touching the network.
func (u *Uploader) SelectFile(path string, mode Mode) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}

	mimeType := helper.GetMimeTypeFromExtension(path)
	switch mode {
	case ModeVideo:
		if !helper.IsVideoMime(mimeType) {
			u.reject(fmt.Sprintf("not a video file: %s", filepath.Base(path)))
			return nil
		}
		if info.Size() > u.maxVideoSize() {
			u.reject("file size too large")
			return nil
		}
	case ModeImage:
		if !helper.IsImageMime(mimeType) {
			u.reject(fmt.Sprintf("not an image file: %s", filepath.Base(path)))
			return nil
		}
	default:
		return fmt.Errorf("unknown upload mode: %s", mode)
	}

	u.filePath = path
	u.fileSize = info.Size()
	u.mimeType = mimeType
	u.mode = mode
	u.state = StateFileSelected
	u.rejectedReason = ""
	return nil
}

// UploadVideo submits the selected file with its metadata. Title and
// description survive a failure so the caller can re-submit as-is.
func (u *Uploader) UploadVideo(title, description string) (*dto.VideoDTO, error) {
	if u.state != StateFileSelected && u.state != StateFailed {
		return nil, fmt.Errorf("no file selected (state %s)", u.state)
	}
	if u.mode != ModeVideo {
		return nil, fmt.Errorf("selected file is not a video")
	}

	fields := map[string]string{
		"title":         title,
		"description":   description,
		"original_size": fmt.Sprintf("%d", u.fileSize),
	}

	body, err := u.do("/videos", fields)
	if err != nil {
		return nil, err
	}

	var parsed dto.UploadVideoResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		u.state = StateFailed
		return nil, &UploadError{Category: ErrCategoryGeneric, Message: "could not decode server response", Err: err}
	}
	return &parsed.Video, nil
}

func (u *Uploader) UploadImage() (*dto.UploadImageResponse, error) {
	if u.state != StateFileSelected && u.state != StateFailed {
		return nil, fmt.Errorf("no file selected (state %s)", u.state)
	}
	if u.mode != ModeImage {
		return nil, fmt.Errorf("selected file is not an image")
	}

	body, err := u.do("/images", nil)
	if err != nil {
		return nil, err
	}

	var parsed dto.UploadImageResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		u.state = StateFailed
		return nil, &UploadError{Category: ErrCategoryGeneric, Message: "could not decode server response", Err: err}
	}
	return &parsed, nil
}

// do builds the multipart payload, streams it with progress, and categorizes
// failures. A failed transfer restarts from zero on the next call.
func (u *Uploader) do(endpoint string, fields map[string]string) ([]byte, error) {
	file, err := os.Open(u.filePath)
	if err != nil {
		return nil, fmt.Errorf("file could not be opened: %w", err)
	}
	defer file.Close()

	var payload bytes.Buffer
	writer := multipart.NewWriter(&payload)
	for key, value := range fields {
		writer.WriteField(key, value)
	}
	part, err := writer.CreateFormFile("file", filepath.Base(u.filePath))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	writer.Close()

	u.state = StateUploading
	u.reportProgress(0)

	reader := &progressReader{
		reader: bytes.NewReader(payload.Bytes()),
		total:  int64(payload.Len()),
		report: u.reportProgress,
	}

	req, err := http.NewRequest(http.MethodPost, u.BaseURL+endpoint, reader)
	if err != nil {
		u.state = StateFailed
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.ContentLength = int64(payload.Len())
	if u.Token != "" {
		req.Header.Set("Authorization", "Bearer "+u.Token)
	}

	resp, err := u.HTTPClient.Do(req)
	if err != nil {
		u.state = StateFailed
		return nil, categorizeTransportError(err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		u.state = StateFailed
		return nil, categorizeResponse(resp.StatusCode, respBody)
	}

	u.reportProgress(100)
	u.state = StateSucceeded
	return respBody, nil
}

func (u *Uploader) reject(reason string) {
	u.state = StateRejected
	u.rejectedReason = reason
}

func (u *Uploader) reportProgress(percent int) {
	if u.OnProgress != nil {
		u.OnProgress(percent)
	}
}

func (u *Uploader) maxVideoSize() int64 {
	if u.MaxVideoSize > 0 {
		return u.MaxVideoSize
	}
	return MaxVideoSize
}

// progressReader surfaces transport progress as an integer percentage.
type progressReader struct {
	reader *bytes.Reader
	total  int64
	read   int64
	report func(percent int)
}

func (r *progressReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	if n > 0 && r.total > 0 {
		r.read += int64(n)
		r.report(int(r.read * 100 / r.total))
	}
	return n, err
}
