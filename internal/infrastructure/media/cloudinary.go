package media

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
	"strings"
	"time"

	"video-gallery/internal/domain/repositories"
	"video-gallery/internal/pkg/config"
	"video-gallery/pkg/constants"
)

const (
	videoTransformation   = "q_auto,f_mp4"
	thumbnailTransform    = "w_400,h_225,c_fill,g_auto,q_auto"
	previewTransform      = "e_preview:duration_15:max_seg_9:min_seg_dur_1,w_400,h_225"
	fullVideoTransform    = "w_1920,h_1080"
	socialCropTransform   = "c_fill,g_auto"
	defaultRequestTimeout = 5 * time.Minute
)

// Client is a thin wrapper over the Cloudinary upload API: signed multipart
// upload in, descriptor out. No retries, no chunking.
type Client struct {
	cfg        config.CloudinaryConfig
	httpClient *http.Client

	// Overridable in tests.
	apiBase      string
	deliveryBase string
	now          func() time.Time
}

func NewClient(cfg config.CloudinaryConfig) *Client {
	return &Client{
		cfg:          cfg,
		httpClient:   &http.Client{Timeout: defaultRequestTimeout},
		apiBase:      "https://api.cloudinary.com/v1_1",
		deliveryBase: "https://res.cloudinary.com",
		now:          time.Now,
	}
}

func (c *Client) IsConfigured() bool {
	return c.cfg.Complete()
}

type uploadResponse struct {
	PublicID  string  `json:"public_id"`
	Bytes     int64   `json:"bytes"`
	Duration  float64 `json:"duration"`
	Format    string  `json:"format"`
	SecureURL string  `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

type destroyResponse struct {
	Result string `json:"result"`
}

// UploadVideo streams the file to the media service requesting a normalized
// mp4 with automatic quality selection.
func (c *Client) UploadVideo(ctx context.Context, file io.Reader, filename string) (*repositories.UploadDescriptor, error) {
	return c.upload(ctx, file, filename, constants.ResourceTypeVideo, map[string]string{
		"folder":         c.cfg.VideoFolder,
		"transformation": videoTransformation,
	})
}

func (c *Client) UploadImage(ctx context.Context, file io.Reader, filename string) (*repositories.UploadDescriptor, error) {
	return c.upload(ctx, file, filename, constants.ResourceTypeImage, map[string]string{
		"folder": c.cfg.ImageFolder,
	})
}

func (c *Client) upload(ctx context.Context, file io.Reader, filename, resourceType string, params map[string]string) (*repositories.UploadDescriptor, error) {
	params["timestamp"] = fmt.Sprintf("%d", c.now().Unix())

	var body strings.Builder
	writer := multipart.NewWriter(&body)
	for key, value := range params {
		if err := writer.WriteField(key, value); err != nil {
			return nil, err
		}
	}
	if err := writer.WriteField("api_key", c.cfg.APIKey); err != nil {
		return nil, err
	}
	if err := writer.WriteField("signature", c.sign(params)); err != nil {
		return nil, err
	}

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("file read failed: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/%s/%s/upload", c.apiBase, c.cfg.CloudName, resourceType)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(body.String()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("media service response decode failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error.Message != "" {
			return nil, fmt.Errorf("media service error: %s", parsed.Error.Message)
		}
		return nil, fmt.Errorf("media service returned HTTP %d", resp.StatusCode)
	}

	return &repositories.UploadDescriptor{
		PublicID: parsed.PublicID,
		Bytes:    parsed.Bytes,
		Duration: parsed.Duration,
		Format:   parsed.Format,
		URL:      parsed.SecureURL,
	}, nil
}

// Destroy removes the remote asset. An already-deleted asset comes back as
// ErrAssetNotFound so callers can stay idempotent.
func (c *Client) Destroy(ctx context.Context, publicID, resourceType string) error {
	params := map[string]string{
		"public_id": publicID,
		"timestamp": fmt.Sprintf("%d", c.now().Unix()),
	}

	form := make([]string, 0, len(params)+2)
	for key, value := range params {
		form = append(form, key+"="+value)
	}
	form = append(form, "api_key="+c.cfg.APIKey, "signature="+c.sign(params))

	endpoint := fmt.Sprintf("%s/%s/%s/destroy", c.apiBase, c.cfg.CloudName, resourceType)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(strings.Join(form, "&")))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var parsed destroyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return fmt.Errorf("media service response decode failed: %w", err)
	}

	switch parsed.Result {
	case "ok":
		return nil
	case "not found":
		return repositories.ErrAssetNotFound
	default:
		return fmt.Errorf("destroy failed: %s", parsed.Result)
	}
}

// sign builds the request signature: parameters sorted by key, joined with
// '&', secret appended, SHA-1 hex digest.
func (c *Client) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+params[key])
	}

	digest := sha1.Sum([]byte(strings.Join(pairs, "&") + c.cfg.APISecret))
	return hex.EncodeToString(digest[:])
}

func (c *Client) VideoURL(publicID string) string {
	return fmt.Sprintf("%s/%s/video/upload/%s/%s.mp4", c.deliveryBase, c.cfg.CloudName, fullVideoTransform, publicID)
}

func (c *Client) ThumbnailURL(publicID string) string {
	return fmt.Sprintf("%s/%s/video/upload/%s/%s.jpg", c.deliveryBase, c.cfg.CloudName, thumbnailTransform, publicID)
}

func (c *Client) PreviewURL(publicID string) string {
	return fmt.Sprintf("%s/%s/video/upload/%s/%s.mp4", c.deliveryBase, c.cfg.CloudName, previewTransform, publicID)
}

// DownloadURL appends the attachment flag so browsers save instead of play.
func (c *Client) DownloadURL(publicID, title string) string {
	return fmt.Sprintf("%s/%s/video/upload/fl_attachment:%s,%s/%s.mp4",
		c.deliveryBase, c.cfg.CloudName, sanitizeAttachmentName(title), fullVideoTransform, publicID)
}

func (c *Client) SocialImageURL(publicID string, width, height int) string {
	return fmt.Sprintf("%s/%s/image/upload/w_%d,h_%d,%s/%s",
		c.deliveryBase, c.cfg.CloudName, width, height, socialCropTransform, publicID)
}

func sanitizeAttachmentName(title string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, title)
	if sanitized == "" {
		return "video"
	}
	return sanitized
}
