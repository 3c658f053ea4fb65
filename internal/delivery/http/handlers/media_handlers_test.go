package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"video-gallery/internal/delivery/http/routers"
	"video-gallery/internal/domain/dto"
	"video-gallery/internal/domain/repositories"
	infrarepo "video-gallery/internal/infrastructure/repositories"
	"video-gallery/internal/usecases"
)

const testJWTSecret = "test-secret"

type stubGateway struct {
	uploadCalls  int
	destroyCalls int
	uploadErr    error
}

func (g *stubGateway) UploadVideo(_ context.Context, _ io.Reader, _ string) (*repositories.UploadDescriptor, error) {
	g.uploadCalls++
	if g.uploadErr != nil {
		return nil, g.uploadErr
	}
	return &repositories.UploadDescriptor{PublicID: fmt.Sprintf("vid-%d", g.uploadCalls), Bytes: 400, Duration: 65}, nil
}

func (g *stubGateway) UploadImage(_ context.Context, _ io.Reader, _ string) (*repositories.UploadDescriptor, error) {
	g.uploadCalls++
	if g.uploadErr != nil {
		return nil, g.uploadErr
	}
	return &repositories.UploadDescriptor{PublicID: "img-1", URL: "https://cdn.example/img-1"}, nil
}

func (g *stubGateway) Destroy(_ context.Context, _, _ string) error {
	g.destroyCalls++
	return nil
}

func (g *stubGateway) IsConfigured() bool { return true }

func (g *stubGateway) VideoURL(publicID string) string     { return "https://cdn.example/v/" + publicID }
func (g *stubGateway) ThumbnailURL(publicID string) string { return "https://cdn.example/t/" + publicID }
func (g *stubGateway) PreviewURL(publicID string) string   { return "https://cdn.example/p/" + publicID }
func (g *stubGateway) DownloadURL(publicID, _ string) string {
	return "https://cdn.example/d/" + publicID
}
func (g *stubGateway) SocialImageURL(publicID string, width, height int) string {
	return fmt.Sprintf("https://cdn.example/s/%s/%dx%d", publicID, width, height)
}

func newTestApp(gateway *stubGateway) *fiber.App {
	repo := infrarepo.NewInMemoryVideoRepository()
	service := usecases.NewVideoService(repo, gateway, nil)

	app := fiber.New()
	routers.SetupMediaRoutes(app, service, gateway, testJWTSecret)
	return app
}

func mintToken(t *testing.T, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func multipartBody(t *testing.T, fields map[string]string, filename string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func uploadRequest(t *testing.T, token string, fields map[string]string, filename string) *http.Request {
	body, contentType := multipartBody(t, fields, filename)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/videos", body)
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestUploadVideoRequiresAuth(t *testing.T) {
	gateway := &stubGateway{}
	app := newTestApp(gateway)

	fields := map[string]string{"title": "T", "original_size": "1000"}

	// No token at all.
	resp, err := app.Test(uploadRequest(t, "", fields, "clip.mp4"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Token signed with the wrong secret.
	resp, err = app.Test(uploadRequest(t, mintToken(t, "wrong-secret"), fields, "clip.mp4"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// The gateway must never have been touched.
	assert.Zero(t, gateway.uploadCalls)
}

func TestUploadVideoSuccess(t *testing.T) {
	gateway := &stubGateway{}
	app := newTestApp(gateway)

	fields := map[string]string{"title": "My Clip", "description": "d", "original_size": "1000"}
	resp, err := app.Test(uploadRequest(t, mintToken(t, testJWTSecret), fields, "clip.mp4"))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed dto.UploadVideoResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	assert.True(t, parsed.Success)
	assert.Equal(t, "vid-1", parsed.Video.PublicID)
	assert.Equal(t, "1:05", parsed.Video.DurationLabel)
	require.NotNil(t, parsed.Video.SavedPercent)
	assert.Equal(t, 60, *parsed.Video.SavedPercent)
}

func TestUploadVideoCamelCaseSizeField(t *testing.T) {
	gateway := &stubGateway{}
	app := newTestApp(gateway)

	fields := map[string]string{"title": "T", "originalSize": "1000"}
	resp, err := app.Test(uploadRequest(t, mintToken(t, testJWTSecret), fields, "clip.mp4"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUploadVideoMissingFile(t *testing.T) {
	app := newTestApp(&stubGateway{})

	fields := map[string]string{"title": "T", "original_size": "1000"}
	resp, err := app.Test(uploadRequest(t, mintToken(t, testJWTSecret), fields, ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var parsed dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	assert.Equal(t, "file not found", parsed.Message)
}

func TestUploadVideoUpstreamFailureMapsTo502(t *testing.T) {
	gateway := &stubGateway{uploadErr: fmt.Errorf("connection reset")}
	app := newTestApp(gateway)

	fields := map[string]string{"title": "T", "original_size": "1000"}
	resp, err := app.Test(uploadRequest(t, mintToken(t, testJWTSecret), fields, "clip.mp4"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestListVideosIsPublic(t *testing.T) {
	gateway := &stubGateway{}
	app := newTestApp(gateway)

	// Seed two videos through the authenticated endpoint.
	for _, title := range []string{"First", "Second"} {
		fields := map[string]string{"title": title, "original_size": "1000"}
		resp, err := app.Test(uploadRequest(t, mintToken(t, testJWTSecret), fields, "clip.mp4"))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		time.Sleep(time.Millisecond)
	}

	// Listing needs no token.
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/videos", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var videos []dto.VideoDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&videos))
	require.Len(t, videos, 2)
	assert.Equal(t, "Second", videos[0].Title)
	assert.Equal(t, "First", videos[1].Title)
}

func TestDeleteVideoFlow(t *testing.T) {
	gateway := &stubGateway{}
	app := newTestApp(gateway)

	fields := map[string]string{"title": "T", "original_size": "1000"}
	resp, err := app.Test(uploadRequest(t, mintToken(t, testJWTSecret), fields, "clip.mp4"))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	payload := bytes.NewReader([]byte(`{"public_id":"vid-1"}`))
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/videos", payload)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+mintToken(t, testJWTSecret))

	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, gateway.destroyCalls)

	// The gallery is empty afterwards.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/videos", nil))
	require.NoError(t, err)
	var videos []dto.VideoDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&videos))
	assert.Empty(t, videos)
}

func TestDeleteVideoCamelCaseBody(t *testing.T) {
	gateway := &stubGateway{}
	app := newTestApp(gateway)

	fields := map[string]string{"title": "T", "original_size": "1000"}
	resp, err := app.Test(uploadRequest(t, mintToken(t, testJWTSecret), fields, "clip.mp4"))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	payload := bytes.NewReader([]byte(`{"publicId":"vid-1"}`))
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/videos", payload)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+mintToken(t, testJWTSecret))

	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDeleteVideoMissingID(t *testing.T) {
	app := newTestApp(&stubGateway{})

	payload := bytes.NewReader([]byte(`{}`))
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/videos", payload)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+mintToken(t, testJWTSecret))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadImage(t *testing.T) {
	app := newTestApp(&stubGateway{})

	body, contentType := multipartBody(t, nil, "pic.png")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/images", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, testJWTSecret))

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed dto.UploadImageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	assert.Equal(t, "img-1", parsed.PublicID)
	assert.Equal(t, "https://cdn.example/img-1", parsed.URL)
}

func TestSocialImageAllFormats(t *testing.T) {
	app := newTestApp(&stubGateway{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/images/img-1/social", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, testJWTSecret))

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed dto.SocialImageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	assert.Equal(t, "img-1", parsed.PublicID)
	require.Len(t, parsed.Formats, 5)

	byKey := map[string]dto.SocialImageDTO{}
	for _, f := range parsed.Formats {
		byKey[f.Format] = f
	}
	square := byKey["ig_square"]
	assert.Equal(t, 1080, square.Width)
	assert.Equal(t, 1080, square.Height)
	assert.Equal(t, "https://cdn.example/s/img-1/1080x1080", square.URL)
}

func TestSocialImageSingleFormat(t *testing.T) {
	app := newTestApp(&stubGateway{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/images/img-1/social?format=tw_header", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, testJWTSecret))

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed dto.SocialImageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	require.Len(t, parsed.Formats, 1)
	assert.Equal(t, 1500, parsed.Formats[0].Width)
	assert.Equal(t, 500, parsed.Formats[0].Height)
}

func TestSocialImageUnknownFormat(t *testing.T) {
	app := newTestApp(&stubGateway{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/images/img-1/social?format=myspace_banner", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, testJWTSecret))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
