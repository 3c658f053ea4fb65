package client

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"video-gallery/internal/domain/dto"
)

// API wraps the non-upload endpoints of the gallery server.
type API struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func NewAPI(baseURL, token string) *API {
	return &API{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Token:      token,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (a *API) ListVideos() ([]dto.VideoDTO, error) {
	body, err := a.do(http.MethodGet, "/videos", nil)
	if err != nil {
		return nil, err
	}
	var videos []dto.VideoDTO
	if err := json.Unmarshal(body, &videos); err != nil {
		return nil, &UploadError{Category: ErrCategoryGeneric, Message: "could not decode server response", Err: err}
	}
	return videos, nil
}

func (a *API) DeleteVideo(publicID string) error {
	payload, _ := json.Marshal(dto.DeleteVideoRequestDTO{PublicID: publicID})
	_, err := a.do(http.MethodDelete, "/videos", payload)
	return err
}

func (a *API) SocialImages(publicID string) (*dto.SocialImageResponse, error) {
	body, err := a.do(http.MethodGet, "/images/"+publicID+"/social", nil)
	if err != nil {
		return nil, err
	}
	var parsed dto.SocialImageResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &UploadError{Category: ErrCategoryGeneric, Message: "could not decode server response", Err: err}
	}
	return &parsed, nil
}

func (a *API) do(method, endpoint string, payload []byte) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, a.BaseURL+endpoint, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.Token != "" {
		req.Header.Set("Authorization", "Bearer "+a.Token)
	}

	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		return nil, categorizeTransportError(err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, categorizeResponse(resp.StatusCode, respBody)
	}
	return respBody, nil
}
