package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// ErrorCategory mirrors the user-facing failure taxonomy of the upload flow.
type ErrorCategory string

const (
	ErrCategoryTimeout         ErrorCategory = "timeout"
	ErrCategoryPayloadTooLarge ErrorCategory = "payload_too_large"
	ErrCategoryServerReported  ErrorCategory = "server_reported"
	ErrCategoryNoResponse      ErrorCategory = "no_response"
	ErrCategoryGeneric         ErrorCategory = "generic"
)

type UploadError struct {
	Category ErrorCategory
	Message  string
	Err      error
}

func (e *UploadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Category, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// categorizeTransportError maps a transport-level failure (no HTTP response
// at all) to a user-facing category.
func categorizeTransportError(err error) *UploadError {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &UploadError{
			Category: ErrCategoryTimeout,
			Message:  "upload timed out, try again with a better connection",
			Err:      err,
		}
	}
	return &UploadError{
		Category: ErrCategoryNoResponse,
		Message:  "no response from server, is it running?",
		Err:      err,
	}
}

// categorizeResponse maps a non-200 HTTP response to a user-facing category.
func categorizeResponse(statusCode int, body []byte) *UploadError {
	if statusCode == http.StatusRequestEntityTooLarge {
		return &UploadError{
			Category: ErrCategoryPayloadTooLarge,
			Message:  "file is too large for the server",
		}
	}

	var parsed struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && (parsed.Message != "" || parsed.Error != "") {
		message := parsed.Message
		if message == "" {
			message = parsed.Error
		}
		return &UploadError{
			Category: ErrCategoryServerReported,
			Message:  message,
		}
	}

	return &UploadError{
		Category: ErrCategoryGeneric,
		Message:  fmt.Sprintf("upload failed with HTTP %d", statusCode),
	}
}
