package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"backoffice/internal/domain"
)

// UploadResult is the portion of the media service response the back office
// cares about; the service is otherwise opaque.
type UploadResult struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Format    string `json:"format"`
}

// Uploader pushes image payloads to the third-party media endpoint. The
// endpoint takes an unsigned preset, not the backend session credential.
type Uploader struct {
	url        string
	preset     string
	httpClient *http.Client
}

func NewUploader(url, preset string, timeout time.Duration) *Uploader {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Uploader{
		url:    url,
		preset: preset,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Upload sends one file (raw bytes or a base64 data URI passed as bytes) as a
// multipart form and returns the hosted location.
func (u *Uploader) Upload(ctx context.Context, filename string, file []byte) (UploadResult, error) {
	if u.url == "" {
		return UploadResult{}, domain.InternalError{Msg: "upload endpoint not configured"}
	}
	if len(file) == 0 {
		return UploadResult{}, domain.ValidationError{Field: "file", Msg: "must not be empty"}
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return UploadResult{}, domain.InternalError{Msg: "failed to build upload form", Err: err}
	}
	if _, err := part.Write(file); err != nil {
		return UploadResult{}, domain.InternalError{Msg: "failed to build upload form", Err: err}
	}
	if u.preset != "" {
		if err := form.WriteField("upload_preset", u.preset); err != nil {
			return UploadResult{}, domain.InternalError{Msg: "failed to build upload form", Err: err}
		}
	}
	if err := form.Close(); err != nil {
		return UploadResult{}, domain.InternalError{Msg: "failed to build upload form", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.url, &buf)
	if err != nil {
		return UploadResult{}, domain.InternalError{Msg: "failed to build request", Err: err}
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return UploadResult{}, domain.TimeoutError{Err: err}
		}
		return UploadResult{}, domain.InternalError{Msg: "media service unreachable", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return UploadResult{}, domain.InternalError{Msg: "failed to read response", Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return UploadResult{}, domain.RemoteError{Status: resp.StatusCode, Message: remoteMessage(body)}
	}

	var result UploadResult
	if err := json.Unmarshal(body, &result); err != nil || result.SecureURL == "" {
		return UploadResult{}, domain.MalformedResponseError{Msg: "unexpected media service response"}
	}
	return result, nil
}
