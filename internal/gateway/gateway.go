package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/utils"
)

// TokenSource supplies the bearer credential for the hotel backend. The
// process-wide session store satisfies it; tests inject stubs.
type TokenSource interface {
	Token() string
}

// Client issues authenticated CRUD calls against the hotel backend and
// normalizes its two response envelope shapes. It never retries; failures
// surface immediately to the caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

func New(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens: tokens,
	}
}

// List fetches the whole collection for the entity.
func (c *Client) List(ctx context.Context, e domain.Entity) ([]domain.Record, error) {
	body, err := c.do(ctx, http.MethodGet, e.Name, nil)
	if err != nil {
		return nil, err
	}
	return decodeList(body)
}

// Get fetches a single record by id.
func (c *Client) Get(ctx context.Context, e domain.Entity, id string) (domain.Record, error) {
	if id == "" {
		return nil, domain.ValidationError{Field: "id", Msg: "must not be empty"}
	}
	body, err := c.do(ctx, http.MethodGet, e.Name+"/"+id, nil)
	if err != nil {
		return nil, err
	}
	return decodeRecord(body)
}

// Create posts a new record. Entities with an alternate creation path (halls)
// are routed there.
func (c *Client) Create(ctx context.Context, e domain.Entity, payload map[string]any) (domain.Record, error) {
	path := e.Name
	if e.AltCreatePath != "" {
		path = e.AltCreatePath
	}
	body, err := c.do(ctx, http.MethodPost, path, payload)
	if err != nil {
		return nil, err
	}
	return decodeRecord(body)
}

// Update issues a PUT with a partial or full payload.
func (c *Client) Update(ctx context.Context, e domain.Entity, id string, payload map[string]any) (domain.Record, error) {
	if id == "" {
		return nil, domain.ValidationError{Field: "id", Msg: "must not be empty"}
	}
	body, err := c.do(ctx, http.MethodPut, e.Name+"/"+id, payload)
	if err != nil {
		return nil, err
	}
	return decodeRecord(body)
}

// Remove deletes a record. Deleting an already-deleted id surfaces NotFound.
func (c *Client) Remove(ctx context.Context, e domain.Entity, id string) error {
	if id == "" {
		return domain.ValidationError{Field: "id", Msg: "must not be empty"}
	}
	_, err := c.do(ctx, http.MethodDelete, e.Name+"/"+id, nil)
	return err
}

// do runs one request and returns the raw success body. The credential check
// happens before any network I/O.
func (c *Client) do(ctx context.Context, method, path string, payload map[string]any) ([]byte, error) {
	token := c.tokens.Token()
	if token == "" {
		return nil, domain.UnauthenticatedError{Msg: "no backend session credential"}
	}

	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, domain.ValidationError{Field: "payload", Msg: "not serializable", Err: err}
		}
		reqBody = bytes.NewReader(raw)
	}

	url := c.baseURL + "/" + path
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to build request", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			utils.LogEvent("", "gateway", "timeout", fmt.Sprintf("%s %s", method, path))
			return nil, domain.TimeoutError{Err: err}
		}
		return nil, domain.InternalError{Msg: "backend unreachable", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to read response", Err: err}
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.NotFoundError{Resource: path}
	default:
		utils.LogEvent("", "gateway", "remote_error",
			fmt.Sprintf("%s %s status=%d", method, path, resp.StatusCode))
		return nil, domain.RemoteError{Status: resp.StatusCode, Message: remoteMessage(body)}
	}
}

// remoteMessage pulls the backend's "message" field out of an error body;
// unparseable bodies fall back to a generic message.
func remoteMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Message == "" {
		return "request failed"
	}
	return envelope.Message
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
