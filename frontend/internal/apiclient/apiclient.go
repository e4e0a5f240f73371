package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/itchan-dev/mailadmin/shared/api"
	internal_errors "github.com/itchan-dev/mailadmin/shared/errors"
)

// DefaultBaseURL is used when neither New nor API_URL provide one.
const DefaultBaseURL = "http://localhost:3000"

// APIClient struct handles all communication with the backend API.
type APIClient struct {
	BaseURL    string
	HttpClient *http.Client
}

// New creates a client for the backend at baseURL.
// An empty baseURL falls back to the API_URL env var, then to DefaultBaseURL.
func New(baseURL string) *APIClient {
	if baseURL == "" {
		baseURL = os.Getenv("API_URL")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &APIClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HttpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// do is the single, unified helper for making API requests.
func (c *APIClient) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create API request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend unavailable: %w", err)
	}
	return resp, nil
}

// doJSON sends in (if not nil) as JSON and decodes a 2xx response into out (if not nil).
// Non-2xx responses are returned as *errors.ErrorWithStatusCode with the server message.
func (c *APIClient) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("cannot decode %s %s response: %w", method, path, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var payload api.ErrorResponse
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err := json.Unmarshal(raw, &payload); err != nil || payload.Error == "" {
		payload.Error = strings.TrimSpace(string(raw))
		if payload.Error == "" {
			payload.Error = http.StatusText(resp.StatusCode)
		}
	}
	return &internal_errors.ErrorWithStatusCode{
		Message:    payload.Error,
		StatusCode: resp.StatusCode,
		Fields:     payload.Fields,
	}
}

func (c *APIClient) Health(ctx context.Context) (api.HealthResponse, error) {
	var health api.HealthResponse
	err := c.doJSON(ctx, http.MethodGet, "/health", nil, &health)
	return health, err
}
