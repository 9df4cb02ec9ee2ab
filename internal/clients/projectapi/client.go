// Package projectapi provides a typed HTTP client for the project catalog API.
package projectapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/louisbranch/distilling.works/internal/platform/timeouts"
)

const apiPrefix = "/api/v1"

// maxErrorBodyBytes bounds how much of an error response body is retained.
const maxErrorBodyBytes = 8 << 10

// Config holds construction inputs for a project API client.
type Config struct {
	// BaseURL is the scheme://host[:port] root of the project API.
	BaseURL string
	// HTTPClient overrides the default HTTP client when set.
	HTTPClient *http.Client
	// UserAgent overrides the default User-Agent header when set.
	UserAgent string
}

// Client calls the project catalog API over HTTP/JSON.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// New validates config and constructs a project API client.
func New(cfg Config) (*Client, error) {
	baseURL := strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("project api base url is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeouts.APIRequest}
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = "distilling-works-studio"
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
	}, nil
}

// envelope mirrors the API's uniform response shape.
type envelope struct {
	Status     string          `json:"status"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	TotalCount *int            `json:"total_count"`
}

// errorBody matches the API's error response shape.
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// doRequest performs one API call and decodes a success envelope into out.
func (c *Client) doRequest(ctx context.Context, method string, path string, body any, out *envelope) error {
	if c == nil {
		return errors.New("project api client is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, reqBody)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeAPIError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	message := ""
	var parsed errorBody
	if err := json.Unmarshal(raw, &parsed); err == nil {
		if strings.TrimSpace(parsed.Detail) != "" {
			message = strings.TrimSpace(parsed.Detail)
		} else if strings.TrimSpace(parsed.Message) != "" {
			message = strings.TrimSpace(parsed.Message)
		}
	}
	if message == "" {
		message = strings.TrimSpace(string(raw))
	}
	return &APIError{StatusCode: resp.StatusCode, Message: message}
}

// APIError carries the upstream HTTP status for a failed API call.
type APIError struct {
	StatusCode int
	Message    string
}

// Error renders the upstream status and message.
func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return fmt.Sprintf("project api error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("project api error (status %d): %s", e.StatusCode, e.Message)
}

// StatusCode extracts the upstream HTTP status from an API error, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsNotFound reports whether the error is an upstream 404.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}
