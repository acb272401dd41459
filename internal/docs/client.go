// Package docs is a thin client for the documentation platform REST API.
package docs

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// ErrMissingCredential is returned by Call before any request is made when no credential is set
var ErrMissingCredential = errors.New("documentation API credential is not set")

// Client issues authenticated requests against a fixed base URL
type Client struct {
	baseURL    string
	credential string
	httpClient *http.Client
}

// Response is the raw outcome of a call. Status codes are left for callers to interpret.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the status code is 2xx
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// NotFound reports whether the status code is exactly 404
func (r *Response) NotFound() bool {
	return r.StatusCode == http.StatusNotFound
}

// JSON decodes the body into v
func (r *Response) JSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

// Compact returns the body on a single line. Non-JSON bodies are only trimmed.
func (r *Response) Compact() string {
	var compact bytes.Buffer
	if err := json.Compact(&compact, r.Body); err == nil {
		return compact.String()
	}
	return strings.TrimSpace(string(r.Body))
}

// NewClient creates a client for baseURL. A nil httpClient uses http.DefaultClient.
func NewClient(baseURL, credential string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		credential: credential,
		httpClient: httpClient,
	}
}

// Call performs one request. Caller headers replace the default accept and authorization headers.
func (c *Client) Call(ctx context.Context, method, path string, body io.Reader, headers http.Header) (*Response, error) {
	if c.credential == "" {
		return nil, ErrMissingCredential
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(c.credential)))
	for key, values := range headers {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	slog.Debug("Docs API: Request", "method", method, "path", path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s %s response: %w", method, path, err)
	}
	slog.Debug("Docs API: Response", "method", method, "path", path, "status", resp.StatusCode)

	return &Response{StatusCode: resp.StatusCode, Body: data}, nil
}

// APIError is a non-success response from the documentation platform
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s failed with status %d: %s", e.Op, e.StatusCode, e.Body)
}

// NewAPIError captures resp for op
func NewAPIError(op string, resp *Response) *APIError {
	return &APIError{Op: op, StatusCode: resp.StatusCode, Body: resp.Compact()}
}
