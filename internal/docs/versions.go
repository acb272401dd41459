package docs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// VersionRequest is the body of a version create call
type VersionRequest struct {
	Version  string `json:"version"`
	Codename string `json:"codename"`
	From     string `json:"from"`
	IsStable bool   `json:"is_stable"`
	IsBeta   bool   `json:"is_beta"`
	IsHidden bool   `json:"is_hidden"`
}

// GetVersion looks up a version by id
func (c *Client) GetVersion(ctx context.Context, id string) (*Response, error) {
	return c.Call(ctx, http.MethodGet, "/version/"+url.PathEscape(id), nil, nil)
}

// CreateVersion creates a new version
func (c *Client) CreateVersion(ctx context.Context, version VersionRequest) (*Response, error) {
	data, err := json.Marshal(version)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal version: %w", err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	return c.Call(ctx, http.MethodPost, "/version", bytes.NewReader(data), headers)
}

// DeleteVersion removes a version by id
func (c *Client) DeleteVersion(ctx context.Context, id string) (*Response, error) {
	return c.Call(ctx, http.MethodDelete, "/version/"+url.PathEscape(id), nil, nil)
}
