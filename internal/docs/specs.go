package docs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
)

// VersionHeader scopes spec calls to one documentation version
const VersionHeader = "x-readme-version"

// Spec is an uploaded API definition as listed by the platform
type Spec struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
}

// ListSpecs lists API definitions. An empty version lists without the scoping header.
func (c *Client) ListSpecs(ctx context.Context, version string) (*Response, error) {
	return c.Call(ctx, http.MethodGet, "/api-specification", nil, versionHeaders(version))
}

// UploadSpec uploads a new API definition into version
func (c *Client) UploadSpec(ctx context.Context, version, filename string, content io.Reader) (*Response, error) {
	body, headers, err := specForm(version, filename, content)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, http.MethodPost, "/api-specification", body, headers)
}

// UpdateSpec overwrites the API definition with the given id
func (c *Client) UpdateSpec(ctx context.Context, id, version, filename string, content io.Reader) (*Response, error) {
	body, headers, err := specForm(version, filename, content)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, http.MethodPut, "/api-specification/"+url.PathEscape(id), body, headers)
}

// FindSpecID returns the id of the first spec titled title
func FindSpecID(specs []Spec, title string) (string, bool) {
	for _, spec := range specs {
		if spec.Title == title {
			return spec.ID, true
		}
	}
	return "", false
}

func versionHeaders(version string) http.Header {
	headers := http.Header{}
	if version != "" {
		headers.Set(VersionHeader, version)
	}
	return headers
}

// specForm encodes content as the multipart "spec" field
func specForm(version, filename string, content io.Reader) (io.Reader, http.Header, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("spec", filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create spec form field: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, nil, fmt.Errorf("failed to write spec content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, nil, fmt.Errorf("failed to finish spec form: %w", err)
	}

	headers := versionHeaders(version)
	headers.Set("Content-Type", writer.FormDataContentType())
	return &buf, headers, nil
}
