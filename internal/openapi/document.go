// Package openapi loads the API definition file that gets synced.
package openapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Document is a spec file read from disk
type Document struct {
	Path    string
	Name    string
	Content []byte
	Title   string // info.title, empty if the file has none
}

type header struct {
	Info struct {
		Title string `json:"title" yaml:"title"`
	} `json:"info" yaml:"info"`
}

// Load reads path once. JSON and YAML files are both accepted.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Spec path is from config or command-line flag
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file: %w", err)
	}

	var h header
	if err := decodeHeader(data, &h); err != nil {
		return nil, fmt.Errorf("failed to parse spec file %s: %w", path, err)
	}

	return &Document{
		Path:    path,
		Name:    filepath.Base(path),
		Content: data,
		Title:   h.Info.Title,
	}, nil
}

// decodeHeader parses JSON strictly, since tab-indented JSON is not valid YAML
func decodeHeader(data []byte, h *header) error {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return json.Unmarshal(data, h)
	}
	return yaml.Unmarshal(data, h)
}
