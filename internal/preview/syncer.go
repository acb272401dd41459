package preview

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/alan/docs-preview/cmd"
	"github.com/alan/docs-preview/internal/docs"
	"github.com/alan/docs-preview/internal/openapi"
)

// ErrSpecNotFound is returned when an existing version has no spec with the expected title
var ErrSpecNotFound = errors.New("no API specification with the expected title")

// DocsAPI is the subset of the documentation platform the syncer drives
type DocsAPI interface {
	GetVersion(ctx context.Context, id string) (*docs.Response, error)
	CreateVersion(ctx context.Context, version docs.VersionRequest) (*docs.Response, error)
	DeleteVersion(ctx context.Context, id string) (*docs.Response, error)
	ListSpecs(ctx context.Context, version string) (*docs.Response, error)
	UploadSpec(ctx context.Context, version, filename string, content io.Reader) (*docs.Response, error)
	UpdateSpec(ctx context.Context, id, version, filename string, content io.Reader) (*docs.Response, error)
}

// Options controls how versions are named and created
type Options struct {
	VersionPrefix       string
	ParentVersion       string
	SpecTitle           string // overrides the document's info.title when set
	PreviewURL          string
	ScopeSpecsByVersion bool
	Beta                bool
	Hidden              bool
}

// OptionsFromConfig copies the relevant settings out of config
func OptionsFromConfig(config *cmd.Config) Options {
	return Options{
		VersionPrefix:       config.VersionPrefix,
		ParentVersion:       config.ParentVersion,
		SpecTitle:           config.SpecTitle,
		PreviewURL:          config.PreviewURL,
		ScopeSpecsByVersion: config.ScopeSpecsByVersion,
		Beta:                config.Beta,
		Hidden:              config.Hidden,
	}
}

// Result describes a completed sync or teardown
type Result struct {
	Action     cmd.Action
	Branch     string
	VersionID  string
	SpecID     string
	PreviewURL string
}

// Message is the human-readable summary posted to the pull request
func (r *Result) Message() string {
	switch r.Action {
	case cmd.ActionCreated, cmd.ActionUpdated:
		msg := fmt.Sprintf("Preview docs version `%s` %s for branch `%s`.", r.VersionID, r.Action.PastTense(), r.Branch)
		if r.PreviewURL != "" {
			msg += fmt.Sprintf("\n\nPreview: %s", r.PreviewURL)
		}
		return msg
	case cmd.ActionDeleted:
		return fmt.Sprintf("Preview docs version `%s` for branch `%s` was removed.", r.VersionID, r.Branch)
	default:
		return fmt.Sprintf("No preview docs version `%s` exists for branch `%s`; nothing to remove.", r.VersionID, r.Branch)
	}
}

// Syncer creates, updates and removes preview versions
type Syncer struct {
	api  DocsAPI
	opts Options
}

// NewSyncer creates a syncer over api
func NewSyncer(api DocsAPI, opts Options) *Syncer {
	return &Syncer{api: api, opts: opts}
}

// Sync creates the preview version for branch and uploads doc into it, or overwrites
// the spec of an existing version. A version created before a failed upload is left in place.
func (s *Syncer) Sync(ctx context.Context, branch string, doc *openapi.Document) (*Result, error) {
	versionID := ResolveVersionID(s.opts.VersionPrefix, branch)
	result := &Result{
		Branch:     branch,
		VersionID:  versionID,
		PreviewURL: PreviewURL(s.opts.PreviewURL, versionID),
	}

	resp, err := s.api.GetVersion(ctx, versionID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up version %s: %w", versionID, err)
	}

	switch {
	case resp.NotFound():
		slog.Info("Preview version not found, creating", "version", versionID, "branch", branch)
		specID, err := s.create(ctx, versionID, branch, doc)
		if err != nil {
			return nil, err
		}
		result.Action = cmd.ActionCreated
		result.SpecID = specID
	case resp.OK():
		slog.Info("Preview version exists, updating spec", "version", versionID, "branch", branch)
		specID, err := s.overwrite(ctx, versionID, doc)
		if err != nil {
			return nil, err
		}
		result.Action = cmd.ActionUpdated
		result.SpecID = specID
	default:
		return nil, docs.NewAPIError("version lookup", resp)
	}

	slog.Info("Preview version synced", "version", versionID, "action", result.Action, "spec_id", result.SpecID)
	return result, nil
}

// create adds the version and uploads the spec into it
func (s *Syncer) create(ctx context.Context, versionID, branch string, doc *openapi.Document) (string, error) {
	resp, err := s.api.CreateVersion(ctx, docs.VersionRequest{
		Version:  versionID,
		Codename: branch,
		From:     s.opts.ParentVersion,
		IsStable: false,
		IsBeta:   s.opts.Beta,
		IsHidden: s.opts.Hidden,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create version %s: %w", versionID, err)
	}
	if !resp.OK() {
		return "", docs.NewAPIError("version create", resp)
	}

	resp, err = s.api.UploadSpec(ctx, versionID, doc.Name, bytes.NewReader(doc.Content))
	if err != nil {
		return "", fmt.Errorf("failed to upload spec to version %s: %w", versionID, err)
	}
	if !resp.OK() {
		return "", docs.NewAPIError("spec upload", resp)
	}

	var spec docs.Spec
	if err := resp.JSON(&spec); err != nil {
		slog.Debug("Spec upload response had no id", "error", err)
	}
	return spec.ID, nil
}

// overwrite finds the spec by title within the version and replaces its content
func (s *Syncer) overwrite(ctx context.Context, versionID string, doc *openapi.Document) (string, error) {
	title := s.opts.SpecTitle
	if title == "" {
		title = doc.Title
	}
	if title == "" {
		return "", fmt.Errorf("%w: no spec title configured and %s has no info.title", ErrSpecNotFound, doc.Name)
	}

	scope := ""
	if s.opts.ScopeSpecsByVersion {
		scope = versionID
	}
	resp, err := s.api.ListSpecs(ctx, scope)
	if err != nil {
		return "", fmt.Errorf("failed to list specs: %w", err)
	}
	if !resp.OK() {
		return "", docs.NewAPIError("spec list", resp)
	}

	var specs []docs.Spec
	if err := resp.JSON(&specs); err != nil {
		return "", err
	}

	specID, ok := docs.FindSpecID(specs, title)
	if !ok {
		return "", fmt.Errorf("%w: %q in version %s, response: %s", ErrSpecNotFound, title, versionID, resp.Compact())
	}
	slog.Debug("Resolved spec id", "title", title, "spec_id", specID, "candidates", len(specs))

	resp, err = s.api.UpdateSpec(ctx, specID, versionID, doc.Name, bytes.NewReader(doc.Content))
	if err != nil {
		return "", fmt.Errorf("failed to update spec %s: %w", specID, err)
	}
	if !resp.OK() {
		return "", docs.NewAPIError("spec update", resp)
	}

	return specID, nil
}

// Teardown deletes the preview version for branch. A missing version is not an error.
func (s *Syncer) Teardown(ctx context.Context, branch string) (*Result, error) {
	versionID := ResolveVersionID(s.opts.VersionPrefix, branch)
	result := &Result{Branch: branch, VersionID: versionID}

	resp, err := s.api.GetVersion(ctx, versionID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up version %s: %w", versionID, err)
	}

	switch {
	case resp.NotFound():
		slog.Info("Preview version not found, nothing to remove", "version", versionID)
		result.Action = cmd.ActionUnchanged
		return result, nil
	case resp.OK():
	default:
		return nil, docs.NewAPIError("version lookup", resp)
	}

	resp, err = s.api.DeleteVersion(ctx, versionID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete version %s: %w", versionID, err)
	}
	if !resp.OK() {
		return nil, docs.NewAPIError("version delete", resp)
	}

	slog.Info("Preview version removed", "version", versionID)
	result.Action = cmd.ActionDeleted
	return result, nil
}
