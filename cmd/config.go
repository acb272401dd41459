// Package cmd defines core data structures for docs-preview configuration and sync outcomes.
package cmd

import "time"

// Action represents what a sync or teardown did to the preview version
type Action string

const (
	// ActionCreated indicates the preview version was created and the spec uploaded
	ActionCreated Action = "created"
	// ActionUpdated indicates the preview version existed and its spec was overwritten
	ActionUpdated Action = "updated"
	// ActionDeleted indicates the preview version was removed
	ActionDeleted Action = "deleted"
	// ActionUnchanged indicates there was nothing to remove
	ActionUnchanged Action = "unchanged"
)

// ParseAction converts a string to Action
func ParseAction(s string) Action {
	switch s {
	case "created":
		return ActionCreated
	case "updated":
		return ActionUpdated
	case "deleted":
		return ActionDeleted
	default:
		return ActionUnchanged
	}
}

// PastTense returns the verb used in human-readable messages
func (a Action) PastTense() string {
	if a == ActionUnchanged {
		return "left unchanged"
	}
	return string(a)
}

// Config represents the structure of .docs-preview.yaml
type Config struct {
	BaseURL             string        `yaml:"base_url"`
	SpecFile            string        `yaml:"spec_file"`
	SpecTitle           string        `yaml:"spec_title,omitempty"` // defaults to info.title of the spec file
	VersionPrefix       string        `yaml:"version_prefix"`
	ParentVersion       string        `yaml:"parent_version"`
	PreviewURL          string        `yaml:"preview_url"` // {version} is replaced by the version id
	ScopeSpecsByVersion bool          `yaml:"scope_specs_by_version"`
	Beta                bool          `yaml:"beta"`
	Hidden              bool          `yaml:"hidden"`
	CommentOnFailure    bool          `yaml:"comment_on_failure"`
	Timeout             time.Duration `yaml:"timeout,omitempty"`
}
