// Package preview drives the preview version lifecycle on the documentation platform.
package preview

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^A-Za-z0-9]`)

// ResolveVersionID maps a branch name onto a URL-path-safe version id.
// Every character other than an ASCII letter or digit becomes a hyphen, in the prefix as well.
func ResolveVersionID(prefix, branch string) string {
	return nonAlphanumeric.ReplaceAllString(prefix+branch, "-")
}

// PreviewURL expands the {version} placeholder in template
func PreviewURL(template, versionID string) string {
	return strings.ReplaceAll(template, "{version}", versionID)
}
