package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alan/docs-preview/cmd"
	"github.com/alan/docs-preview/internal/preview"
)

func TestFormatResult(t *testing.T) {
	tests := []struct {
		name         string
		result       *preview.Result
		wantContains []string
	}{
		{
			name: "created",
			result: &preview.Result{
				Action: cmd.ActionCreated, Branch: "feature/login", VersionID: "v2-feature-login",
				SpecID: "abc", PreviewURL: "https://preview.readme.io/v2-feature-login/reference",
			},
			wantContains: []string{"✅", "Successfully created", "v2-feature-login", "feature/login", "Spec: abc", "Preview: https://preview.readme.io/v2-feature-login/reference"},
		},
		{
			name:         "updated",
			result:       &preview.Result{Action: cmd.ActionUpdated, Branch: "main", VersionID: "v2-main"},
			wantContains: []string{"✅", "Successfully updated", "v2-main"},
		},
		{
			name:         "deleted",
			result:       &preview.Result{Action: cmd.ActionDeleted, VersionID: "v2-main"},
			wantContains: []string{"Removed preview version v2-main"},
		},
		{
			name:         "unchanged",
			result:       &preview.Result{Action: cmd.ActionUnchanged, VersionID: "v2-main"},
			wantContains: []string{"does not exist", "nothing to remove"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatResult(tt.result)
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("formatResult() = %q, want it to contain %q", got, want)
				}
			}
		})
	}
}

func TestDisplayResult(t *testing.T) {
	var buf bytes.Buffer
	DisplayResult(&buf, &preview.Result{Action: cmd.ActionUpdated, Branch: "main", VersionID: "v2-main"})

	if !strings.Contains(buf.String(), "v2-main") {
		t.Errorf("DisplayResult() wrote %q", buf.String())
	}
}
