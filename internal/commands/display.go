package commands

import (
	"fmt"
	"io"

	"github.com/alan/docs-preview/cmd"
	"github.com/alan/docs-preview/internal/preview"
)

// formatResult creates a standardized console summary for a run
func formatResult(result *preview.Result) string {
	switch result.Action {
	case cmd.ActionCreated, cmd.ActionUpdated:
		msg := fmt.Sprintf("✅ Successfully %s preview version %s for branch %s\n", result.Action.PastTense(), result.VersionID, result.Branch)
		if result.SpecID != "" {
			msg += fmt.Sprintf("   Spec: %s\n", result.SpecID)
		}
		if result.PreviewURL != "" {
			msg += fmt.Sprintf("   Preview: %s\n", result.PreviewURL)
		}
		return msg
	case cmd.ActionDeleted:
		return fmt.Sprintf("🗑️  Removed preview version %s\n", result.VersionID)
	default:
		return fmt.Sprintf("ℹ️  Preview version %s does not exist, nothing to remove\n", result.VersionID)
	}
}

// DisplayResult writes the console summary for result
func DisplayResult(w io.Writer, result *preview.Result) {
	_, _ = fmt.Fprint(w, formatResult(result))
}
