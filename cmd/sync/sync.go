// Package synccmd implements the sync command that publishes the API spec to a preview version.
package synccmd

import (
	"log/slog"

	"github.com/alan/docs-preview/cmd"
	"github.com/alan/docs-preview/internal/commands"
	"github.com/alan/docs-preview/internal/openapi"
	"github.com/alan/docs-preview/internal/preview"
	"github.com/spf13/cobra"
)

// SyncCommand encapsulates the sync command with common functionality
type SyncCommand struct {
	commands.BaseCommand
	SpecFile string
}

// NewSyncCmd creates the sync command
func NewSyncCmd(configFile *string, loadConfig func(string) (*cmd.Config, error)) *cobra.Command {
	syncCmd := &SyncCommand{}

	cobraCmd := &cobra.Command{
		Use:   "sync [branch]",
		Short: "Create or update the preview docs version for a branch",
		Long: `Sync publishes the OpenAPI spec file to a preview version of the docs.

The version id is derived from the branch name. If the version does not exist
it is created from the parent version and the spec is uploaded into it;
otherwise the existing spec with the same title is overwritten. A comment with
the preview link is posted on the pull request.

The branch defaults to DOCS_PREVIEW_BRANCH, then the pull request head branch.

Examples:
  docs-preview sync                          # Sync the current pull request branch
  docs-preview sync feature/login            # Sync an explicit branch
  docs-preview sync --spec api/openapi.yaml  # Use a different spec file`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			syncCmd.ConfigFile = configFile
			syncCmd.LoadConfig = loadConfig
			syncCmd.Out = cobraCmd.OutOrStdout()
			if err := syncCmd.Init(); err != nil {
				return syncCmd.Fail("sync", err)
			}

			return syncCmd.Run(args)
		},
	}

	cobraCmd.Flags().StringVar(&syncCmd.SpecFile, "spec", "", "Path to the OpenAPI spec file (overrides spec_file)")
	cobraCmd.Flags().IntVar(&syncCmd.PRNumber, "pr", 0, "Pull request number to comment on (defaults to the triggering pull request)")
	cobraCmd.Flags().BoolVar(&syncCmd.NoComment, "no-comment", false, "Do not post a pull request comment")

	return cobraCmd
}

// Run executes the sync command and reports the outcome
func (sc *SyncCommand) Run(args []string) error {
	result, err := sc.sync(args)
	if err == nil {
		commands.DisplayResult(sc.Out, result)
	}
	return sc.Notifier.Notify(sc.Context, "sync", result, err)
}

func (sc *SyncCommand) sync(args []string) (*preview.Result, error) {
	branch, err := sc.ResolveBranch(args)
	if err != nil {
		return nil, err
	}

	specFile := sc.SpecFile
	if specFile == "" {
		specFile = sc.Config.SpecFile
	}
	doc, err := openapi.Load(specFile)
	if err != nil {
		return nil, err
	}
	slog.Info("Syncing API spec", "branch", branch, "spec", doc.Path, "title", doc.Title)

	syncer := preview.NewSyncer(sc.Docs, preview.OptionsFromConfig(sc.Config))
	return syncer.Sync(sc.Context, branch, doc)
}
