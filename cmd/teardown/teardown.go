// Package teardown implements the teardown command that removes a preview version.
package teardown

import (
	"github.com/alan/docs-preview/cmd"
	"github.com/alan/docs-preview/internal/commands"
	"github.com/alan/docs-preview/internal/preview"
	"github.com/spf13/cobra"
)

// TeardownCommand encapsulates the teardown command with common functionality
type TeardownCommand struct {
	commands.BaseCommand
}

// NewTeardownCmd creates the teardown command
func NewTeardownCmd(configFile *string, loadConfig func(string) (*cmd.Config, error)) *cobra.Command {
	teardownCmd := &TeardownCommand{}

	cobraCmd := &cobra.Command{
		Use:   "teardown [branch]",
		Short: "Remove the preview docs version for a branch",
		Long: `Teardown deletes the preview version derived from the branch name.

Nothing happens if the version does not exist. Run it when the pull request
is closed.

Examples:
  docs-preview teardown                  # Remove the preview of the current pull request
  docs-preview teardown feature/login    # Remove the preview of an explicit branch`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			teardownCmd.ConfigFile = configFile
			teardownCmd.LoadConfig = loadConfig
			teardownCmd.Out = cobraCmd.OutOrStdout()
			if err := teardownCmd.Init(); err != nil {
				return teardownCmd.Fail("teardown", err)
			}

			return teardownCmd.Run(args)
		},
	}

	cobraCmd.Flags().IntVar(&teardownCmd.PRNumber, "pr", 0, "Pull request number to comment on (defaults to the triggering pull request)")
	cobraCmd.Flags().BoolVar(&teardownCmd.NoComment, "no-comment", false, "Do not post a pull request comment")

	return cobraCmd
}

// Run executes the teardown command and reports the outcome
func (tc *TeardownCommand) Run(args []string) error {
	result, err := tc.teardown(args)
	if err == nil {
		commands.DisplayResult(tc.Out, result)
	}
	return tc.Notifier.Notify(tc.Context, "teardown", result, err)
}

func (tc *TeardownCommand) teardown(args []string) (*preview.Result, error) {
	branch, err := tc.ResolveBranch(args)
	if err != nil {
		return nil, err
	}

	syncer := preview.NewSyncer(tc.Docs, preview.OptionsFromConfig(tc.Config))
	return syncer.Teardown(tc.Context, branch)
}
