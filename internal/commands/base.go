package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/alan/docs-preview/cmd"
	"github.com/alan/docs-preview/internal/config"
	"github.com/alan/docs-preview/internal/docs"
	"github.com/alan/docs-preview/internal/github"
	"github.com/alan/docs-preview/internal/notify"
)

// Environment variables read by every command
const (
	EnvAPIKey      = "README_API_KEY"
	EnvBranch      = "DOCS_PREVIEW_BRANCH"
	EnvGitHubToken = "GITHUB_TOKEN"
	EnvGitHubAPI   = "GITHUB_API_URL"
)

// BaseCommand provides common fields and initialization for all commands
type BaseCommand struct {
	ConfigFile *string
	LoadConfig func(string) (*cmd.Config, error)
	Getenv     func(string) string // defaults to os.Getenv
	Out        io.Writer           // defaults to os.Stdout
	PRNumber   int                 // overrides the pull request from the Actions context
	NoComment  bool

	Context      context.Context
	Config       *cmd.Config
	Docs         *docs.Client
	Actions      *github.ActionsContext
	GitHubClient *github.Client
	Notifier     *notify.Notifier
}

// Init initializes the base command with common setup
func (bc *BaseCommand) Init() error {
	if bc.Getenv == nil {
		bc.Getenv = os.Getenv
	}
	if bc.Out == nil {
		bc.Out = os.Stdout
	}
	bc.Context = context.Background()
	// Setup failures still need a workflow failure signal; comments come later
	bc.Notifier = notify.New(notify.Options{Out: bc.Out})

	// Load configuration
	cfg, err := bc.LoadConfig(*bc.ConfigFile)
	if err != nil {
		return err
	}
	config.ApplyEnv(cfg, bc.Getenv)
	bc.Config = cfg

	credential := bc.Getenv(EnvAPIKey)
	if credential == "" {
		return fmt.Errorf("%w: set the %s environment variable", docs.ErrMissingCredential, EnvAPIKey)
	}

	actx, err := bc.loadRepoContext()
	if err != nil {
		return err
	}
	bc.Actions = actx

	bc.Docs = docs.NewClient(cfg.BaseURL, credential, &http.Client{Timeout: cfg.Timeout})

	if !bc.NoComment && actx.PRNumber > 0 {
		client, err := bc.newGitHubClient(actx)
		if err != nil {
			return err
		}
		bc.GitHubClient = client
	}

	opts := notify.Options{
		PRNumber:         actx.PRNumber,
		CommentOnFailure: cfg.CommentOnFailure,
		Out:              bc.Out,
	}
	if bc.GitHubClient != nil {
		opts.Commenter = bc.GitHubClient
	}
	bc.Notifier = notify.New(opts)

	return nil
}

// Fail reports an error raised before the command could run, typically from Init
func (bc *BaseCommand) Fail(operation string, err error) error {
	if bc.Notifier == nil {
		return err
	}
	return bc.Notifier.Notify(bc.Context, operation, nil, err)
}

// loadRepoContext reads the Actions context, falling back to the local git checkout
func (bc *BaseCommand) loadRepoContext() (*github.ActionsContext, error) {
	actx, err := github.LoadActionsContext(bc.Getenv)
	if err != nil {
		return nil, err
	}

	if actx.Org == "" {
		if local, err := github.DetectLocalRepo(); err == nil {
			actx.Org, actx.Repo = local.Org, local.Repo
			if actx.HeadRef == "" {
				actx.HeadRef = local.HeadRef
			}
		} else {
			slog.Debug("No local git repository detected", "error", err)
		}
	}

	if bc.PRNumber > 0 {
		actx.PRNumber = bc.PRNumber
	}
	return actx, nil
}

func (bc *BaseCommand) newGitHubClient(actx *github.ActionsContext) (*github.Client, error) {
	token, err := getGitHubToken(bc.Getenv)
	if err != nil {
		return nil, err
	}
	if actx.Org == "" || actx.Repo == "" {
		return nil, fmt.Errorf("cannot comment on PR #%d: repository unknown (set GITHUB_REPOSITORY)", actx.PRNumber)
	}

	client := github.NewClient(bc.Context, token, actx.Org, actx.Repo)
	if apiURL := bc.Getenv(EnvGitHubAPI); apiURL != "" {
		if err := client.SetBaseURL(apiURL); err != nil {
			return nil, err
		}
	}
	return client, nil
}

// getGitHubToken retrieves and validates the GitHub token
func getGitHubToken(getenv func(string) string) (string, error) {
	token := getenv(EnvGitHubToken)
	if token == "" {
		return "", fmt.Errorf("%s environment variable is required to comment on the pull request (or pass --no-comment)", EnvGitHubToken)
	}
	return token, nil
}

// ResolveBranch picks the branch to preview: the argument, DOCS_PREVIEW_BRANCH, the
// Actions or git head ref, then the pull request head looked up on GitHub.
func (bc *BaseCommand) ResolveBranch(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if branch := bc.Getenv(EnvBranch); branch != "" {
		return branch, nil
	}
	if bc.Actions != nil && bc.Actions.HeadRef != "" {
		return bc.Actions.HeadRef, nil
	}
	if bc.GitHubClient != nil && bc.Actions.PRNumber > 0 {
		return bc.GitHubClient.GetPRHeadBranch(bc.Context, bc.Actions.PRNumber)
	}
	return "", fmt.Errorf("branch is required (pass it as an argument or set %s)", EnvBranch)
}
