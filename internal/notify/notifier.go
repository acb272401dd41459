// Package notify reports the outcome of a preview run back to the pull request and the CI runner.
package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/alan/docs-preview/internal/github"
	"github.com/alan/docs-preview/internal/preview"
)

// Commenter posts a comment on a pull request
type Commenter interface {
	CreateIssueComment(ctx context.Context, issueNumber int, body string) (*github.Comment, error)
}

// Notifier turns a run outcome into exactly one pull request comment or failure signal
type Notifier struct {
	commenter        Commenter
	prNumber         int
	commentOnFailure bool
	out              io.Writer
}

// Options configures a Notifier
type Options struct {
	// Commenter may be nil, in which case nothing is posted
	Commenter        Commenter
	PRNumber         int
	CommentOnFailure bool
	// Out receives workflow commands; GitHub Actions reads them from stdout
	Out io.Writer
}

// New creates a notifier
func New(opts Options) *Notifier {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	return &Notifier{
		commenter:        opts.Commenter,
		prNumber:         opts.PRNumber,
		commentOnFailure: opts.CommentOnFailure,
		out:              out,
	}
}

// Notify reports result, or runErr when it is non-nil. The returned error is runErr
// itself, or the comment error when posting a success comment failed.
func (n *Notifier) Notify(ctx context.Context, operation string, result *preview.Result, runErr error) error {
	if runErr != nil {
		return n.fail(ctx, operation, runErr)
	}

	body := result.Message()
	if !n.canComment() {
		slog.Info("No pull request to comment on", "operation", operation, "version", result.VersionID, "action", result.Action)
		return nil
	}

	comment, err := n.commenter.CreateIssueComment(ctx, n.prNumber, body)
	if err != nil {
		return fmt.Errorf("%s succeeded but the pull request comment failed: %w", operation, err)
	}
	slog.Info("Posted preview comment", "pr", n.prNumber, "comment_id", comment.ID, "url", comment.URL)
	return nil
}

func (n *Notifier) fail(ctx context.Context, operation string, runErr error) error {
	message := fmt.Sprintf("Docs preview %s failed: %v", operation, runErr)
	_, _ = fmt.Fprintf(n.out, "::error title=docs-preview %s::%s\n", operation, escapeData(message))

	if n.commentOnFailure && n.canComment() {
		if _, err := n.commenter.CreateIssueComment(ctx, n.prNumber, message); err != nil {
			slog.Warn("Failed to post failure comment", "pr", n.prNumber, "error", err)
		}
	}
	return runErr
}

func (n *Notifier) canComment() bool {
	return n.commenter != nil && n.prNumber > 0
}

// escapeData encodes a workflow command message so it stays on one line
func escapeData(s string) string {
	return strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A").Replace(s)
}
