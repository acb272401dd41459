package github

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/go-github/v57/github"
)

// CreateIssueComment creates a new comment on an issue or pull request
func (c *Client) CreateIssueComment(ctx context.Context, issueNumber int, body string) (*Comment, error) {
	commentInput := &github.IssueComment{
		Body: github.String(body),
	}

	slog.Debug("GitHub API: Creating issue comment", "org", c.org, "repo", c.repo, "issue", issueNumber)
	comment, _, err := c.client.Issues.CreateComment(ctx, c.org, c.repo, issueNumber, commentInput)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return &Comment{
		ID:        comment.GetID(),
		Body:      comment.GetBody(),
		User:      comment.GetUser().GetLogin(),
		URL:       comment.GetHTMLURL(),
		CreatedAt: comment.GetCreatedAt().Time,
	}, nil
}
