package github

import (
	"context"
	"fmt"
	"log/slog"
)

// GetPRHeadBranch returns the head branch name for a PR
func (c *Client) GetPRHeadBranch(ctx context.Context, number int) (string, error) {
	slog.Debug("GitHub API: Getting PR head branch", "org", c.org, "repo", c.repo, "pr", number)
	pr, _, err := c.client.PullRequests.Get(ctx, c.org, c.repo, number)
	if err != nil {
		return "", fmt.Errorf("failed to fetch PR #%d: %w", number, err)
	}
	return pr.GetHead().GetRef(), nil
}
