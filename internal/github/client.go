// Package github wraps the GitHub API calls and Actions context the preview workflow needs.
package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"
	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// Client wraps the GitHub API client for a single repository
type Client struct {
	client *github.Client
	org    string
	repo   string
}

// NewClient creates a new GitHub client with token authentication. Requests that hit
// the secondary rate limit sleep and retry instead of failing the comment.
func NewClient(ctx context.Context, token, org, repo string) *Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	authClient := oauth2.NewClient(ctx, ts)
	return newClient(github_ratelimit.NewClient(authClient.Transport), org, repo)
}

func newClient(httpClient *http.Client, org, repo string) *Client {
	return &Client{
		client: github.NewClient(httpClient),
		org:    org,
		repo:   repo,
	}
}

// SetBaseURL points the client at a different API root, such as GITHUB_API_URL on GitHub Enterprise
func (c *Client) SetBaseURL(apiURL string) error {
	if !strings.HasSuffix(apiURL, "/") {
		apiURL += "/"
	}
	baseURL, err := url.Parse(apiURL)
	if err != nil {
		return fmt.Errorf("invalid GitHub API URL %q: %w", apiURL, err)
	}
	c.client.BaseURL = baseURL
	return nil
}
