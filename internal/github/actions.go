package github

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/go-github/v57/github"
)

// eventPayload covers pull_request and issue_comment payloads
type eventPayload struct {
	github.PullRequestEvent
	Issue *github.Issue `json:"issue,omitempty"`
}

// LoadActionsContext reads the GitHub Actions environment. Outside of Actions every field is left empty.
func LoadActionsContext(getenv func(string) string) (*ActionsContext, error) {
	actx := &ActionsContext{}

	if repository := getenv("GITHUB_REPOSITORY"); repository != "" {
		org, repo, ok := strings.Cut(repository, "/")
		if !ok || org == "" || repo == "" {
			return nil, fmt.Errorf("invalid GITHUB_REPOSITORY %q, expected owner/repo", repository)
		}
		actx.Org = org
		actx.Repo = repo
	}

	if path := getenv("GITHUB_EVENT_PATH"); path != "" {
		event, err := readEvent(path)
		if err != nil {
			return nil, err
		}
		actx.PRNumber = event.GetNumber()
		if actx.PRNumber == 0 {
			actx.PRNumber = event.GetPullRequest().GetNumber()
		}
		if actx.PRNumber == 0 && event.Issue != nil && event.Issue.IsPullRequest() {
			actx.PRNumber = event.Issue.GetNumber()
		}
		actx.HeadRef = event.GetPullRequest().GetHead().GetRef()
	}

	if ref := getenv("GITHUB_HEAD_REF"); ref != "" {
		actx.HeadRef = ref
	} else if actx.HeadRef == "" {
		actx.HeadRef = getenv("GITHUB_REF_NAME")
	}

	return actx, nil
}

func readEvent(path string) (*eventPayload, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is provided by the Actions runner
	if err != nil {
		return nil, fmt.Errorf("failed to read event payload: %w", err)
	}

	var event eventPayload
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("failed to parse event payload: %w", err)
	}
	return &event, nil
}
