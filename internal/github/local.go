package github

import (
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

var (
	sshRemote   = regexp.MustCompile(`git@github\.com:([^/]+)/([^/]+?)(?:\.git)?$`)
	httpsRemote = regexp.MustCompile(`https://github\.com/([^/]+)/([^/]+?)(?:\.git)?/?$`)
)

// DetectLocalRepo fills org, repo and branch from the git checkout in the working directory
func DetectLocalRepo() (*ActionsContext, error) {
	if exec.Command("git", "rev-parse", "--git-dir").Run() != nil {
		return nil, fmt.Errorf("not in a git repository")
	}

	output, err := exec.Command("git", "remote", "get-url", "origin").Output()
	if err != nil {
		return nil, fmt.Errorf("failed to read git remote: %w", err)
	}
	org, repo, err := ParseRemoteURL(strings.TrimSpace(string(output)))
	if err != nil {
		return nil, err
	}

	branch, err := currentBranch()
	if err != nil {
		return nil, fmt.Errorf("failed to get current branch: %w", err)
	}

	return &ActionsContext{Org: org, Repo: repo, HeadRef: branch}, nil
}

// ParseRemoteURL extracts org and repo from SSH and HTTPS GitHub remote URLs
func ParseRemoteURL(remoteURL string) (string, string, error) {
	if matches := sshRemote.FindStringSubmatch(remoteURL); len(matches) == 3 {
		return matches[1], matches[2], nil
	}
	if matches := httpsRemote.FindStringSubmatch(remoteURL); len(matches) == 3 {
		return matches[1], matches[2], nil
	}
	return "", "", fmt.Errorf("unable to parse GitHub remote URL: %s", remoteURL)
}

func currentBranch() (string, error) {
	output, err := exec.Command("git", "branch", "--show-current").Output()
	if err != nil {
		return "", err
	}

	branch := strings.TrimSpace(string(output))
	if branch == "" {
		return "", fmt.Errorf("unable to determine current branch")
	}
	return branch, nil
}
