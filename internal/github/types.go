package github

import "time"

// Comment represents an issue or pull request comment
type Comment struct {
	ID        int64
	Body      string
	User      string
	URL       string
	CreatedAt time.Time
}

// ActionsContext is the repository and pull request a workflow run was triggered for
type ActionsContext struct {
	Org      string
	Repo     string
	PRNumber int    // 0 when the triggering event is not a pull request
	HeadRef  string // branch the pull request was opened from, or the pushed ref name
}
