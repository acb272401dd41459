package notify

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/alan/docs-preview/cmd"
	"github.com/alan/docs-preview/internal/github"
	"github.com/alan/docs-preview/internal/preview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCommenter struct {
	bodies  []string
	numbers []int
	err     error
}

func (f *fakeCommenter) CreateIssueComment(_ context.Context, issueNumber int, body string) (*github.Comment, error) {
	f.numbers = append(f.numbers, issueNumber)
	f.bodies = append(f.bodies, body)
	if f.err != nil {
		return nil, f.err
	}
	return &github.Comment{ID: int64(len(f.bodies)), Body: body}, nil
}

func createdResult() *preview.Result {
	return &preview.Result{
		Action:     cmd.ActionCreated,
		Branch:     "feature/login",
		VersionID:  "v2-feature-login",
		PreviewURL: "https://preview.readme.io/v2-feature-login/reference",
	}
}

func TestNotify_SuccessPostsOneComment(t *testing.T) {
	commenter := &fakeCommenter{}
	var out bytes.Buffer
	n := New(Options{Commenter: commenter, PRNumber: 17, Out: &out})

	err := n.Notify(context.Background(), "sync", createdResult(), nil)

	require.NoError(t, err)
	require.Len(t, commenter.bodies, 1)
	assert.Equal(t, []int{17}, commenter.numbers)
	assert.Contains(t, commenter.bodies[0], "https://preview.readme.io/v2-feature-login/reference")
	assert.Contains(t, commenter.bodies[0], "`v2-feature-login` created")
	assert.Empty(t, out.String(), "no failure signal on success")
}

func TestNotify_SuccessWithoutPullRequest(t *testing.T) {
	commenter := &fakeCommenter{}
	n := New(Options{Commenter: commenter})

	require.NoError(t, n.Notify(context.Background(), "sync", createdResult(), nil))
	assert.Empty(t, commenter.bodies)

	// A nil commenter is also fine
	require.NoError(t, New(Options{PRNumber: 3}).Notify(context.Background(), "sync", createdResult(), nil))
}

func TestNotify_CommentFailure(t *testing.T) {
	commenter := &fakeCommenter{err: errors.New("403 Resource not accessible")}
	n := New(Options{Commenter: commenter, PRNumber: 17})

	err := n.Notify(context.Background(), "sync", createdResult(), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sync succeeded but the pull request comment failed")
	assert.Contains(t, err.Error(), "403")
}

func TestNotify_Failure(t *testing.T) {
	runErr := errors.New("version lookup failed with status 500: {\"error\":\"boom\"}\n100% broken")

	tests := []struct {
		name             string
		commentOnFailure bool
		wantComments     int
	}{
		{name: "signal only", commentOnFailure: false, wantComments: 0},
		{name: "signal and comment", commentOnFailure: true, wantComments: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commenter := &fakeCommenter{}
			var out bytes.Buffer
			n := New(Options{Commenter: commenter, PRNumber: 17, CommentOnFailure: tt.commentOnFailure, Out: &out})

			err := n.Notify(context.Background(), "sync", nil, runErr)

			assert.Same(t, runErr, err)
			assert.Equal(t,
				"::error title=docs-preview sync::Docs preview sync failed: version lookup failed with status 500: {\"error\":\"boom\"}%0A100%25 broken\n",
				out.String())
			assert.Len(t, commenter.bodies, tt.wantComments)
			if tt.wantComments > 0 {
				assert.Contains(t, commenter.bodies[0], "Docs preview sync failed")
			}
		})
	}
}

func TestNotify_FailureCommentErrorKeepsRunError(t *testing.T) {
	runErr := errors.New("spec upload failed")
	commenter := &fakeCommenter{err: errors.New("network down")}
	n := New(Options{Commenter: commenter, PRNumber: 17, CommentOnFailure: true})

	err := n.Notify(context.Background(), "sync", nil, runErr)

	assert.Same(t, runErr, err)
}

func TestNotify_TeardownMessages(t *testing.T) {
	commenter := &fakeCommenter{}
	n := New(Options{Commenter: commenter, PRNumber: 4})

	require.NoError(t, n.Notify(context.Background(), "teardown", &preview.Result{
		Action: cmd.ActionDeleted, Branch: "feature/login", VersionID: "v2-feature-login",
	}, nil))
	require.NoError(t, n.Notify(context.Background(), "teardown", &preview.Result{
		Action: cmd.ActionUnchanged, Branch: "feature/login", VersionID: "v2-feature-login",
	}, nil))

	require.Len(t, commenter.bodies, 2)
	assert.Contains(t, commenter.bodies[0], "was removed")
	assert.Contains(t, commenter.bodies[1], "nothing to remove")
}
