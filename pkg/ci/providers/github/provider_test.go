package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearGitHubEnv unsets the GitHub Actions variables a runner may leak into
// the test environment.
func clearGitHubEnv(t *testing.T) {
	t.Helper()
	vars := []string{
		"GITHUB_ACTIONS", "GITHUB_RUN_ID", "GITHUB_RUN_NUMBER", "GITHUB_WORKFLOW",
		"GITHUB_JOB", "GITHUB_ACTOR", "GITHUB_EVENT_NAME", "GITHUB_REF",
		"GITHUB_REF_NAME", "GITHUB_HEAD_REF", "GITHUB_BASE_REF", "GITHUB_SHA",
		"GITHUB_REPOSITORY", "GITHUB_SERVER_URL", "GITHUB_OUTPUT", "GITHUB_STEP_SUMMARY",
	}
	for _, v := range vars {
		t.Setenv(v, "")
	}
}

func TestDetect(t *testing.T) {
	clearGitHubEnv(t)
	p := NewProvider()

	assert.False(t, p.Detect())

	t.Setenv("GITHUB_ACTIONS", "true")
	assert.True(t, p.Detect())
}

func TestContextMainBranchPush(t *testing.T) {
	clearGitHubEnv(t)
	t.Setenv("GITHUB_ACTIONS", "true")
	t.Setenv("GITHUB_RUN_NUMBER", "42")
	t.Setenv("GITHUB_EVENT_NAME", "push")
	t.Setenv("GITHUB_REF", "refs/heads/main")
	t.Setenv("GITHUB_REF_NAME", "main")
	t.Setenv("GITHUB_SHA", "a1b2c3d4e5f6a7b8")
	t.Setenv("GITHUB_REPOSITORY", "owner/app")

	ctx, err := NewProvider().Context()
	require.NoError(t, err)

	assert.Equal(t, ProviderName, ctx.Provider)
	assert.Equal(t, 42, ctx.RunNumber)
	assert.Equal(t, "owner", ctx.RepoOwner)
	assert.Equal(t, "app", ctx.RepoName)
	assert.Equal(t, "main", ctx.Branch)
	assert.Nil(t, ctx.PullRequest)
	assert.Empty(t, ctx.ReleaseTag)
	assert.Equal(t, "main", ctx.InferWorkflowType())
}

func TestContextPullRequest(t *testing.T) {
	clearGitHubEnv(t)
	t.Setenv("GITHUB_ACTIONS", "true")
	t.Setenv("GITHUB_EVENT_NAME", "pull_request")
	t.Setenv("GITHUB_REF", "refs/pull/123/merge")
	t.Setenv("GITHUB_REF_NAME", "123/merge")
	t.Setenv("GITHUB_HEAD_REF", "feature/tags")
	t.Setenv("GITHUB_BASE_REF", "main")
	t.Setenv("GITHUB_REPOSITORY", "owner/app")

	ctx, err := NewProvider().Context()
	require.NoError(t, err)

	require.NotNil(t, ctx.PullRequest)
	assert.Equal(t, 123, ctx.PullRequest.Number)
	assert.Equal(t, "feature/tags", ctx.PullRequest.HeadRef)
	assert.Equal(t, "main", ctx.PullRequest.BaseRef)
	assert.Equal(t, "https://github.com/owner/app/pull/123", ctx.PullRequest.URL)
	assert.Equal(t, "feature/tags", ctx.Branch)
	assert.Equal(t, "pull-request", ctx.InferWorkflowType())
}

func TestContextPRNumberFromRefName(t *testing.T) {
	clearGitHubEnv(t)
	t.Setenv("GITHUB_ACTIONS", "true")
	t.Setenv("GITHUB_EVENT_NAME", "pull_request")
	t.Setenv("GITHUB_REF_NAME", "77/merge")
	t.Setenv("GITHUB_REPOSITORY", "owner/app")

	ctx, err := NewProvider().Context()
	require.NoError(t, err)

	require.NotNil(t, ctx.PullRequest)
	assert.Equal(t, 77, ctx.PullRequest.Number)
}

func TestContextTagPush(t *testing.T) {
	clearGitHubEnv(t)
	t.Setenv("GITHUB_ACTIONS", "true")
	t.Setenv("GITHUB_EVENT_NAME", "push")
	t.Setenv("GITHUB_REF", "refs/tags/v0.2.0")
	t.Setenv("GITHUB_REF_NAME", "v0.2.0")
	t.Setenv("GITHUB_REPOSITORY", "owner/app")

	ctx, err := NewProvider().Context()
	require.NoError(t, err)

	assert.Equal(t, "v0.2.0", ctx.ReleaseTag)
	assert.Equal(t, "release", ctx.InferWorkflowType())
}

func TestOutputWriter(t *testing.T) {
	clearGitHubEnv(t)
	p := NewProvider()

	// With no env set the writer is a no-op file writer.
	w := p.OutputWriter()
	require.NotNil(t, w)
	assert.NoError(t, w.WriteOutput("key", "value"))
}
