// Package github provides a thin client for the GitHub REST API, used for
// update checks against this tool's own releases.
package github

import (
	"context"
	"os"

	"github.com/google/go-github/v59/github"
)

const (
	logFieldOwner = "owner"
	logFieldRepo  = "repo"
)

// newGitHubClient returns a GitHub API client, authenticated when a token
// is available in CARGOSHIP_GITHUB_TOKEN or GITHUB_TOKEN. Unauthenticated
// clients work but have much lower rate limits.
func newGitHubClient(_ context.Context) *github.Client {
	token := os.Getenv("CARGOSHIP_GITHUB_TOKEN")
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}

	client := github.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	return client
}
