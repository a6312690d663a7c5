// Package github implements the GitHub Actions CI provider.
package github

import (
	"os"
	"strconv"
	"strings"

	"github.com/cargoship-ci/cargoship/pkg/ci"
	"github.com/cargoship-ci/cargoship/pkg/perf"
)

// ProviderName is the name of the GitHub Actions provider.
const ProviderName = "github-actions"

const tagRefPrefix = "refs/tags/"

// Provider implements ci.Provider for GitHub Actions.
type Provider struct{}

// NewProvider creates a new GitHub Actions provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return ProviderName
}

// Detect returns true if running in GitHub Actions.
func (p *Provider) Detect() bool {
	return os.Getenv("GITHUB_ACTIONS") == "true"
}

// Context returns CI metadata from GitHub Actions environment variables.
func (p *Provider) Context() (*ci.Context, error) {
	defer perf.Track(nil, "github.Provider.Context")()

	runNumber, _ := strconv.Atoi(os.Getenv("GITHUB_RUN_NUMBER"))

	ctx := &ci.Context{
		Provider:   ProviderName,
		RunID:      os.Getenv("GITHUB_RUN_ID"),
		RunNumber:  runNumber,
		Workflow:   os.Getenv("GITHUB_WORKFLOW"),
		Job:        os.Getenv("GITHUB_JOB"),
		Actor:      os.Getenv("GITHUB_ACTOR"),
		EventName:  os.Getenv("GITHUB_EVENT_NAME"),
		Ref:        os.Getenv("GITHUB_REF"),
		SHA:        os.Getenv("GITHUB_SHA"),
		Repository: os.Getenv("GITHUB_REPOSITORY"),
		ServerURL:  os.Getenv("GITHUB_SERVER_URL"),
	}

	// Parse owner and repo from GITHUB_REPOSITORY.
	if repo := ctx.Repository; repo != "" {
		parts := strings.SplitN(repo, "/", 2)
		if len(parts) == 2 {
			ctx.RepoOwner = parts[0]
			ctx.RepoName = parts[1]
		}
	}

	// Set branch name (prefer GITHUB_HEAD_REF for PRs, fall back to GITHUB_REF_NAME).
	branch := os.Getenv("GITHUB_HEAD_REF")
	if branch == "" {
		branch = os.Getenv("GITHUB_REF_NAME")
	}
	ctx.Branch = branch

	// Parse PR info for pull_request events.
	if ctx.EventName == "pull_request" || ctx.EventName == "pull_request_target" {
		ctx.PullRequest = parsePRInfo()
	}

	// Tag-triggered runs carry the release tag in the ref.
	if strings.HasPrefix(ctx.Ref, tagRefPrefix) {
		ctx.ReleaseTag = strings.TrimPrefix(ctx.Ref, tagRefPrefix)
	}

	return ctx, nil
}

// parsePRInfo extracts PR information from environment variables.
func parsePRInfo() *ci.PRInfo {
	refName := os.Getenv("GITHUB_REF_NAME")
	baseRef := os.Getenv("GITHUB_BASE_REF")
	headRef := os.Getenv("GITHUB_HEAD_REF")

	// Extract PR number from ref (refs/pull/<number>/merge).
	ref := os.Getenv("GITHUB_REF")
	var prNumber int
	if strings.HasPrefix(ref, "refs/pull/") {
		parts := strings.Split(ref, "/")
		if len(parts) >= 3 {
			prNumber, _ = strconv.Atoi(parts[2])
		}
	}

	// If GITHUB_REF_NAME is in format "123/merge", extract number.
	if prNumber == 0 && strings.HasSuffix(refName, "/merge") {
		numStr := strings.TrimSuffix(refName, "/merge")
		prNumber, _ = strconv.Atoi(numStr)
	}

	repo := os.Getenv("GITHUB_REPOSITORY")
	serverURL := os.Getenv("GITHUB_SERVER_URL")
	if serverURL == "" {
		serverURL = "https://github.com"
	}

	var prURL string
	if prNumber > 0 && repo != "" {
		prURL = serverURL + "/" + repo + "/pull/" + strconv.Itoa(prNumber)
	}

	return &ci.PRInfo{
		Number:  prNumber,
		HeadRef: headRef,
		BaseRef: baseRef,
		URL:     prURL,
	}
}

// OutputWriter returns an OutputWriter for GitHub Actions.
func (p *Provider) OutputWriter() ci.OutputWriter {
	return ci.NewFileOutputWriter(
		os.Getenv("GITHUB_OUTPUT"),
		os.Getenv("GITHUB_STEP_SUMMARY"),
	)
}

func init() {
	ci.Register(NewProvider())
}
