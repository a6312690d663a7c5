// Package ci provides CI provider abstractions: environment detection,
// workflow context, and step output publishing.
package ci

import "strings"

// Provider represents a CI system (GitHub Actions, etc.).
type Provider interface {
	// Name returns the provider name (e.g., "github-actions").
	Name() string

	// Detect returns true if this provider is active in the current environment.
	Detect() bool

	// Context returns CI metadata (run number, PR info, release tag, etc.).
	Context() (*Context, error)

	// OutputWriter returns a writer for CI outputs ($GITHUB_OUTPUT, etc.).
	OutputWriter() OutputWriter
}

// OutputWriter writes CI outputs (step outputs, job summaries).
type OutputWriter interface {
	// WriteOutput writes a key-value pair to CI outputs (e.g., $GITHUB_OUTPUT).
	WriteOutput(key, value string) error

	// WriteSummary writes content to the job summary (e.g., $GITHUB_STEP_SUMMARY).
	WriteSummary(content string) error
}

// PRInfo holds pull request metadata.
type PRInfo struct {
	Number  int
	HeadRef string
	BaseRef string
	URL     string
}

// Context holds CI metadata for the current workflow run.
type Context struct {
	Provider   string
	RunID      string
	RunNumber  int
	Workflow   string
	Job        string
	Actor      string
	EventName  string
	Ref        string
	SHA        string
	Repository string
	RepoOwner  string
	RepoName   string
	Branch     string
	ServerURL  string

	// PullRequest is set for pull request events.
	PullRequest *PRInfo

	// ReleaseTag is set when the run was triggered by a tag ref.
	ReleaseTag string
}

// InferWorkflowType maps the CI event to a workflow type string understood
// by the resolver: "release" for tag-triggered runs, "pull-request" for PR
// events, "main" otherwise.
func (c *Context) InferWorkflowType() string {
	if c.ReleaseTag != "" || strings.HasPrefix(c.Ref, "refs/tags/") {
		return "release"
	}
	if c.PullRequest != nil || c.EventName == "pull_request" || c.EventName == "pull_request_target" {
		return "pull-request"
	}
	return "main"
}
