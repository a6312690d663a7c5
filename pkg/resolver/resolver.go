// Package resolver derives build/version metadata for a CI workflow run.
//
// Resolve is a pure function of its WorkflowContext: no clock, environment,
// or other hidden inputs. The caller supplies the evaluation date and run
// number explicitly, so identical contexts always resolve to identical
// version info.
package resolver

import (
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"

	errUtils "github.com/cargoship-ci/cargoship/errors"
	"github.com/cargoship-ci/cargoship/pkg/perf"
)

// WorkflowType selects the version derivation branch.
type WorkflowType int

const (
	// WorkflowTypeUnknown is the zero value and never resolves.
	WorkflowTypeUnknown WorkflowType = iota

	// WorkflowTypeMain is a push to the main branch.
	WorkflowTypeMain

	// WorkflowTypePullRequest is a pull request build.
	WorkflowTypePullRequest

	// WorkflowTypeRelease is a release build from a tag.
	WorkflowTypeRelease
)

const (
	workflowTypeMainName        = "main"
	workflowTypePullRequestName = "pull-request"
	workflowTypeReleaseName     = "release"

	// dateFormat renders the evaluation date as YYYY.MM.DD.
	dateFormat = "2006.01.02"

	// shortSHALength is the number of leading commit SHA characters used
	// for the short SHA output.
	shortSHALength = 7
)

// ParseWorkflowType parses a workflow type string.
// Accepts "main", "pull-request" (alias "pull_request"), and "release".
func ParseWorkflowType(s string) (WorkflowType, error) {
	switch strings.ToLower(s) {
	case workflowTypeMainName:
		return WorkflowTypeMain, nil
	case workflowTypePullRequestName, "pull_request":
		return WorkflowTypePullRequest, nil
	case workflowTypeReleaseName:
		return WorkflowTypeRelease, nil
	default:
		return WorkflowTypeUnknown, fmt.Errorf("%w: %q", errUtils.ErrUnknownWorkflowType, s)
	}
}

// String returns the canonical name of the workflow type.
func (t WorkflowType) String() string {
	switch t {
	case WorkflowTypeMain:
		return workflowTypeMainName
	case WorkflowTypePullRequest:
		return workflowTypePullRequestName
	case WorkflowTypeRelease:
		return workflowTypeReleaseName
	default:
		return "unknown"
	}
}

// WorkflowContext is the immutable input to Resolve, constructed by the
// caller from CI metadata (or command-line overrides).
type WorkflowContext struct {
	// Repository is the "owner/name" identifier. Required.
	Repository string

	// WorkflowType selects the derivation branch. Required.
	WorkflowType WorkflowType

	// PRNumber is the pull request number. Required for pull-request builds.
	PRNumber int

	// ReleaseTag is the human-created release tag ("v" + semver).
	// Required for release builds.
	ReleaseTag string

	// CommitSHA is the full commit hash, at least 7 hex characters. Required.
	CommitSHA string

	// RunNumber is the CI run counter. Used only for main builds.
	RunNumber int

	// Date is the UTC calendar date at evaluation time. Used only for
	// main builds.
	Date time.Time

	// ImageSuffix is appended verbatim to the last path segment of
	// Repository when building the image repository name.
	ImageSuffix string
}

// VersionInfo is the resolved metadata, derived deterministically from a
// WorkflowContext.
type VersionInfo struct {
	Version         string `json:"version" yaml:"version"`
	TagName         string `json:"tag_name" yaml:"tag_name"`
	ImageTag        string `json:"image_tag" yaml:"image_tag"`
	ImageRepository string `json:"image_repository" yaml:"image_repository"`
	ShortSHA        string `json:"short_sha" yaml:"short_sha"`
}

// Semver parses the resolved version as a semantic version.
// Main and release versions parse cleanly; pull-request versions ("pr-N")
// do not and return an error. Advisory only, resolution itself performs no
// semver validation.
func (v *VersionInfo) Semver() (*semver.Version, error) {
	return semver.NewVersion(v.Version)
}

// Resolve maps a WorkflowContext to its VersionInfo.
//
// Branches:
//   - main: version "0.0.0-main.YYYY.MM.DD.<run>", tag "main-YYYY.MM.DD".
//     Date-keyed tags make same-day rebuilds idempotent at the tag level
//     while the run number keeps the version unique per build.
//   - pull-request: version, tag, and image tag are all "pr-<number>".
//   - release: the tag is preserved exactly as the human created it; the
//     version strips exactly one leading "v" character, so a tag of
//     "vv1.0.0" yields version "v1.0.0".
//
// On invalid input Resolve returns a validation error and no partial output.
func Resolve(ctx WorkflowContext) (*VersionInfo, error) {
	defer perf.Track(nil, "resolver.Resolve")()

	if ctx.Repository == "" {
		return nil, fmt.Errorf("%w: repository", errUtils.ErrMissingField)
	}
	if len(ctx.CommitSHA) < shortSHALength {
		return nil, fmt.Errorf("%w: commit_sha must be at least %d characters", errUtils.ErrMalformedField, shortSHALength)
	}

	info := &VersionInfo{
		ImageRepository: imageRepository(ctx.Repository, ctx.ImageSuffix),
		ShortSHA:        ctx.CommitSHA[:shortSHALength],
	}

	switch ctx.WorkflowType {
	case WorkflowTypeMain:
		date := ctx.Date.UTC().Format(dateFormat)
		info.Version = fmt.Sprintf("0.0.0-main.%s.%d", date, ctx.RunNumber)
		info.TagName = "main-" + date
		info.ImageTag = info.TagName

	case WorkflowTypePullRequest:
		if ctx.PRNumber <= 0 {
			return nil, fmt.Errorf("%w: pr_number", errUtils.ErrMissingField)
		}
		info.Version = fmt.Sprintf("pr-%d", ctx.PRNumber)
		info.TagName = info.Version
		info.ImageTag = info.Version

	case WorkflowTypeRelease:
		if ctx.ReleaseTag == "" {
			return nil, fmt.Errorf("%w: release_tag", errUtils.ErrMissingField)
		}
		if !strings.HasPrefix(ctx.ReleaseTag, "v") {
			return nil, fmt.Errorf("%w: release_tag %q does not start with 'v'", errUtils.ErrMalformedField, ctx.ReleaseTag)
		}
		// Strip exactly one leading "v". A tag of "vv1.0.0" yields "v1.0.0".
		info.Version = ctx.ReleaseTag[1:]
		info.TagName = ctx.ReleaseTag
		info.ImageTag = ctx.ReleaseTag

	default:
		return nil, fmt.Errorf("%w: %s", errUtils.ErrUnknownWorkflowType, ctx.WorkflowType)
	}

	return info, nil
}

// imageRepository appends the suffix to the last path segment of the
// repository name, preserving the owner prefix: "owner/app" + "-distroless"
// becomes "owner/app-distroless". The caller is responsible for prefixing a
// registry host.
func imageRepository(repository, suffix string) string {
	return repository + suffix
}
