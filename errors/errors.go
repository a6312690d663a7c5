// Package errors provides the error taxonomy and helpers shared across
// cargoship. It builds on cockroachdb/errors so that sentinel checks
// (errors.Is), hints, safe context, and exit codes survive wrapping.
package errors

import "github.com/cockroachdb/errors"

// Validation errors returned by the resolver. These are deterministic,
// caller-correctable input errors and are never retried.
var (
	// ErrMissingField indicates a required input field was not supplied
	// for the selected workflow type.
	ErrMissingField = errors.New("missing required field")

	// ErrMalformedField indicates an input field was supplied but does not
	// have the required shape (e.g. a release tag without a `v` prefix, or
	// a commit SHA shorter than 7 characters).
	ErrMalformedField = errors.New("malformed field")

	// ErrUnknownWorkflowType indicates the workflow type is not one of
	// main, pull-request, or release.
	ErrUnknownWorkflowType = errors.New("unknown workflow type")
)

// CI provider errors.
var (
	// ErrCIProviderNotFound indicates the named CI provider is not registered.
	ErrCIProviderNotFound = errors.New("CI provider not found")

	// ErrCIProviderNotDetected indicates no registered CI provider detected
	// the current environment.
	ErrCIProviderNotDetected = errors.New("no CI provider detected")
)

// Git and GitHub errors.
var (
	// ErrNoGitRepo indicates the working directory is not inside a git repository.
	ErrNoGitRepo = errors.New("not a git repository")

	// ErrNoGitRemote indicates the local repository has no usable remote URL.
	ErrNoGitRemote = errors.New("git repository has no remote")

	// ErrGitHubRateLimitExceeded indicates the GitHub API rate limit is exhausted.
	ErrGitHubRateLimitExceeded = errors.New("GitHub API rate limit exceeded")
)

// Configuration errors.
var (
	// ErrInvalidLogLevel indicates an unsupported log level string.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidFlag indicates an invalid command-line flag value.
	ErrInvalidFlag = errors.New("invalid flag value")
)
