package ci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cargoship-ci/cargoship/errors"
)

// fakeProvider is a test provider with controllable detection.
type fakeProvider struct {
	name     string
	detected bool
}

func (p *fakeProvider) Name() string               { return p.name }
func (p *fakeProvider) Detect() bool               { return p.detected }
func (p *fakeProvider) Context() (*Context, error) { return &Context{Provider: p.name}, nil }
func (p *fakeProvider) OutputWriter() OutputWriter { return &NoopOutputWriter{} }

func TestRegisterAndGet(t *testing.T) {
	Register(&fakeProvider{name: "fake-ci"})

	p, err := Get("fake-ci")
	require.NoError(t, err)
	assert.Equal(t, "fake-ci", p.Name())
}

func TestGetUnknownProvider(t *testing.T) {
	_, err := Get("does-not-exist")
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrCIProviderNotFound)
}

func TestDetect(t *testing.T) {
	Register(&fakeProvider{name: "fake-detected", detected: true})

	p := Detect()
	require.NotNil(t, p)
	assert.True(t, p.Detect())
	assert.True(t, IsCI())
}

func TestList(t *testing.T) {
	Register(&fakeProvider{name: "fake-listed"})

	assert.Contains(t, List(), "fake-listed")
}

func TestInferWorkflowType(t *testing.T) {
	tests := []struct {
		name     string
		ctx      Context
		expected string
	}{
		{
			name:     "push to main",
			ctx:      Context{EventName: "push", Ref: "refs/heads/main"},
			expected: "main",
		},
		{
			name:     "pull request event",
			ctx:      Context{EventName: "pull_request", PullRequest: &PRInfo{Number: 42}},
			expected: "pull-request",
		},
		{
			name:     "pull request target event",
			ctx:      Context{EventName: "pull_request_target"},
			expected: "pull-request",
		},
		{
			name:     "tag push",
			ctx:      Context{EventName: "push", Ref: "refs/tags/v1.0.0", ReleaseTag: "v1.0.0"},
			expected: "release",
		},
		{
			name:     "release event with tag ref",
			ctx:      Context{EventName: "release", Ref: "refs/tags/v0.2.0"},
			expected: "release",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.ctx.InferWorkflowType())
		})
	}
}
