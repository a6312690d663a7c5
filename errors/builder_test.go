package errors

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNilError(t *testing.T) {
	assert.Nil(t, Build(nil).WithHint("ignored").Err())
}

func TestBuildWithHints(t *testing.T) {
	err := Build(errors.New("boom")).
		WithHint("first hint").
		WithHintf("second hint %d", 2).
		Err()
	require.Error(t, err)

	hints := errors.GetAllHints(err)
	require.Len(t, hints, 2)
	assert.Equal(t, "first hint", hints[0])
	assert.Equal(t, "second hint 2", hints[1])
}

func TestBuildMarksLeafSentinel(t *testing.T) {
	sentinel := errors.New("sentinel")

	err := Build(sentinel).WithHint("hint").Err()
	assert.ErrorIs(t, err, sentinel)
}

func TestBuildWithSentinel(t *testing.T) {
	sentinel := errors.New("sentinel")
	wrapped := errors.Wrap(errors.New("cause"), "context")

	err := Build(wrapped).WithSentinel(sentinel).Err()
	assert.ErrorIs(t, err, sentinel)
}

func TestBuildWithContext(t *testing.T) {
	err := Build(errors.New("boom")).
		WithContext("field", "pr_number").
		WithContext("type", "pull-request").
		Err()
	require.Error(t, err)

	details := errors.GetSafeDetails(err)
	require.NotEmpty(t, details.SafeDetails)
	assert.Contains(t, details.SafeDetails[0], "field=")
}

func TestBuildWithExitCode(t *testing.T) {
	err := Build(errors.New("boom")).WithExitCode(4).Err()
	assert.Equal(t, 4, GetExitCode(err))
}
