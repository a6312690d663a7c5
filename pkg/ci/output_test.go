package ci

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cargoship-ci/cargoship/pkg/resolver"
)

func TestFileOutputWriterSingleLine(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "output")
	w := NewFileOutputWriter(outputFile, "")

	require.NoError(t, w.WriteOutput("version", "0.2.0"))
	require.NoError(t, w.WriteOutput("tag_name", "v0.2.0"))

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Equal(t, "version=0.2.0\ntag_name=v0.2.0\n", string(data))
}

func TestFileOutputWriterMultiline(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "output")
	w := NewFileOutputWriter(outputFile, "")

	require.NoError(t, w.WriteOutput("notes", "line one\nline two"))

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Equal(t, "notes<<EOF\nline one\nline two\nEOF\n", string(data))
}

func TestFileOutputWriterMultilineDelimiterCollision(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "output")
	w := NewFileOutputWriter(outputFile, "")

	require.NoError(t, w.WriteOutput("notes", "EOF\nmore"))

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "notes<<EOF_\n")
}

func TestFileOutputWriterNoPathIsNoop(t *testing.T) {
	w := NewFileOutputWriter("", "")
	assert.NoError(t, w.WriteOutput("version", "0.2.0"))
	assert.NoError(t, w.WriteSummary("content"))
}

func TestFileOutputWriterSummaryAppends(t *testing.T) {
	summaryFile := filepath.Join(t.TempDir(), "summary")
	w := NewFileOutputWriter("", summaryFile)

	require.NoError(t, w.WriteSummary("first\n"))
	require.NoError(t, w.WriteSummary("second\n"))

	data, err := os.ReadFile(summaryFile)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func TestNoopOutputWriter(t *testing.T) {
	w := &NoopOutputWriter{}
	assert.NoError(t, w.WriteOutput("key", "value"))
	assert.NoError(t, w.WriteSummary("content"))
}

func TestWriteVersionOutputs(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "output")
	h := NewOutputHelpers(NewFileOutputWriter(outputFile, ""))

	info := &resolver.VersionInfo{
		Version:         "0.2.0",
		TagName:         "v0.2.0",
		ImageTag:        "v0.2.0",
		ImageRepository: "owner/app",
		ShortSHA:        "a1b2c3d",
	}
	require.NoError(t, h.WriteVersionOutputs(info))

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "version=0.2.0\n")
	assert.Contains(t, content, "tag_name=v0.2.0\n")
	assert.Contains(t, content, "image_tag=v0.2.0\n")
	assert.Contains(t, content, "image_repository=owner/app\n")
	assert.Contains(t, content, "short_sha=a1b2c3d\n")
}

func TestWriteVersionSummary(t *testing.T) {
	summaryFile := filepath.Join(t.TempDir(), "summary")
	h := NewOutputHelpers(NewFileOutputWriter("", summaryFile))

	info := &resolver.VersionInfo{
		Version:         "pr-42",
		TagName:         "pr-42",
		ImageTag:        "pr-42",
		ImageRepository: "owner/app",
		ShortSHA:        "a1b2c3d",
	}
	require.NoError(t, h.WriteVersionSummary(info))

	data, err := os.ReadFile(summaryFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "| version | `pr-42` |")
	assert.Contains(t, string(data), "### Build metadata")
}
