package ci

import (
	"fmt"
	"os"
	"strings"

	"github.com/cargoship-ci/cargoship/pkg/perf"
	"github.com/cargoship-ci/cargoship/pkg/resolver"
)

// NoopOutputWriter is an OutputWriter that does nothing.
// Used when not running in CI or when CI outputs are disabled.
type NoopOutputWriter struct{}

// WriteOutput implements OutputWriter.
func (w *NoopOutputWriter) WriteOutput(_, _ string) error {
	return nil
}

// WriteSummary implements OutputWriter.
func (w *NoopOutputWriter) WriteSummary(_ string) error {
	return nil
}

// FileOutputWriter writes outputs to a file (like $GITHUB_OUTPUT).
type FileOutputWriter struct {
	outputPath  string
	summaryPath string
}

// NewFileOutputWriter creates a new FileOutputWriter.
func NewFileOutputWriter(outputPath, summaryPath string) *FileOutputWriter {
	return &FileOutputWriter{
		outputPath:  outputPath,
		summaryPath: summaryPath,
	}
}

// WriteOutput writes a key-value pair to the output file.
// Format: key=value (single line) or key<<EOF\nvalue\nEOF (multiline).
func (w *FileOutputWriter) WriteOutput(key, value string) error {
	defer perf.Track(nil, "ci.FileOutputWriter.WriteOutput")()

	if w.outputPath == "" {
		return nil
	}

	f, err := os.OpenFile(w.outputPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	defer f.Close()

	// Use heredoc format for multiline values.
	if strings.Contains(value, "\n") {
		delimiter := "EOF"
		// Ensure delimiter doesn't appear in value.
		for strings.Contains(value, delimiter) {
			delimiter += "_"
		}
		_, err = fmt.Fprintf(f, "%s<<%s\n%s\n%s\n", key, delimiter, value, delimiter)
	} else {
		_, err = fmt.Fprintf(f, "%s=%s\n", key, value)
	}

	return err
}

// WriteSummary appends content to the job summary file.
func (w *FileOutputWriter) WriteSummary(content string) error {
	defer perf.Track(nil, "ci.FileOutputWriter.WriteSummary")()

	if w.summaryPath == "" {
		return nil
	}

	f, err := os.OpenFile(w.summaryPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open summary file: %w", err)
	}
	defer f.Close()

	_, err = f.WriteString(content)
	return err
}

// OutputHelpers provides helper methods for common CI output patterns.
type OutputHelpers struct {
	Writer OutputWriter
}

// NewOutputHelpers creates a new OutputHelpers.
func NewOutputHelpers(writer OutputWriter) *OutputHelpers {
	return &OutputHelpers{Writer: writer}
}

// WriteVersionOutputs publishes the resolved version metadata as step outputs.
func (h *OutputHelpers) WriteVersionOutputs(info *resolver.VersionInfo) error {
	defer perf.Track(nil, "ci.OutputHelpers.WriteVersionOutputs")()

	outputs := []struct {
		key   string
		value string
	}{
		{"version", info.Version},
		{"tag_name", info.TagName},
		{"image_tag", info.ImageTag},
		{"image_repository", info.ImageRepository},
		{"short_sha", info.ShortSHA},
	}

	for _, o := range outputs {
		if err := h.Writer.WriteOutput(o.key, o.value); err != nil {
			return err
		}
	}
	return nil
}

// WriteVersionSummary appends a markdown table with the resolved version
// metadata to the job summary.
func (h *OutputHelpers) WriteVersionSummary(info *resolver.VersionInfo) error {
	defer perf.Track(nil, "ci.OutputHelpers.WriteVersionSummary")()

	var b strings.Builder
	b.WriteString("### Build metadata\n\n")
	b.WriteString("| Output | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(&b, "| version | `%s` |\n", info.Version)
	fmt.Fprintf(&b, "| tag_name | `%s` |\n", info.TagName)
	fmt.Fprintf(&b, "| image_tag | `%s` |\n", info.ImageTag)
	fmt.Fprintf(&b, "| image_repository | `%s` |\n", info.ImageRepository)
	fmt.Fprintf(&b, "| short_sha | `%s` |\n", info.ShortSHA)

	return h.Writer.WriteSummary(b.String())
}
