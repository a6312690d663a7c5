package errors

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func noColorConfig() FormatterConfig {
	cfg := DefaultFormatterConfig()
	cfg.Color = "never"
	return cfg
}

func TestFormatNil(t *testing.T) {
	assert.Empty(t, Format(nil, DefaultFormatterConfig()))
}

func TestFormatPlainError(t *testing.T) {
	out := Format(errors.New("something broke"), noColorConfig())
	assert.Equal(t, "something broke", out)
}

func TestFormatIncludesHints(t *testing.T) {
	err := Build(errors.New("something broke")).
		WithHint("try --help").
		Err()

	out := Format(err, noColorConfig())
	assert.Contains(t, out, "something broke")
	assert.Contains(t, out, "try --help")
}

func TestFormatWrapsLongMessages(t *testing.T) {
	msg := strings.Repeat("word ", 40)
	out := Format(errors.New(msg), noColorConfig())

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(line), DefaultMaxLineLength)
	}
}

func TestFormatVerboseIncludesContextAndTrace(t *testing.T) {
	err := Build(errors.New("something broke")).
		WithContext("field", "release_tag").
		Err()

	cfg := noColorConfig()
	cfg.Verbose = true

	out := Format(err, cfg)
	assert.Contains(t, out, "release_tag")
	assert.Contains(t, out, "something broke")
}
