// Package schema defines the cargoship configuration structure.
// The configuration is loaded from `cargoship.yaml`, `CARGOSHIP_*`
// environment variables, and command-line flags (in that order of
// increasing precedence) by pkg/config.
package schema

// Configuration is the top-level cargoship configuration.
type Configuration struct {
	Logs  Logs  `yaml:"logs" json:"logs" mapstructure:"logs"`
	CI    CI    `yaml:"ci" json:"ci" mapstructure:"ci"`
	Image Image `yaml:"image" json:"image" mapstructure:"image"`
	Perf  Perf  `yaml:"perf" json:"perf" mapstructure:"perf"`
}

// Logs configures logging behavior.
type Logs struct {
	// Level is one of Off, Trace, Debug, Info, Warning.
	Level string `yaml:"level" json:"level" mapstructure:"level"`

	// File is the log destination: /dev/stderr (default), /dev/stdout,
	// or a file path.
	File string `yaml:"file" json:"file" mapstructure:"file"`

	// NoColor disables color output.
	NoColor bool `yaml:"no_color" json:"no_color" mapstructure:"no_color"`
}

// CI configures CI provider integration.
type CI struct {
	// Provider forces a specific provider instead of auto-detection.
	Provider string `yaml:"provider" json:"provider" mapstructure:"provider"`

	// Outputs controls whether resolved values are published as CI step
	// outputs when a provider is detected.
	Outputs bool `yaml:"outputs" json:"outputs" mapstructure:"outputs"`
}

// Image configures container image naming defaults.
type Image struct {
	// Suffix is appended to the last path segment of the repository name
	// when building the image repository name (e.g. "-distroless").
	Suffix string `yaml:"suffix" json:"suffix" mapstructure:"suffix"`

	// Registry is the registry host prefixed to the image repository when
	// rendering a full image reference (e.g. "ghcr.io").
	Registry string `yaml:"registry" json:"registry" mapstructure:"registry"`
}

// Perf configures call tracking.
type Perf struct {
	Enabled bool `yaml:"enabled" json:"enabled" mapstructure:"enabled"`
}
