package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir replicates testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestInitConfigDefaults(t *testing.T) {
	t.Setenv("CARGOSHIP_CONFIG_PATH", "")
	chdir(t, t.TempDir())

	cfg, err := InitConfig()
	require.NoError(t, err)

	assert.Equal(t, "Info", cfg.Logs.Level)
	assert.Equal(t, "/dev/stderr", cfg.Logs.File)
	assert.True(t, cfg.CI.Outputs)
	assert.Empty(t, cfg.Image.Suffix)
	assert.True(t, cfg.Perf.Enabled)
}

func TestInitConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	configYAML := `
logs:
  level: Debug
image:
  suffix: "-distroless"
  registry: ghcr.io
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cargoship.yaml"), []byte(configYAML), 0o644))

	t.Setenv("CARGOSHIP_CONFIG_PATH", "")
	chdir(t, dir)

	cfg, err := InitConfig()
	require.NoError(t, err)

	assert.Equal(t, "Debug", cfg.Logs.Level)
	assert.Equal(t, "-distroless", cfg.Image.Suffix)
	assert.Equal(t, "ghcr.io", cfg.Image.Registry)
	// Unset keys keep their defaults.
	assert.Equal(t, "/dev/stderr", cfg.Logs.File)
}

func TestInitConfigEnvConfigPath(t *testing.T) {
	dir := t.TempDir()
	configYAML := "ci:\n  provider: github-actions\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cargoship.yaml"), []byte(configYAML), 0o644))

	t.Setenv("CARGOSHIP_CONFIG_PATH", dir)
	chdir(t, t.TempDir())

	cfg, err := InitConfig()
	require.NoError(t, err)
	assert.Equal(t, "github-actions", cfg.CI.Provider)
}

func TestInitConfigEnvOverride(t *testing.T) {
	t.Setenv("CARGOSHIP_CONFIG_PATH", "")
	t.Setenv("CARGOSHIP_LOGS_LEVEL", "Warning")
	t.Setenv("CARGOSHIP_IMAGE_SUFFIX", "-alpine")
	chdir(t, t.TempDir())

	cfg, err := InitConfig()
	require.NoError(t, err)

	assert.Equal(t, "Warning", cfg.Logs.Level)
	assert.Equal(t, "-alpine", cfg.Image.Suffix)
}

func TestInitConfigMissingRequiredEnvPath(t *testing.T) {
	t.Setenv("CARGOSHIP_CONFIG_PATH", filepath.Join(t.TempDir(), "does-not-exist"))
	chdir(t, t.TempDir())

	_, err := InitConfig()
	assert.Error(t, err)
}
