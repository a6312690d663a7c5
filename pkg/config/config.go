// Package config loads the cargoship configuration.
//
// Precedence, lowest to highest: built-in defaults, `cargoship.yaml` in the
// user's home directory, `cargoship.yaml` in the working directory,
// `cargoship.yaml` in the directory named by CARGOSHIP_CONFIG_PATH, and
// CARGOSHIP_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	log "github.com/cargoship-ci/cargoship/pkg/logger"
	"github.com/cargoship-ci/cargoship/pkg/perf"
	"github.com/cargoship-ci/cargoship/pkg/schema"
)

const (
	configName = "cargoship"
	configType = "yaml"
	envPrefix  = "CARGOSHIP"
)

// InitConfig loads and merges the configuration from all sources.
func InitConfig() (schema.Configuration, error) {
	defer perf.Track(nil, "config.InitConfig")()

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.SetTypeByDefaultValue(true)

	setDefaultConfiguration(v)

	wd, err := os.Getwd()
	if err != nil {
		return schema.Configuration{}, err
	}

	envConfigPath := os.Getenv(envPrefix + "_CONFIG_PATH")
	configSources := []struct {
		path     string
		required bool
		name     string
	}{
		{path: homeConfigPath(), required: false, name: "home"},
		{path: wd, required: false, name: "work-dir"},
		{path: envConfigPath, required: envConfigPath != "", name: "env"},
	}

	if err := readAndMergeConfigs(v, configSources); err != nil {
		return schema.Configuration{}, err
	}

	// Bind CARGOSHIP_* environment variables (e.g. CARGOSHIP_LOGS_LEVEL).
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg schema.Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// setDefaultConfiguration sets built-in defaults.
func setDefaultConfiguration(v *viper.Viper) {
	v.SetDefault("logs.level", string(log.LogLevelInfo))
	v.SetDefault("logs.file", "/dev/stderr")
	v.SetDefault("logs.no_color", false)
	v.SetDefault("ci.provider", "")
	v.SetDefault("ci.outputs", true)
	v.SetDefault("image.suffix", "")
	v.SetDefault("image.registry", "")
	v.SetDefault("perf.enabled", true)
}

// readAndMergeConfigs merges configuration files from each source directory.
// Missing files are fine unless the source is required.
func readAndMergeConfigs(v *viper.Viper, sources []struct {
	path     string
	required bool
	name     string
},
) error {
	for _, source := range sources {
		if source.path == "" {
			continue
		}

		file := filepath.Join(source.path, configName+"."+configType)
		if _, err := os.Stat(file); err != nil {
			if os.IsNotExist(err) && !source.required {
				continue
			}
			return err
		}

		v.SetConfigFile(file)
		if err := v.MergeInConfig(); err != nil {
			return err
		}
		log.Debug("Merged configuration", "source", source.name, "file", file)
	}
	return nil
}

// homeConfigPath returns the directory holding the per-user config file.
func homeConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", configName)
}
