// Package cmd implements the cargoship CLI commands.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cargoship-ci/cargoship/pkg/config"
	log "github.com/cargoship-ci/cargoship/pkg/logger"
	"github.com/cargoship-ci/cargoship/pkg/perf"
	"github.com/cargoship-ci/cargoship/pkg/schema"
	"github.com/cargoship-ci/cargoship/pkg/ui/theme"
)

// cliConfig holds the loaded configuration, shared by all commands.
var cliConfig schema.Configuration

var (
	flagLogsLevel string
	flagNoColor   bool
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "cargoship",
	Short: "CI build metadata toolkit",
	Long:  `Cargoship resolves build and version metadata for CI workflow runs and publishes it as step outputs for downstream build and tag steps`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true

		var err error
		cliConfig, err = config.InitConfig()
		if err != nil {
			return err
		}

		if flagLogsLevel != "" {
			cliConfig.Logs.Level = flagLogsLevel
		}
		if flagNoColor {
			cliConfig.Logs.NoColor = true
		}

		return setupLogger(&cliConfig)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}

// Cleanup releases resources before exit. Called from main on both normal
// exit and signal-triggered shutdown.
func Cleanup() {
	for _, s := range perf.Snapshot() {
		log.Debug("perf", "func", s.Name, "count", s.Count, "total", s.Total, "max", s.Max)
	}
}

// setupLogger builds the global logger from the configuration.
func setupLogger(cfg *schema.Configuration) error {
	level, err := log.ParseLogLevel(cfg.Logs.Level)
	if err != nil {
		return err
	}

	w, _, err := log.OpenLogFile(cfg.Logs.File)
	if err != nil {
		return err
	}

	logger := log.NewLogger(log.GetCharmLoggerWithOutput(w))
	if cfg.Logs.NoColor {
		logger.SetStyles(theme.GetLogStylesNoColor())
	}
	logger.SetLogLevel(level)
	log.SetDefault(logger)

	return nil
}

func init() {
	RootCmd.PersistentFlags().StringVar(&flagLogsLevel, "logs-level", "", "Log level: Trace, Debug, Info, Warning, Off")
	RootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable color output")
}
