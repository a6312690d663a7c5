package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	log "github.com/cargoship-ci/cargoship/pkg/logger"
	"github.com/cargoship-ci/cargoship/pkg/version"
)

var checkFlag bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Print the CLI version",
	Long:    `This command prints the CLI version`,
	Example: "cargoship version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("cargoship %s on %s/%s\n", version.Version, runtime.GOOS, runtime.GOARCH)

		if checkFlag {
			latestTag, err := version.CheckForUpdate()
			if err != nil {
				log.Debug("Update check failed", "error", err)
				return nil
			}
			if latestTag != "" {
				fmt.Printf("\nA newer version is available: %s\n", latestTag)
			}
		}

		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVarP(&checkFlag, "check", "c", false, "Check for a newer release on GitHub")
	RootCmd.AddCommand(versionCmd)
}
