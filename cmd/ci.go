package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cargoship-ci/cargoship/pkg/ci"
)

var ciCmd = &cobra.Command{
	Use:   "ci",
	Short: "Inspect CI provider detection and context",
}

var ciDetectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show the detected CI provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := ci.Detect()
		if p == nil {
			fmt.Printf("no CI provider detected (registered: %s)\n", strings.Join(ci.List(), ", "))
			return nil
		}
		fmt.Println(p.Name())
		return nil
	},
}

var ciContextCmd = &cobra.Command{
	Use:   "context",
	Short: "Show the CI context as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := ci.DetectOrError()
		if err != nil {
			return err
		}

		cctx, err := p.Context()
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(cctx, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	ciCmd.AddCommand(ciDetectCmd)
	ciCmd.AddCommand(ciContextCmd)
	RootCmd.AddCommand(ciCmd)
}
