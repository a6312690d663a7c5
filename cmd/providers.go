package cmd

// Register CI providers.
import (
	_ "github.com/cargoship-ci/cargoship/pkg/ci/providers/github"
)
