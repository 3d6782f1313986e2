package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "taskfarm",
	Short: "Farm growth simulation engine",
	Long: "taskfarm runs farm sessions where crops grow in real time under changing weather.\n" +
		"Use `serve` to host the HTTP API or `simulate` for a deterministic headless run.",
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
