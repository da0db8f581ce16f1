// Package cmd is the CLI front end for gzcurl
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gzcurl"
)

var rootCmd = &cobra.Command{
	Use:           "gzcurl",
	Short:         "prepare gzip-compressed JSON bodies for curl --data-raw, and recover them",
	Version:       buildString(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func buildString() string {
	return gzcurl.Version.String()
}

// Execute runs the root command; any command error is fatal.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(-1)
	}
}
