package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lumen",
		Short: "Reactive property bindings for Go object trees",
		Long: `Lumen connects reactive accessors to property-notification objects.

The CLI ships a development inspector that mounts an element tree,
serves it over HTTP, and streams diff patches to connected browsers
as the underlying bindings change.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		inspectCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
