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
		Use:   "treestore",
		Short: "Observable state tree server",
		Long: `treestore serves one observable state tree over HTTP and WebSocket.

Action code mutates the tree through PATCH /state (or in process through the
store API); subscribers name the dotted paths they depend on and receive an
event only when the value at their path actually changes. Mutations within
one batching window coalesce into a single flush.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
