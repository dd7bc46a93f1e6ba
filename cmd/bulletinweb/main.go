// Package main is the entry point for the bulletinweb CLI.
//
// bulletinweb serves the bulletin board and login pages, handing each page
// the Firebase client configuration read from the environment.
//
// Usage:
//
//	bulletinweb serve                       # Start on 127.0.0.1:5001
//	bulletinweb serve -c bulletinweb.yaml   # Start with a config file
//	bulletinweb validate                    # Check config and Firebase env
//	bulletinweb version                     # Show version info
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "bulletinweb",
	Short: "Web front end for the Firebase bulletin board",
	Long: `bulletinweb serves the bulletin board ("/") and login ("/login") pages.

Each page receives the Firebase client configuration from six environment
variables, optionally loaded from a .env file:

  FIREBASE_API_KEY
  FIREBASE_AUTH_DOMAIN
  FIREBASE_PROJECT_ID
  FIREBASE_STORAGE_BUCKET
  FIREBASE_MESSAGING_SENDER_ID
  FIREBASE_APP_ID

Quick start:
  1. Put the six variables in .env
  2. Run: bulletinweb serve
  3. Open http://localhost:5001 in your browser`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this bulletinweb binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "bulletinweb %s\n", version)
		fmt.Fprintf(out, "  commit: %s\n", commit)
		fmt.Fprintf(out, "  built:  %s\n", date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
