package main

import (
	"fmt"
	"net"
	"strconv"

	"github.com/jpalmerr/bulletinweb"
	"github.com/jpalmerr/bulletinweb/config"
	"github.com/jpalmerr/bulletinweb/internal/clientconfig"
	"github.com/spf13/cobra"
)

// validateCmd checks the config file and the Firebase environment without
// starting the server.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and Firebase environment",
	Long: `Validate the bulletinweb configuration without starting the server.

This command parses the YAML config (if given), loads the env file, and
checks that all six FIREBASE_* variables are set. It's useful for CI/CD
pipelines or pre-deployment checks. Secret values are printed masked.

Exit codes:
  0 - Configuration is valid
  1 - Configuration is invalid (error details printed to stderr)

Example:
  bulletinweb validate
  bulletinweb validate -c bulletinweb.yaml --env-file prod.env`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	addConfigFlags(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	loaded, err := config.LoadEnvFile(cfg.EnvFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	fc, err := bulletinweb.LoadFirebaseConfig()
	if err != nil {
		return fmt.Errorf("invalid firebase configuration: %w", err)
	}

	envStatus := "not found"
	if loaded {
		envStatus = "loaded"
	}
	mode := "per-request"
	if !cfg.Reload() {
		mode = "cached at startup"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config is valid!\n")
	fmt.Fprintf(out, "  Address:     %s\n", net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)))
	fmt.Fprintf(out, "  Env file:    %s (%s)\n", cfg.EnvFile, envStatus)
	fmt.Fprintf(out, "  Config mode: %s\n", mode)
	fmt.Fprintf(out, "  Firebase:\n")

	masked := fc.Masked().Map()
	for _, key := range clientconfig.Keys() {
		fmt.Fprintf(out, "    %-18s %s\n", key+":", masked[key])
	}

	return nil
}

