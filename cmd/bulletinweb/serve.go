package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/jpalmerr/bulletinweb"
	"github.com/jpalmerr/bulletinweb/config"
	"github.com/spf13/cobra"
)

// shutdownGrace is added to the configured shutdown timeout before the
// process gives up waiting for Start to return.
const shutdownGrace = 2 * time.Second

// serveCmd starts the bulletinweb server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the bulletinweb server.

The server will:
  - Load configuration from the YAML file, if given
  - Load the env file (default .env) without overriding set variables
  - Serve "/" and "/login" on the configured address (default 127.0.0.1:5001)

A missing Firebase variable does not stop the server: pages answer 500 with
the configuration error until it is fixed.

The server runs until interrupted (Ctrl+C) or receives SIGTERM.

Example:
  bulletinweb serve
  bulletinweb serve -c bulletinweb.yaml
  bulletinweb serve --port 8080 --env-file /etc/bulletinweb/firebase.env`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addConfigFlags(serveCmd)
	serveCmd.Flags().Int("port", 0, "HTTP port (overrides the config file)")
}

// addConfigFlags registers the flags shared by serve and validate.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "path to config file")
	cmd.Flags().String("env-file", "", "dotenv file to load (overrides the config file)")
}

// loadConfig reads the config file named by the flags and applies flag
// overrides.
//
// An env file given with --env-file is loaded before the config file is
// parsed, so its variables can feed ${VAR} patterns. The env_file named
// inside the config file is loaded later by the caller and only reaches the
// Firebase variables.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	if envFile != "" {
		if _, err := config.LoadEnvFile(envFile); err != nil {
			return nil, err
		}
	}

	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if envFile != "" {
		cfg.EnvFile = envFile
	}
	if f := cmd.Flags().Lookup("port"); f != nil && f.Changed {
		port, _ := cmd.Flags().GetInt("port")
		cfg.Port = port
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid --port: %w", err)
		}
	}

	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	loaded, err := config.LoadEnvFile(cfg.EnvFile)
	if err != nil {
		return err
	}

	logger.Info("config loaded",
		"env_file", cfg.EnvFile,
		"env_file_loaded", loaded,
		"reload_env", cfg.Reload(),
	)
	logger.Info("starting server",
		"host", cfg.Host,
		"port", cfg.Port,
	)

	bw, err := bulletinweb.New(config.BuildOptions(cfg, logger)...)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	// set up context with signal handling - cancel on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		errChan <- bw.Start(ctx)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		logger.Info("shutdown complete")
		return nil

	case <-ctx.Done():
		// signal received, wait for graceful shutdown with timeout
		timeout := cfg.ShutdownTimeout.Duration() + shutdownGrace
		select {
		case err := <-errChan:
			if err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			logger.Info("shutdown complete")
			return nil
		case <-time.After(timeout):
			logger.Warn("shutdown timed out",
				"timeout", timeout.String(),
				"action", "forcing exit",
			)
			return nil
		}
	}
}
