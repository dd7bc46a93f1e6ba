package config

import (
	"log/slog"

	"github.com/jpalmerr/bulletinweb"
)

// BuildOptions converts parsed configuration into SDK options.
//
// The logger is passed through unchanged; a nil logger leaves the SDK
// default in place. Env file loading is not performed here, see
// [LoadEnvFile].
func BuildOptions(cfg *Config, logger *slog.Logger) []bulletinweb.Option {
	opts := []bulletinweb.Option{
		bulletinweb.WithHost(cfg.Host),
		bulletinweb.WithPort(cfg.Port),
		bulletinweb.WithCachedConfig(!cfg.Reload()),
	}

	if cfg.Title != "" {
		opts = append(opts, bulletinweb.WithTitle(cfg.Title))
	}

	if cfg.TemplatesDir != "" {
		opts = append(opts, bulletinweb.WithTemplatesDir(cfg.TemplatesDir))
	}

	if cfg.ShutdownTimeout > 0 {
		opts = append(opts, bulletinweb.WithShutdownTimeout(cfg.ShutdownTimeout.Duration()))
	}

	if logger != nil {
		opts = append(opts, bulletinweb.WithLogger(logger))
	}

	return opts
}
