package bulletinweb

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/jpalmerr/bulletinweb/internal/clientconfig"
)

// bwConfig holds mutable state during BulletinWeb construction.
type bwConfig struct {
	title           string
	host            string
	port            int
	logger          *slog.Logger
	lookup          clientconfig.LookupFunc
	cachedConfig    bool
	templates       fs.FS
	shutdownTimeout time.Duration
}

// Option configures a [BulletinWeb] instance.
//
// Option implements the functional options pattern, allowing optional
// configuration to be passed to [New] in a type-safe, extensible way.
// Options return an error if validation fails.
type Option func(*bwConfig) error

// WithPort sets the HTTP port.
//
// Defaults to 5001. Port 0 lets the operating system choose a free port;
// use [BulletinWeb.Addr] to find it once the server is listening.
//
// Returns an error if the port is outside the range 0-65535.
func WithPort(port int) Option {
	return func(cfg *bwConfig) error {
		if port < 0 || port > 65535 {
			return errors.New("port must be between 0 and 65535")
		}
		cfg.port = port
		return nil
	}
}

// WithHost sets the interface the server binds to.
//
// Defaults to 127.0.0.1. An empty host binds all interfaces.
func WithHost(host string) Option {
	return func(cfg *bwConfig) error {
		cfg.host = host
		return nil
	}
}

// WithTitle sets the title shown in the browser tab and page header.
//
// If not specified, defaults to "Bulletin Board".
func WithTitle(title string) Option {
	return func(cfg *bwConfig) error {
		cfg.title = title
		return nil
	}
}

// WithLogger sets a custom [slog.Logger] for the BulletinWeb instance.
//
// If not specified, [slog.Default] is used.
//
// Returns an error if the logger is nil.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *bwConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// WithLookup replaces the environment lookup used to build the Firebase
// configuration. It has the contract of [os.LookupEnv], which is the default.
//
// Example:
//
//	vals := map[string]string{"FIREBASE_API_KEY": "...", ...}
//	bw, err := bulletinweb.New(
//	    bulletinweb.WithLookup(func(k string) (string, bool) {
//	        v, ok := vals[k]
//	        return v, ok
//	    }),
//	)
//
// Returns an error if lookup is nil.
func WithLookup(lookup func(key string) (string, bool)) Option {
	return func(cfg *bwConfig) error {
		if lookup == nil {
			return errors.New("lookup cannot be nil")
		}
		cfg.lookup = lookup
		return nil
	}
}

// WithCachedConfig controls when the Firebase configuration is built.
//
// By default (false) it is rebuilt on every request, so environment changes
// apply without a restart. When true it is built once at startup and the
// same result, including a configuration error, is served until restart.
func WithCachedConfig(cached bool) Option {
	return func(cfg *bwConfig) error {
		cfg.cachedConfig = cached
		return nil
	}
}

// WithTemplates replaces the embedded page templates.
//
// fsys must contain "*.html" files at its root that together define the
// "index" and "login" templates. Both receive "firebase_config" and "title".
// The templates are parsed by [BulletinWeb.Start].
//
// Returns an error if fsys is nil.
func WithTemplates(fsys fs.FS) Option {
	return func(cfg *bwConfig) error {
		if fsys == nil {
			return errors.New("templates filesystem cannot be nil")
		}
		cfg.templates = fsys
		return nil
	}
}

// WithTemplatesDir is [WithTemplates] for a directory on disk.
//
// Returns an error if dir does not exist or is not a directory.
func WithTemplatesDir(dir string) Option {
	return func(cfg *bwConfig) error {
		info, err := os.Stat(dir)
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return errors.New("templates path is not a directory: " + dir)
		}
		cfg.templates = os.DirFS(dir)
		return nil
	}
}

// WithShutdownTimeout bounds how long in-flight requests may run after the
// context passed to [BulletinWeb.Start] is cancelled. Defaults to 5 seconds.
//
// Returns an error if the duration is zero or negative.
func WithShutdownTimeout(d time.Duration) Option {
	return func(cfg *bwConfig) error {
		if d <= 0 {
			return errors.New("shutdown timeout must be positive")
		}
		cfg.shutdownTimeout = d
		return nil
	}
}
