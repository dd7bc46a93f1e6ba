package bulletinweb

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/jpalmerr/bulletinweb/internal/clientconfig"
	"github.com/jpalmerr/bulletinweb/internal/server"
	"github.com/jpalmerr/bulletinweb/web"
)

const (
	// defaultPort avoids 5000, which a local iOS client may already use.
	defaultPort            = 5001
	defaultHost            = "127.0.0.1"
	defaultShutdownTimeout = 5 * time.Second
)

// BulletinWeb serves the bulletin board and login pages.
//
// Every page request assembles the Firebase client configuration and hands
// it to the page template. It is created using [New] with functional options
// and started with [BulletinWeb.Start].
//
// The typical lifecycle is:
//
//	bw, err := bulletinweb.New(bulletinweb.WithPort(5001))
//	if err != nil {
//	    slog.Error("failed to create bulletinweb", "error", err)
//	    os.Exit(1)
//	}
//
//	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer cancel()
//
//	bw.Start(ctx) // blocks until context cancelled
//
// The caller controls the lifecycle via the context. Cancel the context to
// trigger graceful shutdown.
type BulletinWeb struct {
	title           string
	host            string
	port            int
	logger          *slog.Logger
	lookup          clientconfig.LookupFunc
	cachedConfig    bool
	templates       fs.FS
	shutdownTimeout time.Duration

	mu        sync.Mutex
	addr      net.Addr
	ready     chan struct{}
	readyOnce sync.Once
}

// New creates a new [BulletinWeb] instance with the given options.
//
// All options have defaults:
//   - Host: 127.0.0.1
//   - Port: 5001
//   - Configuration: rebuilt from the process environment on every request
//   - Templates: the embedded index and login pages
//
// Returns an error if any option is invalid.
//
// Example:
//
//	bw, err := bulletinweb.New(
//	    bulletinweb.WithPort(8080),
//	    bulletinweb.WithTitle("Team Board"),
//	)
func New(opts ...Option) (*BulletinWeb, error) {
	cfg := &bwConfig{
		host:            defaultHost,
		port:            defaultPort,
		templates:       web.Templates(),
		shutdownTimeout: defaultShutdownTimeout,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// default to slog.Default() if no logger provided
	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &BulletinWeb{
		title:           cfg.title,
		host:            cfg.host,
		port:            cfg.port,
		logger:          logger,
		lookup:          cfg.lookup,
		cachedConfig:    cfg.cachedConfig,
		templates:       cfg.templates,
		shutdownTimeout: cfg.shutdownTimeout,
		ready:           make(chan struct{}),
	}, nil
}

// Start parses the page templates, binds the listener and serves requests.
//
// Start is a blocking call that runs until the provided context is
// cancelled, then waits for in-flight requests to finish (bounded by the
// shutdown timeout). An incomplete Firebase configuration does not prevent
// startup: it is logged, and pages answer 500 until it is fixed.
//
// Returns nil on graceful shutdown. Returns an error if the templates are
// invalid or the listener cannot be bound.
func (bw *BulletinWeb) Start(ctx context.Context) error {
	// check if context already cancelled
	if ctx.Err() != nil {
		return nil
	}

	pages, err := server.NewRenderer(bw.templates)
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	src := bw.source()
	if _, err := src.Load(); err != nil {
		bw.logger.Warn("firebase configuration incomplete, pages will answer 500", "error", err.Error())
	}

	httpServer := server.NewServer(src, pages, web.Static(), server.Config{
		Host:            bw.host,
		Port:            bw.port,
		Title:           bw.title,
		ShutdownTimeout: bw.shutdownTimeout,
	}, bw.logger)

	if err := httpServer.Start(ctx); err != nil {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	bw.mu.Lock()
	bw.addr = httpServer.Addr()
	bw.mu.Unlock()
	bw.readyOnce.Do(func() { close(bw.ready) })

	bw.logger.Info("bulletin board available",
		"url", fmt.Sprintf("http://%s", httpServer.Addr()),
		"cached_config", bw.cachedConfig,
	)

	<-ctx.Done()
	<-httpServer.Done()
	bw.logger.Info("bulletinweb stopped")
	return nil
}

// source returns the configuration source selected by the options.
func (bw *BulletinWeb) source() clientconfig.Source {
	if bw.cachedConfig {
		return clientconfig.NewStaticSource(bw.lookup)
	}
	return clientconfig.NewEnvSource(bw.lookup)
}

// Ready returns a channel that is closed once [BulletinWeb.Start] is
// listening.
func (bw *BulletinWeb) Ready() <-chan struct{} {
	return bw.ready
}

// Addr returns the bound listener address, or nil before the server is
// listening. With port 0 this reports the port actually chosen.
func (bw *BulletinWeb) Addr() net.Addr {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	return bw.addr
}

// Port returns the configured HTTP port.
func (bw *BulletinWeb) Port() int {
	return bw.port
}

// Host returns the configured bind host.
func (bw *BulletinWeb) Host() string {
	return bw.host
}

// Title returns the configured page title. Empty means the default title.
func (bw *BulletinWeb) Title() string {
	return bw.title
}

// CachedConfig reports whether the configuration is built once at startup
// instead of on every request.
func (bw *BulletinWeb) CachedConfig() bool {
	return bw.cachedConfig
}
