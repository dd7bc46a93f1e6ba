package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jpalmerr/bulletinweb/internal/clientconfig"
)

const (
	// defaultShutdownTimeout bounds in-flight requests once the context is
	// cancelled.
	defaultShutdownTimeout = 5 * time.Second

	// defaultTitle is used when no custom title is configured.
	defaultTitle = "Bulletin Board"

	// renderFailedMessage is the body returned when a template fails to execute.
	renderFailedMessage = "failed to render page"
)

// Config holds the listener settings for a [Server].
type Config struct {
	// Host is the interface to bind. Empty binds all interfaces.
	Host string

	// Port is the TCP port to listen on. 0 picks a free port.
	Port int

	// Title is passed to every page as "title".
	Title string

	// ShutdownTimeout bounds graceful shutdown. Defaults to 5s.
	ShutdownTimeout time.Duration
}

// Server handles HTTP requests for the bulletin board pages.
//
// Server provides the following endpoints:
//   - GET /: Renders the "index" template with the client configuration
//   - GET /login: Renders the "login" template with the client configuration
//   - GET /static/*: Serves browser assets
//
// The server is designed for graceful shutdown via context cancellation.
type Server struct {
	source     clientconfig.Source
	pages      *Renderer
	static     fs.FS
	cfg        Config
	handler    http.Handler
	httpServer *http.Server
	addr       net.Addr
	done       chan struct{}
	started    atomic.Bool
	logger     *slog.Logger
}

// ErrAlreadyStarted is returned by [Server.Start] when the server is already
// running or has run.
var ErrAlreadyStarted = errors.New("server already started")

// NewServer creates a new HTTP [Server].
//
// Parameters:
//   - src: Source of the client configuration, consulted on every page request
//   - pages: Renderer holding the "index" and "login" templates
//   - static: Browser assets served under /static/ (may be nil)
//   - cfg: Listener settings
//   - logger: Logger for server events
//
// The server is not started until [Server.Start] is called.
func NewServer(src clientconfig.Source, pages *Renderer, static fs.FS, cfg Config, logger *slog.Logger) *Server {
	if cfg.Title == "" {
		cfg.Title = defaultTitle
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	s := &Server{
		source: src,
		pages:  pages,
		static: static,
		cfg:    cfg,
		done:   make(chan struct{}),
		logger: logger,
	}
	s.handler = s.routes()
	return s
}

// Handler returns the root HTTP handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// routes builds the router.
func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	// outermost first: every response, including recovered panics, gets an
	// id, a log line and the security headers
	r.Use(s.withRequestID)
	r.Use(s.withLogging)
	r.Use(withSecurityHeaders)
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)

	r.Get("/", s.handlePage(PageIndex))
	r.Get("/login", s.handlePage(PageLogin))

	if s.static != nil {
		r.Method(http.MethodGet, "/static/*", http.StripPrefix("/static/", staticHandler(s.static)))
	}

	return r
}

// Start begins serving HTTP requests in a background goroutine.
//
// Start is non-blocking and returns immediately after confirming the server
// is listening. The server will continue running until the context is
// cancelled, at which point it initiates a graceful shutdown bounded by the
// configured timeout. [Server.Done] is closed once shutdown completes.
//
// A Server can be started once. Returns [ErrAlreadyStarted] on a second
// call, or an error if the server fails to bind to the configured address.
// A failed bind leaves the server startable.
func (s *Server) Start(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}

	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		s.started.Store(false)
		return fmt.Errorf("failed to bind to %s: %w", addr, err)
	}
	s.addr = ln.Addr()

	s.httpServer = &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	s.logger.Info("http server listening", "address", s.addr.String())

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("http server error", "error", err)
		}
	}()

	go func() {
		defer close(s.done)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("http server shutdown error", "error", err)
			_ = s.httpServer.Close()
		}
	}()

	return nil
}

// Addr returns the address the server is bound to, or nil before
// [Server.Start] succeeds.
func (s *Server) Addr() net.Addr {
	return s.addr
}

// Done returns a channel that is closed once the server has shut down.
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// handlePage returns a handler that renders the named page with the current
// client configuration.
func (s *Server) handlePage(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := s.logger.With("page", name, "request_id", RequestIDFromContext(r.Context()))

		rec, err := s.source.Load()
		if err != nil {
			var cfgErr *clientconfig.ConfigurationError
			if errors.As(err, &cfgErr) {
				logger.Warn("client configuration incomplete", "missing", cfgErr.Missing)
			} else {
				logger.Error("failed to load client configuration", "error", err)
			}
			writeText(w, http.StatusInternalServerError, err.Error())
			return
		}

		data := map[string]any{
			"firebase_config": rec,
			"title":           s.cfg.Title,
		}

		// buffered so a failed render never sends a partial page
		var buf bytes.Buffer
		if err := s.pages.Render(&buf, name, data); err != nil {
			logger.Error("failed to render page", "error", err)
			writeText(w, http.StatusInternalServerError, renderFailedMessage)
			return
		}

		// pages embed the client configuration; keep them out of shared caches
		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := buf.WriteTo(w); err != nil {
			logger.Error("failed to write page response", "error", err)
		}
	}
}

// staticHandler serves files from fsys without directory listings.
func staticHandler(fsys fs.FS) http.Handler {
	files := http.FileServerFS(fsys)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}

// writeText writes msg as a plain-text response body.
func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, msg)
}
