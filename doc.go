// Package bulletinweb serves the web front end of a Firebase-backed
// bulletin board.
//
// The server renders two pages, the board itself at "/" and a login page at
// "/login". Neither page carries server-side state: each receives the six
// Firebase client settings read from the environment, and everything else
// (authentication, reading and posting messages) happens in the browser
// through the Firebase JavaScript SDK.
//
// # Quick Start
//
// Export the configuration and start the server with graceful shutdown:
//
//	// FIREBASE_API_KEY, FIREBASE_AUTH_DOMAIN, FIREBASE_PROJECT_ID,
//	// FIREBASE_STORAGE_BUCKET, FIREBASE_MESSAGING_SENDER_ID, FIREBASE_APP_ID
//	bw, _ := bulletinweb.New()
//
//	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer stop()
//
//	bw.Start(ctx) // blocks until context is cancelled
//
// # Configuration
//
// A page request with any of the six variables unset or empty is answered
// with 500 and a plain-text [ConfigurationError] message. By default the
// configuration is rebuilt on every request; [WithCachedConfig] builds it
// once at startup instead.
//
//	bw, err := bulletinweb.New(
//	    bulletinweb.WithPort(5001),
//	    bulletinweb.WithTitle("Team Board"),
//	    bulletinweb.WithCachedConfig(true),
//	)
//
// # Architecture
//
//   - internal/clientconfig: Builds and validates the client configuration
//   - internal/server: chi router, page rendering and middleware
//   - web: Embedded templates and browser scripts
//   - config: YAML configuration for the standalone binary
package bulletinweb
