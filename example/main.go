package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jpalmerr/bulletinweb"
)

// demoConfig stands in for a real Firebase project so the pages render
// without a .env file. The browser SDK will reject these values.
var demoConfig = map[string]string{
	"FIREBASE_API_KEY":             "demo-api-key",
	"FIREBASE_AUTH_DOMAIN":         "demo.firebaseapp.com",
	"FIREBASE_PROJECT_ID":          "demo",
	"FIREBASE_STORAGE_BUCKET":      "demo.appspot.com",
	"FIREBASE_MESSAGING_SENDER_ID": "000000000000",
	"FIREBASE_APP_ID":              "1:000000000000:web:demo",
}

func main() {
	// real environment wins over the demo values
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := demoConfig[key]
		return v, ok
	}

	bw, err := bulletinweb.New(
		bulletinweb.WithPort(5001),
		bulletinweb.WithTitle("Bulletin Board Demo"),
		bulletinweb.WithLookup(lookup),
	)
	if err != nil {
		slog.Error("failed to create bulletinweb", "error", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("  Bulletin Board Demo")
	fmt.Println()
	fmt.Println("  Board: http://localhost:5001/")
	fmt.Println("  Login: http://localhost:5001/login")
	fmt.Println()
	fmt.Println("  Press Ctrl+C to stop")
	fmt.Println()

	// set up context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := bw.Start(ctx); err != nil {
		slog.Error("bulletinweb error", "error", err)
		os.Exit(1)
	}
}
