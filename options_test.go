package bulletinweb

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	bw, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if bw.Port() != 5001 {
		t.Errorf("Port() = %v, want %v", bw.Port(), 5001)
	}
	if bw.Host() != "127.0.0.1" {
		t.Errorf("Host() = %q, want %q", bw.Host(), "127.0.0.1")
	}
	if bw.Title() != "" {
		t.Errorf("Title() = %q, want empty", bw.Title())
	}
	if bw.CachedConfig() {
		t.Error("CachedConfig() = true, want per-request default")
	}
	if bw.Addr() != nil {
		t.Errorf("Addr() = %v before Start, want nil", bw.Addr())
	}
}

func TestWithPort(t *testing.T) {
	tests := []struct {
		name    string
		port    int
		wantErr bool
	}{
		{"ephemeral", 0, false},
		{"low", 1, false},
		{"typical", 8080, false},
		{"max", 65535, false},
		{"negative", -1, true},
		{"too high", 65536, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bw, err := New(WithPort(tt.port))
			if (err != nil) != tt.wantErr {
				t.Fatalf("New(WithPort(%d)) error = %v, wantErr %v", tt.port, err, tt.wantErr)
			}
			if !tt.wantErr && bw.Port() != tt.port {
				t.Errorf("Port() = %d, want %d", bw.Port(), tt.port)
			}
		})
	}
}

func TestWithHost(t *testing.T) {
	bw, err := New(WithHost("0.0.0.0"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if bw.Host() != "0.0.0.0" {
		t.Errorf("Host() = %q, want %q", bw.Host(), "0.0.0.0")
	}
}

func TestWithTitle(t *testing.T) {
	bw, err := New(WithTitle("Team Board"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if bw.Title() != "Team Board" {
		t.Errorf("Title() = %q, want %q", bw.Title(), "Team Board")
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	bw, err := New(WithLogger(logger))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if bw.logger != logger {
		t.Error("WithLogger() did not set the logger")
	}
}

func TestWithLogger_Nil(t *testing.T) {
	_, err := New(WithLogger(nil))
	if err == nil {
		t.Error("New(WithLogger(nil)) expected error, got nil")
	}
}

func TestWithLookup_Nil(t *testing.T) {
	_, err := New(WithLookup(nil))
	if err == nil {
		t.Error("New(WithLookup(nil)) expected error, got nil")
	}
}

func TestWithCachedConfig(t *testing.T) {
	bw, err := New(WithCachedConfig(true))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !bw.CachedConfig() {
		t.Error("CachedConfig() = false, want true")
	}
}

func TestWithTemplates(t *testing.T) {
	fsys := fstest.MapFS{"index.html": {Data: []byte("x")}}

	bw, err := New(WithTemplates(fsys))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, ok := bw.templates.(fstest.MapFS); !ok {
		t.Errorf("templates = %T, want fstest.MapFS", bw.templates)
	}

	if _, err := New(WithTemplates(nil)); err == nil {
		t.Error("New(WithTemplates(nil)) expected error, got nil")
	}
}

func TestWithTemplatesDir(t *testing.T) {
	dir := t.TempDir()
	if _, err := New(WithTemplatesDir(dir)); err != nil {
		t.Errorf("New(WithTemplatesDir(dir)) error = %v", err)
	}

	if _, err := New(WithTemplatesDir(filepath.Join(dir, "missing"))); err == nil {
		t.Error("expected error for missing directory, got nil")
	}

	file := filepath.Join(dir, "index.html")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	_, err := New(WithTemplatesDir(file))
	if err == nil || !strings.Contains(err.Error(), "not a directory") {
		t.Errorf("WithTemplatesDir(file) error = %v, want 'not a directory'", err)
	}
}

func TestWithShutdownTimeout(t *testing.T) {
	bw, err := New(WithShutdownTimeout(2 * time.Second))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if bw.shutdownTimeout != 2*time.Second {
		t.Errorf("shutdownTimeout = %v, want 2s", bw.shutdownTimeout)
	}

	for _, d := range []time.Duration{0, -time.Second} {
		if _, err := New(WithShutdownTimeout(d)); err == nil {
			t.Errorf("New(WithShutdownTimeout(%v)) expected error, got nil", d)
		}
	}
}

func TestNew_FirstInvalidOptionWins(t *testing.T) {
	_, err := New(WithPort(-5), WithLogger(nil))
	if err == nil || !strings.Contains(err.Error(), "port") {
		t.Errorf("New() error = %v, want port error", err)
	}
}
