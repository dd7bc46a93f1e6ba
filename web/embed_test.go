package web

import (
	"io/fs"
	"strings"
	"testing"
)

func TestTemplates_ContainsPages(t *testing.T) {
	for _, name := range []string{"layout.html", "index.html", "login.html"} {
		data, err := fs.ReadFile(Templates(), name)
		if err != nil {
			t.Errorf("ReadFile(%q) error = %v", name, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestTemplates_DefinePageNames(t *testing.T) {
	for name, define := range map[string]string{
		"index.html":  `{{define "index"}}`,
		"login.html":  `{{define "login"}}`,
		"layout.html": `{{define "firebase_config"}}`,
	} {
		data, err := fs.ReadFile(Templates(), name)
		if err != nil {
			t.Fatalf("ReadFile(%q) error = %v", name, err)
		}
		if !strings.Contains(string(data), define) {
			t.Errorf("%s should contain %s", name, define)
		}
	}
}

func TestStatic_FirebaseConfigScript(t *testing.T) {
	data, err := fs.ReadFile(Static(), "js/firebase_config.js")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "window.FIREBASE_CONFIG") {
		t.Error("firebase_config.js should initialise from window.FIREBASE_CONFIG")
	}

	for _, name := range []string{"js/board.js", "js/login.js"} {
		if _, err := fs.Stat(Static(), name); err != nil {
			t.Errorf("Stat(%q) error = %v", name, err)
		}
	}
}
