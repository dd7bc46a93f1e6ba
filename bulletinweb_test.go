package bulletinweb

import (
	"errors"
	"strings"
	"testing"
)

// testEnv is a complete Firebase configuration.
var testEnv = map[string]string{
	"FIREBASE_API_KEY":             "k1",
	"FIREBASE_AUTH_DOMAIN":         "d1",
	"FIREBASE_PROJECT_ID":          "p1",
	"FIREBASE_STORAGE_BUCKET":      "b1",
	"FIREBASE_MESSAGING_SENDER_ID": "m1",
	"FIREBASE_APP_ID":              "a1",
}

func TestLoadFirebaseConfig(t *testing.T) {
	for k, v := range testEnv {
		t.Setenv(k, v)
	}

	cfg, err := LoadFirebaseConfig()
	if err != nil {
		t.Fatalf("LoadFirebaseConfig() error = %v", err)
	}

	want := FirebaseConfig{
		APIKey:            "k1",
		AuthDomain:        "d1",
		ProjectID:         "p1",
		StorageBucket:     "b1",
		MessagingSenderID: "m1",
		AppID:             "a1",
	}
	if cfg != want {
		t.Errorf("LoadFirebaseConfig() = %+v, want %+v", cfg, want)
	}
}

func TestLoadFirebaseConfig_Missing(t *testing.T) {
	for k, v := range testEnv {
		t.Setenv(k, v)
	}
	t.Setenv("FIREBASE_APP_ID", "")

	_, err := LoadFirebaseConfig()

	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("LoadFirebaseConfig() error = %v, want *ConfigurationError", err)
	}
	if len(cfgErr.Missing) != 1 || cfgErr.Missing[0] != "FIREBASE_APP_ID" {
		t.Errorf("Missing = %v, want [FIREBASE_APP_ID]", cfgErr.Missing)
	}
}

func TestRequiredEnv(t *testing.T) {
	got := RequiredEnv()
	if len(got) != len(testEnv) {
		t.Fatalf("RequiredEnv() = %v, want %d names", got, len(testEnv))
	}
	for _, name := range got {
		if _, ok := testEnv[name]; !ok {
			t.Errorf("unexpected variable %q", name)
		}
		if !strings.HasPrefix(name, "FIREBASE_") {
			t.Errorf("variable %q should have the FIREBASE_ prefix", name)
		}
	}
}

func TestSource_SelectedByOption(t *testing.T) {
	env := map[string]string{}
	for k, v := range testEnv {
		env[k] = v
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	perRequest, _ := New(WithLookup(lookup))
	cached, _ := New(WithLookup(lookup), WithCachedConfig(true))

	perRequestSrc := perRequest.source()
	cachedSrc := cached.source()

	env["FIREBASE_PROJECT_ID"] = "p2"

	rec, err := perRequestSrc.Load()
	if err != nil || rec.ProjectID != "p2" {
		t.Errorf("per-request Load() = %+v, %v; want ProjectID p2", rec, err)
	}
	rec, err = cachedSrc.Load()
	if err != nil || rec.ProjectID != "p1" {
		t.Errorf("cached Load() = %+v, %v; want ProjectID p1", rec, err)
	}
}
