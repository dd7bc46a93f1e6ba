package clientconfig

import (
	"fmt"
	"os"
	"strings"
)

// Environment variables holding the Firebase client configuration.
const (
	EnvAPIKey            = "FIREBASE_API_KEY"
	EnvAuthDomain        = "FIREBASE_AUTH_DOMAIN"
	EnvProjectID         = "FIREBASE_PROJECT_ID"
	EnvStorageBucket     = "FIREBASE_STORAGE_BUCKET"
	EnvMessagingSenderID = "FIREBASE_MESSAGING_SENDER_ID"
	EnvAppID             = "FIREBASE_APP_ID"
)

// Record is the Firebase client configuration delivered to each page.
//
// The JSON tags match the key names expected by the Firebase JavaScript
// SDK's initializeApp, so a Record can be embedded in a page script as-is.
type Record struct {
	APIKey            string `json:"apiKey"`
	AuthDomain        string `json:"authDomain"`
	ProjectID         string `json:"projectId"`
	StorageBucket     string `json:"storageBucket"`
	MessagingSenderID string `json:"messagingSenderId"`
	AppID             string `json:"appId"`
}

// field binds a Record attribute to its JSON key and environment variable.
type field struct {
	key string
	env string
	ptr func(*Record) *string
}

// fields lists the Record attributes in declaration order.
var fields = []field{
	{"apiKey", EnvAPIKey, func(r *Record) *string { return &r.APIKey }},
	{"authDomain", EnvAuthDomain, func(r *Record) *string { return &r.AuthDomain }},
	{"projectId", EnvProjectID, func(r *Record) *string { return &r.ProjectID }},
	{"storageBucket", EnvStorageBucket, func(r *Record) *string { return &r.StorageBucket }},
	{"messagingSenderId", EnvMessagingSenderID, func(r *Record) *string { return &r.MessagingSenderID }},
	{"appId", EnvAppID, func(r *Record) *string { return &r.AppID }},
}

// EnvVars returns the names of the required environment variables in
// declaration order.
func EnvVars() []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.env
	}
	return names
}

// Keys returns the client-side key names in declaration order.
func Keys() []string {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.key
	}
	return keys
}

// LookupFunc reads a single environment value. It has the same contract as
// [os.LookupEnv].
type LookupFunc func(key string) (string, bool)

// Build assembles a [Record] from lookup.
//
// A value that is unset or empty counts as missing. Present values are
// taken verbatim, whitespace included. When
// any value is missing Build returns the zero Record and a
// [*ConfigurationError] naming every missing variable. A nil lookup reads
// the process environment.
func Build(lookup LookupFunc) (Record, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	var rec Record
	var missing []string
	for _, f := range fields {
		v, ok := lookup(f.env)
		if !ok || v == "" {
			missing = append(missing, f.env)
			continue
		}
		*f.ptr(&rec) = v
	}

	if len(missing) > 0 {
		return Record{}, &ConfigurationError{Missing: missing}
	}
	return rec, nil
}

// FromEnv builds a [Record] from the process environment.
func FromEnv() (Record, error) {
	return Build(os.LookupEnv)
}

// Map returns the record as a dictionary keyed by client-side names.
func (r Record) Map() map[string]string {
	m := make(map[string]string, len(fields))
	for _, f := range fields {
		m[f.key] = *f.ptr(&r)
	}
	return m
}

// Masked returns a copy of r with the API key and app id obscured, keeping
// the last four characters visible. Other fields are not secret and are
// left untouched.
func (r Record) Masked() Record {
	r.APIKey = mask(r.APIKey)
	r.AppID = mask(r.AppID)
	return r
}

func mask(s string) string {
	const visible = 4
	r := []rune(s)
	if len(r) <= visible {
		return strings.Repeat("*", len(r))
	}
	return strings.Repeat("*", len(r)-visible) + string(r[len(r)-visible:])
}

// ConfigurationError reports that one or more required configuration values
// are missing. It is the only error kind produced by this package.
type ConfigurationError struct {
	// Missing holds the names of the unset or empty environment variables.
	Missing []string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if len(e.Missing) == 0 {
		return "firebase configuration is incomplete (check the .env file)"
	}
	return fmt.Sprintf("firebase configuration is incomplete: missing %s (check the .env file)",
		strings.Join(e.Missing, ", "))
}
