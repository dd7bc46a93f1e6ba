package bulletinweb

import "github.com/jpalmerr/bulletinweb/internal/clientconfig"

// FirebaseConfig is the client configuration handed to every page.
//
// It is only ever complete: all six fields are non-empty.
type FirebaseConfig = clientconfig.Record

// ConfigurationError reports missing Firebase environment variables.
// Use [errors.As] to inspect the Missing names.
type ConfigurationError = clientconfig.ConfigurationError

// LoadFirebaseConfig builds a [FirebaseConfig] from the process environment.
func LoadFirebaseConfig() (FirebaseConfig, error) {
	return clientconfig.FromEnv()
}

// RequiredEnv returns the environment variables that must be set, in the
// order they are reported when missing.
func RequiredEnv() []string {
	return clientconfig.EnvVars()
}
