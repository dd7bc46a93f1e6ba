// Package config provides YAML configuration parsing for bulletinweb.
//
// This package enables running bulletinweb as a standalone binary with a
// configuration file, as an alternative to the programmatic SDK approach.
// The Firebase client settings themselves are never part of the file: they
// come from the environment, optionally pre-populated from a dotenv file
// named by env_file.
//
// Example configuration:
//
//	title: Bulletin Board
//	host: 127.0.0.1
//	port: 5001
//	env_file: .env
//	reload_env: true
//	templates_dir: ${TEMPLATES_DIR:-}
//	shutdown_timeout: 10s
//	log:
//	  level: info
//	  format: json
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultHost            = "127.0.0.1"
	defaultPort            = 5001
	defaultEnvFile         = ".env"
	defaultShutdownTimeout = 10 * time.Second
	defaultLogLevel        = "info"
	defaultLogFormat       = "json"
)

// Config is the root configuration structure for bulletinweb.
//
// It maps directly to the YAML configuration file structure.
// Use [Load], [Parse] or [Default] to create a Config.
type Config struct {
	// Title is the page title. Defaults to "Bulletin Board" if not set.
	Title string `yaml:"title"`

	// Host is the bind interface. Defaults to 127.0.0.1.
	Host string `yaml:"host"`

	// Port is the HTTP server port. Defaults to 5001.
	Port int `yaml:"port"`

	// EnvFile is a dotenv file loaded into the process environment before
	// the server starts. Variables already set are not overridden. A missing
	// file is ignored. Defaults to ".env".
	//
	// The file is read after this config has been parsed, so its variables
	// are not visible to ${VAR} patterns in this file.
	EnvFile string `yaml:"env_file"`

	// ReloadEnv rebuilds the Firebase configuration on every request when
	// true (the default). When false it is built once at startup.
	ReloadEnv *bool `yaml:"reload_env"`

	// TemplatesDir replaces the embedded page templates with *.html files
	// from this directory.
	TemplatesDir string `yaml:"templates_dir"`

	// ShutdownTimeout bounds graceful shutdown. Defaults to 10s.
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`

	// Log configures the process logger.
	Log LogConfig `yaml:"log"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error. Defaults to info.
	Level string `yaml:"level"`

	// Format is json or text. Defaults to json.
	Format string `yaml:"format"`
}

// Duration wraps time.Duration for YAML unmarshalling.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(parsed)
	return nil
}

// Duration returns the underlying time.Duration value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Reload reports whether the Firebase configuration is rebuilt per request.
func (c *Config) Reload() bool {
	return c.ReloadEnv == nil || *c.ReloadEnv
}

// envVarPattern matches ${VAR} and ${VAR:-default} patterns.
// Group 1: variable name
// Group 2: the ":-default" part (if present, indicates a default was specified)
// Group 3: the default value (may be empty for ${VAR:-})
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(:-([^}]*))?\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} patterns with environment values.
func expandEnvVars(s string) (string, error) {
	var firstErr error

	result := envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		if firstErr != nil {
			return match
		}

		submatches := envVarPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		hasDefault := len(submatches) > 2 && submatches[2] != ""
		defaultVal := ""
		if hasDefault && len(submatches) > 3 {
			defaultVal = submatches[3]
		}

		value, exists := os.LookupEnv(varName)
		if !exists {
			if hasDefault {
				return defaultVal
			}
			firstErr = fmt.Errorf("environment variable %q is not set", varName)
			return match
		}
		return value
	})

	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and parses a YAML configuration file.
//
// An empty path returns [Default]. Environment variables in the file are
// expanded before validation. Returns an error if the file cannot be read
// or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML configuration data.
//
// Environment variables are expanded in Title, Host, EnvFile and
// TemplatesDir. Defaults are applied for every unset field.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.expand(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// expand substitutes environment variables in string fields.
func (c *Config) expand() error {
	fields := []struct {
		name string
		ptr  *string
	}{
		{"title", &c.Title},
		{"host", &c.Host},
		{"env_file", &c.EnvFile},
		{"templates_dir", &c.TemplatesDir},
	}

	for _, f := range fields {
		expanded, err := expandEnvVars(*f.ptr)
		if err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
		*f.ptr = expanded
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = defaultHost
	}
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if c.EnvFile == "" {
		c.EnvFile = defaultEnvFile
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = Duration(defaultShutdownTimeout)
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = defaultLogFormat
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}

	if c.ShutdownTimeout.Duration() < 0 {
		return fmt.Errorf("shutdown_timeout cannot be negative, got %s", c.ShutdownTimeout.Duration())
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text, got %q", c.Log.Format)
	}

	if c.TemplatesDir != "" {
		info, err := os.Stat(c.TemplatesDir)
		if err != nil {
			return fmt.Errorf("templates_dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("templates_dir: %s is not a directory", c.TemplatesDir)
		}
	}

	return nil
}

// LoadEnvFile loads variables from a dotenv file into the process
// environment.
//
// Variables that are already set keep their values. A missing file is not
// an error; loaded reports whether the file was read.
func LoadEnvFile(path string) (loaded bool, err error) {
	if path == "" {
		return false, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return false, nil
	}

	if err := godotenv.Load(path); err != nil {
		return false, fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return true, nil
}
