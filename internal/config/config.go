package config

import (
	"time"
)

// StructuredConfig is the top-level configuration for the TV application.
// Values are merged from environment variables, command-line flags, and an
// optional JSON file; earlier sources win for non-zero fields and built-in
// defaults fill whatever remains.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the reported version and the
	// optional branding logo served to the paired device.
	App App `envPrefix:"APP_"`

	// Server holds the pairing server's candidate port range and timeouts.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the addon store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Fetcher holds the addon-manifest fetcher settings.
	Fetcher Fetcher `envPrefix:"FETCHER_"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// populated via the CONFIG environment variable or the -c/-config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogoPath points to an image file served at GET /logo during pairing.
	// Empty disables the endpoint (it answers 404).
	// Env: APP_LOGO_PATH
	LogoPath string `env:"LOGO_PATH"`
}

// Server holds settings for the embedded pairing HTTP server.
type Server struct {
	// PortFrom and PortTo bound the candidate port range, inclusive. The
	// bootstrap binds the first free port; exhausting the range fails the
	// pairing attempt.
	// Env: SERVER_PORT_FROM / SERVER_PORT_TO
	PortFrom int `env:"PORT_FROM"`
	PortTo   int `env:"PORT_TO"`

	// RequestTimeout caps a single inbound request (e.g. "30s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds settings for the local addon store.
type Storage struct {
	// DSN is the SQLite database path holding the ordered addon list.
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`
}

// Fetcher holds settings for the addon-manifest fetcher.
type Fetcher struct {
	// Timeout caps a single manifest request (e.g. "10s").
	// Env: FETCHER_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all sources in priority order (first non-zero value
// wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
