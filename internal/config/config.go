// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// vaultward client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, an
// optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote server address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the local persistence backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config
	// flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Email is the default account email used when a command does not
	// specify one explicitly.
	// Env: APP_EMAIL
	Email string `env:"EMAIL"`

	// Version is the semantic version string of the running client.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds network settings for the outbound transport layer.
type Adapter struct {
	// HTTPAddress is the base address of the vaultward server
	// (e.g. "https://vault.example" or "localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single
	// outbound request (e.g. "15s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for all local storage backends.
type Storage struct {
	// SessionPath is the path of the session record file. Empty selects
	// the per-user config directory.
	// Env: STORAGE_SESSION_PATH
	SessionPath string `env:"SESSION_PATH"`

	// CachePath is the path of the local blob-cache database. Empty
	// selects the per-user config directory.
	// Env: STORAGE_CACHE_PATH
	CachePath string `env:"CACHE_PATH"`

	// UseKeyring selects the OS keychain for the session record instead
	// of the session file, when a keychain is available.
	// Env: STORAGE_USE_KEYRING
	UseKeyring bool `env:"USE_KEYRING"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// HealthInterval defines how often the connectivity worker probes
	// the server health endpoint.
	// Env: WORKERS_HEALTH_INTERVAL
	HealthInterval time.Duration `env:"HEALTH_INTERVAL"`
}

// defaults returns the lowest-priority configuration source.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Workers: Workers{
			HealthInterval: 5 * time.Minute,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the client
// configuration from all available sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
