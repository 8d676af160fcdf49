package config

import (
	"fmt"
	"time"
)

// ClientApp holds client application settings derived from the shared
// structured config.
type ClientApp struct {
	// Email is the default account email.
	Email string
	// Version is the client version string.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the vaultward server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientStorage groups local storage backend settings.
type ClientStorage struct {
	// SessionPath is the session record file path.
	SessionPath string
	// CachePath is the blob cache database path.
	CachePath string
	// UseKeyring selects the OS keychain for the session record.
	UseKeyring bool
}

// ClientWorkers contains background worker settings.
type ClientWorkers struct {
	// HealthInterval defines how often the connectivity probe runs.
	HealthInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the server address and timeouts.
	Adapter ClientAdapter
	// Storage contains local storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Email:   cfg.App.Email,
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			SessionPath: cfg.Storage.SessionPath,
			CachePath:   cfg.Storage.CachePath,
			UseKeyring:  cfg.Storage.UseKeyring,
		},
		Workers: ClientWorkers{HealthInterval: cfg.Workers.HealthInterval},
	}

	return clientCfg, clientCfg.validate()
}
