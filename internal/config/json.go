package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations for the optional config file.
type StructuredJSONConfig struct {
	App struct {
		Email   string `json:"email"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		SessionPath string `json:"session_path"`
		CachePath   string `json:"cache_path"`
		UseKeyring  bool   `json:"use_keyring"`
	} `json:"storage,omitempty"`

	Workers struct {
		HealthInterval Duration `json:"health_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err = json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Email:   jsonCfg.App.Email,
			Version: jsonCfg.App.Version,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			SessionPath: jsonCfg.Storage.SessionPath,
			CachePath:   jsonCfg.Storage.CachePath,
			UseKeyring:  jsonCfg.Storage.UseKeyring,
		},
		Workers: Workers{
			HealthInterval: time.Duration(jsonCfg.Workers.HealthInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON
// unmarshaling from strings like "1h" or "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
