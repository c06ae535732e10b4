package inspect

import (
	"encoding/json"
	"fmt"
	"os"
)

// ConfigFileName is the default inspector configuration file.
const ConfigFileName = "lumen.json"

// Config is the inspector configuration, read from lumen.json.
type Config struct {
	// Addr is the listen address (default: "127.0.0.1:7718").
	Addr string `json:"addr,omitempty"`

	// Title is the page title shown by the inspector.
	Title string `json:"title,omitempty"`

	// Metrics enables the /metrics endpoint.
	Metrics bool `json:"metrics,omitempty"`

	// AllowedOrigins restricts WebSocket upgrades to the listed Origin
	// headers. Empty allows same-host origins only.
	AllowedOrigins []string `json:"allowedOrigins,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Addr:    "127.0.0.1:7718",
		Title:   "lumen inspector",
		Metrics: true,
	}
}

// LoadConfig reads the configuration from path, applying defaults for
// missing fields. A missing file yields the defaults without error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultConfig().Addr
	}
	if cfg.Title == "" {
		cfg.Title = DefaultConfig().Title
	}
	return cfg, nil
}
