package config

import "time"

// Config holds runtime settings for the dashboard CLI.
//
// Fields:
//   - APIEndpointURL: base URL of the dashboard API.
//   - RequestTimeout: fixed per-request ceiling enforced by the gateway.
//   - RefreshInterval: how often the background watcher refreshes the
//     dashboard resources.
//   - DatabasePath: sqlite file holding the sealed credential and settings.
type Config struct {
	APIEndpointURL  string
	RequestTimeout  time.Duration
	RefreshInterval time.Duration
	DatabasePath    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIEndpointURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 30 * time.Second
	c.RefreshInterval = 5 * time.Minute
	c.DatabasePath = "econdash.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
