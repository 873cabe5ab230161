package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/econdash/internal/flagx"
	"github.com/dmitrijs2005/econdash/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations in
// the file may be strings like "30s" or integer nanoseconds (timex.Duration).
type JsonConfig struct {
	APIEndpointURL  string         `json:"api_endpoint_url"`
	RequestTimeout  timex.Duration `json:"request_timeout"`
	RefreshInterval timex.Duration `json:"refresh_interval"`
	DatabasePath    string         `json:"database_path"`
}

// parseJson overlays Config with values from the JSON file named by the
// -c/-config flag. Without the flag nothing is loaded. Read or unmarshal
// errors panic; intended usage is defaults -> parseJson -> parseFlags,
// where later stages override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIEndpointURL != "" {
		cfg.APIEndpointURL = jc.APIEndpointURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.RefreshInterval.Duration > 0 {
		cfg.RefreshInterval = jc.RefreshInterval.Duration
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
