package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"client"}, args...)
}

func TestLoadDefaults(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()
	require.Equal(t, "http://127.0.0.1:8000", cfg.APIEndpointURL)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	require.Equal(t, 5*time.Minute, cfg.RefreshInterval)
	require.Equal(t, "econdash.db", cfg.DatabasePath)
}

func TestFlagsOverrideDefaults(t *testing.T) {
	withArgs(t, "-a", "http://api.example.com", "-t", "10", "-i", "60", "-d", "/tmp/cli.db")

	cfg := LoadConfig()
	require.Equal(t, "http://api.example.com", cfg.APIEndpointURL)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
	require.Equal(t, 60*time.Second, cfg.RefreshInterval)
	require.Equal(t, "/tmp/cli.db", cfg.DatabasePath)
}

func TestJsonOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	body := `{
		"api_endpoint_url": "http://api.example.com",
		"request_timeout": "15s",
		"refresh_interval": 120000000000,
		"database_path": "/tmp/json.db"
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	withArgs(t, "-c", path)

	cfg := LoadConfig()
	require.Equal(t, "http://api.example.com", cfg.APIEndpointURL)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
	require.Equal(t, 2*time.Minute, cfg.RefreshInterval)
	require.Equal(t, "/tmp/json.db", cfg.DatabasePath)
}

func TestFlagsOverrideJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_endpoint_url": "http://from-json"}`), 0o600))
	withArgs(t, "-c", path, "-a", "http://from-flag")

	cfg := LoadConfig()
	require.Equal(t, "http://from-flag", cfg.APIEndpointURL)
}

func TestPartialJsonKeepsRemainingDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"request_timeout": "5s"}`), 0o600))
	withArgs(t, "-c", path)

	cfg := LoadConfig()
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
	require.Equal(t, "http://127.0.0.1:8000", cfg.APIEndpointURL)
	require.Equal(t, "econdash.db", cfg.DatabasePath)
}
