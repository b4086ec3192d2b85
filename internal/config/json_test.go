package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {"version": "2.0.0", "logo_path": "/logo.png"},
		"server": {"port_from": 9200, "port_to": 9210, "request_timeout": "1m"},
		"storage": {"dsn": "/var/lib/addonpair/addons.db"},
		"fetcher": {"timeout": "8s"}
	}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "/logo.png", cfg.App.LogoPath)
	assert.Equal(t, 9200, cfg.Server.PortFrom)
	assert.Equal(t, 9210, cfg.Server.PortTo)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, "/var/lib/addonpair/addons.db", cfg.Storage.DSN)
	assert.Equal(t, 8*time.Second, cfg.Fetcher.Timeout)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeTempJSON(t, `{"fetcher": {"timeout": 5000000000}}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Fetcher.Timeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/no/such/file.json")

	assert.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeTempJSON(t, "{broken")

	_, err := parseJSON(path)

	assert.Error(t, err)
}

func TestParseJSON_BadDurationString(t *testing.T) {
	path := writeTempJSON(t, `{"server": {"request_timeout": "soon"}}`)

	_, err := parseJSON(path)

	assert.Error(t, err)
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)

	b, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))

	var back Duration
	require.NoError(t, back.UnmarshalJSON(b))
	assert.Equal(t, d, back)
}
