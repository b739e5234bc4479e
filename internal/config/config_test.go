package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[logs]
level = "debug"

[metrics]
enabled = true

[marketplace]
url = "http://marketplace:5000"
timeout = 3
rps = 20
burst = 5

[database]
host = "localhost"
user = "offers"
password = "from-file"
dbname = "offers"

[cache]
enabled = true
addr = "localhost:6379"
ttl = 120
`

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), sampleConfig)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 20.0, cfg.Marketplace.RPS)
	assert.Equal(t, 5, cfg.Marketplace.Burst)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 120, cfg.Cache.TTL)
	assert.Equal(t,
		"host=localhost port=5432 user=offers password=from-file dbname=offers sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("MARKETPLACE_API_TOKEN", "secret")

	cfg, err := Load(writeConfig(t, t.TempDir(), sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "secret", cfg.Marketplace.APIToken)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, sampleConfig)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("REDIS_PASSWORD=dotenv-secret\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("REDIS_PASSWORD") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dotenv-secret", cfg.Cache.Password)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(writeConfig(t, t.TempDir(), "[server]\nhttp_port = 8080\n"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	t.Setenv("HTTP_PORT", "eighty")
	_, err = Load(writeConfig(t, t.TempDir(), sampleConfig))
	assert.Error(t, err)
}
