package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"token_prefix_length": 12,
			"password_min_length": 8,
			"default_page_size": 10,
			"max_page_size": 50
		},
		"storage": {
			"db": { "driver": "sqlite", "dsn": "file:api.db", "query_timeout": "3s", "migrate": true },
			"cache": { "redis_address": "localhost:6379", "ttl": "1m" }
		},
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s",
			"auth_rate_limit": 2.5,
			"auth_rate_burst": 10
		},
		"events": { "amqp_url": "amqp://localhost", "exchange": "tokens" },
		"workers": { "last_used_buffer": 64 },
		"log": { "level": "warn" }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 12, cfg.App.TokenPrefixLength)
	assert.Equal(t, 8, cfg.App.PasswordMinLength)
	assert.Equal(t, 10, cfg.App.DefaultPageSize)
	assert.Equal(t, 50, cfg.App.MaxPageSize)

	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "file:api.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 3*time.Second, cfg.Storage.DB.QueryTimeout)
	assert.True(t, cfg.Storage.DB.Migrate)
	assert.Equal(t, "localhost:6379", cfg.Storage.Cache.RedisAddress)
	assert.Equal(t, time.Minute, cfg.Storage.Cache.TTL)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.InDelta(t, 2.5, cfg.Server.AuthRateLimit, 0.0001)
	assert.Equal(t, 10, cfg.Server.AuthRateBurst)

	assert.Equal(t, "amqp://localhost", cfg.Events.AMQPURL)
	assert.Equal(t, "tokens", cfg.Events.Exchange)
	assert.Equal(t, 64, cfg.Workers.LastUsedBuffer)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app": {`), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad-duration.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"server": {"request_timeout": "forever"}}`), 0o600))

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestDuration_JSON(t *testing.T) {
	var fromString Duration
	require.NoError(t, json.Unmarshal([]byte(`"1m30s"`), &fromString))
	assert.Equal(t, Duration(90*time.Second), fromString)

	var fromNumber Duration
	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &fromNumber))
	assert.Equal(t, Duration(time.Second), fromNumber)

	out, err := json.Marshal(Duration(2 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"2s"`, string(out))
}
