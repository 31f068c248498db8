package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backendEnv() map[string]string {
	return map[string]string{
		"BACKEND_URL":        "https://db.example.test/rest/v1/",
		"BACKEND_API_KEY":    " anon-key ",
		"BACKEND_AUTH_TOKEN": "token-123",
	}
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(backendEnv())
	require.NoError(t, err)

	assert.Equal(t, "https://db.example.test/rest/v1", cfg.BackendURL)
	assert.Equal(t, "anon-key", cfg.BackendAPIKey)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5*time.Minute, cfg.CacheStaleTime)
	assert.Equal(t, 10*time.Minute, cfg.CacheGCTime)
	assert.Equal(t, 2, cfg.CacheRetry)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
}

func TestLoadFrom_MissingBackendValues(t *testing.T) {
	for _, key := range []string{"BACKEND_URL", "BACKEND_API_KEY", "BACKEND_AUTH_TOKEN"} {
		t.Run(key, func(t *testing.T) {
			environ := backendEnv()
			delete(environ, key)

			_, err := LoadFrom(environ)
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLoadFrom_Overrides(t *testing.T) {
	environ := backendEnv()
	environ["CACHE_STALE_TIME"] = "30s"
	environ["CACHE_RETRY"] = "0"
	environ["PORT"] = "9090"

	cfg, err := LoadFrom(environ)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.CacheStaleTime)
	assert.Equal(t, 0, cfg.CacheRetry)
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoadFrom_NegativeRetry(t *testing.T) {
	environ := backendEnv()
	environ["CACHE_RETRY"] = "-1"

	_, err := LoadFrom(environ)
	assert.Error(t, err)
}
