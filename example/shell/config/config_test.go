package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsteinbrecher/remote-data-hooks-go/example/shell/config"
)

func Test_ParseEnv_Defaults(t *testing.T) {
	cfg, err := config.ParseEnv()
	require.NoError(t, err)

	assert.Equal(t, "https://jsonplaceholder.typicode.com/users", cfg.EndpointURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "userdirectory-demo/1.0", cfg.UserAgent)
	assert.Empty(t, cfg.PostgresDSN)
	assert.Empty(t, cfg.BoltPath)
	assert.False(t, cfg.ObservabilityEnabled)
}

func Test_ParseEnv_OverridesFromEnvironment(t *testing.T) {
	t.Setenv("USERDIR_ENDPOINT_URL", "http://localhost:8080/users")
	t.Setenv("USERDIR_REQUEST_TIMEOUT", "2s")
	t.Setenv("USERDIR_POSTGRES_DSN", "postgres://localhost:5432/userdir")
	t.Setenv("USERDIR_OBSERVABILITY_ENABLED", "true")

	cfg, err := config.ParseEnv()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/users", cfg.EndpointURL)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "postgres://localhost:5432/userdir", cfg.PostgresDSN)
	assert.True(t, cfg.ObservabilityEnabled)
}

func Test_ParseEnv_InvalidDurationFails(t *testing.T) {
	t.Setenv("USERDIR_REQUEST_TIMEOUT", "not-a-duration")

	_, err := config.ParseEnv()
	assert.Error(t, err)
}
