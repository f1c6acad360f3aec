package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "marketplace-storefront", config.App.Name)
	assert.False(t, config.App.Debug)
	assert.Equal(t, "logs/", config.App.LogPath)
	assert.Equal(t, "http://localhost:8080/api/v1", config.API.BaseURL)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://staging.example.com/api/v1")
	t.Setenv("DEBUG", "true")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://staging.example.com/api/v1", config.API.BaseURL)
	assert.True(t, config.App.Debug)
}
