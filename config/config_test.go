package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaults(t *testing.T) {
	viper.Reset()
	t.Setenv("JWT_SECRET", "unit-test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "mongodb://localhost:27017", cfg.DatabaseURL)
	assert.Equal(t, "reabilitepro", cfg.DatabaseName)
	assert.Equal(t, 100, cfg.MaxRequestsPerMin)
	assert.Equal(t, 1, cfg.RedisAuthDB)
	assert.Equal(t, 2, cfg.RedisReminderQueueDB)
	assert.Equal(t, 60, cfg.ReminderLeadMinutes)
	assert.False(t, cfg.IsProduction())
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	viper.Reset()
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	viper.Reset()
	t.Setenv("JWT_SECRET", "unit-test-secret")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.AppPort)
	assert.True(t, cfg.IsProduction())
}
