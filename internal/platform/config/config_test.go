package config_test

import (
	"log/slog"
	"testing"

	"github.com/SscSPs/fx_rates_service/internal/platform/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	chdirForTest(t, t.TempDir()) // keep a developer .env out of the test

	cfg, err := config.LoadConfig(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8020", cfg.Port)
	assert.Equal(t, ":8020", cfg.Addr())
	assert.Equal(t, "rates.json", cfg.RatesFile)
	assert.Equal(t, "public", cfg.StaticDir)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.EnableMetrics)
	assert.True(t, cfg.EnableSwagger)
}

func TestLoadConfig_Environment(t *testing.T) {
	chdirForTest(t, t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("RATES_FILE", "/etc/fx/rates.yaml")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := config.LoadConfig(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/etc/fx/rates.yaml", cfg.RatesFile)
	assert.True(t, cfg.IsProduction)
	assert.False(t, cfg.EnableSwagger, "swagger is disabled in production")
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_OverridesWinOverEnvironment(t *testing.T) {
	chdirForTest(t, t.TempDir())
	t.Setenv("PORT", "9090")

	v := viper.New()
	v.Set(config.KeyPort, "7070")

	cfg, err := config.LoadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
}

func TestLoadConfig_Invalid(t *testing.T) {
	chdirForTest(t, t.TempDir())

	t.Run("bad log level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "loud")
		_, err := config.LoadConfig(viper.New())
		assert.ErrorContains(t, err, "LOG_LEVEL")
	})

	t.Run("empty rates file", func(t *testing.T) {
		t.Setenv("RATES_FILE", " ")
		_, err := config.LoadConfig(viper.New())
		assert.ErrorContains(t, err, "RATES_FILE")
	})
}
