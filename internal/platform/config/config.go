package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port               string
	RatesFile          string
	StaticDir          string
	IsProduction       bool
	LogLevel           slog.Level
	CORSAllowedOrigins []string
	EnableMetrics      bool
	EnableSwagger      bool
}

// Keys understood by LoadConfig. They double as environment variable names.
const (
	KeyPort               = "PORT"
	KeyRatesFile          = "RATES_FILE"
	KeyStaticDir          = "STATIC_DIR"
	KeyIsProduction       = "IS_PRODUCTION"
	KeyLogLevel           = "LOG_LEVEL"
	KeyCORSAllowedOrigins = "CORS_ALLOWED_ORIGINS"
	KeyEnableMetrics      = "ENABLE_METRICS"
	KeyEnableSwagger      = "ENABLE_SWAGGER"
)

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyPort, "8020")
	v.SetDefault(KeyRatesFile, "rates.json")
	v.SetDefault(KeyStaticDir, "public")
	v.SetDefault(KeyIsProduction, false)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyCORSAllowedOrigins, "*")
	v.SetDefault(KeyEnableMetrics, true)
	v.SetDefault(KeyEnableSwagger, true)
}

// LoadConfig loads configuration from environment variables and .env file if present.
// Values already set on v (for example bound command line flags) take precedence.
func LoadConfig(v *viper.Viper) (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	SetDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Port:          strings.TrimSpace(v.GetString(KeyPort)),
		RatesFile:     strings.TrimSpace(v.GetString(KeyRatesFile)),
		StaticDir:     strings.TrimSpace(v.GetString(KeyStaticDir)),
		IsProduction:  v.GetBool(KeyIsProduction),
		EnableMetrics: v.GetBool(KeyEnableMetrics),
		EnableSwagger: v.GetBool(KeyEnableSwagger),
	}

	if cfg.Port == "" {
		return nil, fmt.Errorf("%s must not be empty", KeyPort)
	}
	if cfg.RatesFile == "" {
		return nil, fmt.Errorf("%s must not be empty", KeyRatesFile)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", KeyLogLevel, err)
	}

	for _, origin := range strings.Split(v.GetString(KeyCORSAllowedOrigins), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.IsProduction {
		// no swagger in prod
		cfg.EnableSwagger = false
	}

	return cfg, nil
}

// Addr is the listen address derived from Port.
func (c *Config) Addr() string {
	return ":" + c.Port
}
