// Package config loads runtime settings from the environment. A .env file
// in the working directory is read first.
package config

import (
	"fmt"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/viper"
)

// Config is read once at startup and treated as immutable.
type Config struct {
	Port            string
	GinMode         string
	ProfileFile     string
	IconKitURL      string
	RateLimitRPS    float64
	RateLimitBurst  int
	ShutdownTimeout time.Duration
	LogLevel        string

	// TrustedProxies may set X-Forwarded-For. Empty means the remote
	// address is always the client.
	TrustedProxies []string
}

var defaults = map[string]any{
	"port":             "8080",
	"gin_mode":         "release",
	"profile_file":     "",
	"icon_kit_url":     "https://kit.fontawesome.com/6e1f268156.js",
	"rate_limit_rps":   5.0,
	"rate_limit_burst": 20,
	"shutdown_timeout": 10 * time.Second,
	"log_level":        "info",
	"trusted_proxies":  "",
}

// Load reads PORT, GIN_MODE, PROFILE_FILE, ICON_KIT_URL, RATE_LIMIT_RPS,
// RATE_LIMIT_BURST, SHUTDOWN_TIMEOUT, LOG_LEVEL and TRUSTED_PROXIES
// (comma separated).
func Load() (*Config, error) {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}
	v.AutomaticEnv()

	cfg := &Config{
		Port:            v.GetString("port"),
		GinMode:         v.GetString("gin_mode"),
		ProfileFile:     v.GetString("profile_file"),
		IconKitURL:      v.GetString("icon_kit_url"),
		RateLimitRPS:    v.GetFloat64("rate_limit_rps"),
		RateLimitBurst:  v.GetInt("rate_limit_burst"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		LogLevel:        v.GetString("log_level"),
		TrustedProxies:  splitList(v.GetString("trusted_proxies")),
	}

	if cfg.Port == "" {
		return nil, fmt.Errorf("PORT must not be empty")
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return nil, fmt.Errorf("rate limit must be positive: rps=%v burst=%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
