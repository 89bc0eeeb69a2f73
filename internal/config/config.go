package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Environment selects which base endpoint the client talks to.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds application configuration.
type Config struct {
	API  APIConfig
	User UserConfig
	UI   UIConfig
	Log  LogConfig
}

// APIConfig holds marketplace endpoint settings.
type APIConfig struct {
	Environment string
	DevBaseURL  string `mapstructure:"dev_base_url"`
	ProdBaseURL string `mapstructure:"prod_base_url"`
	TimeoutMS   int    `mapstructure:"timeout_ms"`
}

// UserConfig identifies the booking principal. A real deployment would take
// this from an auth session; here it is configuration.
type UserConfig struct {
	ID int64
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
	Timezone       string
}

// LogConfig holds log output settings. The TUI owns the terminal, so logs
// go to a file.
type LogConfig struct {
	Path string
}

// BaseURL returns the endpoint for the configured environment.
func (c Config) BaseURL() string {
	if strings.EqualFold(strings.TrimSpace(c.API.Environment), EnvProduction) {
		return c.API.ProdBaseURL
	}
	return c.API.DevBaseURL
}

// Timeout returns the per-request timeout.
func (c Config) Timeout() time.Duration {
	if c.API.TimeoutMS <= 0 {
		return 5000 * time.Millisecond
	}
	return time.Duration(c.API.TimeoutMS) * time.Millisecond
}

// Load reads configuration from file and env. Env var overrides use prefix
// SERVICEFINDER_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("api.environment", EnvDevelopment)
	v.SetDefault("api.dev_base_url", "http://localhost:3000")
	v.SetDefault("api.prod_base_url", "https://service-provider-api-iean.onrender.com")
	v.SetDefault("api.timeout_ms", 5000)
	v.SetDefault("user.id", 1)
	v.SetDefault("ui.currency_symbol", "₦")
	v.SetDefault("ui.timezone", "")
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "servicefinder", "servicefinder.log"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SERVICEFINDER_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "servicefinder"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SERVICEFINDER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
