package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database   DatabaseConfig
	Catalog    CatalogConfig
	Navigation NavigationConfig
	Auth       AuthConfig
	Log        LogConfig
	UI         UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// CatalogConfig points at an optional TOML gate file. When Path is empty the
// catalog stored in the database is used.
type CatalogConfig struct {
	Path string
}

// NavigationConfig tunes the carousel.
type NavigationConfig struct {
	TapWindowMS int    `mapstructure:"tap_window_ms"`
	LoginRoute  string `mapstructure:"login_route"`
}

// AuthConfig holds session token settings.
type AuthConfig struct {
	TokenSecret string        `mapstructure:"token_secret"`
	TokenTTL    time.Duration `mapstructure:"token_ttl"`
	Issuer      string
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string
	Format string
	Path   string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	ShowRegions bool `mapstructure:"show_regions"`
}

// TapWindow returns the double-tap window as a duration.
func (n NavigationConfig) TapWindow() time.Duration {
	return time.Duration(n.TapWindowMS) * time.Millisecond
}

// Validate rejects settings the navigator cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Navigation.TapWindowMS <= 0 {
		errs = append(errs, fmt.Errorf("navigation.tap_window_ms must be positive, got %d", c.Navigation.TapWindowMS))
	}
	if strings.TrimSpace(c.Navigation.LoginRoute) == "" {
		errs = append(errs, errors.New("navigation.login_route is required"))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("auth.token_ttl must be positive, got %s", c.Auth.TokenTTL))
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		errs = append(errs, errors.New("database.path is required"))
	}
	return errors.Join(errs...)
}

// Load reads configuration from file and env. Env var overrides use prefix GATENAV_.
func Load() (Config, error) {
	v := viper.New()

	home := os.Getenv("HOME")
	v.SetDefault("database.path", filepath.Join(home, ".local", "share", "gatenav", "gatenav.db"))
	v.SetDefault("catalog.path", "")
	v.SetDefault("navigation.tap_window_ms", 300)
	v.SetDefault("navigation.login_route", "login")
	v.SetDefault("auth.token_secret", "")
	v.SetDefault("auth.token_ttl", "12h")
	v.SetDefault("auth.issuer", "gatenav")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "gatenav", "gatenav.log"))
	v.SetDefault("ui.show_regions", true)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("GATENAV_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "gatenav"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("GATENAV")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

// Save writes the non-secret settings to disk, creating the config directory
// if needed. The token secret is left to env vars or a hand-edited file.
func Save(cfg Config) error {
	path := os.Getenv("GATENAV_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "gatenav", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("catalog.path", cfg.Catalog.Path)
	v.Set("navigation.tap_window_ms", cfg.Navigation.TapWindowMS)
	v.Set("navigation.login_route", cfg.Navigation.LoginRoute)
	v.Set("auth.token_ttl", cfg.Auth.TokenTTL.String())
	v.Set("auth.issuer", cfg.Auth.Issuer)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.format", cfg.Log.Format)
	v.Set("log.path", cfg.Log.Path)
	v.Set("ui.show_regions", cfg.UI.ShowRegions)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
