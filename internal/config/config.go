package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config aggregates application settings that may be sourced from files or environment variables.
type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Upload   UploadConfig   `mapstructure:"upload"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

// APIConfig contains HTTP server settings.
type APIConfig struct {
	Port int    `mapstructure:"port"`
	Env  string `mapstructure:"env"`
}

// DatabaseConfig contains connection options for the SQLite store.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// AuthConfig contains the token signing secret and lifetime.
type AuthConfig struct {
	JWTSecret     string `mapstructure:"jwt_secret"`
	TokenTTLHours int    `mapstructure:"token_ttl_hours"`
}

// UploadConfig contains the image upload directory and size cap.
type UploadConfig struct {
	Dir      string `mapstructure:"dir"`
	MaxBytes int64  `mapstructure:"max_bytes"`
}

// CORSConfig lists origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowedOrigins string `mapstructure:"allowed_origins"`
}

// TokenTTL returns the configured token lifetime as a duration.
func (a AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.TokenTTLHours) * time.Hour
}

// Origins splits the comma-separated origin list, dropping empty entries.
func (c CORSConfig) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// Load reads configuration solely from environment variables (with optional defaults).
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MustLoad wraps Load and panics on failure.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.port", 3000)
	v.SetDefault("api.env", "production")
	v.SetDefault("database.path", "portfolio.db")
	v.SetDefault("auth.token_ttl_hours", 24)
	v.SetDefault("upload.dir", "uploads")
	v.SetDefault("upload.max_bytes", 5*1024*1024)
	v.SetDefault("cors.allowed_origins", "*")
}

func bindEnv(v *viper.Viper) error {
	mappings := map[string]string{
		"api.port":             "PORT",
		"api.env":              "APP_ENV",
		"database.path":        "DATABASE_PATH",
		"auth.jwt_secret":      "JWT_SECRET",
		"auth.token_ttl_hours": "TOKEN_TTL_HOURS",
		"upload.dir":           "UPLOAD_DIR",
		"upload.max_bytes":     "UPLOAD_MAX_BYTES",
		"cors.allowed_origins": "CORS_ALLOWED_ORIGINS",
	}

	for key, env := range mappings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s to %s: %w", key, env, err)
		}
	}

	return nil
}

func validate(cfg Config) error {
	if cfg.API.Port <= 0 {
		return errors.New("api port must be positive")
	}
	if cfg.Database.Path == "" {
		return errors.New("database path is required")
	}
	if cfg.Auth.JWTSecret == "" {
		return errors.New("jwt secret is required")
	}
	if cfg.Auth.TokenTTLHours <= 0 {
		return errors.New("token ttl must be positive")
	}
	if cfg.Upload.Dir == "" {
		return errors.New("upload dir is required")
	}
	if cfg.Upload.MaxBytes <= 0 {
		return errors.New("upload max bytes must be positive")
	}
	return nil
}
