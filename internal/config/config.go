package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type AppConfig struct {
	API    *APIConfig    `mapstructure:"api"`
	SQLite *SQLiteConfig `mapstructure:"sqlite"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	BaseURL            string   `mapstructure:"base_url"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

// Load reads the YAML config file at path. Every key can be overridden
// with a SCRATCHBOOK_ prefixed environment variable, e.g. SCRATCHBOOK_API_PORT.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yml")
	v.SetEnvPrefix("SCRATCHBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api.environment", "development")
	v.SetDefault("api.port", "8080")
	v.SetDefault("api.base_url", "localhost:8080")
	v.SetDefault("sqlite.path", "scratchbook.db")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	conf := AppConfig{}
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	return &conf, nil
}
