/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config loads seamctl settings from defaults, an optional YAML
// file, STDSEAM_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/codihuston/stdseam/internal/logging"
	"github.com/codihuston/stdseam/pkg/httpx"
)

// EnvPrefix prefixes environment variables, e.g. STDSEAM_HTTP_TIMEOUT
const EnvPrefix = "STDSEAM"

// Config is the complete seamctl configuration
type Config struct {
	Logging   LoggingConfig `mapstructure:"logging"`
	HTTP      HTTPConfig    `mapstructure:"http"`
	OutputDir string        `mapstructure:"output_dir"`
}

// LoggingConfig controls the logger built by logging.New
type LoggingConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// HTTPConfig controls the client built by httpx.ClientFactory
type HTTPConfig struct {
	Kind               string        `mapstructure:"kind"`
	Timeout            time.Duration `mapstructure:"timeout"`
	InsecureSkipVerify bool          `mapstructure:"insecure_skip_verify"`
	UserAgent          string        `mapstructure:"user_agent"`
	MaxRetries         int           `mapstructure:"max_retries"`
	RetryWaitMin       time.Duration `mapstructure:"retry_wait_min"`
	RetryWaitMax       time.Duration `mapstructure:"retry_wait_max"`
	RateLimit          float64       `mapstructure:"rate_limit"`
	Burst              int           `mapstructure:"burst"`
	RequestID          bool          `mapstructure:"request_id"`
	// Token is sent as a bearer token when set.
	Token string `mapstructure:"token"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:       logging.LevelInfo,
			Development: false,
		},
		HTTP: HTTPConfig{
			Kind:      httpx.KindDefault,
			Timeout:   5 * time.Minute,
			UserAgent: "seamctl",
			Burst:     1,
		},
		OutputDir: ".",
	}
}

// SetDefaults registers default values with v. Every key must have a
// default for environment variables to reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.development", defaults.Logging.Development)

	v.SetDefault("http.kind", defaults.HTTP.Kind)
	v.SetDefault("http.timeout", defaults.HTTP.Timeout)
	v.SetDefault("http.insecure_skip_verify", defaults.HTTP.InsecureSkipVerify)
	v.SetDefault("http.user_agent", defaults.HTTP.UserAgent)
	v.SetDefault("http.max_retries", defaults.HTTP.MaxRetries)
	v.SetDefault("http.retry_wait_min", defaults.HTTP.RetryWaitMin)
	v.SetDefault("http.retry_wait_max", defaults.HTTP.RetryWaitMax)
	v.SetDefault("http.rate_limit", defaults.HTTP.RateLimit)
	v.SetDefault("http.burst", defaults.HTTP.Burst)
	v.SetDefault("http.request_id", defaults.HTTP.RequestID)
	v.SetDefault("http.token", defaults.HTTP.Token)

	v.SetDefault("output_dir", defaults.OutputDir)
}

// New creates a viper instance with defaults and environment binding. A
// non-empty configFile must exist; an empty one reads ConfigFile() when
// present.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile == "" {
		configFile = ConfigFile()
		if _, err := os.Stat(configFile); errors.Is(err, os.ErrNotExist) {
			return v, nil
		}
	}
	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}
	return v, nil
}

// Load reads the configuration from v into a Config struct and validates it
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "stdseam")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".stdseam"
	}
	return filepath.Join(home, ".config", "stdseam")
}

// ConfigFile returns the path to the default config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// LoggingOptions converts the logging settings for logging.New
func (c *Config) LoggingOptions(out io.Writer) logging.Options {
	return logging.Options{
		Development: c.Logging.Development,
		Level:       c.Logging.Level,
		Output:      out,
	}
}

// AuthConfig returns bearer credentials, or nil when no token is set
func (c *HTTPConfig) AuthConfig() *httpx.AuthConfig {
	if c.Token == "" {
		return nil
	}
	return &httpx.AuthConfig{Type: httpx.AuthTypeBearer, Token: c.Token}
}

// ClientConfig converts the HTTP settings for httpx.ClientFactory
func (c *HTTPConfig) ClientConfig() *httpx.ClientConfig {
	return &httpx.ClientConfig{
		Timeout:            c.Timeout,
		InsecureSkipVerify: c.InsecureSkipVerify,
		UserAgent:          c.UserAgent,
		MaxRetries:         c.MaxRetries,
		RetryWaitMin:       c.RetryWaitMin,
		RetryWaitMax:       c.RetryWaitMax,
		RateLimit:          c.RateLimit,
		Burst:              c.Burst,
	}
}
