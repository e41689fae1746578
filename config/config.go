// Package config holds the Playfair server configuration.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the server configuration.
type Config struct {
	// Address and port for the HTTP listener
	ListenAddr string `yaml:"listen_addr"`
	Port       int    `yaml:"port"`

	// Directory served at "/" (index.html, script.js, ...)
	StaticDir string `yaml:"static_dir"`

	// CORS origins; "*" allows any origin
	AllowedOrigins []string `yaml:"allowed_origins"`

	// Upper bound for API request bodies
	MaxBodyBytes int64 `yaml:"max_body_bytes"`

	// Longest accepted passphrase
	MaxKeyLength int `yaml:"max_key_length"`

	// gin mode: debug, release, test
	GinMode string `yaml:"gin_mode"`

	// Grace period for in-flight requests on shutdown
	ShutdownTimeoutSeconds int `yaml:"shutdown_timeout_seconds"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		ListenAddr:             "",
		Port:                   8080,
		StaticDir:              "web",
		AllowedOrigins:         []string{"*"},
		MaxBodyBytes:           1 << 20,
		MaxKeyLength:           256,
		GinMode:                "release",
		ShutdownTimeoutSeconds: 5,
	}
}

// LoadConfig reads a YAML file over the defaults and applies environment
// overrides. An empty path yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides fields from PORT and STATIC_DIR.
func (c *Config) ApplyEnv() error {
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		c.Port = p
	}
	if dir := os.Getenv("STATIC_DIR"); dir != "" {
		c.StaticDir = dir
	}
	return nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.MaxBodyBytes < 1 {
		return fmt.Errorf("max_body_bytes must be positive")
	}
	if c.MaxKeyLength < 1 {
		return fmt.Errorf("max_key_length must be positive")
	}
	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("allowed_origins must not be empty")
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("gin_mode must be debug, release or test (got %q)", c.GinMode)
	}
	if c.ShutdownTimeoutSeconds < 0 {
		return fmt.Errorf("shutdown_timeout_seconds must not be negative")
	}
	return nil
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ListenAddr, c.Port)
}

// SaveConfig writes the configuration as YAML.
func SaveConfig(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
