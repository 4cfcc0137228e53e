// Package config provides configuration loading and defaults for unraidctl.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ServerConfig holds connection details for the Unraid GraphQL API.
type ServerConfig struct {
	// Address is the hostname or IP of the Unraid server. Required.
	Address string `yaml:"address"`
	Port    int    `yaml:"port"`
	APIKey  string `yaml:"api_key"`
	// Timeout is the HTTP request timeout in seconds.
	Timeout int `yaml:"timeout"`
	// Direct skips redirect discovery and pins requests to the literal
	// address.
	Direct bool `yaml:"direct"`
}

// AuditConfig controls audit logging of mutating operations.
type AuditConfig struct {
	Enabled bool   `yaml:"enabled"`
	LogPath string `yaml:"log_path"`
}

// Config is the top-level configuration structure for unraidctl.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Audit  AuditConfig  `yaml:"audit"`
}

// LoadConfig reads and parses a YAML configuration file from the given path.
// It returns a pointer to the populated Config and any error encountered.
// On error, nil is returned for the config pointer.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// DefaultConfig returns a new Config populated with default values. There is
// deliberately no default address or API key; both must be supplied
// explicitly by flag, environment variable, or config file.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    80,
			Timeout: 15,
		},
	}
}

// DefaultConfigPath returns the conventional config file location under the
// user's config directory, or an empty string if it cannot be determined.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "unraidctl", "config.yaml")
}

// LoadDotEnv loads a .env file from the working directory into the process
// environment if one exists. Missing files are not an error.
func LoadDotEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	return godotenv.Load()
}

// ApplyEnvOverrides updates cfg in place with values from environment
// variables. Recognized variables:
//   - UNRAID_ADDRESS overrides cfg.Server.Address
//   - UNRAID_PORT overrides cfg.Server.Port
//   - UNRAID_API_KEY overrides cfg.Server.APIKey
//   - UNRAID_TIMEOUT overrides cfg.Server.Timeout
//   - UNRAID_DIRECT overrides cfg.Server.Direct
func ApplyEnvOverrides(cfg *Config) {
	if addr := os.Getenv("UNRAID_ADDRESS"); addr != "" {
		cfg.Server.Address = addr
	}
	if port := os.Getenv("UNRAID_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	if key := os.Getenv("UNRAID_API_KEY"); key != "" {
		cfg.Server.APIKey = key
	}
	if timeout := os.Getenv("UNRAID_TIMEOUT"); timeout != "" {
		if t, err := strconv.Atoi(timeout); err == nil {
			cfg.Server.Timeout = t
		}
	}
	if direct := os.Getenv("UNRAID_DIRECT"); direct != "" {
		if d, err := strconv.ParseBool(direct); err == nil {
			cfg.Server.Direct = d
		}
	}
}

// Validate checks that the configuration is complete enough to contact the
// server. It is called before any network action.
func (c *Config) Validate() error {
	if c.Server.Address == "" {
		return fmt.Errorf("config: server address is required (flag --address or UNRAID_ADDRESS)")
	}
	if c.Server.APIKey == "" {
		return fmt.Errorf("config: API key is required (flag --api-key or UNRAID_API_KEY)")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: port %d is out of range", c.Server.Port)
	}
	return nil
}

// BaseURL returns the base server URL without the /graphql path.
func (c *Config) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", c.Server.Address, c.Server.Port)
}
