package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application's configuration. It is loaded once at
// startup and passed by injection; nothing reads it as a global.
type Config struct {
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Auth struct {
		Secret     string `yaml:"secret"`
		Algorithm  string `yaml:"algorithm"`
		TTLMinutes int    `yaml:"token_ttl_minutes"`
	} `yaml:"auth"`
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
}

// TokenTTL returns the configured token lifetime, defaulting to 30 minutes.
func (c *Config) TokenTTL() time.Duration {
	if c.Auth.TTLMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(c.Auth.TTLMinutes) * time.Minute
}

// LoadConfig reads configuration from the specified YAML file.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.Auth.Secret == "" {
		return fmt.Errorf("auth.secret is required")
	}
	if c.Auth.Algorithm == "" {
		c.Auth.Algorithm = "HS256"
	}
	// Tokens are signed with a process-wide symmetric key; only the
	// HMAC family is accepted.
	if !strings.HasPrefix(c.Auth.Algorithm, "HS") {
		return fmt.Errorf("unsupported auth.algorithm %q", c.Auth.Algorithm)
	}
	if c.Database.URL == "" {
		return fmt.Errorf("database.url is required")
	}
	return nil
}
