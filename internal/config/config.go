package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application's configuration.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	JWT struct {
		Secret   string `yaml:"secret"`
		Issuer   string `yaml:"issuer"`
		Audience string `yaml:"audience"`
		TTLHours int    `yaml:"ttl_hours"`
	} `yaml:"jwt"`
	Uploads struct {
		Dir        string `yaml:"dir"`
		MaxSizeMiB int64  `yaml:"max_size_mib"`
	} `yaml:"uploads"`
}

// MaxFileSize returns the upload size limit in bytes.
func (c *Config) MaxFileSize() int64 {
	return c.Uploads.MaxSizeMiB * 1024 * 1024
}

// TokenTTL returns the session token lifetime.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWT.TTLHours) * time.Hour
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

	if config.Server.Port == "" {
		config.Server.Port = ":8080"
	}
	if config.JWT.TTLHours == 0 {
		config.JWT.TTLHours = 24
	}
	if config.Uploads.Dir == "" {
		config.Uploads.Dir = "uploads"
	}
	if config.Uploads.MaxSizeMiB == 0 {
		config.Uploads.MaxSizeMiB = 5
	}
	if config.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt secret must be set in config")
	}

	return config, nil
}
