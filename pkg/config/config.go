package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds settings for the pngtool CLI and inspection service.
type Config struct {
	Bind      string  `yaml:"bind"`
	Port      int     `yaml:"port"`
	APIKey    string  `yaml:"api_key"`
	ReportDir string  `yaml:"report_dir"`
	Limits    Limits  `yaml:"limits"`
	Logging   Logging `yaml:"logging"`
}

// Limits bounds what the service will accept.
type Limits struct {
	// MaxUploadBytes caps the size of an uploaded file. Zero means the
	// default cap.
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`
}

// Logging contains logging configuration.
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultMaxUploadBytes is the upload cap applied when none is configured.
const DefaultMaxUploadBytes = 64 << 20

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		Bind:      "127.0.0.1",
		Port:      8424,
		ReportDir: "./reports",
		Limits: Limits{
			MaxUploadBytes: DefaultMaxUploadBytes,
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from the specified path.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if config.Limits.MaxUploadBytes <= 0 {
		config.Limits.MaxUploadBytes = DefaultMaxUploadBytes
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path.
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfigPath returns the default configuration path for the current
// platform.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./pngtool.yaml"
	}
	return filepath.Join(homeDir, ".config", "pngtool", "config.yaml")
}
