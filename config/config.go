package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

const (
	// ConfigDirName is the per-project configuration directory
	ConfigDirName = ".osint"
	// DefaultConfigPath is where `osint config init` writes
	DefaultConfigPath = ConfigDirName + "/config.yaml"

	BackendGemini  = "gemini"
	BackendGateway = "gateway"
)

// Config represents the toolkit configuration
type Config struct {
	Generation GenerationConfig `yaml:"generation" mapstructure:"generation"`
	Catalog    CatalogConfig    `yaml:"catalog" mapstructure:"catalog"`
	Files      FilesConfig      `yaml:"files" mapstructure:"files"`
	Logging    LoggingConfig    `yaml:"logging" mapstructure:"logging"`
	UI         UIConfig         `yaml:"ui" mapstructure:"ui"`
}

// GenerationConfig selects the hosted generation API used to simulate tools
type GenerationConfig struct {
	Backend    string `yaml:"backend" mapstructure:"backend"`
	Model      string `yaml:"model" mapstructure:"model"`
	APIKey     string `yaml:"api_key" mapstructure:"api_key"`
	GatewayURL string `yaml:"gateway_url" mapstructure:"gateway_url"`
}

// CatalogConfig points at an optional catalog file replacing the built-in one
type CatalogConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// FilesConfig limits files attached to tool runs
type FilesConfig struct {
	MaxSize int64 `yaml:"max_size" mapstructure:"max_size"`
}

// LoggingConfig contains log output settings
type LoggingConfig struct {
	Debug bool   `yaml:"debug" mapstructure:"debug"`
	Dir   string `yaml:"dir" mapstructure:"dir"`
}

// UIConfig contains terminal UI settings
type UIConfig struct {
	Theme string `yaml:"theme" mapstructure:"theme"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Generation: GenerationConfig{
			Backend:    BackendGemini,
			Model:      "gemini-2.5-flash",
			APIKey:     "",
			GatewayURL: "http://localhost:8080",
		},
		Catalog: CatalogConfig{
			Path: "",
		},
		Files: FilesConfig{
			MaxSize: 20 * 1024 * 1024, // inline data limit of the Gemini API
		},
		Logging: LoggingConfig{
			Debug: false,
			Dir:   filepath.Join(ConfigDirName, "logs"),
		},
		UI: UIConfig{
			Theme: "terminal-green",
		},
	}
}

// Validate checks values that cannot be fixed by defaults
func (c *Config) Validate() error {
	switch c.Generation.Backend {
	case BackendGemini, BackendGateway:
	default:
		return fmt.Errorf("unknown generation backend %q (expected %q or %q)", c.Generation.Backend, BackendGemini, BackendGateway)
	}
	if c.Generation.Model == "" {
		return fmt.Errorf("generation.model must not be empty")
	}
	if c.Generation.Backend == BackendGateway && c.Generation.GatewayURL == "" {
		return fmt.Errorf("generation.gateway_url is required for the gateway backend")
	}
	if c.Files.MaxSize <= 0 {
		return fmt.Errorf("files.max_size must be positive")
	}
	return nil
}

// SaveConfig writes the configuration as YAML, creating parent directories
func (c *Config) SaveConfig(configPath string) error {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to flush config: %w", err)
	}

	if err := os.WriteFile(configPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
