package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	viper "github.com/spf13/viper"
	gotenv "github.com/subosito/gotenv"
)

// EnvPrefix namespaces environment overrides, e.g. OSINT_GENERATION_MODEL
const EnvPrefix = "OSINT"

// apiKeyEnvVars are consulted, in order, when no key is configured
var apiKeyEnvVars = []string{"API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY"}

// LoadDotEnv loads KEY=VALUE pairs from the given files into the process
// environment without overriding variables that are already set. Missing
// files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := gotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// NewViper builds a viper instance seeded with the defaults, bound to
// OSINT_* environment variables and, when one exists, the config file.
// An explicit configPath must exist; the default path is optional.
func NewViper(configPath string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType("yaml")
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
		}
		return v, nil
	}

	if _, err := os.Stat(DefaultConfigPath); err == nil {
		v.SetConfigFile(DefaultConfigPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", DefaultConfigPath, err)
		}
	}
	return v, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("generation.backend", d.Generation.Backend)
	v.SetDefault("generation.model", d.Generation.Model)
	v.SetDefault("generation.api_key", d.Generation.APIKey)
	v.SetDefault("generation.gateway_url", d.Generation.GatewayURL)
	v.SetDefault("catalog.path", d.Catalog.Path)
	v.SetDefault("files.max_size", d.Files.MaxSize)
	v.SetDefault("logging.debug", d.Logging.Debug)
	v.SetDefault("logging.dir", d.Logging.Dir)
	v.SetDefault("ui.theme", d.UI.Theme)
}

// FromViper unmarshals and validates the configuration held by v
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ResolveAPIKey returns the configured credential, falling back to the
// conventional environment variables
func (c *Config) ResolveAPIKey() string {
	if c.Generation.APIKey != "" {
		return c.Generation.APIKey
	}
	for _, name := range apiKeyEnvVars {
		if key := os.Getenv(name); key != "" {
			return key
		}
	}
	return ""
}
