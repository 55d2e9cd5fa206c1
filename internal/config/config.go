package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Generator providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config represents the application configuration.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Generator GeneratorConfig `toml:"generator"`
	Session   SessionConfig   `toml:"session"`
	Storage   StorageConfig   `toml:"storage"`
	Logging   LoggingConfig   `toml:"logging"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

// GeneratorConfig selects the generative backend. An empty APIKey keeps the
// portal in template-only mode.
type GeneratorConfig struct {
	Provider    string  `toml:"provider"`
	APIKey      string  `toml:"api_key"`
	BaseURL     string  `toml:"base_url"`
	Model       string  `toml:"model"`
	Timeout     string  `toml:"timeout"`
	Temperature float64 `toml:"temperature"`
}

// GetTimeout parses and returns the backend call timeout.
func (c *GeneratorConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 20 * time.Second
	}
	return d
}

// Enabled reports whether a credential is configured.
func (c *GeneratorConfig) Enabled() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// SessionConfig contains session flow settings.
type SessionConfig struct {
	// UnlockThreshold is the collection count that unlocks the reward.
	UnlockThreshold int `toml:"unlock_threshold"`
}

// StorageConfig contains storage layer settings.
type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig contains BadgerDB-specific settings.
type BadgerConfig struct {
	Path string `toml:"path"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level      string   `toml:"level"`
	Outputs    []string `toml:"outputs"`
	FilePath   string   `toml:"file_path"`
	MaxSizeMB  int      `toml:"max_size_mb"`
	MaxBackups int      `toml:"max_backups"`
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		err = toml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies FORTUNE_* and provider credential environment
// variables to config.
func applyEnvOverrides(config *Config) {
	if port := os.Getenv("FORTUNE_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("FORTUNE_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if provider := os.Getenv("FORTUNE_GENERATOR_PROVIDER"); provider != "" {
		config.Generator.Provider = provider
	}
	if timeout := os.Getenv("FORTUNE_GENERATOR_TIMEOUT"); timeout != "" {
		config.Generator.Timeout = timeout
	}

	// Conventional provider variables, so an existing OpenAI-style deployment
	// environment works unchanged.
	switch strings.ToLower(config.Generator.Provider) {
	case ProviderGemini:
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			config.Generator.APIKey = key
		}
		if model := os.Getenv("GEMINI_MODEL"); model != "" {
			config.Generator.Model = model
		}
	default:
		if key := os.Getenv("OPENAI_API_KEY"); key != "" {
			config.Generator.APIKey = key
		}
		if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
			config.Generator.BaseURL = baseURL
		}
		if model := os.Getenv("OPENAI_MODEL"); model != "" {
			config.Generator.Model = model
		}
	}

	if key := os.Getenv("FORTUNE_GENERATOR_API_KEY"); key != "" {
		config.Generator.APIKey = key
	}
	if baseURL := os.Getenv("FORTUNE_GENERATOR_BASE_URL"); baseURL != "" {
		config.Generator.BaseURL = baseURL
	}
	if model := os.Getenv("FORTUNE_GENERATOR_MODEL"); model != "" {
		config.Generator.Model = model
	}

	if threshold := os.Getenv("FORTUNE_UNLOCK_THRESHOLD"); threshold != "" {
		if n, err := strconv.Atoi(threshold); err == nil {
			config.Session.UnlockThreshold = n
		}
	}
	if badgerPath := os.Getenv("FORTUNE_BADGER_PATH"); badgerPath != "" {
		config.Storage.Badger.Path = badgerPath
	}
	if level := os.Getenv("FORTUNE_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if outputs := os.Getenv("FORTUNE_LOG_OUTPUTS"); outputs != "" {
		config.Logging.Outputs = splitList(outputs)
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// Validate returns a list of configuration problems. An empty list means the
// configuration is usable.
func (c *Config) Validate() []string {
	var issues []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		issues = append(issues, fmt.Sprintf("server.port must be between 1 and 65535 (got %d)", c.Server.Port))
	}

	switch strings.ToLower(c.Generator.Provider) {
	case ProviderOpenAI, ProviderGemini:
	default:
		issues = append(issues, fmt.Sprintf("generator.provider must be %q or %q (got %q)", ProviderOpenAI, ProviderGemini, c.Generator.Provider))
	}

	if c.Generator.Timeout != "" {
		if _, err := time.ParseDuration(c.Generator.Timeout); err != nil {
			issues = append(issues, fmt.Sprintf("generator.timeout is not a duration: %q", c.Generator.Timeout))
		}
	}

	if c.Session.UnlockThreshold <= 0 {
		issues = append(issues, fmt.Sprintf("session.unlock_threshold must be positive (got %d)", c.Session.UnlockThreshold))
	}

	if strings.TrimSpace(c.Storage.Badger.Path) == "" {
		issues = append(issues, "storage.badger.path is required")
	}

	return issues
}

// BaseURL returns the portal's own address.
func (c *Config) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", c.Server.Host, c.Server.Port)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
