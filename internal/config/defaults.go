package config

import "strings"

// Default model names per provider.
const (
	DefaultOpenAIModel = "gpt-4o"
	DefaultGeminiModel = "gemini-2.0-flash"
)

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 4251,
			Host: "localhost",
		},
		Generator: GeneratorConfig{
			Provider:    ProviderOpenAI,
			Timeout:     "20s",
			Temperature: 0.9,
		},
		Session: SessionConfig{
			UnlockThreshold: 3,
		},
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path: "./data/fortune",
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			Outputs: []string{"console"},
		},
	}
}

// ModelOrDefault returns the configured model, or the provider's default.
func (c *GeneratorConfig) ModelOrDefault() string {
	if c.Model != "" {
		return c.Model
	}
	if strings.EqualFold(c.Provider, ProviderGemini) {
		return DefaultGeminiModel
	}
	return DefaultOpenAIModel
}
