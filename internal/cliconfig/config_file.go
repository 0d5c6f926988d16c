package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML
// friendly.
type FileConfig struct {
	BearerToken      string  `toml:"bearer_token"`
	GenerationAPIKey string  `toml:"generation_api_key"`
	GenerationModel  string  `toml:"generation_model"`
	FetchLimit       int     `toml:"fetch_limit"`
	HTTPTimeout      string  `toml:"http_timeout"`
	MaxAttempts      int     `toml:"max_attempts"`
	RetryBaseDelay   string  `toml:"retry_base_delay"`
	RetryMultiplier  float64 `toml:"retry_multiplier"`
	RetryMaxDelay    string  `toml:"retry_max_delay"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.tweetsight/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".tweetsight", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("bearer-token", fc.BearerToken, &cfg.BearerToken)
	s.setString("generation-api-key", fc.GenerationAPIKey, &cfg.GenerationAPIKey)
	s.setString("model", fc.GenerationModel, &cfg.GenerationModel)

	s.setInt("limit", fc.FetchLimit, &cfg.FetchLimit)
	s.setInt("max-attempts", fc.MaxAttempts, &cfg.MaxAttempts)
	s.setFloat("retry-multiplier", fc.RetryMultiplier, &cfg.RetryMultiplier)

	if err := s.setDuration("timeout", fc.HTTPTimeout, &cfg.HTTPTimeout); err != nil {
		return err
	}
	if err := s.setDuration("retry-base-delay", fc.RetryBaseDelay, &cfg.RetryBaseDelay); err != nil {
		return err
	}
	if err := s.setDuration("retry-max-delay", fc.RetryMaxDelay, &cfg.RetryMaxDelay); err != nil {
		return err
	}

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
