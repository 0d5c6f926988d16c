// Package cliconfig loads and validates tweetsight's configuration from
// defaults, an optional TOML file, environment variables (including a .env
// file), and command-line flags, in ascending precedence.
package cliconfig

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lakshcode9/tweetsight/internal/retry"
)

// ErrConfigMissing is returned by Validate when required credentials are
// absent. It is the only failure that aborts the process.
var ErrConfigMissing = errors.New("missing required configuration")

// Config holds CLI configuration for tweetsight.
type Config struct {
	// BearerToken authenticates against the Twitter API (TWITTER_BEARER_TOKEN).
	BearerToken string

	// GenerationAPIKey authenticates against OpenRouter (OPENROUTER_API_KEY).
	GenerationAPIKey string

	// GenerationModel selects the OpenRouter model (OPENROUTER_MODEL).
	// Empty selects the engine's preset default.
	GenerationModel string

	// FetchLimit is the number of recent posts to analyze per handle.
	FetchLimit int

	// HTTPTimeout bounds each outbound HTTP call.
	HTTPTimeout time.Duration

	// Retry schedule for transient failures.
	MaxAttempts     int
	RetryBaseDelay  time.Duration
	RetryMultiplier float64
	RetryMaxDelay   time.Duration

	// Handle, when set, runs a single non-interactive analysis and exits.
	Handle string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		FetchLimit:      5,
		HTTPTimeout:     30 * time.Second,
		MaxAttempts:     3,
		RetryBaseDelay:  time.Second,
		RetryMultiplier: 2,
		RetryMaxDelay:   30 * time.Second,
	}
}

// Validate checks the configuration for errors. All missing required keys
// are reported together so the user can fix them in one pass.
func (c *Config) Validate() error {
	var missing []string
	if c.BearerToken == "" {
		missing = append(missing, "TWITTER_BEARER_TOKEN (bearer_token)")
	}
	if c.GenerationAPIKey == "" {
		missing = append(missing, "OPENROUTER_API_KEY (generation_api_key)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrConfigMissing, strings.Join(missing, ", "))
	}

	if c.FetchLimit < 1 {
		return fmt.Errorf("fetch limit must be positive")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http timeout must be positive")
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max attempts must be at least 1")
	}
	if c.RetryMultiplier < 1 {
		return fmt.Errorf("retry multiplier must be at least 1")
	}
	if c.RetryBaseDelay <= 0 {
		return fmt.Errorf("retry base delay must be positive")
	}

	return nil
}

// RetryPolicy converts the configured schedule into a retry.Policy.
func (c *Config) RetryPolicy() retry.Policy {
	return retry.Policy{
		MaxAttempts: c.MaxAttempts,
		BaseDelay:   c.RetryBaseDelay,
		Multiplier:  c.RetryMultiplier,
		MaxDelay:    c.RetryMaxDelay,
		Jitter:      true,
	}
}

// Masked returns a copy with credentials replaced for logging.
func (c Config) Masked() Config {
	if c.BearerToken != "" {
		c.BearerToken = "*****"
	}
	if c.GenerationAPIKey != "" {
		c.GenerationAPIKey = "*****"
	}
	return c
}

// configSetter helps apply configuration values while respecting flag
// precedence. It only applies values if the corresponding flag hasn't been
// explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloat sets a float64 value if positive and flag not changed.
func (s *configSetter) setFloat(flag string, value float64, dst *float64) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not
// changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setFloatFromString parses a string to float64 and sets the destination if
// valid. Used for environment variables that come as strings.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if f <= 0 {
		return nil
	}
	*dst = f
	return nil
}
