package cliconfig

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads a .env file into the process environment, matching the
// original agent's dotenv behavior. A missing file is not an error; existing
// environment variables are never overwritten.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// ApplyEnvConfig applies configuration from environment variables. The
// credential keys keep their original names (TWITTER_BEARER_TOKEN,
// OPENROUTER_API_KEY, OPENROUTER_MODEL); tunables use the TWEETSIGHT_ prefix.
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("bearer-token", os.Getenv("TWITTER_BEARER_TOKEN"), &cfg.BearerToken)
	s.setString("generation-api-key", os.Getenv("OPENROUTER_API_KEY"), &cfg.GenerationAPIKey)
	s.setString("model", os.Getenv("OPENROUTER_MODEL"), &cfg.GenerationModel)

	if err := s.setIntFromString("limit", os.Getenv("TWEETSIGHT_FETCH_LIMIT"), &cfg.FetchLimit); err != nil {
		return err
	}
	if err := s.setIntFromString("max-attempts", os.Getenv("TWEETSIGHT_MAX_ATTEMPTS"), &cfg.MaxAttempts); err != nil {
		return err
	}
	if err := s.setFloatFromString("retry-multiplier", os.Getenv("TWEETSIGHT_RETRY_MULTIPLIER"), &cfg.RetryMultiplier); err != nil {
		return err
	}

	if err := s.setDuration("timeout", os.Getenv("TWEETSIGHT_HTTP_TIMEOUT"), &cfg.HTTPTimeout); err != nil {
		return err
	}
	if err := s.setDuration("retry-base-delay", os.Getenv("TWEETSIGHT_RETRY_BASE_DELAY"), &cfg.RetryBaseDelay); err != nil {
		return err
	}
	if err := s.setDuration("retry-max-delay", os.Getenv("TWEETSIGHT_RETRY_MAX_DELAY"), &cfg.RetryMaxDelay); err != nil {
		return err
	}

	return nil
}
