package cnesbeds

import (
	"os"
	"strconv"
	"time"
)

// Environment variables read at process start.
const (
	EnvMaxAttempts = "MAX_REQUEST_RETRIES"
	EnvTimeout     = "REQUEST_TIMEOUT"
)

// Config holds the two settings shared by every fetch call site: the
// retry budget and the per-request timeout. Loaded once at process start
// and passed explicitly into the components that need it.
type Config struct {
	// MaxAttempts is the maximum number of request attempts per URL.
	MaxAttempts int

	// Timeout bounds each individual request. There is no timeout on an
	// overall run, only on individual requests.
	Timeout time.Duration
}

// Validate returns an error unless both settings are positive.
func (c Config) Validate() error {
	if c.MaxAttempts <= 0 {
		return Errorf(EINVALID, "%s must be a positive integer", EnvMaxAttempts)
	}
	if c.Timeout <= 0 {
		return Errorf(EINVALID, "%s must be a positive integer of seconds", EnvTimeout)
	}
	return nil
}

// ConfigFromEnv reads the configuration from the environment. A missing
// or non-integer value is a startup-time fatal condition.
func ConfigFromEnv() (Config, error) {
	attempts, err := requiredInt(EnvMaxAttempts)
	if err != nil {
		return Config{}, err
	}
	seconds, err := requiredInt(EnvTimeout)
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		MaxAttempts: attempts,
		Timeout:     time.Duration(seconds) * time.Second,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func requiredInt(name string) (int, error) {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		return 0, Errorf(EINVALID, "%s environment variable required", name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, Errorf(EINVALID, "%s must be an integer, got %q", name, raw)
	}
	return v, nil
}
