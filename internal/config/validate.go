package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateMirror(); err != nil {
		return err
	}
	if err := c.validateSearch(); err != nil {
		return err
	}
	if err := c.validateSynthetic(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	if c.Paths.LogDir == "" {
		return errors.New("paths.log_dir must be set")
	}
	return nil
}

func (c *Config) validateMirror() error {
	if c.Mirror.TimeoutSeconds <= 0 {
		return errors.New("mirror.timeout_seconds must be positive")
	}
	for _, candidate := range c.Mirror.URLs {
		if _, err := url.ParseRequestURI(candidate); err != nil {
			return fmt.Errorf("mirror.urls entry %q: %w", candidate, err)
		}
	}
	return nil
}

func (c *Config) validateSearch() error {
	if c.Search.BaseURL == "" {
		return errors.New("search.base_url must be set")
	}
	if _, err := url.ParseRequestURI(c.Search.BaseURL); err != nil {
		return fmt.Errorf("search.base_url: %w", err)
	}
	if len(c.Search.Regions) == 0 {
		return errors.New("search.regions must not be empty")
	}
	if len(c.Search.Keywords) == 0 {
		return errors.New("search.keywords must not be empty")
	}
	if c.Search.DelayMS < 0 {
		return errors.New("search.delay_ms must not be negative")
	}
	if c.Search.TimeoutSeconds <= 0 {
		return errors.New("search.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateSynthetic() error {
	if c.Synthetic.Count <= 0 {
		return errors.New("synthetic.count must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
