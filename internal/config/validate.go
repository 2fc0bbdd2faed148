package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateReader(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateReader() error {
	switch c.Reader.Format {
	case "auto", "atoca", "x1dints":
	default:
		return fmt.Errorf("reader.format must be one of auto, atoca, x1dints (got %q)", c.Reader.Format)
	}
	if c.Reader.Order < 1 {
		return errors.New("reader.order must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Style {
	case "auto", "rounded", "light", "plain":
		return nil
	default:
		return fmt.Errorf("output.style must be one of auto, rounded, light, plain (got %q)", c.Output.Style)
	}
}
