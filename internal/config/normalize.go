package config

import "strings"

func (c *Config) normalize() {
	c.normalizeReader()
	c.normalizeLogging()
	c.normalizeOutput()
}

func (c *Config) normalizeReader() {
	c.Reader.Format = strings.ToLower(strings.TrimSpace(c.Reader.Format))
	if c.Reader.Format == "" {
		c.Reader.Format = defaultReaderFormat
	}
	if c.Reader.Order == 0 {
		c.Reader.Order = defaultReaderOrder
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Level == "warning" {
		c.Logging.Level = "warn"
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "":
		c.Logging.Format = defaultLogFormat
	case "text":
		c.Logging.Format = "console"
	}
}

func (c *Config) normalizeOutput() {
	c.Output.Style = strings.ToLower(strings.TrimSpace(c.Output.Style))
	if c.Output.Style == "" {
		c.Output.Style = defaultOutputStyle
	}
}
