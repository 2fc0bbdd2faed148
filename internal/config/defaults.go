package config

const (
	defaultReaderFormat = "auto"
	defaultReaderOrder  = 1
	defaultLogLevel     = "info"
	defaultLogFormat    = "console"
	defaultOutputStyle  = "auto"
	defaultConfigPath   = "~/.config/rainbow/config.toml"
	projectConfigName   = "rainbow.toml"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Reader: Reader{
			Format: defaultReaderFormat,
			Order:  defaultReaderOrder,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Output: Output{
			Style: defaultOutputStyle,
		},
	}
}
