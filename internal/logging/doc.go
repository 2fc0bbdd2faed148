// Package logging assembles structured slog loggers used across rainbow.
//
// It owns the console and JSON handlers, maps configured levels onto slog
// levels, and provides a no-op logger for tests and library callers that do
// not care about log output. Components tag their lines through
// NewComponentLogger so console output reads "readers: located EXTRACT1D".
package logging
