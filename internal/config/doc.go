// Package config loads, normalizes, and validates rainbow configuration data.
//
// It supplies repository defaults, reads TOML files from an explicit path,
// the user config directory or the working directory, and canonicalises
// reader, logging and output settings so commands receive clear validation
// errors instead of surprising behaviour.
package config
