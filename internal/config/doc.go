// Package config provides configuration management for chord-compiler.
//
// This package handles:
//   - Loading and saving settings from JSON or TOML files
//   - Default configuration values
//   - Environment variable overrides
//   - Conversion to the ultimateguitar.Site the pipeline runs against
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Writes to bin/outfile{time}, e.g. bin/outfile03_04_05
//	// One song at a time, no request rate limit
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.toml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//	settings.ApplyEnv()
//
// The file format follows the extension: ".toml" is read as TOML, anything
// else as JSON.
//
// # Saving Settings
//
//	settings.OutputDir = "/custom/path"
//	err := settings.Save("/path/to/config.json")
//
// # Configuration Options
//
// Settings includes options for:
//   - Output folder and run log file names
//   - Site URLs, page delimiters and search result markers
//   - HTTP user agent, timeout and request rate
//   - Concurrent song limit
package config
