// Package config loads poe's TOML configuration file and supplies
// defaults when no file exists.
package config
