// Package config loads, validates, and normalizes lyrsync configuration.
//
// Configuration comes from a TOML file (default ~/.config/lyrsync/config.toml
// or lyrsync.toml in the working directory), layered over built-in defaults.
// The LYRSYNC_BASE_DIR environment variable overrides paths.base_dir so the
// whole working tree can be relocated without editing the file.
package config
