// Package logging builds the slog loggers used across lyrsync.
//
// Two output formats exist: a compact console format for interactive runs
// and JSON for log collection. Loggers are constructed once at command
// startup and passed down; the engine packages never log.
package logging
