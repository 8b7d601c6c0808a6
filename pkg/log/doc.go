// Package log provides structured trace logging for the LwM2M client core.
//
// This package defines the Logger interface and Event types for capturing
// what the core decided: registry changes, object registration, events
// delivered to the application, wake delays and notification lock
// transitions. It is separate from operational logging (slog). The trace is
// machine-readable and meant for offline analysis.
//
// # Basic Usage
//
//	// For development: log to console via slog
//	cfg.ProtocolLogger = log.NewSlogAdapter(slog.Default())
//
//	// For production: write to binary file
//	cfg.ProtocolLogger, _ = log.NewFileLogger("/var/log/lwm2m/client.mlog")
//
//	// Both: use MultiLogger
//	cfg.ProtocolLogger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Trace files are a sequence of CBOR encoded events (.mlog). The lwm2m-log
// CLI tool views them and prints statistics.
package log
