// Package pkg provides shared utilities for the neostatus controller.
//
// This package contains functionality used by the firmware core, the board
// HALs and the simulator command, including:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel errors for transport, queue and configuration failures
//   - Component identifiers for log filtering
//
// The package has no external dependencies so it can be linked into TinyGo
// firmware builds.
//
// # Logging
//
// The logging subsystem wraps [log/slog] with component context:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogInfo(pkg.ComponentLoop, "controller running", "cadence", cadence)
//
// # Errors
//
// Errors are defined as sentinel values:
//
//	if errors.Is(err, pkg.ErrTimeout) {
//	    // Host never drained the keyboard endpoint
//	}
package pkg
