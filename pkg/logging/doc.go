// Package logging provides structured logging for golemstat on top of
// Go's standard slog package.
//
// Log entries carry a subsystem identifier so output can be filtered by
// the part of the tool that produced it (Locator, Runner, Status, ...).
// The logger is initialized once at startup via InitForCLI; before
// initialization all log calls are suppressed.
//
// Usage:
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//
//	logging.Info("Status", "collecting node status")
//	logging.Debug("Runner", "running: %s", spec)
//	logging.Error("Status", err, "payment status unavailable")
package logging
