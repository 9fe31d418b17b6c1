// Package interfaces defines the core interfaces used throughout the bot.
// These interfaces allow for dependency injection and make the pipeline testable.
package interfaces

// Logger defines the interface for logging throughout the application.
// The production implementation is backed by logrus.
//
// Example usage:
//
//	logger.Info("Rendered instructions", map[string]interface{}{
//		"date": "05.01.2025",
//		"mode": "full",
//	})
//
//	logger.Warn("Instructions request failed", map[string]interface{}{
//		"kind":  "transport",
//		"error": err.Error(),
//	})
type Logger interface {
	// Debug logs a debug level message with optional structured fields.
	Debug(msg string, fields map[string]interface{})

	// Info logs an info level message with optional structured fields.
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning level message with optional structured fields.
	// Per-request failures are reported at this level.
	Warn(msg string, fields map[string]interface{})

	// Error logs an error level message with optional structured fields.
	Error(msg string, fields map[string]interface{})
}
