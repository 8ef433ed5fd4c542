// Package ports defines the core interfaces for the application.
package ports

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Debug logs a diagnostic message with optional key-value pairs.
	Debug(msg string, args ...any)
	// Info logs an informational message with optional key-value pairs.
	Info(msg string, args ...any)
	// Warn logs a warning with optional key-value pairs.
	Warn(msg string, args ...any)
	// Error logs an error, rendering its cause chain.
	Error(err error)
}
