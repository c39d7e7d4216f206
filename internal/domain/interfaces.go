package domain

import (
	"io"
)

// WordRepository stores an imported word list in its original order.
type WordRepository interface {
	// ReplaceWords atomically replaces the stored list and records the import.
	ReplaceWords(source string, entries []WordEntry) (ImportRecord, error)

	// Words returns every stored entry in import order.
	Words() ([]WordEntry, error)

	// CountWords returns the number of stored entries.
	CountWords() (int, error)

	// LastImport returns the most recent import, if any.
	LastImport() (ImportRecord, bool, error)

	// Close closes the store connection.
	Close() error
}

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)

	// Set sets a configuration value.
	Set(key, value string) error

	// Unset removes a configuration value.
	Unset(key string) error
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// OutputWriter defines output operations.
type OutputWriter interface {
	io.Writer

	// Printf formats and prints to the output.
	Printf(format string, args ...any) (int, error)

	// Println prints a line to the output.
	Println(args ...any) (int, error)

	// Pager displays content through a pager if appropriate.
	Pager(content string)
}

// Styler defines text styling operations.
type Styler interface {
	Enabled() bool
	Success(text string) string
	Warning(text string) string
	Error(text string) string
	Info(text string) string
	Muted(text string) string
	Header(text string) string
}

// Application holds the process-wide collaborators built by the app factory.
type Application struct {
	Words  WordRepository
	Config ConfigProvider
	Logger Logger
	Output OutputWriter
	Styler Styler
}
