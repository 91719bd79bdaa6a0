package domain

import (
	"io"
)

// HistoryStore defines operations for recording and reading executions.
type HistoryStore interface {
	// Record stores one finished execution.
	Record(entry HistoryEntry) error

	// Recent returns the newest entries first, at most limit of them.
	Recent(filter HistoryFilter) ([]HistoryEntry, error)

	// Clear removes every recorded execution and returns how many were removed.
	Clear() (int64, error)

	// Close closes the store connection.
	Close() error
}

// UserStore defines operations on the users commands can run as.
type UserStore interface {
	// AddUser creates or updates a user.
	AddUser(user User) error

	// RemoveUser deletes a user. Removing an unknown user is not an error.
	RemoveUser(name string) (bool, error)

	// GetUser looks a user up by name.
	GetUser(name string) (User, bool, error)

	// ListUsers returns every user ordered by name.
	ListUsers() ([]User, error)
}

// Store is the persistent state of the console.
type Store interface {
	HistoryStore
	UserStore
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
	// Enabled returns true if styling is enabled.
	Enabled() bool

	// Success styles text as success.
	Success(text string) string

	// Warning styles text as warning.
	Warning(text string) string

	// Error styles text as error.
	Error(text string) string

	// Info styles text as info.
	Info(text string) string

	// Muted styles text as muted.
	Muted(text string) string

	// Header styles text as header.
	Header(text string) string
}

// Application represents the main application context with all dependencies.
type Application struct {
	Store  Store
	Config ConfigProvider
	Logger Logger
	Output OutputWriter
	Styler Styler
}

// CommandEnv carries what the command tree needs beyond the application:
// the log file the logs commands read and a way to empty it.
type CommandEnv struct {
	LogPath     string
	TruncateLog func() error
}
