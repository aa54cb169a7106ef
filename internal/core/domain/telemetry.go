package domain

import "log/slog"

// ItemStatus is the lifecycle state of one item flowing through a pipeline stage.
type ItemStatus string

const (
	// ItemStatusPending indicates the item is waiting for a free slot.
	ItemStatusPending ItemStatus = "pending"
	// ItemStatusRunning indicates the item is being processed.
	ItemStatusRunning ItemStatus = "running"
	// ItemStatusCompleted indicates the item produced a value.
	ItemStatusCompleted ItemStatus = "completed"
	// ItemStatusFailed indicates the item produced an error.
	ItemStatusFailed ItemStatus = "failed"
	// ItemStatusSkipped indicates the item was not attempted because the run was cancelled.
	ItemStatusSkipped ItemStatus = "skipped"
)

// IsTerminal reports whether the status is final.
func (s ItemStatus) IsTerminal() bool {
	switch s {
	case ItemStatusCompleted, ItemStatusFailed, ItemStatusSkipped:
		return true
	default:
		return false
	}
}

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Slog converts the level to its log/slog counterpart.
func (l LogLevel) Slog() slog.Level {
	return slog.Level(l)
}
