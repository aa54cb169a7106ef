package ports

import "go.trai.ch/gembom/internal/core/domain"

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(err error, args ...any)

	// SetLevel changes the minimum level of emitted records.
	SetLevel(level domain.LogLevel)
}
