package domain_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/gembom/internal/core/domain"
)

func TestItemStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		name       string
		status     domain.ItemStatus
		isTerminal bool
	}{
		{"Pending", domain.ItemStatusPending, false},
		{"Running", domain.ItemStatusRunning, false},
		{"Completed", domain.ItemStatusCompleted, true},
		{"Failed", domain.ItemStatusFailed, true},
		{"Skipped", domain.ItemStatusSkipped, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isTerminal, tt.status.IsTerminal())
		})
	}
}

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    domain.LogLevel
		expected string
	}{
		{domain.LogLevelDebug, "DEBUG"},
		{domain.LogLevelInfo, "INFO"},
		{domain.LogLevelWarn, "WARN"},
		{domain.LogLevelError, "ERROR"},
		{domain.LogLevel(999), "INFO"}, // Default case
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestLogLevel_Slog(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, domain.LogLevelDebug.Slog())
	assert.Equal(t, slog.LevelInfo, domain.LogLevelInfo.Slog())
	assert.Equal(t, slog.LevelWarn, domain.LogLevelWarn.Slog())
	assert.Equal(t, slog.LevelError, domain.LogLevelError.Slog())
}
