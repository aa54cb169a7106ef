// Package telemetry holds telemetry implementations that need no backend.
package telemetry

import (
	"context"

	"go.trai.ch/gembom/internal/core/domain"
	"go.trai.ch/gembom/internal/core/ports"
)

// NoOp is a ports.Telemetry that records nothing.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a vertex that discards everything.
func (NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	v := noOpVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// Close does nothing.
func (NoOp) Close() error { return nil }

type noOpVertex struct{}

func (noOpVertex) Log(domain.LogLevel, string) {}

func (noOpVertex) Complete(error) {}
