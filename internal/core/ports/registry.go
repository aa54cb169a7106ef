package ports

import (
	"context"

	"go.trai.ch/gembom/internal/core/domain"
)

// Registry resolves pinned sources against the public gem registry.
//
//go:generate mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type Registry interface {
	// Resolve fetches metadata for exactly one source. Failures are returned
	// as *domain.ResolutionError tagged with the source.
	Resolve(ctx context.Context, src domain.PinnedSource) (domain.ResolvedArtifact, error)
}

// RegistryFactory builds a Registry for the effective run configuration.
type RegistryFactory interface {
	NewRegistry(cfg domain.RegistryConfig) (Registry, error)
}
