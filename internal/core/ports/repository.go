package ports

import (
	"context"

	"go.trai.ch/gembom/internal/core/domain"
)

// Repository checks artifacts against a private package repository.
//
//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks
type Repository interface {
	// Verify reports whether the artifact's exact name and version are published.
	// Failures are returned as *domain.VerificationError.
	Verify(ctx context.Context, artifact domain.ResolvedArtifact) (domain.VerificationResult, error)
}

// RepositoryFactory builds a Repository for the effective run configuration.
type RepositoryFactory interface {
	NewRepository(cfg domain.RepositoryConfig) (Repository, error)
}
