package ports

import "go.trai.ch/gembom/internal/core/domain"

// Encoder serializes resolved artifacts into a bill of materials document.
//
//go:generate mockgen -source=encoder.go -destination=mocks/mock_encoder.go -package=mocks
type Encoder interface {
	Encode(artifacts []domain.ResolvedArtifact, format domain.Format) ([]byte, error)
}
