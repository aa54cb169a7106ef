package ports

import "go.trai.ch/gembom/internal/core/domain"

// Reporter presents run summaries to the operator.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Resolution summarizes the resolution stage.
	Resolution(result domain.Partitioned[domain.ResolvedArtifact])
	// Verification summarizes the verification stage.
	Verification(result domain.Partitioned[domain.VerificationResult])
	// Written announces the location of the generated document.
	Written(path string)
}
