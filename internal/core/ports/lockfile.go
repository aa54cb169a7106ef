package ports

import "go.trai.ch/gembom/internal/core/domain"

// LockfileParser extracts pinned sources from lockfile content.
//
//go:generate mockgen -source=lockfile.go -destination=mocks/mock_lockfile.go -package=mocks
type LockfileParser interface {
	Parse(content string) []domain.PinnedSource
}
