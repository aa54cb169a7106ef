package nexus

import (
	"go.trai.ch/gembom/internal/core/domain"
	"go.trai.ch/gembom/internal/core/ports"
)

// Factory implements ports.RepositoryFactory.
type Factory struct {
	logger ports.Logger
}

// NewFactory creates a Factory whose clients log retries to log.
func NewFactory(log ports.Logger) *Factory {
	return &Factory{logger: log}
}

// NewRepository builds a client for cfg.
func (f *Factory) NewRepository(cfg domain.RepositoryConfig) (ports.Repository, error) {
	return NewClient(cfg, f.logger)
}
