package rubygems

import (
	"go.trai.ch/gembom/internal/core/domain"
	"go.trai.ch/gembom/internal/core/ports"
)

// Factory implements ports.RegistryFactory.
type Factory struct {
	licenses ports.LicenseClassifier
	logger   ports.Logger
}

// NewFactory creates a Factory sharing the given collaborators with every client.
func NewFactory(licenses ports.LicenseClassifier, log ports.Logger) *Factory {
	return &Factory{licenses: licenses, logger: log}
}

// NewRegistry builds a fresh client, and therefore a fresh listing memo, for one run.
func (f *Factory) NewRegistry(cfg domain.RegistryConfig) (ports.Registry, error) {
	return NewClient(cfg, f.licenses, f.logger)
}
