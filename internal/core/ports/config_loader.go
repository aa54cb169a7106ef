package ports

import "go.trai.ch/gembom/internal/core/domain"

// ConfigLoader defines the interface for loading the run configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load layers the config file at path (or the default file when path is empty)
	// and the environment over the built-in defaults.
	Load(path string) (domain.Config, error)
}
