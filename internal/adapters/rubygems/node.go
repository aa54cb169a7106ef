package rubygems

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gembom/internal/adapters/license"
	"go.trai.ch/gembom/internal/adapters/logger"
	"go.trai.ch/gembom/internal/core/ports"
)

// NodeID is the unique identifier for the registry factory Graft node.
const NodeID graft.ID = "adapter.rubygems"

func init() {
	graft.Register(graft.Node[ports.RegistryFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{license.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.RegistryFactory, error) {
			classifier, err := graft.Dep[ports.LicenseClassifier](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(classifier, log), nil
		},
	})
}
