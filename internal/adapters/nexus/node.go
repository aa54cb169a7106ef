package nexus

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gembom/internal/adapters/logger"
	"go.trai.ch/gembom/internal/core/ports"
)

// NodeID is the unique identifier for the repository factory Graft node.
const NodeID graft.ID = "adapter.nexus"

func init() {
	graft.Register(graft.Node[ports.RepositoryFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.RepositoryFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(log), nil
		},
	})
}
