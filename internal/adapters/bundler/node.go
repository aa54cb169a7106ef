package bundler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gembom/internal/core/ports"
)

// NodeID is the unique identifier for the lockfile parser Graft node.
const NodeID graft.ID = "adapter.bundler"

func init() {
	graft.Register(graft.Node[ports.LockfileParser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LockfileParser, error) {
			return NewParser(), nil
		},
	})
}
