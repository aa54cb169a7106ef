package cyclonedx

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gembom/internal/core/ports"
)

// NodeID is the unique identifier for the document encoder Graft node.
const NodeID graft.ID = "adapter.cyclonedx"

func init() {
	graft.Register(graft.Node[ports.Encoder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Encoder, error) {
			return New(), nil
		},
	})
}
