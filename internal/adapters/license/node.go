package license

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gembom/internal/core/ports"
)

// NodeID is the unique identifier for the license classifier Graft node.
const NodeID graft.ID = "adapter.license"

func init() {
	graft.Register(graft.Node[ports.LicenseClassifier]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LicenseClassifier, error) {
			return New(), nil
		},
	})
}
