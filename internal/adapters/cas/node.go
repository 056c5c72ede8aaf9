package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sassbundle/internal/build"
	"go.trai.ch/sassbundle/internal/core/ports"
)

// NodeID is the unique identifier for the artifact index factory Graft node.
const NodeID graft.ID = "adapter.artifact_index"

func init() {
	graft.Register(graft.Node[ports.IndexFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.IndexFactory, error) {
			return NewFactory(build.Version), nil
		},
	})
}
