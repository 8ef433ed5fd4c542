package selection

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/graphcache/internal/core/ports"
)

// NodeID is the unique identifier for the selection compiler Graft node.
const NodeID graft.ID = "adapter.selection"

func init() {
	graft.Register(graft.Node[ports.SelectionCompiler]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SelectionCompiler, error) {
			return New(), nil
		},
	})
}
