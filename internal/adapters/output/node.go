package output

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/aotc/internal/core/ports"
)

// NodeID is the unique identifier for the default output strategy Graft node.
const NodeID graft.ID = "adapter.output.console"

func init() {
	graft.Register(graft.Node[ports.OutputStrategy]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.OutputStrategy, error) {
			return NewConsole(), nil
		},
	})
}
