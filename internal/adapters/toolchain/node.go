package toolchain

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/aotc/internal/core/ports"
)

// NodeID is the unique identifier for the host resolver Graft node.
const NodeID graft.ID = "adapter.host_resolver"

func init() {
	graft.Register(graft.Node[ports.HostResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.HostResolver, error) {
			return NewHostResolver(), nil
		},
	})
}
