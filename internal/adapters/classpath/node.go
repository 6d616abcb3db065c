package classpath

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/aotc/internal/adapters/fs"
	"go.trai.ch/aotc/internal/core/ports"
)

// NodeID is the unique identifier for the class resolver factory Graft node.
const NodeID graft.ID = "adapter.classpath"

func init() {
	graft.Register(graft.Node[ports.ClassResolverFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.WalkerNodeID},
		Run: func(ctx context.Context) (ports.ClassResolverFactory, error) {
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(walker), nil
		},
	})
}
