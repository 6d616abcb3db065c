package configure

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/aotc/internal/adapters/classpath" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/aotc/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/aotc/internal/adapters/toolchain" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/aotc/internal/core/ports"
)

// NodeID is the unique identifier for the configurator Graft node.
const NodeID graft.ID = "engine.configure"

func init() {
	graft.Register(graft.Node[*Configurator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			toolchain.NodeID,
			classpath.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Configurator, error) {
			hosts, err := graft.Dep[ports.HostResolver](ctx)
			if err != nil {
				return nil, err
			}

			classes, err := graft.Dep[ports.ClassResolverFactory](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(hosts, classes, log), nil
		},
	})
}
