package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/aotc/internal/adapters/archive" //nolint:depguard // Wired in app layer
	"go.trai.ch/aotc/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/aotc/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/aotc/internal/adapters/output"  //nolint:depguard // Wired in app layer
	"go.trai.ch/aotc/internal/core/ports"
	"go.trai.ch/aotc/internal/engine/configure"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			configure.NodeID,
			archive.NodeID,
			logger.NodeID,
			output.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	configurator, err := graft.Dep[*configure.Configurator](ctx)
	if err != nil {
		return nil, err
	}

	archiver, err := graft.Dep[ports.Archiver](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	strategy, err := graft.Dep[ports.OutputStrategy](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, configurator, archiver, log, strategy), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
