package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/commons/internal/adapters/cas"    //nolint:depguard // Wired in app layer
	"go.trai.ch/commons/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/commons/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/commons/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/commons/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node. Holds loaded settings and the conversion store, so it is
	// rebuilt on every execution.
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: false,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.DocumentStoreNodeID,
			cas.NodeID,
			fs.ResolverNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: false,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	documents, err := graft.Dep[ports.DocumentStore](ctx)
	if err != nil {
		return nil, err
	}

	records, err := graft.Dep[ports.ConversionStore](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.InputResolver](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, documents, records, resolver, log), nil
}
