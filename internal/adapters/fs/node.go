package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/commons/internal/core/ports"
)

const (
	WalkerNodeID        graft.ID = "adapter.fs.walker"
	ResolverNodeID      graft.ID = "adapter.fs.resolver"
	DocumentStoreNodeID graft.ID = "adapter.fs.document_store"
)

func init() {
	// Walker Node (Concrete implementation needed by Resolver)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	// Resolver Node
	graft.Register(graft.Node[ports.InputResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.InputResolver, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(walker), nil
		},
	})

	// Document Store Node
	graft.Register(graft.Node[ports.DocumentStore]{
		ID:        DocumentStoreNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DocumentStore, error) {
			return NewDocumentStore(), nil
		},
	})
}
