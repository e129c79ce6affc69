package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/commons/internal/core/domain"
	"go.trai.ch/commons/internal/core/ports"
)

const NodeID graft.ID = "adapter.conversion_store"

func init() {
	// Not cacheable: the state file lives below the current working directory.
	graft.Register(graft.Node[ports.ConversionStore]{
		ID:        NodeID,
		Cacheable: false,
		Run: func(_ context.Context) (ports.ConversionStore, error) {
			return NewStore(domain.DefaultStatePath(".")), nil
		},
	})
}
