package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sail/internal/core/ports"
)

// NodeID is the unique identifier for the configuration resolver Graft node.
const NodeID graft.ID = "adapter.config_resolver"

func init() {
	graft.Register(graft.Node[ports.ConfigResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigResolver, error) {
			return NewResolver(), nil
		},
	})
}
