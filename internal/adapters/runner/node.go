package runner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sail/internal/adapters/logger"
	"go.trai.ch/sail/internal/adapters/shell"
	"go.trai.ch/sail/internal/core/ports"
)

// NodeID is the unique identifier for the runner resolver Graft node.
const NodeID graft.ID = "adapter.runner"

func init() {
	graft.Register(graft.Node[ports.RunnerResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, shell.NodeID},
		Run: func(ctx context.Context) (ports.RunnerResolver, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			cmds, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewDefaultDispatch(cmds, log), nil
		},
	})
}
