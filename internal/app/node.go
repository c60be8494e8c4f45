package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sail/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/sail/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/sail/internal/adapters/project"            //nolint:depguard // Wired in app layer
	"go.trai.ch/sail/internal/adapters/runner"             //nolint:depguard // Wired in app layer
	"go.trai.ch/sail/internal/adapters/source"             //nolint:depguard // Wired in app layer
	"go.trai.ch/sail/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/sail/internal/adapters/workspace"          //nolint:depguard // Wired in app layer
	"go.trai.ch/sail/internal/core/ports"
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
			workspace.NodeID,
			source.NodeID,
			project.NodeID,
			runner.NodeID,
			progrock.NodeID,
			logger.NodeID,
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
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	workspaces, err := graft.Dep[ports.WorkspaceManager](ctx)
	if err != nil {
		return nil, err
	}

	sources, err := graft.Dep[ports.SourceResolver](ctx)
	if err != nil {
		return nil, err
	}

	projects, err := graft.Dep[ports.ProjectResolver](ctx)
	if err != nil {
		return nil, err
	}

	runners, err := graft.Dep[ports.RunnerResolver](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(workspaces, sources, projects, runners, telemetry, log), nil
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

	resolver, err := graft.Dep[ports.ConfigResolver](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, resolver), nil
}
