package ports

import (
	"context"

	"go.trai.ch/sail/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks

// Runner is one build-and-execute strategy.
type Runner interface {
	Name() string
	Aliases() []string
	// Run builds and launches the project. The returned exit code is the
	// launched program's own; an error means the build phase failed or the
	// program could not be started.
	Run(ctx context.Context, cfg domain.Configuration, ws domain.Workspace, project domain.Project) (int, error)
}

// RunnerResolver selects a Runner by name or alias.
type RunnerResolver interface {
	Resolve(name string) (Runner, bool)
}
