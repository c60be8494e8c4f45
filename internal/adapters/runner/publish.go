package runner

import (
	"context"
	"path/filepath"

	"go.trai.ch/sail/internal/core/domain"
	"go.trai.ch/sail/internal/core/ports"
)

// PublishExecRunner publishes the project into the workspace artifacts
// directory and executes the entry module from there.
type PublishExecRunner struct {
	toolchain
}

// NewPublishExecRunner creates a new PublishExecRunner.
func NewPublishExecRunner(cmds ports.CommandRunner, logger ports.Logger) *PublishExecRunner {
	return &PublishExecRunner{toolchain{cmds: cmds, logger: logger}}
}

// Name implements ports.Runner.
func (r *PublishExecRunner) Name() string { return "publish" }

// Aliases implements ports.Runner.
func (r *PublishExecRunner) Aliases() []string {
	return []string{"exec", "dotnet-publish", "DotNetPublishAndExecRunner"}
}

// Run implements ports.Runner.
func (r *PublishExecRunner) Run(
	ctx context.Context, cfg domain.Configuration, ws domain.Workspace, project domain.Project,
) (int, error) {
	publish := withConfiguration([]string{"publish", project.BuildFilePath, "--output", ws.ArtifactsDir}, cfg)
	if err := r.prepare(ctx, domain.ErrPublishFailed, publish...); err != nil {
		return -1, err
	}

	entry := cfg.ExecName
	if entry == "" {
		entry = project.EntryModuleName()
	}
	args := append([]string{"exec", filepath.Join(ws.ArtifactsDir, entry)}, cfg.ProgramArguments...)
	return r.launch(ctx, cfg, ws.ArtifactsDir, args...)
}
