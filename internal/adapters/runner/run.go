package runner

import (
	"context"

	"go.trai.ch/sail/internal/core/domain"
	"go.trai.ch/sail/internal/core/ports"
)

// BuildRunRunner builds the project and then starts it with dotnet run.
type BuildRunRunner struct {
	toolchain
}

// NewBuildRunRunner creates a new BuildRunRunner.
func NewBuildRunRunner(cmds ports.CommandRunner, logger ports.Logger) *BuildRunRunner {
	return &BuildRunRunner{toolchain{cmds: cmds, logger: logger}}
}

// Name implements ports.Runner.
func (r *BuildRunRunner) Name() string { return "run" }

// Aliases implements ports.Runner.
func (r *BuildRunRunner) Aliases() []string { return []string{"dotnet-run", "DotNetRunRunner"} }

// Run implements ports.Runner.
func (r *BuildRunRunner) Run(
	ctx context.Context, cfg domain.Configuration, _ domain.Workspace, project domain.Project,
) (int, error) {
	build := withConfiguration([]string{"build", project.BuildFilePath}, cfg)
	if err := r.prepare(ctx, domain.ErrBuildFailed, build...); err != nil {
		return -1, err
	}

	args := withConfiguration([]string{"run", "--no-build", "--project", project.BuildFilePath}, cfg)
	switch {
	case cfg.LaunchProfile != "":
		args = append(args, "--launch-profile", cfg.LaunchProfile)
	case cfg.NoLaunchProfile:
		args = append(args, "--no-launch-profile")
	}
	if len(cfg.ProgramArguments) > 0 {
		args = append(args, "--")
		args = append(args, cfg.ProgramArguments...)
	}
	return r.launch(ctx, cfg, "", args...)
}
