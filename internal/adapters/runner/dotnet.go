package runner

import (
	"context"

	"go.trai.ch/sail/internal/core/domain"
	"go.trai.ch/sail/internal/core/ports"
	"go.trai.ch/zerr"
)

const dotnet = "dotnet"

// toolchain runs dotnet subcommands on behalf of a runner.
type toolchain struct {
	cmds   ports.CommandRunner
	logger ports.Logger
}

// prepare runs a build-like step on the caller's terminal and turns a
// non-zero exit into failure.
func (t toolchain) prepare(ctx context.Context, failure error, args ...string) error {
	cmd := domain.Command{Name: dotnet, Args: args}

	t.logger.Info("running dotnet", "command", cmd.String())
	code, err := t.cmds.Run(ctx, cmd)
	if err != nil {
		return err
	}
	if code != 0 {
		err := zerr.With(zerr.Wrap(failure, "dotnet exited with a non-zero code"), "command", cmd.String())
		return zerr.With(err, "exit_code", code)
	}
	return nil
}

// launch starts the program with the caller's terminal and returns its exit code.
func (t toolchain) launch(ctx context.Context, cfg domain.Configuration, dir string, args ...string) (int, error) {
	cmd := domain.Command{
		Name: dotnet,
		Args: args,
		Dir:  dir,
		Env:  cfg.EnvironmentOverrides,
	}
	for k, v := range cfg.EnvironmentOverrides {
		t.logger.Debug("environment override", "name", k, "value", v)
	}

	t.logger.Info("running dotnet", "command", cmd.String())
	return t.cmds.Run(ctx, cmd)
}

func withConfiguration(args []string, cfg domain.Configuration) []string {
	if cfg.BuildConfiguration != "" {
		args = append(args, "--configuration", cfg.BuildConfiguration)
	}
	return args
}
