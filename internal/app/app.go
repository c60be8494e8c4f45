// Package app implements the application layer for sail.
package app

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/sail/internal/core/domain"
	"go.trai.ch/sail/internal/core/ports"
	"go.trai.ch/zerr"
)

// App fetches, resolves, prepares and runs a single address.
type App struct {
	workspaces ports.WorkspaceManager
	sources    ports.SourceResolver
	projects   ports.ProjectResolver
	runners    ports.RunnerResolver
	telemetry  ports.Telemetry
	logger     ports.Logger
}

// New creates a new App instance.
func New(
	workspaces ports.WorkspaceManager,
	sources ports.SourceResolver,
	projects ports.ProjectResolver,
	runners ports.RunnerResolver,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		workspaces: workspaces,
		sources:    sources,
		projects:   projects,
		runners:    runners,
		telemetry:  telemetry,
		logger:     logger,
	}
}

// Run executes the pipeline for cfg.Address and returns the program's exit
// code. A non-zero exit code from the program is not an error.
func (a *App) Run(ctx context.Context, cfg domain.Configuration) (int, error) {
	a.logger.SetVerbosity(cfg.Verbosity)

	runner, ok := a.runners.Resolve(cfg.RunnerName)
	if !ok {
		return -1, zerr.With(zerr.Wrap(domain.ErrUnknownRunner, "unknown runner"), "runner", cfg.RunnerName)
	}

	ws, err := a.workspaces.Create(cfg.Address)
	if err != nil {
		return -1, zerr.Wrap(err, "failed to create workspace")
	}
	a.logger.Debug("workspace created", "path", ws.Root)
	defer a.release(cfg, ws)

	provider, ok := a.sources.Resolve(cfg.Address)
	if !ok {
		return -1, zerr.With(zerr.Wrap(domain.ErrNoSourceProvider, "no source provider can handle the address"), "address", cfg.Address)
	}
	a.logger.Debug("source provider selected", "provider", provider.Name())

	var fetched domain.FetchResult
	err = a.phase(ctx, "fetch "+provider.Name(), func(ctx context.Context) error {
		var err error
		fetched, err = provider.Fetch(ctx, cfg.Address, ws)
		return err
	})
	if err != nil {
		return -1, zerr.Wrap(err, "failed to fetch source")
	}

	target := fetched.TargetPath
	if filepath.IsAbs(target) || strings.HasPrefix(target, "/") {
		return -1, zerr.With(zerr.Wrap(domain.ErrAbsoluteTargetPath, "target path must be relative"), "target_path", target)
	}
	if target != "" && !domain.IsLocalPath(target) {
		return -1, zerr.With(zerr.Wrap(domain.ErrTargetPathEscapes, "target path leaves the fetched tree"), "target_path", target)
	}
	a.logger.Debug("target path resolved", "target_path", target)

	project, err := a.resolveProject(ws, target)
	if err != nil {
		return -1, err
	}
	a.logger.Info("project found", "project", project.Path(), "kind", project.Kind.String())

	if err := a.phase(ctx, "prepare", func(context.Context) error {
		return a.projects.Prepare(project, cfg)
	}); err != nil {
		return -1, zerr.Wrap(err, "failed to prepare project")
	}

	code := -1
	err = a.phase(ctx, "run "+runner.Name(), func(ctx context.Context) error {
		var err error
		code, err = runner.Run(ctx, cfg, ws, project)
		return err
	})
	if err != nil {
		return -1, err
	}

	a.logger.Info("program exited", "exit_code", code)
	return code, nil
}

// Close flushes telemetry.
func (a *App) Close() error {
	return a.telemetry.Close()
}

func (a *App) resolveProject(ws domain.Workspace, target string) (domain.Project, error) {
	candidates, err := a.projects.FindCandidates(ws.SourceDir, target)
	if err != nil {
		return domain.Project{}, zerr.Wrap(err, "failed to search for projects")
	}

	switch len(candidates) {
	case 0:
		return domain.Project{}, zerr.With(zerr.Wrap(domain.ErrNoProjectFound, "no runnable project found"), "target_path", target)
	case 1:
		return candidates[0], nil
	}

	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		name := c.Path()
		if rel, err := filepath.Rel(ws.SourceDir, name); err == nil {
			name = rel
		}
		names = append(names, name)
	}
	msg := strconv.Itoa(len(candidates)) + " projects found: " + strings.Join(names, ", ")
	return domain.Project{}, zerr.With(zerr.Wrap(domain.ErrMultipleProjects, msg), "target_path", target)
}

func (a *App) phase(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, v := a.telemetry.Record(ctx, name)
	err := fn(ctx)
	v.Complete(err)
	return err
}

func (a *App) release(cfg domain.Configuration, ws domain.Workspace) {
	if cfg.KeepWorkspace {
		a.logger.Info("keeping workspace", "path", ws.Root)
		return
	}
	if err := a.workspaces.Release(ws); err != nil {
		a.logger.Warn("failed to remove workspace", "path", ws.Root, "error", err.Error())
		return
	}
	a.logger.Debug("workspace removed", "path", ws.Root)
}
