package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sail/internal/adapters/telemetry"
	"go.trai.ch/sail/internal/app"
	"go.trai.ch/sail/internal/core/domain"
	"go.trai.ch/sail/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	workspaces *mocks.MockWorkspaceManager
	sources    *mocks.MockSourceResolver
	provider   *mocks.MockSourceProvider
	projects   *mocks.MockProjectResolver
	runners    *mocks.MockRunnerResolver
	runner     *mocks.MockRunner
	logger     *mocks.MockLogger
	app        *app.App
	ws         domain.Workspace
	cfg        domain.Configuration
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		workspaces: mocks.NewMockWorkspaceManager(ctrl),
		sources:    mocks.NewMockSourceResolver(ctrl),
		provider:   mocks.NewMockSourceProvider(ctrl),
		projects:   mocks.NewMockProjectResolver(ctrl),
		runners:    mocks.NewMockRunnerResolver(ctrl),
		runner:     mocks.NewMockRunner(ctrl),
		logger:     mocks.NewMockLogger(ctrl),
		ws:         domain.NewWorkspace("/tmp/sail-abc-1"),
		cfg:        domain.DefaultConfiguration(),
	}
	f.cfg.Address = "https://example.com/app.zip"

	f.logger.EXPECT().SetVerbosity(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	f.logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	f.provider.EXPECT().Name().Return("remote").AnyTimes()
	f.runner.EXPECT().Name().Return("run").AnyTimes()

	f.app = app.New(f.workspaces, f.sources, f.projects, f.runners, telemetry.NewNoOp(), f.logger)
	return f
}

func (f *fixture) expectUntilFetch() {
	f.runners.EXPECT().Resolve("run").Return(f.runner, true)
	f.workspaces.EXPECT().Create(f.cfg.Address).Return(f.ws, nil)
	f.workspaces.EXPECT().Release(f.ws).Return(nil)
	f.sources.EXPECT().Resolve(f.cfg.Address).Return(f.provider, true)
}

func TestApp_Run(t *testing.T) {
	f := newFixture(t)
	f.expectUntilFetch()

	project := domain.NewSingleFileProject(f.ws.SourceDir + "/d/Program.cs")
	gomock.InOrder(
		f.provider.EXPECT().Fetch(gomock.Any(), f.cfg.Address, f.ws).Return(domain.FetchResult{TargetPath: "d"}, nil),
		f.projects.EXPECT().FindCandidates(f.ws.SourceDir, "d").Return([]domain.Project{project}, nil),
		f.projects.EXPECT().Prepare(project, f.cfg).Return(nil),
		f.runner.EXPECT().Run(gomock.Any(), f.cfg, f.ws, project).Return(3, nil),
	)

	code, err := f.app.Run(context.Background(), f.cfg)
	require.NoError(t, err)
	assert.Equal(t, 3, code)
}

func TestApp_Run_UnknownRunner(t *testing.T) {
	f := newFixture(t)
	f.cfg.RunnerName = "docker"
	f.runners.EXPECT().Resolve("docker").Return(nil, false)

	_, err := f.app.Run(context.Background(), f.cfg)
	require.ErrorIs(t, err, domain.ErrUnknownRunner)
	assert.Equal(t, domain.KindUserInput, domain.KindOf(err))
}

func TestApp_Run_NoSourceProvider(t *testing.T) {
	f := newFixture(t)
	f.runners.EXPECT().Resolve("run").Return(f.runner, true)
	f.workspaces.EXPECT().Create(f.cfg.Address).Return(f.ws, nil)
	f.workspaces.EXPECT().Release(f.ws).Return(nil)
	f.sources.EXPECT().Resolve(f.cfg.Address).Return(nil, false)

	_, err := f.app.Run(context.Background(), f.cfg)
	require.ErrorIs(t, err, domain.ErrNoSourceProvider)
}

func TestApp_Run_FetchFailure(t *testing.T) {
	f := newFixture(t)
	f.expectUntilFetch()
	f.provider.EXPECT().Fetch(gomock.Any(), f.cfg.Address, f.ws).Return(domain.FetchResult{}, domain.ErrUnexpectedStatus)

	_, err := f.app.Run(context.Background(), f.cfg)
	require.ErrorIs(t, err, domain.ErrUnexpectedStatus)
	assert.Equal(t, domain.KindFetch, domain.KindOf(err))
}

func TestApp_Run_AbsoluteTargetPath(t *testing.T) {
	f := newFixture(t)
	f.expectUntilFetch()
	f.provider.EXPECT().Fetch(gomock.Any(), f.cfg.Address, f.ws).Return(domain.FetchResult{TargetPath: "/etc"}, nil)

	_, err := f.app.Run(context.Background(), f.cfg)
	require.ErrorIs(t, err, domain.ErrAbsoluteTargetPath)
	assert.Equal(t, domain.KindInternal, domain.KindOf(err))
}

func TestApp_Run_TargetPathOutsideTree(t *testing.T) {
	for _, target := range []string{"../../victim", "d/../../victim", `..\victim`} {
		t.Run(target, func(t *testing.T) {
			f := newFixture(t)
			f.expectUntilFetch()
			f.provider.EXPECT().Fetch(gomock.Any(), f.cfg.Address, f.ws).Return(domain.FetchResult{TargetPath: target}, nil)

			_, err := f.app.Run(context.Background(), f.cfg)
			require.ErrorIs(t, err, domain.ErrTargetPathEscapes)
			assert.Equal(t, domain.KindInternal, domain.KindOf(err))
		})
	}
}

func TestApp_Run_NoProject(t *testing.T) {
	f := newFixture(t)
	f.expectUntilFetch()
	f.provider.EXPECT().Fetch(gomock.Any(), f.cfg.Address, f.ws).Return(domain.FetchResult{}, nil)
	f.projects.EXPECT().FindCandidates(f.ws.SourceDir, "").Return(nil, nil)

	_, err := f.app.Run(context.Background(), f.cfg)
	require.ErrorIs(t, err, domain.ErrNoProjectFound)
}

func TestApp_Run_MultipleProjects(t *testing.T) {
	f := newFixture(t)
	f.expectUntilFetch()
	f.provider.EXPECT().Fetch(gomock.Any(), f.cfg.Address, f.ws).Return(domain.FetchResult{}, nil)
	f.projects.EXPECT().FindCandidates(f.ws.SourceDir, "").Return([]domain.Project{
		domain.NewDirectBuildProject(f.ws.SourceDir + "/A.csproj"),
		domain.NewDirectBuildProject(f.ws.SourceDir + "/B.csproj"),
	}, nil)

	_, err := f.app.Run(context.Background(), f.cfg)
	require.ErrorIs(t, err, domain.ErrMultipleProjects)
	assert.Contains(t, err.Error(), "A.csproj, B.csproj")
}

func TestApp_Run_PrepareFailureSkipsRunner(t *testing.T) {
	f := newFixture(t)
	f.expectUntilFetch()
	project := domain.NewSingleFileProject(f.ws.SourceDir + "/Program.cs")
	f.provider.EXPECT().Fetch(gomock.Any(), f.cfg.Address, f.ws).Return(domain.FetchResult{}, nil)
	f.projects.EXPECT().FindCandidates(f.ws.SourceDir, "").Return([]domain.Project{project}, nil)
	f.projects.EXPECT().Prepare(project, f.cfg).Return(domain.ErrProjectAlreadyExists)

	_, err := f.app.Run(context.Background(), f.cfg)
	require.ErrorIs(t, err, domain.ErrProjectAlreadyExists)
}

func TestApp_Run_KeepWorkspace(t *testing.T) {
	f := newFixture(t)
	f.cfg.KeepWorkspace = true
	f.runners.EXPECT().Resolve("run").Return(f.runner, true)
	f.workspaces.EXPECT().Create(f.cfg.Address).Return(f.ws, nil)
	f.workspaces.EXPECT().Release(gomock.Any()).Times(0)
	f.sources.EXPECT().Resolve(f.cfg.Address).Return(nil, false)

	_, err := f.app.Run(context.Background(), f.cfg)
	require.Error(t, err)
}

func TestApp_Run_ReleaseFailureIsLogged(t *testing.T) {
	f := newFixture(t)
	f.runners.EXPECT().Resolve("run").Return(f.runner, true)
	f.workspaces.EXPECT().Create(f.cfg.Address).Return(f.ws, nil)
	f.workspaces.EXPECT().Release(f.ws).Return(errors.New("busy"))
	f.sources.EXPECT().Resolve(f.cfg.Address).Return(nil, false)
	f.logger.EXPECT().Warn("failed to remove workspace", gomock.Any()).Times(1)

	_, err := f.app.Run(context.Background(), f.cfg)
	require.ErrorIs(t, err, domain.ErrNoSourceProvider)
}

func TestApp_Run_RecordsPhases(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	tel := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)
	a := app.New(f.workspaces, f.sources, f.projects, f.runners, tel, f.logger)

	f.expectUntilFetch()
	project := domain.NewDirectBuildProject(f.ws.SourceDir + "/App.csproj")
	buildErr := errors.New("build failed")
	f.provider.EXPECT().Fetch(gomock.Any(), f.cfg.Address, f.ws).Return(domain.FetchResult{}, nil)
	f.projects.EXPECT().FindCandidates(f.ws.SourceDir, "").Return([]domain.Project{project}, nil)
	f.projects.EXPECT().Prepare(project, f.cfg).Return(nil)
	f.runner.EXPECT().Run(gomock.Any(), f.cfg, f.ws, project).Return(-1, buildErr)

	tel.EXPECT().Record(gomock.Any(), "fetch remote").Return(context.Background(), vertex)
	tel.EXPECT().Record(gomock.Any(), "prepare").Return(context.Background(), vertex)
	tel.EXPECT().Record(gomock.Any(), "run run").Return(context.Background(), vertex)
	vertex.EXPECT().Complete(nil).Times(2)
	vertex.EXPECT().Complete(buildErr).Times(1)

	_, err := a.Run(context.Background(), f.cfg)
	require.ErrorIs(t, err, buildErr)
}
