package app_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sail/internal/adapters/logger"
	"go.trai.ch/sail/internal/adapters/project"
	"go.trai.ch/sail/internal/adapters/runner"
	"go.trai.ch/sail/internal/adapters/source"
	"go.trai.ch/sail/internal/adapters/telemetry/progrock"
	"go.trai.ch/sail/internal/adapters/workspace"
	"go.trai.ch/sail/internal/app"
	"go.trai.ch/sail/internal/core/domain"
	"go.trai.ch/sail/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// fakeToolchain stands in for git and dotnet. Checking out FETCH_HEAD
// materializes a project under samples/App.
type fakeToolchain struct {
	commands  []domain.Command
	buildExit int
	runExit   int
}

func (f *fakeToolchain) run(_ context.Context, c domain.Command) (int, error) {
	f.commands = append(f.commands, c)
	switch {
	case c.Name == "git" && len(c.Args) > 0 && c.Args[len(c.Args)-1] == "FETCH_HEAD":
		dir := filepath.Join(c.Dir, "samples", "App")
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return -1, err
		}
		if err := os.WriteFile(filepath.Join(dir, "App.csproj"), []byte("<Project />"), 0o600); err != nil {
			return -1, err
		}
	case c.Name == "dotnet" && c.Args[0] == "build":
		return f.buildExit, nil
	case c.Name == "dotnet" && c.Args[0] == "run":
		return f.runExit, nil
	}
	return 0, nil
}

func (f *fakeToolchain) names() []string {
	out := make([]string, 0, len(f.commands))
	for _, c := range f.commands {
		out = append(out, c.Name+" "+c.Args[0])
	}
	return out
}

func newPipeline(t *testing.T, tools *fakeToolchain) (*app.App, string) {
	t.Helper()
	cmds := mocks.NewMockCommandRunner(gomock.NewController(t))
	cmds.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(tools.run).AnyTimes()

	log := logger.NewWithWriter(io.Discard)
	base := t.TempDir()
	a := app.New(
		workspace.New(workspace.WithBaseDir(base)),
		source.NewDefaultChain(cmds, log),
		project.NewResolver(log),
		runner.NewDefaultDispatch(cmds, log),
		progrock.New(log),
		log,
	)
	t.Cleanup(func() { _ = a.Close() })
	return a, base
}

func TestPipeline_GitHubTreeBuildFailure(t *testing.T) {
	tools := &fakeToolchain{buildExit: 1}
	a, base := newPipeline(t, tools)

	cfg := domain.DefaultConfiguration()
	cfg.Address = "https://github.com/user/repo/tree/main/samples/App"

	_, err := a.Run(context.Background(), cfg)
	require.ErrorIs(t, err, domain.ErrBuildFailed)
	assert.Equal(t, domain.KindExternalTool, domain.KindOf(err))

	assert.Equal(t, []string{"git init", "git remote", "git fetch", "git -c", "dotnet build"}, tools.names())
	assert.Equal(t, []string{"remote", "add", "origin", "https://github.com/user/repo.git"}, tools.commands[1].Args)
	assert.Equal(t, []string{"fetch", "--depth=1", "origin", "main"}, tools.commands[2].Args)

	entries, err := os.ReadDir(base)
	require.NoError(t, err)
	assert.Empty(t, entries, "workspace should be released")
}

func TestPipeline_GitHubTreeRuns(t *testing.T) {
	tools := &fakeToolchain{runExit: 4}
	a, _ := newPipeline(t, tools)

	cfg := domain.DefaultConfiguration()
	cfg.Address = "https://github.com/user/repo/tree/main/samples/App"
	cfg.ProgramArguments = []string{"hello"}

	code, err := a.Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 4, code)

	last := tools.commands[len(tools.commands)-1]
	assert.Equal(t, "dotnet", last.Name)
	assert.Equal(t, "run", last.Args[0])
	assert.Equal(t, []string{"--", "hello"}, last.Args[len(last.Args)-2:])
	assert.Equal(t, "App.csproj", filepath.Base(last.Args[3]))
}

func TestPipeline_KeepWorkspace(t *testing.T) {
	tools := &fakeToolchain{}
	a, base := newPipeline(t, tools)

	cfg := domain.DefaultConfiguration()
	cfg.Address = "https://github.com/user/repo/tree/main/samples/App"
	cfg.KeepWorkspace = true

	_, err := a.Run(context.Background(), cfg)
	require.NoError(t, err)

	entries, err := os.ReadDir(base)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.FileExists(t, filepath.Join(base, entries[0].Name(), "s", "samples", "App", "App.csproj"))
}
