package workspace_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sail/internal/adapters/workspace"
	"go.trai.ch/sail/internal/core/domain"
)

func TestManager_Create(t *testing.T) {
	base := t.TempDir()
	m := workspace.New(workspace.WithBaseDir(base))

	ws, err := m.Create("https://gist.github.com/user/abc")
	require.NoError(t, err)

	assert.Equal(t, base, filepath.Dir(ws.Root))
	assert.True(t, strings.HasPrefix(filepath.Base(ws.Root), "sail-"))
	assert.DirExists(t, ws.SourceDir)
	assert.DirExists(t, ws.ArtifactsDir)

	entries, err := os.ReadDir(ws.SourceDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestManager_Create_Unique(t *testing.T) {
	m := workspace.New(workspace.WithBaseDir(t.TempDir()))

	first, err := m.Create("same")
	require.NoError(t, err)
	second, err := m.Create("same")
	require.NoError(t, err)

	assert.NotEqual(t, first.Root, second.Root)
}

func TestManager_Release(t *testing.T) {
	m := workspace.New(workspace.WithBaseDir(t.TempDir()))

	ws, err := m.Create("addr")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(ws.SourceDir, "Program.cs"), []byte("x"), 0o600))

	require.NoError(t, m.Release(ws))
	assert.NoDirExists(t, ws.Root)
}

func TestManager_Release_OutsideBase(t *testing.T) {
	m := workspace.New(workspace.WithBaseDir(t.TempDir()))
	outside := t.TempDir()

	err := m.Release(domain.NewWorkspace(outside))
	require.Error(t, err)
	assert.DirExists(t, outside)
}

func TestManager_Release_Empty(t *testing.T) {
	m := workspace.New()
	assert.NoError(t, m.Release(domain.Workspace{}))
}
