// Package workspace manages the temporary directory tree of one invocation.
package workspace

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/sail/internal/core/domain"
	"go.trai.ch/zerr"
)

const dirPerm = 0o750

// Manager implements ports.WorkspaceManager on the local file system.
type Manager struct {
	baseDir string
}

// Option configures a Manager.
type Option func(*Manager)

// WithBaseDir places workspaces under dir instead of the OS temp directory.
func WithBaseDir(dir string) Option {
	return func(m *Manager) {
		m.baseDir = dir
	}
}

// New creates a new Manager.
func New(opts ...Option) *Manager {
	m := &Manager{baseDir: os.TempDir()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create makes a fresh workspace whose directory name carries a hash of the
// address, so concurrent runs of the same address never share a tree.
func (m *Manager) Create(address string) (domain.Workspace, error) {
	pattern := "sail-" + strconv.FormatUint(xxhash.Sum64String(address), 16) + "-"

	root, err := os.MkdirTemp(m.baseDir, pattern)
	if err != nil {
		return domain.Workspace{}, zerr.With(zerr.Wrap(err, "failed to create workspace"), "base_dir", m.baseDir)
	}

	ws := domain.NewWorkspace(root)
	for _, dir := range []string{ws.SourceDir, ws.ArtifactsDir} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			_ = os.RemoveAll(root)
			return domain.Workspace{}, zerr.With(zerr.Wrap(err, "failed to create workspace directory"), "path", dir)
		}
	}
	return ws, nil
}

// Release removes the workspace tree. Trees outside the base directory are
// never touched.
func (m *Manager) Release(ws domain.Workspace) error {
	if ws.Root == "" {
		return nil
	}

	rel, err := filepath.Rel(m.baseDir, ws.Root)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
		return zerr.With(zerr.New("refusing to remove workspace outside base directory"), "path", ws.Root)
	}

	if err := os.RemoveAll(ws.Root); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove workspace"), "path", ws.Root)
	}
	return nil
}
