package domain

import (
	"path/filepath"
	"strings"
)

const (
	// SourceDirName is the workspace subdirectory that receives fetched content.
	SourceDirName = "s"
	// ArtifactsDirName is the workspace subdirectory that receives publish output.
	ArtifactsDirName = "a"
)

// Workspace is the temporary directory tree owned by one invocation.
type Workspace struct {
	Root         string
	SourceDir    string
	ArtifactsDir string
}

// NewWorkspace lays out the subtrees under root.
func NewWorkspace(root string) Workspace {
	return Workspace{
		Root:         root,
		SourceDir:    filepath.Join(root, SourceDirName),
		ArtifactsDir: filepath.Join(root, ArtifactsDirName),
	}
}

// FetchResult describes where the runnable unit lives inside the fetched tree.
type FetchResult struct {
	// TargetPath narrows project discovery to a path relative to the source
	// subtree. Empty means the whole tree.
	TargetPath string
}

// HasTargetPath reports whether the fetch narrowed discovery.
func (r FetchResult) HasTargetPath() bool {
	return r.TargetPath != ""
}

// IsLocalPath reports whether path, written with either separator, stays
// inside the directory it is joined to.
func IsLocalPath(path string) bool {
	return filepath.IsLocal(filepath.FromSlash(strings.ReplaceAll(path, `\`, "/")))
}
