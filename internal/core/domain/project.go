package domain

import (
	"path/filepath"
	"strings"
)

// SyntheticProjectFileName is the build descriptor written next to a bare source file.
const SyntheticProjectFileName = "App.csproj"

// ProjectKind distinguishes the candidate project variants.
type ProjectKind int

const (
	// DirectBuild is a project backed by an existing build descriptor.
	DirectBuild ProjectKind = iota
	// SingleFile is a bare source file that needs a synthesized descriptor.
	SingleFile
)

// String returns the string representation of the ProjectKind.
func (k ProjectKind) String() string {
	if k == SingleFile {
		return "single-file"
	}
	return "direct-build"
}

// Project is a candidate runnable unit.
type Project struct {
	Kind ProjectKind
	// BuildFilePath is the descriptor handed to the toolchain. For single-file
	// projects it does not exist until the project is prepared.
	BuildFilePath string
	// SourceFilePath is set for single-file projects only.
	SourceFilePath string
}

// NewDirectBuildProject returns a project for an existing build descriptor.
func NewDirectBuildProject(buildFilePath string) Project {
	return Project{Kind: DirectBuild, BuildFilePath: buildFilePath}
}

// NewSingleFileProject returns a project for a bare source file.
func NewSingleFileProject(sourceFilePath string) Project {
	return Project{
		Kind:           SingleFile,
		SourceFilePath: sourceFilePath,
		BuildFilePath:  filepath.Join(filepath.Dir(sourceFilePath), SyntheticProjectFileName),
	}
}

// Path returns the file that identifies the project to the user.
func (p Project) Path() string {
	if p.Kind == SingleFile {
		return p.SourceFilePath
	}
	return p.BuildFilePath
}

// EntryModuleName is the default published module name, derived from the
// build descriptor file name.
func (p Project) EntryModuleName() string {
	base := filepath.Base(p.BuildFilePath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".dll"
}

// String returns the string representation of the Project.
func (p Project) String() string {
	return p.Path()
}
