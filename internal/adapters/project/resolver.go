// Package project discovers runnable projects inside a fetched source tree.
package project

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"go.trai.ch/sail/internal/core/domain"
	"go.trai.ch/sail/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	sourceExt = ".cs"
	entryFile = "Program.cs"
)

var descriptorExts = []string{".csproj", ".fsproj", ".vbproj"}

var projectTemplate = template.Must(template.New("csproj").Parse(`<Project Sdk="{{html .SDK}}">
  <PropertyGroup>
    <OutputType>Exe</OutputType>
    <TargetFramework>{{html .TargetFramework}}</TargetFramework>
    <ImplicitUsings>enable</ImplicitUsings>
  </PropertyGroup>
</Project>
`))

// Resolver implements ports.ProjectResolver on the local file system.
type Resolver struct {
	logger ports.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(logger ports.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// FindCandidates lists the projects that could be run. A target path naming a
// file classifies that file alone; a target path naming a directory, or no
// target path at all, scans that directory without recursing.
func (r *Resolver) FindCandidates(sourceRoot, targetPath string) ([]domain.Project, error) {
	if targetPath == "" {
		return r.scan(sourceRoot)
	}
	if !domain.IsLocalPath(targetPath) {
		return nil, zerr.With(zerr.Wrap(domain.ErrTargetPathEscapes, "target path leaves the source tree"), "target_path", targetPath)
	}

	full := filepath.Join(sourceRoot, filepath.FromSlash(targetPath))
	info, err := os.Stat(full)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		r.logger.Debug("target path does not exist", "path", full)
		return nil, nil
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, "failed to stat target path"), "path", full)
	case info.IsDir():
		return r.scan(full)
	}

	switch ext := filepath.Ext(full); {
	case isDescriptor(ext):
		return []domain.Project{domain.NewDirectBuildProject(full)}, nil
	case ext == sourceExt:
		return []domain.Project{domain.NewSingleFileProject(full)}, nil
	default:
		r.logger.Debug("target file is not a project", "path", full)
		return nil, nil
	}
}

func (r *Resolver) scan(dir string) ([]domain.Project, error) {
	// ReadDir returns entries sorted by name.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read directory"), "path", dir)
	}

	var descriptors, sources []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		switch {
		case isDescriptor(ext):
			descriptors = append(descriptors, filepath.Join(dir, e.Name()))
		case ext == sourceExt:
			sources = append(sources, filepath.Join(dir, e.Name()))
		}
	}

	if len(descriptors) > 0 {
		projects := make([]domain.Project, 0, len(descriptors))
		for _, d := range descriptors {
			projects = append(projects, domain.NewDirectBuildProject(d))
		}
		return projects, nil
	}

	var entryPoints []string
	for _, s := range sources {
		if strings.EqualFold(filepath.Base(s), entryFile) {
			entryPoints = append(entryPoints, s)
		}
	}
	if len(entryPoints) == 1 {
		return []domain.Project{domain.NewSingleFileProject(entryPoints[0])}, nil
	}

	projects := make([]domain.Project, 0, len(sources))
	for _, s := range sources {
		projects = append(projects, domain.NewSingleFileProject(s))
	}
	return projects, nil
}

// Prepare writes the synthesized build descriptor for a single-file project.
// Direct build projects need no preparation.
func (r *Resolver) Prepare(p domain.Project, cfg domain.Configuration) error {
	if p.Kind != domain.SingleFile {
		return nil
	}

	dir := filepath.Dir(p.SourceFilePath)
	existing, err := findDescriptors(dir)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return zerr.With(zerr.Wrap(domain.ErrProjectAlreadyExists, "a project already exists next to the source file"), "path", existing[0])
	}

	var buf bytes.Buffer
	data := struct{ SDK, TargetFramework string }{cfg.SDKName, cfg.TargetFrameworkName}
	if err := projectTemplate.Execute(&buf, data); err != nil {
		return zerr.Wrap(err, "failed to render project file")
	}

	r.logger.Info("writing project file", "path", p.BuildFilePath, "sdk", cfg.SDKName, "target_framework", cfg.TargetFrameworkName)
	if err := os.WriteFile(p.BuildFilePath, buf.Bytes(), 0o644); err != nil { //nolint:gosec // project files are not secret
		return zerr.With(zerr.Wrap(err, "failed to write project file"), "path", p.BuildFilePath)
	}
	return nil
}

func findDescriptors(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read directory"), "path", dir)
	}
	var found []string
	for _, e := range entries {
		if !e.IsDir() && isDescriptor(filepath.Ext(e.Name())) {
			found = append(found, filepath.Join(dir, e.Name()))
		}
	}
	return found, nil
}

func isDescriptor(ext string) bool {
	return slices.Contains(descriptorExts, ext)
}
