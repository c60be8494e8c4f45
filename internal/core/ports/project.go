package ports

import "go.trai.ch/sail/internal/core/domain"

// ProjectResolver finds and prepares runnable projects inside fetched source.
//
//go:generate go run go.uber.org/mock/mockgen -source=project.go -destination=mocks/mock_project.go -package=mocks
type ProjectResolver interface {
	// FindCandidates lists the runnable projects under sourceRoot, narrowed by
	// the relative targetPath when it is not empty. No candidates is not an error.
	FindCandidates(sourceRoot, targetPath string) ([]domain.Project, error)
	// Prepare makes the project buildable. Single-file projects get a
	// synthesized build descriptor; direct-build projects are left untouched.
	Prepare(project domain.Project, cfg domain.Configuration) error
}
