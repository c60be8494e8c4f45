package ports

import "go.trai.ch/sail/internal/core/domain"

// WorkspaceManager acquires and releases the temporary tree of one invocation.
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type WorkspaceManager interface {
	// Create makes a fresh, empty workspace for the given address.
	Create(address string) (domain.Workspace, error)
	// Release removes the workspace tree.
	Release(ws domain.Workspace) error
}
