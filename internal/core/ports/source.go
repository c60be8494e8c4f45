package ports

import (
	"context"

	"go.trai.ch/sail/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks

// SourceProvider fetches one family of addresses into a workspace.
type SourceProvider interface {
	// Name identifies the provider in diagnostics.
	Name() string
	// Matches reports whether the provider recognizes the address. It must not
	// perform I/O.
	Matches(address string) bool
	// Fetch materializes the address into ws.SourceDir.
	Fetch(ctx context.Context, address string, ws domain.Workspace) (domain.FetchResult, error)
}

// SourceResolver selects the provider responsible for an address.
type SourceResolver interface {
	Resolve(address string) (SourceProvider, bool)
}
