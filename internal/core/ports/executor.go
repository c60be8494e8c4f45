// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/sail/internal/core/domain"
)

// CommandRunner defines the interface for launching external processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type CommandRunner interface {
	// Run starts the command and waits for it to exit.
	//
	// A process that starts and exits returns its exit code and a nil error,
	// whatever the code. An error is returned only when the process could not
	// be started or waited on.
	Run(ctx context.Context, cmd domain.Command) (int, error)
}
