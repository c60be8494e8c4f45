package ports

import "go.trai.ch/sail/internal/core/domain"

// ConfigResolver builds the invocation configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config.go -destination=mocks/mock_config.go -package=mocks
type ConfigResolver interface {
	// Resolve layers defaults, the environment and the command line, in that
	// order. env holds the process environment as a name to value map.
	Resolve(env map[string]string, args []string) (domain.Configuration, error)
}
