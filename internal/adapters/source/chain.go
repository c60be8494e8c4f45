// Package source resolves addresses to the providers that fetch them.
package source

import (
	"go.trai.ch/sail/internal/core/ports"
)

// Chain holds providers in priority order. The first provider that matches an
// address wins.
type Chain struct {
	providers []ports.SourceProvider
}

// NewChain creates a Chain that consults providers in the given order.
func NewChain(providers ...ports.SourceProvider) *Chain {
	return &Chain{providers: providers}
}

// NewDefaultChain creates the standard chain: gist, git, github, then any
// remote HTTP resource.
func NewDefaultChain(runner ports.CommandRunner, logger ports.Logger, opts ...Option) *Chain {
	return NewChain(
		NewGistProvider(logger, opts...),
		NewGitProvider(runner, logger),
		NewGitHubProvider(runner, logger),
		NewRemoteProvider(logger, opts...),
	)
}

// Resolve implements ports.SourceResolver.
func (c *Chain) Resolve(address string) (ports.SourceProvider, bool) {
	for _, p := range c.providers {
		if p.Matches(address) {
			return p, true
		}
	}
	return nil, false
}

// Providers returns the providers in priority order.
func (c *Chain) Providers() []ports.SourceProvider {
	return c.providers
}
