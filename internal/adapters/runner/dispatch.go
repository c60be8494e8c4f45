// Package runner builds and launches resolved projects with the dotnet CLI.
package runner

import (
	"strings"

	"go.trai.ch/sail/internal/core/ports"
)

// Dispatch selects a runner by name or alias, ignoring case.
type Dispatch struct {
	runners []ports.Runner
}

// NewDispatch creates a Dispatch over runners, consulted in order.
func NewDispatch(runners ...ports.Runner) *Dispatch {
	return &Dispatch{runners: runners}
}

// NewDefaultDispatch registers the build-and-run and publish-and-exec strategies.
func NewDefaultDispatch(cmds ports.CommandRunner, logger ports.Logger) *Dispatch {
	return NewDispatch(
		NewBuildRunRunner(cmds, logger),
		NewPublishExecRunner(cmds, logger),
	)
}

// Resolve implements ports.RunnerResolver.
func (d *Dispatch) Resolve(name string) (ports.Runner, bool) {
	name = strings.TrimSpace(name)
	for _, r := range d.runners {
		if strings.EqualFold(r.Name(), name) {
			return r, true
		}
		for _, alias := range r.Aliases() {
			if strings.EqualFold(alias, name) {
				return r, true
			}
		}
	}
	return nil, false
}

// Names lists the primary runner names.
func (d *Dispatch) Names() []string {
	names := make([]string, 0, len(d.runners))
	for _, r := range d.runners {
		names = append(names, r.Name())
	}
	return names
}
