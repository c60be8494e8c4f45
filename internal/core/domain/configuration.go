package domain

import (
	"maps"
	"slices"
)

const (
	// DefaultRunnerName is the strategy used when none is configured.
	DefaultRunnerName = "run"
	// DefaultBuildConfiguration is the build configuration passed to the toolchain.
	DefaultBuildConfiguration = "Release"
	// DefaultSDKName is the SDK written into synthesized project files.
	DefaultSDKName = "Microsoft.NET.Sdk"
	// DefaultTargetFrameworkName is the target framework written into synthesized project files.
	DefaultTargetFrameworkName = "net8.0"
)

// Configuration is the resolved settings of one invocation. It is built once
// and then passed by value to every component.
type Configuration struct {
	RunnerName           string
	ExecName             string
	Address              string
	BuildConfiguration   string
	LaunchProfile        string
	NoLaunchProfile      bool
	ProgramArguments     []string
	EnvironmentOverrides map[string]string
	SDKName              string
	TargetFrameworkName  string
	Verbosity            Verbosity
	KeepWorkspace        bool
}

// DefaultConfiguration returns the built-in defaults.
func DefaultConfiguration() Configuration {
	return Configuration{
		RunnerName:           DefaultRunnerName,
		BuildConfiguration:   DefaultBuildConfiguration,
		SDKName:              DefaultSDKName,
		TargetFrameworkName:  DefaultTargetFrameworkName,
		Verbosity:            VerbosityInformation,
		EnvironmentOverrides: map[string]string{},
	}
}

// Clone returns a deep copy so callers cannot mutate shared slices or maps.
func (c Configuration) Clone() Configuration {
	c.ProgramArguments = slices.Clone(c.ProgramArguments)
	c.EnvironmentOverrides = maps.Clone(c.EnvironmentOverrides)
	if c.EnvironmentOverrides == nil {
		c.EnvironmentOverrides = map[string]string{}
	}
	return c
}
