package config

import (
	"maps"

	"github.com/spf13/viper"
	"go.trai.ch/sail/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolver implements ports.ConfigResolver.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve layers, from lowest to highest precedence: built-in defaults, the
// file named by SAIL_CONFIG_FILE, SAIL_* variables and the command line.
// Environment overrides merge key by key across the same layers.
func (r *Resolver) Resolve(env map[string]string, args []string) (domain.Configuration, error) {
	v := viper.New()
	setDefaults(v)

	overrides := map[string]string{}

	if path := env[EnvConfigFile]; path != "" {
		file, err := Load(path)
		if err != nil {
			return domain.Configuration{}, err
		}
		fileSettings, err := file.settings()
		if err != nil {
			return domain.Configuration{}, zerr.With(err, "path", path)
		}
		if err := v.MergeConfigMap(fileSettings); err != nil {
			return domain.Configuration{}, zerr.With(zerr.Wrap(domain.ErrInvalidConfiguration, err.Error()), "path", path)
		}
		// Kept out of viper, which would lowercase the variable names.
		maps.Copy(overrides, file.Environment)
	}

	if err := v.MergeConfigMap(envSettings(env)); err != nil {
		return domain.Configuration{}, zerr.Wrap(domain.ErrInvalidConfiguration, err.Error())
	}
	maps.Copy(overrides, envOverrides(env))

	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return domain.Configuration{}, zerr.Wrap(domain.ErrInvalidConfiguration, err.Error())
	}

	cfg, err := s.configuration()
	if err != nil {
		return domain.Configuration{}, err
	}
	cfg.EnvironmentOverrides = overrides

	applyArgs(&cfg, args)
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := domain.DefaultConfiguration()
	v.SetDefault(keyRunner, defaults.RunnerName)
	v.SetDefault(keyExecName, "")
	v.SetDefault(keySource, "")
	v.SetDefault(keyConfiguration, defaults.BuildConfiguration)
	v.SetDefault(keyLaunchProfile, "")
	v.SetDefault(keyNoLaunchProfile, false)
	v.SetDefault(keyArguments, []string{})
	v.SetDefault(keySDK, defaults.SDKName)
	v.SetDefault(keyTargetFramework, defaults.TargetFrameworkName)
	v.SetDefault(keyVerbosity, defaults.Verbosity.String())
	v.SetDefault(keyKeepWorkspace, false)
}

func (s settings) configuration() (domain.Configuration, error) {
	verbosity, err := domain.ParseVerbosity(s.Verbosity)
	if err != nil {
		return domain.Configuration{}, err
	}

	var arguments []string
	if len(s.Arguments) > 0 {
		arguments = s.Arguments
	}

	return domain.Configuration{
		RunnerName:          s.Runner,
		ExecName:            s.ExecName,
		Address:             s.Source,
		BuildConfiguration:  s.Configuration,
		LaunchProfile:       s.LaunchProfile,
		NoLaunchProfile:     s.NoLaunchProfile,
		ProgramArguments:    arguments,
		SDKName:             s.SDK,
		TargetFrameworkName: s.TargetFramework,
		Verbosity:           verbosity,
		KeepWorkspace:       s.KeepWorkspace,
	}, nil
}
