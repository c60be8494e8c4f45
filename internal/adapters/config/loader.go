// Package config resolves the invocation configuration from defaults, an
// optional YAML file, the environment and the command line.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.trai.ch/sail/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Load reads a defaults file from the given path.
func Load(path string) (*Sailfile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(fmt.Errorf("%w: %w", domain.ErrInvalidConfiguration, err), "failed to read config file"), "path", path)
	}

	var file Sailfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(fmt.Errorf("%w: %w", domain.ErrInvalidConfiguration, err), "failed to parse config file"), "path", path)
	}
	return &file, nil
}

// settings returns the non-empty values of the file keyed for viper.
func (f *Sailfile) settings() (map[string]any, error) {
	m := map[string]any{}
	putString(m, keyRunner, f.Runner)
	putString(m, keyExecName, f.ExecName)
	putString(m, keySource, f.Source)
	putString(m, keyConfiguration, f.Configuration)
	putString(m, keyLaunchProfile, f.LaunchProfile)
	putString(m, keySDK, f.SDK)
	putString(m, keyTargetFramework, f.TargetFramework)

	if f.NoLaunchProfile != nil {
		m[keyNoLaunchProfile] = *f.NoLaunchProfile
	}
	if f.KeepWorkspace != nil {
		m[keyKeepWorkspace] = *f.KeepWorkspace
	}
	if len(f.Arguments) > 0 {
		m[keyArguments] = f.Arguments
	}
	if f.Verbosity != "" {
		v, err := domain.ParseVerbosity(f.Verbosity)
		if err != nil {
			return nil, zerr.Wrap(err, "config file")
		}
		m[keyVerbosity] = v.String()
	}
	return m, nil
}

func putString(m map[string]any, key, value string) {
	if value != "" {
		m[key] = value
	}
}
